package expand

import (
	"errors"

	"github.com/minish-project/minish/node"
)

// ErrNoProgramName is returned by ArgVector when a command node has no
// program-name node to anchor argv[0] on, per spec.md §4.2.2 step 3.
var ErrNoProgramName = errors.New("expand: command has no program name")

// ArgVector expands a "command" node into an ordered argument vector, per
// spec.md §4.2.2. argv[0] comes from the command_name container's first
// argument-like child if present, otherwise the first argument-like child
// of the command itself that is neither a file_redirect nor a
// variable_assignment. Every other argument-like child is expanded in
// source order and appended, including empty-string results.
func ArgVector(cfg *Config, command node.Node) ([]string, error) {
	children := command.NamedChildren()

	programIdx, program := findProgramName(children)
	if program.IsNull() {
		return nil, ErrNoProgramName
	}

	argv := make([]string, 0, len(children))
	progStr, err := Literal(cfg, program)
	var firstErr error
	if err != nil {
		firstErr = err
	}
	argv = append(argv, progStr)

	for i, c := range children {
		if i == programIdx {
			continue
		}
		switch c.Symbol() {
		case node.KindCommandName, node.KindFileRedirect, node.KindVariableAssignment:
			continue
		}
		if !c.ArgumentLike() {
			continue
		}
		s, err := Literal(cfg, c)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		argv = append(argv, s)
	}
	return argv, firstErr
}

// findProgramName locates the node that supplies argv[0] and its index
// among command's named children. When argv[0] is nested inside a
// command_name container, the index is that container's; when no program
// name is found, it is -1 and the node is null.
func findProgramName(children []node.Node) (int, node.Node) {
	for i, c := range children {
		if c.Symbol() != node.KindCommandName {
			continue
		}
		for _, in := range c.NamedChildren() {
			if in.ArgumentLike() {
				return i, in
			}
		}
		return i, node.Node{}
	}
	for i, c := range children {
		switch c.Symbol() {
		case node.KindFileRedirect, node.KindVariableAssignment:
			continue
		}
		if c.ArgumentLike() {
			return i, c
		}
	}
	return -1, node.Node{}
}
