package interp

import (
	"fmt"
	"os"

	"github.com/minish-project/minish/expand"
	"github.com/minish-project/minish/node"
)

// redirKind is one of the three directions the planner recognizes.
type redirKind int

const (
	redirInputFrom redirKind = iota
	redirOutputTrunc
	redirOutputAppend
)

// redirection is one planned FD operation: open target under the policy
// given by Kind, to be handed to a child as its stdin (InputFrom) or
// its stdout (OutputTrunc/OutputAppend), per
// spec.md §4.3. Grounded in the teacher's Runner.redir (interp/runner.go),
// adapted from raw dup2 bookkeeping to *os.File handles that exec.Cmd
// consumes directly, the idiomatic Go equivalent of wiring a child's
// standard descriptors.
type redirection struct {
	Kind   redirKind
	Target string
}

// planRedirections walks a command or redirected_statement's file_redirect
// children (in source order) and produces the list of redirections to
// apply, per spec.md §4.3 step 1-2. Later redirects of the same direction
// simply appear later in the returned slice; openRedirections applies them
// in order so the last one wins, matching step 5's "later ones win".
func planRedirections(cfg *expand.Config, redirects []node.Node) ([]redirection, error) {
	out := make([]redirection, 0, len(redirects))
	for _, r := range redirects {
		kind, ok := classifyRedirectOp(r.ByteSlice())
		if !ok {
			return nil, fmt.Errorf("interp: unrecognized redirect operator in %q", r.ByteSlice())
		}
		dest := r.ChildByField(node.FieldDestination)
		if dest.IsNull() {
			return nil, fmt.Errorf("interp: redirect has no destination")
		}
		target, err := expand.Literal(cfg, dest)
		if err != nil {
			return nil, err
		}
		out = append(out, redirection{Kind: kind, Target: target})
	}
	return out, nil
}

// classifyRedirectOp inspects the leading operator bytes of a file_redirect
// node's raw text, skipping ASCII whitespace, per spec.md §4.3 step 1.
func classifyRedirectOp(raw []byte) (redirKind, bool) {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n' || raw[i] == '\r' || raw[i] == '\v' || raw[i] == '\f') {
		i++
	}
	if i >= len(raw) {
		return 0, false
	}
	switch {
	case raw[i] == '<':
		return redirInputFrom, true
	case i+1 < len(raw) && raw[i] == '>' && raw[i+1] == '>':
		return redirOutputAppend, true
	case raw[i] == '>':
		return redirOutputTrunc, true
	}
	return 0, false
}

// openFiles holds the *os.File handles opened for one command's
// redirections, kept around so the caller can close them once the command
// (or pipeline stage) using them has exited.
type openFiles struct {
	Stdin  *os.File
	Stdout *os.File
}

// openRedirections applies the open policy of spec.md §4.3 step 3 to each
// planned redirection in order, so a later redirect in the same direction
// replaces (and the caller closes) the earlier one. Returns the final
// stdin/stdout files to wire into the child, or nil if that direction was
// never redirected.
func openRedirections(rs []redirection) (*openFiles, error) {
	var of openFiles
	for _, r := range rs {
		switch r.Kind {
		case redirInputFrom:
			f, err := os.OpenFile(r.Target, os.O_RDONLY, 0)
			if err != nil {
				return nil, err
			}
			if of.Stdin != nil {
				of.Stdin.Close()
			}
			of.Stdin = f
		case redirOutputTrunc:
			f, err := os.OpenFile(r.Target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
			if err != nil {
				return nil, err
			}
			if of.Stdout != nil {
				of.Stdout.Close()
			}
			of.Stdout = f
		case redirOutputAppend:
			f, err := os.OpenFile(r.Target, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o666)
			if err != nil {
				return nil, err
			}
			if of.Stdout != nil {
				of.Stdout.Close()
			}
			of.Stdout = f
		}
	}
	return &of, nil
}

// Close releases whichever handles were opened, tolerating a nil receiver
// so callers can defer it unconditionally.
func (of *openFiles) Close() {
	if of == nil {
		return
	}
	if of.Stdin != nil {
		of.Stdin.Close()
	}
	if of.Stdout != nil {
		of.Stdout.Close()
	}
}
