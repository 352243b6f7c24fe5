package interp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/minish-project/minish/expand"
	"github.com/minish-project/minish/node"
)

// stdio bundles the three standard descriptors a single command or
// pipeline stage is launched with, mirroring spec.md §4.4's optional
// inherited in_fd/out_fd plus the evaluator's own stderr.
type stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// lookPath searches PATH (or treats args[0] as a direct path if it
// contains a "/") for an executable file, per spec.md §4.4 step 2's
// execv/execvp distinction. Grounded in the teacher's LookPathDir
// (interp/handler.go), trimmed to the single PATH-variable lookup this
// evaluator's process-wide VariableTable needs.
func (ev *Evaluator) lookPath(name string) (string, error) {
	if strings.Contains(name, "/") {
		if isExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("%s: not found", name)
	}
	path, _ := ev.vars.Get("PATH")
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: command not found", name)
}

// runCommand implements the Process Launcher of spec.md §4.4 for a single
// "command" node. It is also the per-stage body of the Pipeline Engine
// (§4.5), which is why in/out come in as explicit overrides rather than
// always being the evaluator's own stdio.
func (ev *Evaluator) runCommand(ctx context.Context, cmdNode node.Node, io_ stdio) uint8 {
	ecfg := ev.expandConfig()

	argv, err := expand.ArgVector(ecfg, cmdNode)
	if err != nil {
		fmt.Fprintln(io_.Stderr, err)
		var diag *expand.Diagnostic
		if !errors.As(err, &diag) {
			return 1
		}
	}
	if len(argv) == 0 {
		return 0
	}

	redirects := directRedirects(cmdNode)
	plan, err := planRedirections(ecfg, redirects)
	if err != nil {
		fmt.Fprintln(io_.Stderr, err)
		return 1
	}
	files, err := openRedirections(plan)
	if err != nil {
		fmt.Fprintln(io_.Stderr, err)
		return 1
	}
	defer files.Close()

	in := io_.Stdin
	if files.Stdin != nil {
		in = files.Stdin
	}
	out := io_.Stdout
	if files.Stdout != nil {
		out = files.Stdout
	}

	if argv[0] == "echo" {
		fmt.Fprintln(out, strings.Join(argv[1:], " "))
		return 0
	}

	path, err := ev.lookPath(argv[0])
	if err != nil {
		fmt.Fprintln(io_.Stderr, err)
		return 127
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Args = argv
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = io_.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			fmt.Fprintln(io_.Stderr, err)
		}
		return statusFromError(err)
	}
	return 0
}

// directRedirects returns the file_redirect nodes that are direct named
// children of n (as opposed to ones attached via a redirected_statement
// wrapper, handled separately in eval.go).
func directRedirects(n node.Node) []node.Node {
	var out []node.Node
	for _, c := range n.NamedChildren() {
		if c.Symbol() == node.KindFileRedirect {
			out = append(out, c)
		}
	}
	return out
}
