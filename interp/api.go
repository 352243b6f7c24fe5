// Package interp evaluates a parsed shell script: it expands arguments,
// plans redirections, launches processes and pipelines, and tracks the
// running exit status, per the tree shape github.com/minish-project/minish/node
// produces.
//
// The evaluator behaves like a small non-interactive shell core: no job
// control, no functions, no control-flow keywords, just commands,
// pipelines, redirections, variable assignment, and the three sequencing
// operators.
package interp

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/minish-project/minish/expand"
	"github.com/minish-project/minish/node"
)

// Evaluator runs parsed scripts. It is not safe for concurrent use; create
// one per script (or reuse one sequentially), grounded in the teacher's
// Runner (interp/api.go), trimmed down to the state spec.md's
// EvaluatorState entity actually names: a variable table and last_status.
type Evaluator struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	vars       *envTable
	lastStatus uint8
	source     []byte
}

// Option configures an Evaluator at construction time, in the same spirit
// as the teacher's RunnerOption functional options (interp/api.go).
type Option func(*Evaluator)

// Stdin sets the Evaluator's standard input.
func Stdin(r io.Reader) Option { return func(ev *Evaluator) { ev.Stdin = r } }

// Stdout sets the Evaluator's standard output.
func Stdout(w io.Writer) Option { return func(ev *Evaluator) { ev.Stdout = w } }

// Stderr sets the Evaluator's standard error.
func Stderr(w io.Writer) Option { return func(ev *Evaluator) { ev.Stderr = w } }

// New builds an Evaluator whose variable table is seeded from the current
// process environment, applying opts in order.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		vars:   newEnvTable(),
	}
	ev.vars.seedFromProcessEnviron()
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// LastStatus returns the exit status of the most recently evaluated
// statement.
func (ev *Evaluator) LastStatus() int { return int(ev.lastStatus) }

func (ev *Evaluator) setStatus(st uint8) uint8 {
	ev.lastStatus = st
	return st
}

func (ev *Evaluator) rootStdio() stdio {
	return stdio{Stdin: ev.Stdin, Stdout: ev.Stdout, Stderr: ev.Stderr}
}

func (ev *Evaluator) expandConfig() *expand.Config {
	return &expand.Config{
		Env:        ev.vars,
		LastStatus: ev.LastStatus,
		CmdSubst:   ev.runCommandSubstitution,
	}
}

// runCommandSubstitution executes inner through "/bin/sh -c", capturing
// its standard output, per spec.md §4.2.3. Standard error passes through
// to the evaluator's own stderr rather than being captured. The captured
// output is returned regardless of the child's own exit status: cmd.Output
// reports a non-zero exit as a non-nil *exec.ExitError alongside the bytes
// it still managed to capture, and $(false; echo x) must still expand to
// "x" rather than being discarded because the substituted command failed.
func (ev *Evaluator) runCommandSubstitution(inner string) ([]byte, error) {
	cmd := exec.Command("/bin/sh", "-c", inner)
	cmd.Stderr = ev.Stderr
	cmd.Env = os.Environ()
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, nil
	}
	return out, err
}

// EvaluateScript parses src as a complete script and evaluates it
// top-to-bottom, returning the final exit status. This is the single
// entry point the rest of the module (and cmd/minish) drives the
// evaluator through. Mirroring the teacher's Runner.Run, a non-zero final
// status is also reported as an ExitStatus error so callers can recover it
// with errors.As without having to thread the int return through as well.
func (ev *Evaluator) EvaluateScript(ctx context.Context, src []byte) (int, error) {
	tree, err := node.Parse(ctx, src)
	if err != nil {
		return 1, err
	}
	defer tree.Close()

	ev.source = src
	status := ev.evalNode(ctx, tree.Root())
	if status != 0 {
		return int(status), NewExitStatus(status)
	}
	return int(status), nil
}
