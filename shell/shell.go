// Package shell is a small convenience wrapper around interp, for callers
// that just want to run a script and get an exit status back without
// wiring up an Evaluator themselves. Grounded in the teacher's shell
// package (shell/source.go), trimmed to the one entry point spec.md's
// CLI surface (§6) actually needs: run a script end to end.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minish-project/minish/interp"
)

// Run evaluates src against the given standard streams and returns the
// resulting exit status.
func Run(ctx context.Context, src []byte, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	ev := interp.New(
		interp.Stdin(stdin),
		interp.Stdout(stdout),
		interp.Stderr(stderr),
	)
	return ev.EvaluateScript(ctx, src)
}

// RunFile reads path from disk and evaluates it, in the same spirit as
// the teacher's shell.SourceFile.
func RunFile(ctx context.Context, path string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 1, fmt.Errorf("could not open: %w", err)
	}
	return Run(ctx, src, stdin, stdout, stderr)
}
