package interp

import (
	"context"
	"os"

	"github.com/minish-project/minish/node"
	"golang.org/x/sync/errgroup"
)

// pipelineCommands returns a pipeline node's command children in source
// order, skipping any non-command named children, per spec.md §4.5 step 1.
func pipelineCommands(p node.Node) []node.Node {
	var out []node.Node
	for _, c := range p.NamedChildren() {
		if c.Symbol() == node.KindCommand {
			out = append(out, c)
		}
	}
	return out
}

// runPipeline implements the Pipeline Engine of spec.md §4.5. N-1
// os.Pipe pairs wire N stages together; each stage runs concurrently in
// its own goroutine once all pipes exist, and the reported status is the
// last stage's only. Grounded in the teacher's Runner.stmts pipeline
// wiring (interp/runner.go), generalized from its fixed two-stage
// sync.WaitGroup pattern to N stages via errgroup, the idiomatic Go
// equivalent of forking every stage before any of them is waited on.
func (ev *Evaluator) runPipeline(ctx context.Context, p node.Node, outer stdio) uint8 {
	cmds := pipelineCommands(p)
	if len(cmds) == 0 {
		return 0
	}
	if len(cmds) == 1 {
		return ev.runCommand(ctx, cmds[0], outer)
	}

	n := len(cmds)
	readers := make([]*os.File, n-1)
	writers := make([]*os.File, n-1)
	for i := range readers {
		pr, pw, err := os.Pipe()
		if err != nil {
			return 1
		}
		readers[i], writers[i] = pr, pw
	}

	statuses := make([]uint8, n)
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		i := i
		stage := stdio{Stderr: outer.Stderr}
		if i == 0 {
			stage.Stdin = outer.Stdin
		} else {
			stage.Stdin = readers[i-1]
		}
		if i == n-1 {
			stage.Stdout = outer.Stdout
		} else {
			stage.Stdout = writers[i]
		}

		g.Go(func() error {
			statuses[i] = ev.runCommand(gctx, cmds[i], stage)
			if i > 0 {
				readers[i-1].Close()
			}
			if i < n-1 {
				writers[i].Close()
			}
			return nil
		})
	}

	g.Wait()
	return statuses[n-1]
}
