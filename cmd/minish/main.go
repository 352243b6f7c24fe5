// minish is a small, non-interactive-first shell core built on top of
// interp and the tree-sitter Bash grammar.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/term"

	"github.com/minish-project/minish/fileutil"
	"github.com/minish-project/minish/interp"
	"github.com/minish-project/minish/shell"
)

var helpFlag = flag.Bool("h", false, "print usage and exit")

func main() {
	os.Exit(main1())
}

// main1 runs the CLI and returns the process exit status, split out from
// main so tests can invoke it directly (e.g. via testscript.RunMain)
// without an actual os.Exit.
func main1() int {
	flag.Usage = usage
	flag.Parse()

	if *helpFlag {
		usage()
		return 0
	}

	status, err := runAll()
	var es interp.ExitStatus
	if errors.As(err, &es) {
		return int(es)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return status
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [script-path]\n", os.Args[0])
}

func runAll() (int, error) {
	ctx := context.Background()

	if flag.NArg() > 0 {
		path := flag.Arg(0)
		warnIfUnlikelyScript(path)
		return shell.RunFile(ctx, path, os.Stdin, os.Stdout, os.Stderr)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		ev := interp.New(
			interp.Stdin(os.Stdin),
			interp.Stdout(os.Stdout),
			interp.Stderr(os.Stderr),
		)
		return runInteractive(ctx, ev)
	}

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return 1, err
	}
	return shell.Run(ctx, src, os.Stdin, os.Stdout, os.Stderr)
}

// runInteractive evaluates one line at a time as it is typed, printing a
// prompt before each, and exits once stdin is closed. A line's own non-zero
// exit status is not itself an error worth reporting here — any diagnostic
// the failing command had to print, it already printed — so only a genuine,
// non-ExitStatus error (e.g. a malformed parse) is surfaced to stderr,
// mirroring the teacher's own runInteractive, which likewise only inspects
// Run's error for the "exit" builtin's Exited() signal and otherwise lets it
// pass silently between prompts.
func runInteractive(ctx context.Context, ev *interp.Evaluator) (int, error) {
	scanner := bufio.NewScanner(os.Stdin)
	status := 0
	fmt.Fprint(os.Stdout, "$ ")
	for scanner.Scan() {
		line := scanner.Text()
		var err error
		status, err = ev.EvaluateScript(ctx, []byte(line))
		var es interp.ExitStatus
		if err != nil && !errors.As(err, &es) {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Fprint(os.Stdout, "$ ")
	}
	if err := scanner.Err(); err != nil {
		return status, err
	}
	return status, nil
}

// warnIfUnlikelyScript prints a non-blocking diagnostic when path doesn't
// look like a shell script by extension or shebang; it never prevents
// the file from being run.
func warnIfUnlikelyScript(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	entry := fs.FileInfoToDirEntry(info)
	if fileutil.CouldBeScript2(entry) == fileutil.ConfIsScript {
		return
	}
	first, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if len(first) > 256 {
		first = first[:256]
	}
	if !fileutil.HasShebang(first) {
		fmt.Fprintf(os.Stderr, "minish: warning: %s does not look like a shell script\n", path)
	}
}
