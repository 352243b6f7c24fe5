//go:build unix

package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
)

// TestInteractiveOverPTY exercises the term.IsTerminal branch in runAll:
// with stdin attached to a pseudo-terminal (rather than a pipe), the CLI
// must pick the line-at-a-time interactive path and print its "$ " prompt,
// mirroring the teacher's own pty-backed terminal tests
// (interp/terminal_test.go) adapted to this module's simpler CLI.
//
// The test binary re-execs itself with ptyHelperEnv set so that the child
// process IS the minish CLI, letting pty.Start attach a real terminal to
// its stdio.
func TestInteractiveOverPTY(t *testing.T) {
	self, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}

	cmd := exec.Command(self)
	cmd.Env = append(os.Environ(), fmt.Sprintf("%s=1", ptyHelperEnv))

	f, err := pty.Start(cmd)
	if err != nil {
		t.Skipf("pty.Start: %v", err)
	}
	defer f.Close()
	defer cmd.Process.Kill()

	r := bufio.NewReader(f)

	if err := readUntilTimeout(r, "$ ", 5*time.Second); err != nil {
		t.Fatalf("reading initial prompt: %v", err)
	}

	if _, err := f.Write([]byte("echo hello\n")); err != nil {
		t.Fatalf("writing command: %v", err)
	}

	if err := readUntilTimeout(r, "hello", 5*time.Second); err != nil {
		t.Fatalf("reading echoed output: %v", err)
	}
}

// readUntilTimeout reads from r until the accumulated output contains want,
// or the deadline passes.
func readUntilTimeout(r *bufio.Reader, want string, timeout time.Duration) error {
	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)
	go func() {
		var out strings.Builder
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				out.WriteByte(buf[0])
				if strings.Contains(out.String(), want) {
					done <- result{out.String(), nil}
					return
				}
			}
			if err != nil {
				done <- result{out.String(), err}
				return
			}
		}
	}()

	select {
	case res := <-done:
		return res.err
	case <-time.After(timeout):
		return fmt.Errorf("timed out waiting for %q", want)
	}
}
