package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// ptyHelperEnv, when set in the environment, tells the test binary to act
// as the minish CLI itself rather than run the Go test suite. The pty test
// re-execs the test binary this way so it can attach a real pseudo-terminal
// to the process's stdio, which testscript's own in-process command
// dispatch has no way to do.
const ptyHelperEnv = "MINISH_PTY_HELPER"

func TestMain(m *testing.M) {
	if os.Getenv(ptyHelperEnv) == "1" {
		os.Exit(main1())
	}
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"minish": main1,
	}))
}

func TestScripts(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			// Pipeline and redirection scenarios shell out to real PATH
			// binaries (cat, tr); forward the host PATH so they resolve.
			env.Vars = append(env.Vars, fmt.Sprintf("PATH=%s", os.Getenv("PATH")))
			return nil
		},
	})
}
