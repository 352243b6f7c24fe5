package interp

import (
	"os"

	"github.com/minish-project/minish/expand"
)

// envTable is the VariableTable of spec.md §3: a process-wide NAME -> VALUE
// map, backed by expand.MapEnviron, whose Set also propagates into the
// process environment so that children started via exec.Cmd inherit
// assignments, per spec.md §6 ("propagated to children via the inherited
// environment"). Grounded in the teacher's expandEnv wrapper
// (interp/runner.go), simplified to match spec.md's flat string model.
type envTable struct {
	*expand.MapEnviron
}

func newEnvTable() *envTable {
	return &envTable{MapEnviron: expand.NewMapEnviron()}
}

// Set binds name to value in the table and in the process environment.
func (t *envTable) Set(name, value string) error {
	if err := t.MapEnviron.Set(name, value); err != nil {
		return err
	}
	return os.Setenv(name, value)
}

// seedFromProcessEnviron pre-populates the table from os.Environ, so that
// variables already present in the shell's own environment (PATH, HOME, ...)
// are visible to $VAR / ${VAR} expansion without requiring an explicit
// assignment first.
func (t *envTable) seedFromProcessEnviron() {
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				t.MapEnviron.Set(kv[:i], kv[i+1:])
				break
			}
		}
	}
}
