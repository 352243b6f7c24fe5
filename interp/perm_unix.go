//go:build unix

package interp

import "golang.org/x/sys/unix"

// isExecutable reports whether path exists and the current user may execute
// it, grounded in the teacher's Runner.access (interp/os_unix.go), which
// wraps the same unix.Access syscall to answer the same question for shell
// unary tests. The process launcher (§4.4) uses this during PATH search so
// that a file that exists but lacks the execute bit is treated the same as
// one that is entirely missing, matching execvp's own behavior.
func isExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
