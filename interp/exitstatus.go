package interp

import "fmt"

// ExitStatus is a shell exit code in [0,255], grounded in the teacher's
// interp.exitStatus / NewExitStatus / IsExitStatus trio (interp/interp.go).
// It implements error so it can be threaded through ordinary Go error
// handling while still letting the outermost caller (cmd/minish) recover the
// numeric code for os.Exit, exactly as the teacher's cmd/gosh does with
// errors.As(err, &es).
type ExitStatus uint8

func (s ExitStatus) Error() string { return fmt.Sprintf("exit status %d", uint8(s)) }

// NewExitStatus wraps a raw status code as an error.
func NewExitStatus(code uint8) error { return ExitStatus(code) }

// IsExitStatus reports whether err is itself an ExitStatus, returning it if
// so. Wrapped errors are not unwrapped; use errors.As for those.
func IsExitStatus(err error) (ExitStatus, bool) {
	es, ok := err.(ExitStatus)
	return es, ok
}
