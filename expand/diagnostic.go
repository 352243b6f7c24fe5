package expand

import "fmt"

// DiagnosticKind classifies a non-fatal expansion failure, per spec.md §7's
// error taxonomy: expansion never aborts the shell, it substitutes an empty
// string and surfaces a diagnostic for the caller to print.
type DiagnosticKind int

const (
	// OutOfMemory signals an internal allocation failure during expansion.
	// Go's allocator does not hand back allocation failures the way the C
	// original this module is grounded on does (original_source/src/expand.c
	// checks every malloc/realloc by hand); this kind exists so the
	// taxonomy in spec.md §7 still has a concrete Go value behind it. Nothing
	// in this package currently returns it; a command with no program name
	// is reported by [ArgVector] as [ErrNoProgramName] instead.
	OutOfMemory DiagnosticKind = iota
	// SubstitutionFailed signals that a $(...) command substitution could
	// not be started or its output could not be captured.
	SubstitutionFailed
)

func (k DiagnosticKind) String() string {
	switch k {
	case OutOfMemory:
		return "out of memory"
	case SubstitutionFailed:
		return "substitution failed"
	default:
		return "expansion error"
	}
}

// Diagnostic is a non-fatal expansion error. Callers print it and continue;
// it never by itself changes last_status.
type Diagnostic struct {
	Kind DiagnosticKind
	Err  error
}

func (d *Diagnostic) Error() string {
	if d.Err != nil {
		return fmt.Sprintf("%s: %v", d.Kind, d.Err)
	}
	return d.Kind.String()
}

func (d *Diagnostic) Unwrap() error { return d.Err }
