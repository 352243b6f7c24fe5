// Package expand turns argument-like syntax-tree nodes into concrete
// byte-strings, and command nodes into argument vectors, per spec.md §4.2.
package expand

import (
	"bytes"
	"os"
	"strconv"

	"github.com/minish-project/minish/node"
)

// Config bundles everything expansion needs from the running evaluator: the
// variable table, the current $? value, and a way to run a $(...) command
// substitution. It is the expand-package analogue of the teacher's
// *expand.Config / Runner.ecfg wiring, trimmed to the handful of knobs
// spec.md's expander actually needs.
type Config struct {
	Env Environ

	// LastStatus returns the current value of $?.
	LastStatus func() int

	// CmdSubst runs the inner text of a $(...) node through "/bin/sh -c"
	// and returns its captured standard output, per spec.md §4.2.3; the
	// expander itself strips the trailing newlines afterwards. It is injected rather than implemented in this
	// package so that expand stays free of process-launching concerns;
	// the interp package supplies the real implementation.
	CmdSubst func(inner string) ([]byte, error)
}

// Literal expands a single argument-like node (word, raw_string, string,
// simple_expansion, expansion, or command_substitution) to its byte-string
// value, per spec.md §4.2.1. Expansion failures are soft: Literal always
// returns a (possibly empty) string, plus a non-nil *Diagnostic describing
// what went wrong, if anything.
func Literal(cfg *Config, n node.Node) (string, error) {
	switch n.Symbol() {
	case node.KindWord:
		return string(n.ByteSlice()), nil

	case node.KindRawString:
		return stripOuterBytes(n.ByteSlice()), nil

	case node.KindString:
		return expandDoubleQuoted(cfg, n)

	case node.KindSimpleExpansion:
		return expandSimple(cfg, n)

	case node.KindExpansion:
		return expandBraced(cfg, n)

	case node.KindCommandSubstitution:
		return expandCommandSubstitution(cfg, n)

	default:
		// Unknown subform: return the raw bytes, same as the teacher's
		// "unknown subforms return the raw bytes" fallback.
		return string(n.ByteSlice()), nil
	}
}

// expandDoubleQuoted renders a "string" node: string_content children
// contribute their literal bytes, while simple_expansion, expansion, and
// command_substitution children are rendered by their own expansion rules.
// A string with no named children (e.g. "") has nothing between its quotes,
// so it expands to the empty string.
func expandDoubleQuoted(cfg *Config, n node.Node) (string, error) {
	children := n.NamedChildren()
	if len(children) == 0 {
		return stripOuterBytes(n.ByteSlice()), nil
	}
	var buf bytes.Buffer
	var firstErr error
	for _, c := range children {
		switch c.Symbol() {
		case node.KindStringContent:
			buf.Write(c.ByteSlice())
		default:
			s, err := Literal(cfg, c)
			buf.WriteString(s)
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return buf.String(), firstErr
}

// expandSimple renders a simple_expansion node: $$, $?, or $NAME.
func expandSimple(cfg *Config, n node.Node) (string, error) {
	raw := n.ByteSlice()
	switch string(raw) {
	case "$$":
		return strconv.Itoa(os.Getpid()), nil
	case "$?":
		status := 0
		if cfg.LastStatus != nil {
			status = cfg.LastStatus()
		}
		return strconv.Itoa(status), nil
	}
	children := n.NamedChildren()
	if len(children) > 0 && children[0].Symbol() == node.KindVariableName {
		return lookupVar(cfg, string(children[0].ByteSlice())), nil
	}
	return string(raw), nil
}

// expandBraced renders an expansion node: ${NAME}.
func expandBraced(cfg *Config, n node.Node) (string, error) {
	children := n.NamedChildren()
	if len(children) > 0 && children[0].Symbol() == node.KindVariableName {
		return lookupVar(cfg, string(children[0].ByteSlice())), nil
	}
	return string(n.ByteSlice()), nil
}

// stripOuterBytes drops the first and last byte of raw, the enclosing
// quote characters a raw_string or empty string node carries, mirroring
// original minibash's strip_outer_quotes_dup.
func stripOuterBytes(raw []byte) string {
	if len(raw) < 2 {
		return ""
	}
	return string(raw[1 : len(raw)-1])
}

func lookupVar(cfg *Config, name string) string {
	if cfg.Env == nil {
		return ""
	}
	v, _ := cfg.Env.Get(name)
	return v
}

// expandCommandSubstitution renders a $(...) node by delegating its inner
// text to "/bin/sh -c" (via cfg.CmdSubst) and stripping trailing newlines
// from the captured output, per spec.md §4.2.3.
func expandCommandSubstitution(cfg *Config, n node.Node) (string, error) {
	inner := commandSubstitutionInner(n)
	if cfg.CmdSubst == nil {
		return "", &Diagnostic{Kind: SubstitutionFailed}
	}
	out, err := cfg.CmdSubst(inner)
	if err != nil {
		return "", &Diagnostic{Kind: SubstitutionFailed, Err: err}
	}
	return string(bytes.TrimRight(out, "\n")), nil
}

// commandSubstitutionInner strips the surrounding "$(" and ")" from a
// command_substitution node's raw bytes.
func commandSubstitutionInner(n node.Node) string {
	raw := n.ByteSlice()
	if len(raw) >= 3 && raw[0] == '$' && raw[1] == '(' && raw[len(raw)-1] == ')' {
		return string(raw[2 : len(raw)-1])
	}
	return string(raw)
}
