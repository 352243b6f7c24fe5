// Package fileutil classifies filesystem entries as candidate shell
// scripts, for the CLI's non-blocking "does this look like a script you
// meant to run" diagnostic rather than anything the evaluator itself
// depends on.
package fileutil

import (
	"io/fs"
	"os"
	"regexp"
	"strings"
)

var (
	shebangRe = regexp.MustCompile(`^#!\s?/(usr/)?bin/(env\s+)?(sh|bash)(\s|$)`)
	extRe     = regexp.MustCompile(`\.(sh|bash)$`)
)

// HasShebang reports whether bs begins with a valid sh or bash shebang,
// tolerating the /usr and env variants.
func HasShebang(bs []byte) bool {
	return shebangRe.Match(bs)
}

// ScriptConfidence describes how likely a directory entry is to be a
// shell script, from certainly-not to certainly-is.
type ScriptConfidence int

const (
	// ConfNotScript covers non-regular files and files with a non-shell
	// extension.
	ConfNotScript ScriptConfidence = iota

	// ConfIfShebang means the answer depends on the file's first line,
	// which CouldBeScript2 does not read.
	ConfIfShebang

	// ConfIsScript covers regular files with a recognized shell extension.
	ConfIsScript
)

// CouldBeScript2 reports how likely a directory entry is to be a shell
// script, discarding directories, symlinks, hidden files, and files with
// a non-shell extension.
func CouldBeScript2(entry fs.DirEntry) ScriptConfidence {
	name := entry.Name()
	switch {
	case entry.IsDir(), name == "" || name[0] == '.':
		return ConfNotScript
	case entry.Type()&os.ModeSymlink != 0:
		return ConfNotScript
	case extRe.MatchString(name):
		return ConfIsScript
	case strings.IndexByte(name, '.') > 0:
		return ConfNotScript
	default:
		return ConfIfShebang
	}
}
