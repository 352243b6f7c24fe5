package node

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
)

// Node is a borrowed view into a Tree. Node values are cheap to copy and are
// only valid for the lifetime of the Tree that produced them; keeping one
// past the Tree's Close is a misuse this package does not try to prevent, in
// the same spirit as tree-sitter's own C API.
type Node struct {
	raw *sitter.Node
	src []byte
}

// IsNull reports whether n refers to no node, e.g. the result of a missing
// field lookup.
func (n Node) IsNull() bool { return n.raw == nil || n.raw.IsNull() }

// Symbol returns n's grammar kind.
func (n Node) Symbol() Kind {
	if n.IsNull() {
		return ""
	}
	return Kind(n.raw.Type())
}

// StartByte returns the offset of n's first byte in the Tree's Source.
func (n Node) StartByte() uint32 {
	if n.IsNull() {
		return 0
	}
	return n.raw.StartByte()
}

// EndByte returns the offset immediately past n's last byte.
func (n Node) EndByte() uint32 {
	if n.IsNull() {
		return 0
	}
	return n.raw.EndByte()
}

// ByteSlice returns the verbatim source bytes spanned by n.
func (n Node) ByteSlice() []byte {
	if n.IsNull() {
		return nil
	}
	return n.src[n.raw.StartByte():n.raw.EndByte()]
}

// NamedChildren returns n's named children in source order. Anonymous nodes
// (bare punctuation and keywords the grammar does not name, such as the "|"
// token inside a pipeline) are skipped, matching spec.md's "named_children".
func (n Node) NamedChildren() []Node {
	if n.IsNull() {
		return nil
	}
	count := int(n.raw.NamedChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Node{raw: n.raw.NamedChild(i), src: n.src})
	}
	return out
}

// ChildByField returns the child of n stored under the given field name, or
// a null Node if the field is absent.
func (n Node) ChildByField(f Field) Node {
	if n.IsNull() {
		return Node{}
	}
	return Node{raw: n.raw.ChildByFieldName(string(f)), src: n.src}
}

// ArgumentLike reports whether n's kind is one single-argument expansion
// accepts (word, raw_string, string, simple_expansion, expansion,
// command_substitution).
func (n Node) ArgumentLike() bool {
	return argumentLike(n.Symbol())
}

// Tree owns a parsed syntax tree and the source buffer it was parsed from. A
// new Tree is created per script evaluated; every Node borrowed from it
// becomes invalid once Close returns, mirroring spec.md's tree-lifetime note.
type Tree struct {
	raw *sitter.Tree
	src []byte
}

// Root returns the program node at the root of the tree.
func (t *Tree) Root() Node {
	return Node{raw: t.raw.RootNode(), src: t.src}
}

// Close releases the tree-sitter tree's underlying memory. Safe to call on a
// nil Tree.
func (t *Tree) Close() {
	if t == nil || t.raw == nil {
		return
	}
	t.raw.Close()
}

// Parse parses src as Bash source using the tree-sitter Bash grammar and
// returns the resulting Tree. The returned Tree must be Closed by the caller
// once evaluation of it has finished.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(bash.GetLanguage())
	raw, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	return &Tree{raw: raw, src: src}, nil
}
