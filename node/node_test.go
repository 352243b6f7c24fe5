package node

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
)

func parse(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	t.Cleanup(tree.Close)
	return tree
}

func firstChildOfKind(n Node, k Kind) Node {
	for _, c := range n.NamedChildren() {
		if c.Symbol() == k {
			return c
		}
		if found := firstChildOfKind(c, k); !found.IsNull() {
			return found
		}
	}
	return Node{}
}

func TestParseRoot(t *testing.T) {
	c := qt.New(t)
	tree := parse(t, "echo hi\n")
	root := tree.Root()
	c.Assert(root.IsNull(), qt.IsFalse)
	c.Assert(root.Symbol(), qt.Equals, KindProgram)
}

func TestByteSlice(t *testing.T) {
	c := qt.New(t)
	tree := parse(t, "echo hi")
	cmd := firstChildOfKind(tree.Root(), KindCommand)
	c.Assert(cmd.IsNull(), qt.IsFalse)
	c.Assert(string(cmd.ByteSlice()), qt.Equals, "echo hi")
}

func TestChildByField(t *testing.T) {
	c := qt.New(t)
	tree := parse(t, `echo hi > /tmp/out`)
	redir := firstChildOfKind(tree.Root(), KindFileRedirect)
	c.Assert(redir.IsNull(), qt.IsFalse)
	dest := redir.ChildByField(FieldDestination)
	c.Assert(dest.IsNull(), qt.IsFalse)
	c.Assert(string(dest.ByteSlice()), qt.Equals, "/tmp/out")
}

func TestListNodeHasNoOperatorField(t *testing.T) {
	// tree-sitter-bash's "list" node is a flat sequence with no exposed
	// operator field: spec.md §6 requires recovering the operator by
	// scanning the source bytes between siblings instead.
	c := qt.New(t)
	tree := parse(t, `X=1 && echo ok`)
	list := firstChildOfKind(tree.Root(), KindList)
	c.Assert(list.IsNull(), qt.IsFalse)
	c.Assert(list.ChildByField(FieldOperator).IsNull(), qt.IsTrue)
	children := list.NamedChildren()
	c.Assert(len(children) >= 2, qt.IsTrue)
	c.Assert(children[0].Symbol(), qt.Equals, KindVariableAssignment)
	c.Assert(children[1].Symbol(), qt.Equals, KindCommand)
}

func TestChildByFieldMissingIsNull(t *testing.T) {
	c := qt.New(t)
	tree := parse(t, "echo hi")
	cmd := firstChildOfKind(tree.Root(), KindCommand)
	missing := cmd.ChildByField(FieldOperator)
	c.Assert(missing.IsNull(), qt.IsTrue)
}

func TestNamedChildrenSkipsAnonymous(t *testing.T) {
	c := qt.New(t)
	tree := parse(t, "echo a | tr a b")
	pipeline := firstChildOfKind(tree.Root(), KindPipeline)
	c.Assert(pipeline.IsNull(), qt.IsFalse)
	var kinds []Kind
	for _, ch := range pipeline.NamedChildren() {
		kinds = append(kinds, ch.Symbol())
	}
	// The "|" token is anonymous and must not appear among named children.
	c.Assert(kinds, qt.DeepEquals, []Kind{KindCommand, KindCommand})
}

func TestArgumentLike(t *testing.T) {
	c := qt.New(t)
	tree := parse(t, `echo "$X" 'raw' $(echo sub) ${Y}`)
	cmd := firstChildOfKind(tree.Root(), KindCommand)
	var argumentLikeCount int
	for _, ch := range cmd.NamedChildren() {
		if ch.ArgumentLike() {
			argumentLikeCount++
		}
	}
	// command_name itself is a container, not argument-like; its four
	// siblings (string, raw_string, command_substitution, expansion) are.
	c.Assert(argumentLikeCount, qt.Equals, 4)
}

func TestNullNodeMethods(t *testing.T) {
	c := qt.New(t)
	var n Node
	c.Assert(n.IsNull(), qt.IsTrue)
	c.Assert(n.Symbol(), qt.Equals, Kind(""))
	c.Assert(n.ByteSlice(), qt.IsNil)
	c.Assert(n.NamedChildren(), qt.IsNil)
	c.Assert(n.StartByte(), qt.Equals, uint32(0))
	c.Assert(n.EndByte(), qt.Equals, uint32(0))
}
