package interp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minish-project/minish/expand"
	"github.com/minish-project/minish/node"
)

// operator is a recognized sequencing/short-circuit token between two
// statements, per spec.md §6's "Operator recovery in list nodes".
type operator int

const (
	opSeq operator = iota // ";" or "&" — always runs the right side
	opAnd                 // "&&" — right runs iff left's status is 0
	opOr                  // "||" — right runs iff left's status is non-zero
)

// evalNode dispatches a single tree node by symbol kind, per spec.md
// §4.6's Statement Evaluator table, and returns its exit status. It both
// returns the status and records it as ev.lastStatus, since list/and_or
// evaluation needs to inspect the left side's status to decide whether to
// run the right.
func (ev *Evaluator) evalNode(ctx context.Context, n node.Node) uint8 {
	switch n.Symbol() {
	case node.KindProgram:
		return ev.evalChildren(ctx, n.NamedChildren())

	case node.KindComment:
		return ev.setStatus(0)

	case node.KindVariableAssignment:
		return ev.evalAssignment(n)

	case node.KindCommand:
		return ev.setStatus(ev.runCommand(ctx, n, ev.rootStdio()))

	case node.KindPipeline:
		return ev.setStatus(ev.runPipeline(ctx, n, ev.rootStdio()))

	case node.KindRedirectedStatement:
		return ev.evalRedirectedStatement(ctx, n)

	case node.KindList:
		return ev.evalList(ctx, n)

	case node.KindAndOr, node.KindBinaryExpression:
		return ev.evalBinary(ctx, n)

	default:
		fmt.Fprintf(ev.Stderr, "minish: cannot evaluate %s\n", n.Symbol())
		return ev.setStatus(1)
	}
}

// evalChildren evaluates a flat sequence of top-level statements (the
// program root's direct children), which the grammar does not itself wrap
// in a list node.
func (ev *Evaluator) evalChildren(ctx context.Context, children []node.Node) uint8 {
	status := uint8(0)
	for _, c := range children {
		status = ev.evalNode(ctx, c)
	}
	return status
}

func (ev *Evaluator) evalAssignment(n node.Node) uint8 {
	nameNode := n.ChildByField(node.FieldName)
	valueNode := n.ChildByField(node.FieldValue)
	if nameNode.IsNull() {
		fmt.Fprintln(ev.Stderr, "minish: malformed variable assignment")
		return ev.setStatus(1)
	}
	name := string(nameNode.ByteSlice())
	value := ""
	if !valueNode.IsNull() {
		v, err := expand.Literal(ev.expandConfig(), valueNode)
		if err != nil {
			fmt.Fprintln(ev.Stderr, err)
		}
		value = v
	}
	if err := ev.vars.Set(name, value); err != nil {
		fmt.Fprintln(ev.Stderr, err)
		return ev.setStatus(1)
	}
	return ev.setStatus(0)
}

// evalRedirectedStatement plans the redirections attached to n, then runs
// its body (a command or pipeline) with those FDs substituted in, per
// spec.md §4.6's redirected_statement row.
func (ev *Evaluator) evalRedirectedStatement(ctx context.Context, n node.Node) uint8 {
	body := n.ChildByField(node.FieldBody)
	redirects := directRedirects(n)

	plan, err := planRedirections(ev.expandConfig(), redirects)
	if err != nil {
		fmt.Fprintln(ev.Stderr, err)
		return ev.setStatus(1)
	}
	files, err := openRedirections(plan)
	if err != nil {
		fmt.Fprintln(ev.Stderr, err)
		return ev.setStatus(1)
	}
	defer files.Close()

	io_ := ev.rootStdio()
	if files.Stdin != nil {
		io_.Stdin = files.Stdin
	}
	if files.Stdout != nil {
		io_.Stdout = files.Stdout
	}

	if body.IsNull() {
		return ev.setStatus(0)
	}
	switch body.Symbol() {
	case node.KindPipeline:
		return ev.setStatus(ev.runPipeline(ctx, body, io_))
	default:
		return ev.setStatus(ev.runCommand(ctx, body, io_))
	}
}

// evalBinary handles and_or/binary_expression nodes whose left/right/
// operator children are exposed directly through grammar fields.
func (ev *Evaluator) evalBinary(ctx context.Context, n node.Node) uint8 {
	left := n.ChildByField(node.FieldLeft)
	right := n.ChildByField(node.FieldRight)
	opNode := n.ChildByField(node.FieldOperator)

	leftStatus := ev.evalNode(ctx, left)
	op := classifyOperatorBytes(opNode.ByteSlice())
	if !shouldRunRight(op, leftStatus) {
		return leftStatus
	}
	return ev.evalNode(ctx, right)
}

// evalList handles a flat list node by recovering the operator between
// each pair of consecutive named children from the source bytes spanning
// them, per spec.md §6.
func (ev *Evaluator) evalList(ctx context.Context, n node.Node) uint8 {
	children := n.NamedChildren()
	if len(children) == 0 {
		return ev.setStatus(0)
	}

	status := ev.evalNode(ctx, children[0])
	for i := 1; i < len(children); i++ {
		op := recoverOperator(ev.source, children[i-1], children[i])
		if !shouldRunRight(op, status) {
			continue
		}
		status = ev.evalNode(ctx, children[i])
	}
	return status
}

func shouldRunRight(op operator, leftStatus uint8) bool {
	switch op {
	case opAnd:
		return leftStatus == 0
	case opOr:
		return leftStatus != 0
	default:
		return true
	}
}

// recoverOperator scans the source bytes between the end of prev and the
// start of next, ignoring whitespace, and classifies the first operator
// token found, per spec.md §6.
func recoverOperator(src []byte, prev, next node.Node) operator {
	lo, hi := prev.EndByte(), next.StartByte()
	if hi > uint32(len(src)) {
		hi = uint32(len(src))
	}
	if lo >= hi {
		return opSeq
	}
	return classifyOperatorBytes(bytes.TrimSpace(src[lo:hi]))
}

func classifyOperatorBytes(b []byte) operator {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.HasPrefix(b, []byte("&&")):
		return opAnd
	case bytes.HasPrefix(b, []byte("||")):
		return opOr
	default:
		return opSeq
	}
}
