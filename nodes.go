package calc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. The tree is
// a closed tagged union: kind selects the variant, and only that variant's
// fields are meaningful. Every node exclusively owns its children.
type node struct {
	kind nodeKind

	// val is the literal value of a nodeNum.
	val float64
	// name is the unresolved name of a nodeConst or nodeCall.
	name string

	left  *node
	right *node
	// args holds call arguments in order.
	args []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // literal; val holds the value
	nodeConst // constant reference, resolved against the constant table at evaluation time

	nodeCall // name names the function, args are the evaluated arguments

	nodeNeg  // prefix -; operand in left
	nodeNop  // prefix +; operand in left
	nodeSqrt // prefix √; operand in left
	nodeFact // postfix !; operand in left

	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodeMod
	nodePow
)

var nodeKindNames = [...]string{
	"None", "Num", "Const", "Call",
	"Neg", "Nop", "Sqrt", "Fact",
	"Add", "Sub", "Mul", "Div", "Mod", "Pow",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the subtree, so that the
// grouping the parser chose is visible.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeConst:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	case nodeNeg, nodeNop, nodeSqrt:
		b.WriteByte('(')
		b.WriteString(prefixGlyphs[n.kind])
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeFact:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString("!)")
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(infixGlyphs[n.kind])
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

var prefixGlyphs = map[nodeKind]string{
	nodeNeg:  "-",
	nodeNop:  "+",
	nodeSqrt: "√",
}

var infixGlyphs = map[nodeKind]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " * ",
	nodeDiv: " / ",
	nodeMod: " % ",
	nodePow: " ^ ",
}
