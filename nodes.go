package exact

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. A tree owns
// its children exclusively; nodes are never shared between trees.
type node struct {
	kind nodeKind

	// num is the literal value of a nodeNum.
	num *Number
	// name is the identifier of a nodeName, nodeCall, nodeAssign, or
	// nodeFuncDef.
	name string
	// params is the ordered parameter list of a nodeFuncDef.
	params []string
	// args is the ordered argument list of a nodeCall.
	args []*node

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // literal, value in num
	nodeName // variable reference

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodeMod // left % right
	nodePow // left ^ right

	nodeNeg  // -left
	nodeFact // left!

	nodeCall    // name(args...)
	nodeAssign  // name = left
	nodeFuncDef // name(params...) = left
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeName:
		return "Name"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeMod:
		return "Mod"
	case nodePow:
		return "Pow"
	case nodeNeg:
		return "Neg"
	case nodeFact:
		return "Fact"
	case nodeCall:
		return "Call"
	case nodeAssign:
		return "Assign"
	case nodeFuncDef:
		return "FuncDef"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// binaryOp reports whether k is a binary arithmetic operation. These are the
// nodes the evaluator flattens along the left spine.
func binaryOp(k nodeKind) bool {
	return k >= nodeAdd && k <= nodePow
}

func (k nodeKind) opString() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeMod:
		return "%"
	case nodePow:
		return "^"
	default:
		panic("exact: no operator for node kind " + k.String())
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.num.String())
	case nodeName:
		b.WriteString(n.name)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(" " + n.kind.opString() + " ")
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeFact:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString("!)")
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
	case nodeAssign:
		b.WriteByte('(')
		b.WriteString(n.name)
		b.WriteString(" = ")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeFuncDef:
		b.WriteString(n.name)
		b.WriteByte('(')
		b.WriteString(strings.Join(n.params, ", "))
		b.WriteString(") = ")
		n.left.fmt(b)
	default:
		panic("exact: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// vars collects the variable names referenced by the tree into set.
func (n *node) vars(set map[string]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeName {
		set[n.name] = true
	}
	for _, a := range n.args {
		a.vars(set)
	}
	n.left.vars(set)
	n.right.vars(set)
}
