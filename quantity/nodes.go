package quantity

import (
	"strconv"
	"strings"
)

// node is a syntax tree node. Unary operators use only left.
type node struct {
	kind nodeKind
	// name is the text of a number or variable.
	name  string
	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota
	nodeNum
	nodeName
	nodeNeg
	nodeNop
	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodePow
)

// kindInfo gives the name and, for binary kinds, the infix text of each kind.
var kindInfo = [...]struct{ name, infix string }{
	nodeNone: {"None", ""},
	nodeNum:  {"Num", ""},
	nodeName: {"Name", ""},
	nodeNeg:  {"Neg", ""},
	nodeNop:  {"Nop", ""},
	nodeAdd:  {"Add", "+"},
	nodeSub:  {"Sub", "-"},
	nodeMul:  {"Mul", "*"},
	nodeDiv:  {"Div", "/"},
	nodePow:  {"Pow", "^"},
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindInfo[k].name
}

// instr is one step of a compiled expression. Num and Name push a value, Neg
// replaces the top value, and binary kinds replace the top two values with
// one.
type instr struct {
	op  nodeKind
	arg string
}

// compile appends the postfix program for n to prog.
func (n *node) compile(prog []instr) []instr {
	switch n.kind {
	case nodeNum, nodeName:
		return append(prog, instr{op: n.kind, arg: n.name})
	case nodeNop:
		return n.left.compile(prog)
	case nodeNeg:
		return append(n.left.compile(prog), instr{op: nodeNeg})
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		prog = n.left.compile(prog)
		prog = n.right.compile(prog)
		return append(prog, instr{op: n.kind})
	}
	panic("quantity: cannot compile " + n.kind.String())
}

func (n *node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

// write formats n with brackets around every operand, cycling bracket shapes
// by depth.
func (n *node) write(b *strings.Builder, depth int) {
	pair := "()[]"[depth%2*2:][:2]
	b.WriteByte(pair[0])
	switch n.kind {
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeNeg:
		b.WriteByte('-')
		n.left.write(b, depth+1)
	case nodeNop:
		b.WriteByte('+')
		n.left.write(b, depth+1)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.write(b, depth+1)
		b.WriteString(" " + kindInfo[n.kind].infix + " ")
		n.right.write(b, depth+1)
	default:
		panic("quantity: cannot format " + n.kind.String())
	}
	b.WriteByte(pair[1])
}
