package quantity

import "slices"

// Amount expressions use ordinary arithmetic:
//
//	Expr  = Term { ( '+' | '-' ) Term }
//	Term  = Power { [ '*' | '×' | '/' | '÷' ] Power }
//	Power = Unary [ '^' Power ]
//	Unary = { '+' | '-' } Atom
//	Atom  = num | name | '(' Expr ')' | '[' Expr ']' | '{' Expr '}'
//
// Juxtaposed terms multiply and group to the right, so "1 / 2 NA" is
// 1/(2*NA). A unary sign after '^' applies to the exponent only.

// Expr is a parsed amount expression. An Expr is immutable and may be
// evaluated by any number of contexts concurrently.
type Expr struct {
	// n is the syntax tree, kept for String.
	n *node
	// prog is n compiled to postfix.
	prog []instr
	// names is the sorted set of variables the expression reads.
	names []string
}

// Parse parses an amount expression.
func Parse(src string) (*Expr, error) {
	p := parser{lex: lex(src), names: make(map[string]bool)}
	n, err := p.term(exprprec)
	if err != nil {
		return nil, err
	}
	tok, _ := p.lex.next()
	switch tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		panic("quantity: expression ended on " + tok.String())
	}
	e := Expr{n: n, prog: n.compile(nil), names: make([]string, 0, len(p.names))}
	for k := range p.names {
		e.names = append(e.names, k)
	}
	slices.Sort(e.names)
	return &e, nil
}

type parser struct {
	lex   *lexer
	names map[string]bool
}

// term parses operands joined by operators that bind tighter than until.
// On success, the token after the term is left unconsumed.
func (p *parser) term(until operator) (*node, error) {
	n, err := p.operand(until)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lex.peek()
		if err != nil {
			return nil, err
		}
		var op operator
		switch tok.kind {
		case tokenClose, tokenEOF:
			return n, nil
		case tokenNum, tokenIdent, tokenOpen:
			op = termprec
		case tokenOp:
			op = binop(tok.text)
			if op.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
		default:
			panic("quantity: unexpected token " + tok.String())
		}
		if !op.moreBinding(until) {
			return n, nil
		}
		if tok.kind == tokenOp {
			p.lex.next()
		}
		rhs, err := p.term(op)
		if err != nil {
			return nil, err
		}
		n = &node{kind: op.op, left: n, right: rhs}
	}
}

// operand parses the start of a term, where operators are unary.
func (p *parser) operand(until operator) (*node, error) {
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, name: tok.text}, nil
	case tokenIdent:
		p.names[tok.text] = true
		return &node{kind: nodeName, name: tok.text}, nil
	case tokenOp:
		op := unop(tok.text)
		if op.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !op.moreBinding(until) {
			// In x^-y, the sign belongs to y alone.
			op.prec, op.right = until.prec, until.right
		}
		x, err := p.term(op)
		if err != nil {
			return nil, err
		}
		return &node{kind: op.op, left: x}, nil
	case tokenOpen:
		return p.bracketed(tok)
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("quantity: unexpected token " + tok.String())
	}
}

// bracketed parses the rest of a subexpression opened by open.
func (p *parser) bracketed(open lexToken) (*node, error) {
	x, err := p.term(exprprec)
	if err != nil {
		if ee, ok := err.(*EmptyExpressionError); ok && ee.End == "" {
			return nil, &BracketError{Col: open.pos, Left: open.text}
		}
		return nil, err
	}
	end, _ := p.lex.next()
	if end.kind == tokenEOF {
		return nil, &BracketError{Col: open.pos, Left: open.text}
	}
	if end.text != brackets[open.text] {
		return nil, &BracketError{Col: end.pos, Left: open.text, Right: end.text}
	}
	return x, nil
}

// Vars returns the sorted names of the variables the expression reads.
func (e *Expr) Vars() []string {
	return slices.Clone(e.names)
}

// String formats the expression with every operation bracketed.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the binding strength. Higher binds tighter.
	prec int8
	// right is whether the operator groups to the right.
	right bool
	op    nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec == than.prec {
		return p.right
	}
	return p.prec > than.prec
}

// binop returns the infix operator for text, with op nodeNone if there is
// none.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{prec: 1, op: nodeAdd}
	case "-":
		return operator{prec: 1, op: nodeSub}
	case "*", "×":
		return operator{prec: 5, op: nodeMul}
	case "/", "÷":
		return operator{prec: 5, op: nodeDiv}
	case "^":
		return operator{prec: 15, right: true, op: nodePow}
	}
	return operator{}
}

// unop returns the prefix operator for text, with op nodeNone if there is
// none.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{prec: 10, right: true, op: nodeNop}
	case "-":
		return operator{prec: 10, right: true, op: nodeNeg}
	}
	return operator{}
}

var (
	// termprec is juxtaposition, which multiplies and groups to the right.
	termprec = operator{prec: 5, right: true, op: nodeMul}
	// exprprec accepts any operator.
	exprprec = operator{prec: -128, right: true}
)
