package quantity

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestOperatorTables(t *testing.T) {
	for _, r := range operators {
		if binop(string(r)).op == nodeNone && unop(string(r)).op == nodeNone {
			t.Errorf("%c lexes as an operator but means nothing", r)
		}
	}
	for _, mul := range []string{"*", "×"} {
		if op := binop(mul); op.prec != termprec.prec || op.op != termprec.op {
			t.Errorf("%s is %+v, but juxtaposition is %+v", mul, op, termprec)
		}
	}
}

func TestBracketsMatch(t *testing.T) {
	for l, r := range brackets {
		o, c := []rune(l), []rune(r)
		if len(o) != 1 || len(c) != 1 || !isOpen(o[0]) || !isClose(c[0]) {
			t.Errorf("bad bracket pair %q %q", l, r)
		}
	}
	if len(brackets) != 3 {
		t.Errorf("want 3 bracket pairs, have %d", len(brackets))
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"bracket-shapes", "{[(x)]}", "(x)"},
		{"sign", "+-x", "(+[-(x)])"},
		{"left-assoc", "a - b + c", "([(a) - (b)] + [c])"},
		{"right-assoc-pow", "a^b^c", "([a] ^ [(b) ^ (c)])"},
		{"div-chain", "a/b/c", "([(a) / (b)] / [c])"},
		{"mul-binds", "a + b*c", "([a] + [(b) * (c)])"},
		{"pow-binds", "a*b^c", "([a] * [(b) ^ (c)])"},
		{"neg-pow", "-a^2", "(-[(a) ^ (2)])"},
		{"pow-neg", "a^-2", "([a] ^ [-(2)])"},
		{"pow-neg-pow", "a^-b^c", "([a] ^ [-([b] ^ [c])])"},
		{"neg-sub", "-a-b", "([-(a)] - [b])"},
		{"juxtapose", "2 NA", "([2] * [NA])"},
		{"juxtapose-right", "a b c", "([a] * [(b) * (c)])"},
		{"juxtapose-div", "1 / 2 NA", "([1] / [(2) * (NA)])"},
		{"juxtapose-bracket", "2(x + 1)", "([2] * [(x) + (1)])"},
		{"pow-then-bracket", "a^b(c)", "([(a) ^ (b)] * [c])"},
		{"scientific", "6.022×10^23", "([6.022] * [(10) ^ (23)])"},
		{"scientific-exp", "1.5e-3 Vm", "([1.5e-3] * [Vm])"},
		{"alt-div", "a÷b", "([a] / [b])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("%q parsed as %s, want %s", c.src, got, c.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  any
		pos  int
	}{
		{"empty", "", new(*EmptyExpressionError), 1},
		{"space", "   ", new(*EmptyExpressionError), 4},
		{"empty-brackets", "()", new(*EmptyExpressionError), 2},
		{"unclosed", "(1", new(*BracketError), 1},
		{"unclosed-op", "(1+", new(*BracketError), 1},
		{"unopened", "1)", new(*BracketError), 2},
		{"mismatched", "(1]", new(*BracketError), 3},
		{"unary-mul", "*1", new(*OperatorError), 1},
		{"trailing-op", "1+", new(*EmptyExpressionError), 3},
		{"bad-rune", "1 $", new(*LexError), 3},
		{"bad-num", "1.2.3", new(*LexError), 4},
		{"bad-exp", "1e", new(*LexError), 3},
		{"bad-exp-sign", "1e+ 2", new(*LexError), 4},
		{"lone-dot", ". 5", new(*LexError), 2},
		{"letter-num", "2NA", new(*LexError), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.src)
			if err == nil {
				t.Fatalf("%q parsed without error", c.src)
			}
			if !errors.As(err, c.err) {
				t.Fatalf("%q gave %T (%v), want %T", c.src, err, err, c.err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%T is not an InputError", err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("%q: error at %d, want %d: %v", c.src, ie.Pos(), c.pos, err)
			}
		})
	}
}

func TestExprString(t *testing.T) {
	a, err := Parse("2 x^2 - 1")
	if err != nil {
		t.Fatal(err)
	}
	const want = "([(2) * ([x] ^ [2])] - [1])"
	if got := a.String(); got != want {
		t.Errorf("want %s, got %s", want, got)
	}
	if !strings.Contains(a.String(), "x") {
		t.Errorf("%s lost its variable", a)
	}
}

func TestCompile(t *testing.T) {
	cases := []struct {
		name string
		src  string
		prog []instr
	}{
		{"num", "1", []instr{{nodeNum, "1"}}},
		{"plus", "+x", []instr{{nodeName, "x"}}},
		{"neg", "-x", []instr{{nodeName, "x"}, {op: nodeNeg}}},
		{"poly", "2 x^2 - 1", []instr{
			{nodeNum, "2"}, {nodeName, "x"}, {nodeNum, "2"}, {op: nodePow},
			{op: nodeMul}, {nodeNum, "1"}, {op: nodeSub},
		}},
		{"brackets", "[NA / (2)]", []instr{{nodeName, "NA"}, {nodeNum, "2"}, {op: nodeDiv}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(e.prog, c.prog) {
				t.Errorf("%q compiled to %v, want %v", c.src, e.prog, c.prog)
			}
		})
	}
}
