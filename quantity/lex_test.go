package quantity

import (
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	num := func(text string, pos int) lexToken { return lexToken{text: text, kind: tokenNum, pos: pos} }
	id := func(text string, pos int) lexToken { return lexToken{text: text, kind: tokenIdent, pos: pos} }
	op := func(text string, pos int) lexToken { return lexToken{text: text, kind: tokenOp, pos: pos} }
	cases := []struct {
		name string
		src  string
		want []lexToken
	}{
		{"empty", "", nil},
		{"space", " \t \r\n ", nil},
		{"zero", "0", []lexToken{num("0", 1)}},
		{"digits", "9876543210", []lexToken{num("9876543210", 1)}},
		{"two", "1 0", []lexToken{num("1", 1), num("0", 3)}},
		{"fraction", "1.0", []lexToken{num("1.0", 1)}},
		{"leading-dot", ".1", []lexToken{num(".1", 1)}},
		{"trailing-dot", "1.", []lexToken{num("1.", 1)}},
		{"exp", "1e1", []lexToken{num("1e1", 1)}},
		{"exp-upper", "1E1", []lexToken{num("1E1", 1)}},
		{"exp-plus", "1e+1", []lexToken{num("1e+1", 1)}},
		{"exp-minus", "1.5e-3", []lexToken{num("1.5e-3", 1)}},
		{"neg", "-1", []lexToken{op("-", 1), num("1", 2)}},
		{"sum", "1+0", []lexToken{num("1", 1), op("+", 2), num("0", 3)}},
		{"times", "6.022×10", []lexToken{num("6.022", 1), op("×", 6), num("10", 7)}},
		{"divide", "1÷2", []lexToken{num("1", 1), op("÷", 2), num("2", 3)}},
		{"parens", "(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, num("1", 2), {text: ")", kind: tokenClose, pos: 3}}},
		{"square", "[]", []lexToken{{text: "[", kind: tokenOpen, pos: 1}, {text: "]", kind: tokenClose, pos: 2}}},
		{"curly", "{}", []lexToken{{text: "{", kind: tokenOpen, pos: 1}, {text: "}", kind: tokenClose, pos: 2}}},
		{"name", "NA", []lexToken{id("NA", 1)}},
		{"name-digits", "x1", []lexToken{id("x1", 1)}},
		{"underscores", "_mol_", []lexToken{id("_mol_", 1)}},
		{"name-open", "Vm(", []lexToken{id("Vm", 1), {text: "(", kind: tokenOpen, pos: 3}}},
		{"unicode-name", "μ 2", []lexToken{id("μ", 1), num("2", 3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lex(c.src)
			for _, want := range c.want {
				got, err := l.next()
				if err != nil {
					t.Fatalf("%q: unexpected error %v", c.src, err)
				}
				if got != want {
					t.Errorf("%q: want %v, got %v", c.src, want, got)
				}
			}
			for range 2 {
				got, err := l.next()
				if err != nil || got.kind != tokenEOF {
					t.Errorf("%q: want EOF, got %v with error %v", c.src, got, err)
				}
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
		kind string
		col  int
	}{
		{"rune", "$", "$", "", 1},
		{"rune-after", "a $", "$", "", 3},
		{"wide-rune", "×€", "€", "", 2},
		{"dot", ".", ".", "number", 2},
		{"two-dots", "1.1.1", "1.1.", "number", 4},
		{"bare-exp", "1e", "1e", "number", 3},
		{"signed-exp", "1e-x", "1e-x", "number", 4},
		{"letter", "2NA", "2N", "number", 2},
		{"underscore", "2_", "2_", "number", 2},
		{"exp-letter", "1e5x", "1e5x", "number", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lex(c.src)
			var err error
			for err == nil {
				var tok lexToken
				tok, err = l.next()
				if err == nil && tok.kind == tokenEOF {
					t.Fatalf("%q: no error", c.src)
				}
			}
			var le *LexError
			if !errors.As(err, &le) {
				t.Fatalf("%q: %T is not *LexError", c.src, err)
			}
			if le.Text != c.text || le.Kind != c.kind || le.Col != c.col {
				t.Errorf("%q: want %q %q at %d, got %q %q at %d", c.src, c.text, c.kind, c.col, le.Text, le.Kind, le.Col)
			}
		})
	}
}

func TestLexPeek(t *testing.T) {
	l := lex("2 NA")
	a, err := l.peek()
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.next()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("peek gave %v but next gave %v", a, b)
	}
	c, err := l.next()
	if err != nil {
		t.Fatal(err)
	}
	if want := (lexToken{text: "NA", kind: tokenIdent, pos: 3}); c != want {
		t.Errorf("want %v after peek, got %v", want, c)
	}
}
