package quantity

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos is the 1-based rune column where the token starts.
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	tokenEOF
	tokenNum
	tokenIdent
	tokenOp
	tokenOpen
	tokenClose
)

var tokenNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenNum:   "Num",
	tokenIdent: "Ident",
	tokenOp:    "Op",
	tokenOpen:  "Open",
	tokenClose: "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// operators holds every rune that lexes as an operator.
const operators = "+-*/^×÷"

// brackets maps each open bracket to its close bracket.
var brackets = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

func isOpen(r rune) bool  { return r == '(' || r == '[' || r == '{' }
func isClose(r rune) bool { return r == ')' || r == ']' || r == '}' }
func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// isWord reports whether r can continue a name.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lexer tokenizes an amount expression with one token of lookahead.
type lexer struct {
	src string
	// off is the byte offset of the next rune in src.
	off int
	// col is the column of the next rune.
	col int
	// ahead is the peeked token, with kind tokenNone when there is none.
	ahead lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// cur decodes the next rune without consuming it. sz is 0 at the end of the
// input.
func (l *lexer) cur() (r rune, sz int) {
	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *lexer) advance(sz int) {
	l.off += sz
	l.col++
}

// peek returns the next token without consuming it.
func (l *lexer) peek() (lexToken, error) {
	if l.ahead.kind != tokenNone {
		return l.ahead, nil
	}
	tok, err := l.scan()
	if err != nil {
		return lexToken{}, err
	}
	l.ahead = tok
	return tok, nil
}

// next consumes the next token. Once the input is exhausted, every call
// returns an EOF token.
func (l *lexer) next() (lexToken, error) {
	tok, err := l.peek()
	l.ahead = lexToken{}
	return tok, err
}

func (l *lexer) scan() (lexToken, error) {
	r, sz := l.cur()
	for sz > 0 && unicode.IsSpace(r) {
		l.advance(sz)
		r, sz = l.cur()
	}
	tok := lexToken{pos: l.col}
	start := l.off
	switch {
	case sz == 0:
		tok.kind = tokenEOF
		return tok, nil
	case isDigit(r), r == '.':
		if err := l.number(); err != nil {
			return lexToken{}, err
		}
		tok.kind = tokenNum
	case r == '_', unicode.IsLetter(r):
		for sz > 0 && isWord(r) {
			l.advance(sz)
			r, sz = l.cur()
		}
		tok.kind = tokenIdent
	case strings.ContainsRune(operators, r):
		l.advance(sz)
		tok.kind = tokenOp
	case isOpen(r):
		l.advance(sz)
		tok.kind = tokenOpen
	case isClose(r):
		l.advance(sz)
		tok.kind = tokenClose
	default:
		l.advance(sz)
		return lexToken{}, &LexError{Text: l.src[start:l.off], Col: tok.pos}
	}
	tok.text = l.src[start:l.off]
	return tok, nil
}

// number scans a decimal number: digits with an optional fraction, then an
// optional exponent with an optional sign. At least one mantissa digit is
// required, and a number may not run directly into a name or another number.
func (l *lexer) number() error {
	start := l.off
	n := l.digits()
	if r, sz := l.cur(); r == '.' {
		l.advance(sz)
		n += l.digits()
	}
	if n == 0 {
		return l.badNumber(start)
	}
	if r, sz := l.cur(); r == 'e' || r == 'E' {
		l.advance(sz)
		if r, sz := l.cur(); r == '+' || r == '-' {
			l.advance(sz)
		}
		if l.digits() == 0 {
			return l.badNumber(start)
		}
	}
	if r, sz := l.cur(); sz > 0 && (r == '.' || isWord(r)) {
		return l.badNumber(start)
	}
	return nil
}

// digits consumes ASCII digits and returns how many there were.
func (l *lexer) digits() int {
	n := 0
	for {
		r, sz := l.cur()
		if !isDigit(r) {
			return n
		}
		l.advance(sz)
		n++
	}
}

// badNumber creates an error for the number starting at byte offset start
// that is invalidated by the next rune, or by the end of the input.
func (l *lexer) badNumber(start int) error {
	col := l.col
	_, sz := l.cur()
	l.advance(sz)
	return &LexError{Text: l.src[start:l.off], Kind: "number", Col: col}
}
