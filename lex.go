package formula

import (
	"strconv"
	"unicode/utf8"
)

type lexToken struct {
	// text is the element symbol or bracket.
	text string
	// count is the digit run following an element or close bracket, or 1 if
	// there is none.
	count int
	kind  tokenKind
	// pos is the column of the token and off is its byte offset in the
	// segment.
	pos, off int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + strconv.Itoa(t.count) + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenElement is an element symbol with its count.
	tokenElement
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket with its group multiplier.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenElement:
		return "Element"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer splits a single formula segment into tokens. Positions are columns in
// the whole formula the segment came from.
type lexer struct {
	src string
	// off is the byte offset of the next rune in src.
	off int
	// col is the 1-based column of the next rune.
	col int
}

func lex(src string, col int) *lexer {
	return &lexer{src: src, col: col}
}

func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// peek returns the next rune and its size without consuming it. The size is 0
// at the end of the input.
func (l *lexer) peek() (rune, int) {
	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *lexer) advance(sz int) {
	l.off += sz
	l.col++
}

// next scans the next token. After the end of the input, every call returns
// an EOF token.
func (l *lexer) next() (lexToken, error) {
	tok := lexToken{pos: l.col, off: l.off, count: 1}
	r, sz := l.peek()
	switch {
	case sz == 0:
		tok.kind = tokenEOF
		return tok, nil
	case r == '(':
		l.advance(sz)
		tok.text = "("
		tok.kind = tokenOpen
		return tok, nil
	case r == ')':
		l.advance(sz)
		n, err := l.scanCount()
		if err != nil {
			return tok, err
		}
		tok.text = ")"
		tok.count = n
		tok.kind = tokenClose
		return tok, nil
	case isUpper(r):
		start := l.off
		l.advance(sz)
		if r, sz := l.peek(); isLower(r) {
			l.advance(sz)
		}
		tok.text = l.src[start:l.off]
		n, err := l.scanCount()
		if err != nil {
			return tok, err
		}
		tok.count = n
		tok.kind = tokenElement
		return tok, nil
	default:
		return tok, l.error(l.off, l.col, "")
	}
}

// scanCount scans a run of digits. The result is 1 if there are none.
func (l *lexer) scanCount() (int, error) {
	start, col := l.off, l.col
	for {
		r, sz := l.peek()
		if !isDigit(r) {
			break
		}
		l.advance(sz)
	}
	if start == l.off {
		return 1, nil
	}
	n, err := strconv.Atoi(l.src[start:l.off])
	if err != nil {
		// Only digits were scanned, so this is a range error.
		return 0, l.error(start, col, "count")
	}
	return n, nil
}

func (l *lexer) error(off, col int, kind string) error {
	return &TokenError{
		Col:  col,
		Text: l.src[off:],
		Kind: kind,
	}
}
