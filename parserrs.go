package formula

import "strconv"

// TokenError indicates text that is not an element symbol, a count, or a
// bracket. It implements SyntaxError.
type TokenError struct {
	// Col is the 1-based rune column of the invalid text in the whole formula.
	Col int
	// Text is the remainder of the segment starting at Col.
	Text string
	// Kind is "count" when a count does not fit in an int, "multiplier" for a
	// leading multiplier that is not allowed, or the empty string for an
	// unrecognized character.
	Kind string
}

func (err *TokenError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token: "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+": "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced brackets in the input. It
// implements SyntaxError.
type BracketError struct {
	// Col is the position of the offending bracket.
	Col int
	// Left is the unclosed open bracket, or empty if a close bracket had no
	// open bracket.
	Left string
	// Right is the unmatched close bracket, or empty if an open bracket was
	// never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyFormulaError is an error indicating a formula with no segments. Only
// parses with RejectEmpty return it.
type EmptyFormulaError struct {
	// Col is the position just past the end of the formula.
	Col int
}

func (err *EmptyFormulaError) Error() string {
	return errpos(err.Col, "empty formula")
}

func (err *EmptyFormulaError) Pos() int {
	return err.Col
}

// ElementError indicates an element symbol that a mass table does not have.
type ElementError struct {
	Symbol string
}

func (err *ElementError) Error() string {
	return "unknown element " + strconv.Quote(err.Symbol)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// SyntaxError is an error with position information. Every error resulting
// from a malformed formula implements SyntaxError.
type SyntaxError interface {
	error
	// Pos returns the 1-based rune column of the error in the whole formula.
	Pos() int
}

var (
	_ SyntaxError = (*TokenError)(nil)
	_ SyntaxError = (*BracketError)(nil)
	_ SyntaxError = (*EmptyFormulaError)(nil)
)
