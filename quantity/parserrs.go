package quantity

import "strconv"

// InputError is an error caused by malformed input. Every error from Parse
// implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the problem.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)

// LexError reports text that is not a number, name, operator, or bracket.
type LexError struct {
	// Text runs from the start of the bad token through the rune that made it
	// bad.
	Text string
	// Kind is "number" for a malformed number and empty otherwise.
	Kind string
	// Col is the column of the rune that made the token bad, or one past the
	// end of the input when the input ended too soon.
	Col int
}

func (err *LexError) Error() string {
	what := "unexpected "
	if err.Kind != "" {
		what = "malformed " + err.Kind + " "
	}
	return errpos(err.Col, what+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int { return err.Col }

// OperatorError reports an operator in a position where it has no meaning,
// like * at the start of an expression.
type OperatorError struct {
	Col      int
	Operator string
	// Unary is true when the operator appeared where an operand was expected.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, strconv.Quote(err.Operator)+" cannot start an operand")
	}
	return errpos(err.Col, strconv.Quote(err.Operator)+" cannot join operands")
}

func (err *OperatorError) Pos() int { return err.Col }

// BracketError reports a bracket without a partner or with the wrong one.
type BracketError struct {
	// Col is the column of the bracket at fault: the open bracket when the
	// input ends first, otherwise the close bracket.
	Col int
	// Left is the open bracket, empty when a close bracket had none.
	Left string
	// Right is the close bracket, empty when the input ended first.
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return errpos(err.Col, "unmatched "+err.Right)
	case err.Right == "":
		return errpos(err.Col, "unclosed "+err.Left)
	default:
		return errpos(err.Col, err.Left+" closed by "+err.Right+", want "+brackets[err.Left])
	}
}

func (err *BracketError) Pos() int { return err.Col }

// EmptyExpressionError reports a missing operand.
type EmptyExpressionError struct {
	// Col is the column of the token found instead.
	Col int
	// End is that token's text, empty at the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "expected operand at end of input")
	}
	return errpos(err.Col, "expected operand before "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

// errpos prefixes msg with a column.
func errpos(col int, msg string) string {
	return strconv.Itoa(col) + ": " + msg
}
