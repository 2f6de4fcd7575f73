package formula

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOption is an option for parsing hydrate formulas.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	sepopt    string
	strictopt struct{}
	emptyopt  struct{}
)

// parsectx holds the configuration for one parse.
type parsectx struct {
	// seps is the set of runes that separate hydrate segments.
	seps string
	// strict disallows a leading multiplier when there is only one segment.
	strict bool
	// rejectEmpty makes a formula with no segments an error.
	rejectEmpty bool
}

// defaultSeps are the default hydrate separators: the interpunct and the full
// stop.
const defaultSeps = "·."

func newparsectx(opts []ParseOption) parsectx {
	p := parsectx{seps: defaultSeps}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return p
}

// Separators sets the runes that separate hydrate segments, replacing the
// default interpunct and full stop. Panics if any rune is a letter, digit,
// bracket, or space, since those have meaning inside a segment.
//
// With no arguments, Separators disables hydrate splitting.
func Separators(seps ...rune) ParseOption {
	var b strings.Builder
	for _, r := range seps {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			panic("formula: cannot separate on " + strconv.QuoteRune(r))
		case strings.ContainsRune("()[]", r):
			panic("formula: cannot separate on " + strconv.QuoteRune(r))
		case strings.ContainsRune(b.String(), r):
			continue
		}
		b.WriteRune(r)
	}
	return sepopt(b.String())
}

func (o sepopt) parseOption(p parsectx) parsectx {
	p.seps = string(o)
	return p
}

// StrictMultipliers rejects a leading multiplier on a formula with only one
// segment, so that 5(H2O) is an error while CuSO4·5H2O is not.
func StrictMultipliers() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}

// RejectEmpty makes a formula with no segments, like "" or "·.", an
// EmptyFormulaError instead of empty counts.
func RejectEmpty() ParseOption {
	return emptyopt{}
}

func (emptyopt) parseOption(p parsectx) parsectx {
	p.rejectEmpty = true
	return p
}
