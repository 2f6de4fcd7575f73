package formula

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Formula = Segment { sep Segment }
// Segment = [ digits ] Group
// Group = { Element | '(' Group ')' [ digits ] }
// Element = upper [ lower ] [ digits ]
//
// formula.ebnf has the same grammar in a form x/exp/ebnf can check.

// frame is an entry on the group parser's stack.
type frame struct {
	// counts is the parsed group, or nil for an open bracket.
	counts Counts
	// pos is the column where the frame starts.
	pos int
}

// ParseGroup parses a single formula segment with no hydrate separators or
// leading multiplier, e.g. Ca(OH)2. Only parentheses are brackets. An empty
// segment gives an empty result.
//
// Errors are TokenError for anything other than an element symbol, count, or
// parenthesis, and BracketError for unbalanced parentheses.
func ParseGroup(segment string) (Counts, error) {
	return parsegroup(segment, 1)
}

// parsegroup parses a group segment that starts at column col of its formula.
func parsegroup(src string, col int) (Counts, error) {
	l := lex(src, col)
	var stack []frame
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenElement:
			stack = append(stack, frame{counts: Counts{tok.text: tok.count}, pos: tok.pos})
		case tokenOpen:
			stack = append(stack, frame{pos: tok.pos})
		case tokenClose:
			group := Counts{}
			i := len(stack) - 1
			for ; i >= 0 && stack[i].counts != nil; i-- {
				if !group.merge(stack[i].counts, 1) {
					return nil, l.error(tok.off, tok.pos, "count")
				}
			}
			if i < 0 {
				return nil, &BracketError{Col: tok.pos, Right: ")"}
			}
			if !group.scale(tok.count) {
				return nil, l.error(tok.off, tok.pos, "count")
			}
			stack = append(stack[:i], frame{counts: group, pos: stack[i].pos})
		case tokenEOF:
			for _, f := range stack {
				if f.counts == nil {
					return nil, &BracketError{Col: f.pos, Left: "("}
				}
			}
			r := make(Counts, len(stack))
			for _, f := range stack {
				if !r.merge(f.counts, 1) {
					return nil, &TokenError{Col: f.pos, Text: src, Kind: "count"}
				}
			}
			r.prune()
			return r, nil
		default:
			panic("formula: unexpected token " + tok.String())
		}
	}
}

// segment is a hydrate segment with surrounding space removed.
type segment struct {
	text string
	// col is the column of the first rune of text in the whole formula.
	col int
}

// brackets normalizes square brackets to parentheses. Replacements have the
// same width, so columns are unchanged.
var brackets = strings.NewReplacer("[", "(", "]", ")")

// ParseHydrate parses a full formula, including hydrate and co-crystal parts
// like CuSO4·5H2O. Square brackets are the same as parentheses. Each segment
// between separators may begin with a count that multiplies the whole segment.
// Segments that are empty or only space are ignored, so a formula with no
// segments at all gives empty counts, unless RejectEmpty is given.
//
// Every syntax error implements SyntaxError. Positions are columns in
// formula, not in the segment where the error occurred.
func ParseHydrate(formula string, opts ...ParseOption) (Counts, error) {
	p := newparsectx(opts)
	segs := split(formula, p.seps)
	if len(segs) == 0 {
		if p.rejectEmpty {
			return nil, &EmptyFormulaError{Col: utf8.RuneCountInString(formula) + 1}
		}
		return Counts{}, nil
	}
	total := Counts{}
	for _, s := range segs {
		k, n, err := s.multiplier()
		if err != nil {
			return nil, err
		}
		if p.strict && n > 0 && len(segs) == 1 {
			return nil, &TokenError{Col: s.col, Text: s.text, Kind: "multiplier"}
		}
		c, err := parsegroup(s.text[n:], s.col+n)
		if err != nil {
			return nil, err
		}
		if !total.merge(c, k) {
			return nil, &TokenError{Col: s.col, Text: s.text, Kind: "count"}
		}
	}
	total.prune()
	return total, nil
}

// split divides formula on separator runes.
func split(formula, seps string) []segment {
	var segs []segment
	add := func(s string, col int) {
		t := strings.TrimLeftFunc(s, unicode.IsSpace)
		col += utf8.RuneCountInString(s[:len(s)-len(t)])
		t = strings.TrimRightFunc(t, unicode.IsSpace)
		if t != "" {
			segs = append(segs, segment{text: brackets.Replace(t), col: col})
		}
	}
	start, startcol, col := 0, 1, 1
	for i := 0; i < len(formula); {
		r, sz := utf8.DecodeRuneInString(formula[i:])
		i += sz
		col++
		if sz == 1 && r == utf8.RuneError {
			// Invalid bytes are never separators.
			continue
		}
		if strings.ContainsRune(seps, r) {
			add(formula[start:i-sz], startcol)
			start, startcol = i, col
		}
	}
	add(formula[start:], startcol)
	return segs
}

// multiplier finds the segment's leading multiplier. n is the number of bytes
// of digits, or 0 if there is no multiplier, in which case k is 1. Digits are
// a multiplier only when an element symbol or open bracket follows directly.
func (s segment) multiplier() (k, n int, err error) {
	for n < len(s.text) && isDigit(rune(s.text[n])) {
		n++
	}
	if n == 0 || n == len(s.text) {
		return 1, 0, nil
	}
	if c := rune(s.text[n]); !isUpper(c) && c != '(' {
		return 1, 0, nil
	}
	k, err = strconv.Atoi(s.text[:n])
	if err != nil {
		return 0, 0, &TokenError{Col: s.col, Text: s.text, Kind: "count"}
	}
	return k, n, nil
}
