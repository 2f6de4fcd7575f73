package formula

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Counts maps element symbols to numbers of atoms. A symbol absent from the
// map has a count of zero. Counts produced by this package never store zero.
type Counts map[string]int

// Add adds the counts in c to m and returns m. If m is nil, Add allocates a
// new map, so callers should use the result as in m = m.Add(c). Panics if any
// count overflows.
func (m Counts) Add(c Counts) Counts {
	if m == nil {
		m = make(Counts, len(c))
	}
	if !m.merge(c, 1) {
		panic("formula: count overflow")
	}
	return m
}

// Scale multiplies every count in m by k and returns m. Scaling by zero
// empties m. Scaling a nil m returns nil. Panics if k is negative or any count overflows.
func (m Counts) Scale(k int) Counts {
	if k < 0 {
		panic("formula: negative scale " + strconv.Itoa(k))
	}
	if !m.scale(k) {
		panic("formula: count overflow")
	}
	return m
}

// Clone returns a copy of m.
func (m Counts) Clone() Counts {
	r := make(Counts, len(m))
	for k, v := range m {
		r[k] = v
	}
	return r
}

// Equal reports whether m and c have the same nonzero counts.
func (m Counts) Equal(c Counts) bool {
	for k, v := range m {
		if v != 0 && c[k] != v {
			return false
		}
	}
	for k, v := range c {
		if v != 0 && m[k] != v {
			return false
		}
	}
	return true
}

// Atoms returns the total number of atoms in m.
func (m Counts) Atoms() int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

// Symbols returns the element symbols in m in Hill order: carbon first and
// hydrogen second if there is any carbon, then everything else
// alphabetically.
func (m Counts) Symbols() []string {
	v := make([]string, 0, len(m))
	_, carbon := m["C"]
	for k := range m {
		if carbon && (k == "C" || k == "H") {
			continue
		}
		v = append(v, k)
	}
	slices.Sort(v)
	if carbon {
		lead := []string{"C"}
		if _, ok := m["H"]; ok {
			lead = append(lead, "H")
		}
		v = append(lead, v...)
	}
	return v
}

// String formats m as a Hill-order formula with no groups, e.g. CuH10O9S.
// Counts of one are left implicit.
func (m Counts) String() string {
	var b strings.Builder
	for _, k := range m.Symbols() {
		b.WriteString(k)
		if n := m[k]; n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// merge adds k times each count in c to m. The result is false if any count
// would overflow, in which case m is partially updated.
func (m Counts) merge(c Counts, k int) bool {
	for sym, n := range c {
		p, ok := mulcount(n, k)
		if !ok {
			return false
		}
		s, ok := addcount(m[sym], p)
		if !ok {
			return false
		}
		m[sym] = s
	}
	return true
}

// scale multiplies each count in m by k, removing zero counts. The result is
// false if any count would overflow.
func (m Counts) scale(k int) bool {
	for sym, n := range m {
		p, ok := mulcount(n, k)
		if !ok {
			return false
		}
		if p == 0 {
			delete(m, sym)
			continue
		}
		m[sym] = p
	}
	return true
}

// prune removes zero counts.
func (m Counts) prune() {
	for sym, n := range m {
		if n == 0 {
			delete(m, sym)
		}
	}
}

func mulcount(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == -1 && b == math.MinInt || b == -1 && a == math.MinInt {
		return 0, false
	}
	p := a * b
	return p, p/b == a
}

func addcount(a, b int) (int, bool) {
	s := a + b
	if b > 0 && s < a || b < 0 && s > a {
		return 0, false
	}
	return s, true
}
