package formula

// Table looks up standard atomic masses in grams per mole.
type Table interface {
	// Mass returns the atomic mass of the element with the given symbol and
	// whether the table has it.
	Mass(symbol string) (float64, bool)
}

// MassTable is a Table backed by a map.
type MassTable map[string]float64

// Mass returns t[symbol].
func (t MassTable) Mass(symbol string) (float64, bool) {
	m, ok := t[symbol]
	return m, ok
}

// Mass computes the molar mass of m in grams per mole. If t is missing any
// element in m, the error is an *ElementError naming the first such element
// in Hill order.
func (m Counts) Mass(t Table) (float64, error) {
	var r float64
	for _, sym := range m.Symbols() {
		a, ok := t.Mass(sym)
		if !ok {
			return 0, &ElementError{Symbol: sym}
		}
		r += a * float64(m[sym])
	}
	return r, nil
}

// MolarMass parses formula as a hydrate and computes its molar mass.
func MolarMass(formula string, t Table, opts ...ParseOption) (float64, error) {
	c, err := ParseHydrate(formula, opts...)
	if err != nil {
		return 0, err
	}
	return c.Mass(t)
}
