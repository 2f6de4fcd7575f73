package quantity

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/formula"
)

// Constants defines NA as Avogadro's number and Vm as the molar volume of an
// ideal gas at STP in liters, so that amounts can be written like "0.5 NA".
func Constants() ContextOption {
	return SetVars(map[string]*big.Float{
		"NA": big.NewFloat(formula.Avogadro),
		"Vm": big.NewFloat(formula.MolarVolumeSTP),
	})
}

// RangeError is an error indicating a result too large to use as a float64.
type RangeError struct {
	Value *big.Float
}

func (err *RangeError) Error() string {
	return "result " + err.Value.Text('g', 10) + " out of range"
}

// Amount evaluates src with Constants and converts the result to float64.
func Amount(src string, opts ...ContextOption) (float64, error) {
	opts = append([]ContextOption{Constants()}, opts...)
	r, err := Eval(src, opts...)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	if math.IsInf(f, 0) {
		return 0, &RangeError{Value: r}
	}
	return f, nil
}

// FormatAmount formats an amount the way Amount reads it back.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
