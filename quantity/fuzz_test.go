package quantity_test

import (
	"math/big"
	"testing"

	"github.com/zephyrtronium/formula/quantity"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("6.022×10^23")
	f.Add("(-8)^(1/3)")
	f.Add("{2 [NA]}")
	f.Fuzz(func(t *testing.T, s string) {
		quantity.Eval(s, quantity.SetVar("x", new(big.Float)), quantity.SetVar("NA", big.NewFloat(6.022e23)))
	})
}
