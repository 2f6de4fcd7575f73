package quantity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/formula/quantity"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"plain", "18", 18},
		{"times", "6.022×10^23", 6.022e23},
		{"star", "6.02*10^23", 6.02e23},
		{"avogadro", "NA", 6.022e23},
		{"half-mole", "0.5 NA", 3.011e23},
		{"volume", "2 Vm", 44.8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := quantity.Amount(c.src)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if math.Abs(got-c.want) > 1e-12*math.Abs(c.want) {
				t.Errorf("%q: want %g, got %g", c.src, c.want, got)
			}
			back, err := quantity.Amount(quantity.FormatAmount(got))
			if err != nil || math.Abs(back-got) > 1e-15*math.Abs(got) {
				t.Errorf("%g does not read back: %g, %v", got, back, err)
			}
		})
	}
}

func TestAmountErrors(t *testing.T) {
	_, err := quantity.Amount("10^400")
	var rerr *quantity.RangeError
	if !errors.As(err, &rerr) {
		t.Errorf("10^400 gave %v", err)
	}
	_, err = quantity.Amount("2 mol")
	var nerr *quantity.NameError
	if !errors.As(err, &nerr) || nerr.Name != "mol" {
		t.Errorf("2 mol gave %v", err)
	}
	_, err = quantity.Amount("(2")
	var ierr quantity.InputError
	if !errors.As(err, &ierr) {
		t.Errorf("(2 gave %v", err)
	}
}
