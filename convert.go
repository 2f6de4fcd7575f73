package formula

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// Avogadro is the number of particles in one mole.
	Avogadro = 6.022e23
	// MolarVolumeSTP is the volume in liters of one mole of an ideal gas at
	// standard temperature and pressure.
	MolarVolumeSTP = 22.4
)

// GramsToMoles converts a mass in grams to moles of a substance with the given
// molar mass.
func GramsToMoles(g, molarMass float64) float64 { return g / molarMass }

// MolesToGrams converts moles to grams of a substance with the given molar
// mass.
func MolesToGrams(mol, molarMass float64) float64 { return mol * molarMass }

// MolesToParticles converts moles to a number of particles.
func MolesToParticles(mol float64) float64 { return mol * Avogadro }

// ParticlesToMoles converts a number of particles to moles.
func ParticlesToMoles(n float64) float64 { return n / Avogadro }

// LitersToMoles converts liters of an ideal gas at STP to moles.
func LitersToMoles(l float64) float64 { return l / MolarVolumeSTP }

// MolesToLiters converts moles of an ideal gas to liters at STP.
func MolesToLiters(mol float64) float64 { return mol * MolarVolumeSTP }

// MolarityToMoles gives the moles of solute in l liters of a solution with
// molarity m.
func MolarityToMoles(m, l float64) float64 { return m * l }

// Unit is a unit of amount of substance.
type Unit int

const (
	// Grams is mass in grams.
	Grams Unit = iota
	// Moles is amount of substance in moles.
	Moles
	// Particles counts atoms or molecules.
	Particles
	// Liters is volume of gas at STP.
	Liters
)

var unitNames = [...]string{
	Grams:     "g",
	Moles:     "mol",
	Particles: "particles",
	Liters:    "L",
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// ParseUnit parses a unit name or abbreviation. Names are case-insensitive
// except that "L" may also be written "l".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g", "gram", "grams":
		return Grams, nil
	case "mol", "mole", "moles":
		return Moles, nil
	case "atoms", "atom", "molecules", "molecule", "particles", "particle":
		return Particles, nil
	case "l", "liter", "liters", "litre", "litres":
		return Liters, nil
	}
	return 0, errors.New("unknown unit " + strconv.Quote(s))
}

// ErrMolarMass is returned by Convert when a conversion involves grams and the
// molar mass is not positive.
var ErrMolarMass = errors.New("conversion to or from grams needs a positive molar mass")

// Convert converts v from one unit to another through moles. molarMass is
// ignored unless either unit is Grams.
func Convert(v float64, from, to Unit, molarMass float64) (float64, error) {
	if (from == Grams || to == Grams) && !(molarMass > 0) {
		return 0, ErrMolarMass
	}
	var mol float64
	switch from {
	case Grams:
		mol = GramsToMoles(v, molarMass)
	case Moles:
		mol = v
	case Particles:
		mol = ParticlesToMoles(v)
	case Liters:
		mol = LitersToMoles(v)
	default:
		panic("formula: invalid unit " + from.String())
	}
	switch to {
	case Grams:
		return MolesToGrams(mol, molarMass), nil
	case Moles:
		return mol, nil
	case Particles:
		return MolesToParticles(mol), nil
	case Liters:
		return MolesToLiters(mol), nil
	default:
		panic("formula: invalid unit " + to.String())
	}
}
