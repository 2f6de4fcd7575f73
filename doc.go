// Package formula parses chemical formulas into counts of atoms and computes
// molar masses and conversions between amounts of substance.
//
// Formulas are written the usual way. "Al2(SO4)3" has two aluminum atoms and
// three sulfate groups. Square brackets work the same as parentheses.
// Hydrates and co-crystals are written with an interpunct or a full stop
// between parts, and each part can begin with its own multiplier, as in
// "CuSO4·5H2O".
//
// Parsing checks syntax only. Whether "Xx" is an element is up to the Table
// used to compute a mass.
package formula
