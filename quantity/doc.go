// Package quantity evaluates amount expressions to arbitrary precision.
//
// Amounts of substance are often written the way they'd appear in notes:
// "6.022×10^23", "1.5 × 10^-3", or "0.5 NA" with NA bound to Avogadro's
// number. Juxtaposed terms multiply, so "2 (3 + 4)" is 14. "-2^2" is
// "-(2^2)", and "^" is right-associative.
package quantity
