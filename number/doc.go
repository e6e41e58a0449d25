// Package number provides signed base 10 numbers of two kinds held as packed
// BCD digits (see package packed).
//
// Kinds
//
// An Integer is a whole number. A Decimal is a pure fraction, its magnitude
// always below one. Arithmetic requires both operands to be of the same kind
// and reports ErrTypeMismatch otherwise. Comparison works across kinds.
//
// Canonical form
//
// A number is a mantissa and an exponent:
//
//  Integer: m * 10^e
//  Decimal: m * 10^-e
//
// The mantissa never starts or ends with a zero digit. Runs of trailing zeros
// move into the exponent, so every value has exactly one form:
//
//  | literal | mantissa | exponent | String |
//  |---------|----------|----------|--------|
//  | 1200    | 12       | 2        | 12E2   |
//  | -0.5    | -5       | 1        | -5E-1  |
//  | 0.05    | 5        | 2        | 5E-2   |
//  | 0       | 0        |          | 0      |
//  |---------|----------|----------|--------|
//
// Zero is the single digit 0 without exponent and is never negative. Results
// that cannot keep their kind (a Decimal with a digit at or above 10^0) are
// ErrInvalidResult.
//
// Overflow
//
// Decimals cannot hold a sum reaching one or a difference below zero. Add and
// Sub then return an *OverflowError (matching ErrOverflow) holding the digits
// that remain below the point and the carry or borrow. Reals (package
// decimal) move it into their integer part:
//
//  0.75 + 0.5 = OverflowError{Partial: 0.25, Carry: 1}
//
// Operands are aligned digit by digit. Operands spanning more than MaxSpan
// digit positions are ErrInvalidAlignment.
//
// The zero value of Number is not a number; use Zero, Parse or the operators.
package number
