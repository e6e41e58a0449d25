// Package decimal provides an arbitrary precision signed base 10 real.
//
// A real is made of an Integer part and a Decimal fraction (see package
// number) sharing one sign:
//
//  -123.45 = -(123 + 0.45)
//
// Both parts are computed separately. A fraction sum reaching one carries into
// the integer part and a fraction difference going below zero borrows from it:
//
//  0.999 + 0.002 = (0 + 0) . (0.999 + 0.002)
//                = (0 + 1) . 0.001
//
// Products are the sum of the four products of the parts:
//
//  (ai + af) * (bi + bf) = ai*bi + ai*bf + af*bi + af*bf
//
// The mixed products are taken on the mantissa of the fraction, read as an
// Integer, and shifted back by its exponent before being split at the point.
//
// Quotients are exact: a quotient without a finite expansion is an error.
// DivTrunc bounds the number of fraction digits instead.
//
// Encoding
//
// The binary form is the fixed point form of the real:
//
//  real = value * 10 ^ scale
//
// Where value is an unscaled integer without trailing zeros and scale is a base
// 10 exponent. For example:
//
//  1.23 = 123 * 10^-2
//  1200 = 12 * 10^2
//
// The value comes first and then the scale. Both are integer blocks
// (big-endian with a trailing sign bit, aka zigzag), each written as its own
// control field (see package control). Small blocks share the byte of their
// control block.
//
// Examples
//
// 1.23 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------|-----------------------|
//  | 0 . 1 | 0 . 0 . 0 . 0 . 0 . 0 | Data Size of 1.
//  |-------------------------------|
//  | 1 . 1 . 1 . 1 . 0 . 1 . 1 | 0 | Value of +123.
//  |---|---------------------------|
//  | 1 | 0 . 0 . 0 . 0 . 1 . 0 | 1 | Data, scale of -2.
//  |---|-----------------------|---|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// -0.0001 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---------------------------|
//  | 1 | 0 . 0 . 0 . 0 . 0 . 1 | 1 | Data, value of -1.
//  |---|---------------------------|
//  | 1 | 0 . 0 . 0 . 1 . 0 . 0 | 1 | Data, scale of -4.
//  |---|-----------------------|---|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// 20.47 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-----------|-------------------|
//  | 0 . 0 . 1 | 0 . 1 . 1 . 1 . 1 | Data + 1, value of +2047.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//  |---|---------------------------|
//  | 1 | 0 . 0 . 0 . 0 . 1 . 0 | 1 | Data, scale of -2.
//  |---|-----------------------|---|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// 1200 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---------------------------|
//  | 1 | 0 . 0 . 1 . 1 . 0 . 0 | 0 | Data, value of +12.
//  |---|---------------------------|
//  | 1 | 0 . 0 . 0 . 0 . 1 . 0 | 0 | Data, scale of +2.
//  |---|-----------------------|---|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Streams of reals are written by an Encoder and read back by a Decoder.
//
package decimal
