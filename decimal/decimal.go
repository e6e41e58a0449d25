package decimal

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bcd/number"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// Real is a signed decimal number made of an Integer part and a Decimal
// fraction sharing one sign. The zero value is 0.0.
type Real struct {
	integer  *number.Number
	fraction *number.Number
}

// newReal returns the real ip + fp, both taken by magnitude, with the given
// sign. Zero is positive.
func newReal(ip, fp *number.Number, negative bool) *Real {
	if ip.IsZero() && fp.IsZero() {
		negative = false
	}

	return &Real{
		integer:  ip.WithSign(negative),
		fraction: fp.WithSign(negative),
	}
}

// Zero returns 0.0.
func Zero() *Real {
	return newReal(number.Zero(number.Integer), number.Zero(number.Decimal), false)
}

// New returns the real made of an Integer part and a Decimal fraction. When
// both are non zero their signs must agree.
func New(ip, fp *number.Number) (r *Real, err error) {
	defer Error.WrapP(&err)

	if ip.Kind() != number.Integer || fp.Kind() != number.Decimal {
		return nil, Error.New("%w: parts are %s and %s", number.ErrTypeMismatch, ip.Kind(), fp.Kind())
	}

	if !ip.IsZero() && !fp.IsZero() && ip.IsNegative() != fp.IsNegative() {
		return nil, Error.New("%w: parts %s and %s differ in sign", number.ErrInvalidResult, ip, fp)
	}

	negative := (!ip.IsZero() && ip.IsNegative()) || (!fp.IsZero() && fp.IsNegative())

	return newReal(ip, fp, negative), nil
}

// Parse reads a literal of the form ["-"] digits ["." digits]. The sign
// applies to both parts.
func Parse(text string) (r *Real, err error) {
	defer Error.WrapP(&err)

	lit, err := number.Lex(text)
	if err != nil {
		return nil, err
	}

	ip, err := number.IntegerOf(lit.Integer, false)
	if err != nil {
		return nil, err
	}

	fp := number.Zero(number.Decimal)
	if lit.Point {
		fp, err = number.DecimalOf(lit.Fraction, false)
		if err != nil {
			return nil, err
		}
	}

	return newReal(ip, fp, lit.Negative), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Real {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return r
}

// FromScaled returns the real holding s.
func FromScaled(s number.Scaled) (r *Real, err error) {
	defer Error.WrapP(&err)

	ip, fp, err := number.Split(s)
	if err != nil {
		return nil, err
	}

	return newReal(ip, fp, s.Negative), nil
}

// Scaled returns the flat view of r.
func (r *Real) Scaled() number.Scaled {
	is, fs := r.Integer().Scaled(), r.Fraction().Scaled()

	switch {
	case r.Fraction().IsZero():
		is.Negative = r.IsNegative()
		return is
	case r.Integer().IsZero():
		fs.Negative = r.IsNegative()
		return fs
	}

	digits := make([]uint8, 0, int64(len(fs.Digits)+len(is.Digits))+is.Pos-fs.Pos)
	digits = append(digits, fs.Digits...)
	for p := fs.Pos + int64(len(fs.Digits)); p < is.Pos; p++ {
		digits = append(digits, 0)
	}
	digits = append(digits, is.Digits...)

	return number.Scaled{
		Digits:   digits,
		Pos:      fs.Pos,
		Negative: r.IsNegative(),
	}
}

// Integer returns the signed integer part of r.
func (r *Real) Integer() *number.Number {
	if r.integer == nil {
		return number.Zero(number.Integer)
	}

	return r.integer
}

// Fraction returns the signed fraction of r.
func (r *Real) Fraction() *number.Number {
	if r.fraction == nil {
		return number.Zero(number.Decimal)
	}

	return r.fraction
}

// IsNegative reports whether r is below zero.
func (r *Real) IsNegative() bool {
	return r.Integer().IsNegative()
}

// IsZero reports whether r is zero.
func (r *Real) IsZero() bool {
	return r.Integer().IsZero() && r.Fraction().IsZero()
}

// Sign returns -1, 0 or +1.
func (r *Real) Sign() int {
	switch {
	case r.IsZero():
		return 0
	case r.IsNegative():
		return -1
	}

	return 1
}

// Neg returns -r.
func (r *Real) Neg() *Real {
	return newReal(r.Integer(), r.Fraction(), !r.IsNegative())
}

// Abs returns |r|.
func (r *Real) Abs() *Real {
	return newReal(r.Integer(), r.Fraction(), false)
}

// String returns r as [-]integer.fraction, the fraction being 0 when there is
// none.
func (r *Real) String() string {
	sb := &strings.Builder{}

	if r.IsNegative() {
		sb.WriteByte('-')
	}

	sb.WriteString(r.Integer().Abs().Literal())
	sb.WriteByte('.')
	sb.WriteString(strings.TrimPrefix(r.Fraction().Abs().Literal(), "0."))

	return sb.String()
}
