package decimal

import (
	"github.com/calebcase/bcd/number"
)

// Div returns the exact quotient a / b. Quotients with an infinite expansion
// fail with number.ErrNonTerminating; use DivTrunc for those.
func Div(a, b *Real) (r *Real, err error) {
	defer Error.WrapP(&err)

	q, err := number.Quotient(a.Scaled(), b.Scaled())
	if err != nil {
		return nil, err
	}

	return FromScaled(q)
}

// DivTrunc returns a / b truncated toward zero after scale fraction digits.
func DivTrunc(a, b *Real, scale uint32) (r *Real, err error) {
	defer Error.WrapP(&err)

	q, err := number.QuotientTrunc(a.Scaled(), b.Scaled(), -int64(scale))
	if err != nil {
		return nil, err
	}

	return FromScaled(q)
}

// QuoRem returns the quotient a / b truncated to an integer and the remainder
// a - q*b, which has the sign of a.
func QuoRem(a, b *Real) (q, r *Real, err error) {
	defer Error.WrapP(&err)

	q, err = DivTrunc(a, b, 0)
	if err != nil {
		return nil, nil, err
	}

	qb, err := Mul(q, b)
	if err != nil {
		return nil, nil, err
	}

	r, err = Sub(a, qb)
	if err != nil {
		return nil, nil, err
	}

	return q, r, nil
}
