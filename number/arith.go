package number

import (
	"errors"
)

// Add returns a + b.
//
// Adding Decimals whose sum reaches one returns an *OverflowError: its Partial
// holds the signed fraction of the sum.
func Add(a, b *Number) (n *Number, err error) {
	defer Error.WrapP(&err)

	ops, err := Select(a, b)
	if err != nil {
		return nil, err
	}

	negative := ops.Long.N.IsNegative()

	if negative == ops.Short.N.IsNegative() {
		n, err = AddPositive(ops)
	} else {
		n, err = SubPositive(ops)
	}

	return finish(n, err, negative)
}

// Sub returns a - b.
func Sub(a, b *Number) (n *Number, err error) {
	defer Error.WrapP(&err)

	ops, err := Select(a, b)
	if err != nil {
		return nil, err
	}

	var negative bool

	switch an, bn := a.IsNegative(), b.IsNegative(); {
	case !an && bn:
		n, err = AddPositive(ops)
	case an && !bn:
		n, err = AddPositive(ops)
		negative = true
	case !an && !bn:
		n, err = SubPositive(ops)
		negative = !ops.Long.LHS
	default:
		n, err = SubPositive(ops)
		negative = ops.Long.LHS
	}

	return finish(n, err, negative)
}

// finish applies the sign of a result, including the partial of an overflow.
func finish(n *Number, err error, negative bool) (*Number, error) {
	if err != nil {
		var oe *OverflowError
		if errors.As(err, &oe) {
			oe.Partial = oe.Partial.signed(negative)
		}

		return nil, err
	}

	return n.signed(negative), nil
}

// Mul returns a * b.
func Mul(a, b *Number) (n *Number, err error) {
	defer Error.WrapP(&err)

	if a.kind != b.kind {
		return nil, Error.New("%w: %s and %s", ErrTypeMismatch, a.kind, b.kind)
	}

	ops := NewOperands(a, b, compareMagnitude(a, b))
	if ops.Long.N.mantissa.Len() < ops.Short.N.mantissa.Len() {
		ops.Swap()
	}

	return MulInteger(ops)
}

// Cmp compares a and b by value and returns -1, 0 or +1. The kinds may
// differ.
func Cmp(a, b *Number) int {
	as, bs := a.Sign(), b.Sign()

	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	case as == 0:
		return 0
	}

	return as * compareMagnitude(a, b)
}

// Cmp compares n and o by value.
func (n *Number) Cmp(o *Number) int {
	return Cmp(n, o)
}

// Equal reports whether n and o have the same value.
func (n *Number) Equal(o *Number) bool {
	return Cmp(n, o) == 0
}
