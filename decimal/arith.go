package decimal

import (
	"errors"

	"github.com/calebcase/bcd/number"
)

// one is the integer carried out of, or borrowed into, a fraction.
var one = number.MustParse("1")

// Operands are the two terms of a Real operation ordered by magnitude. The
// long terms of both parts come from the same real.
type Operands struct {
	Integer  *number.Operands
	Fraction *number.Operands

	Long  *Real
	Short *Real

	// Order is the comparison of |lhs| with |rhs|.
	Order int
}

// LHS reports whether the long real is the left hand side.
func (ops *Operands) LHS() bool {
	return ops.Integer.Long.LHS
}

// Select orders lhs and rhs by magnitude. Unequal integer parts decide the
// order of the fractions; equal integer parts leave it to the fractions.
func Select(lhs, rhs *Real) (ops *Operands, err error) {
	defer Error.WrapP(&err)

	iops, err := number.Select(lhs.Integer(), rhs.Integer())
	if err != nil {
		return nil, err
	}

	order := iops.Order

	var fops *number.Operands
	if order != 0 {
		fops = number.NewOperands(lhs.Fraction(), rhs.Fraction(), order)
	} else {
		fops, err = number.Select(lhs.Fraction(), rhs.Fraction())
		if err != nil {
			return nil, err
		}

		order = fops.Order
		iops = number.NewOperands(lhs.Integer(), rhs.Integer(), order)
	}

	ops = &Operands{
		Integer:  iops,
		Fraction: fops,
		Long:     lhs,
		Short:    rhs,
		Order:    order,
	}
	if order < 0 {
		ops.Long, ops.Short = rhs, lhs
	}

	return ops, nil
}

// addMagnitudes returns |long| + |short| as unsigned parts. A fraction
// reaching one carries into the integer part.
func addMagnitudes(ops *Operands) (ip, fp *number.Number, err error) {
	ip, err = number.AddPositive(ops.Integer)
	if err != nil {
		return nil, nil, err
	}

	fp, err = number.AddPositive(ops.Fraction)

	var oe *number.OverflowError
	if errors.As(err, &oe) {
		fp = oe.Partial

		ip, err = number.AddPositive(number.NewOperands(ip, one, 1))
	}
	if err != nil {
		return nil, nil, err
	}

	return ip, fp, nil
}

// subMagnitudes returns |long| - |short| as unsigned parts. A fraction going
// below zero borrows from the integer part.
func subMagnitudes(ops *Operands) (ip, fp *number.Number, err error) {
	ip, err = number.SubPositive(ops.Integer)
	if err != nil {
		return nil, nil, err
	}

	fp, err = number.SubPositive(ops.Fraction)

	var oe *number.OverflowError
	if errors.As(err, &oe) {
		fp = oe.Partial

		ip, err = number.SubPositive(number.NewOperands(ip, one, 1))
	}
	if err != nil {
		return nil, nil, err
	}

	return ip, fp, nil
}

// Add returns a + b.
func Add(a, b *Real) (r *Real, err error) {
	defer Error.WrapP(&err)

	ops, err := Select(a, b)
	if err != nil {
		return nil, err
	}

	var ip, fp *number.Number
	if a.IsNegative() == b.IsNegative() {
		ip, fp, err = addMagnitudes(ops)
	} else {
		ip, fp, err = subMagnitudes(ops)
	}
	if err != nil {
		return nil, err
	}

	return newReal(ip, fp, ops.Long.IsNegative()), nil
}

// Sub returns a - b.
func Sub(a, b *Real) (r *Real, err error) {
	defer Error.WrapP(&err)

	ops, err := Select(a, b)
	if err != nil {
		return nil, err
	}

	var ip, fp *number.Number
	var negative bool

	if a.IsNegative() != b.IsNegative() {
		ip, fp, err = addMagnitudes(ops)
		negative = a.IsNegative()
	} else {
		ip, fp, err = subMagnitudes(ops)
		negative = a.IsNegative() == ops.LHS()
	}
	if err != nil {
		return nil, err
	}

	return newReal(ip, fp, negative), nil
}

// crossTerm returns n * f where n is an Integer and f a Decimal. The product is
// taken on the mantissa of f and shifted back by its exponent.
func crossTerm(n, f *number.Number) (r *Real, err error) {
	p, err := number.Mul(n, f.AsInteger())
	if err != nil {
		return nil, err
	}

	s := p.Scaled()
	s.Pos -= int64(f.Exponent())

	return FromScaled(s)
}

// Mul returns a * b, summing the products of the parts:
//
//  ai*bi + ai*bf + af*bi + af*bf
//
func Mul(a, b *Real) (r *Real, err error) {
	defer Error.WrapP(&err)

	ai, af := a.Integer().Abs(), a.Fraction().Abs()
	bi, bf := b.Integer().Abs(), b.Fraction().Abs()

	ii, err := number.Mul(ai, bi)
	if err != nil {
		return nil, err
	}

	ff, err := number.Mul(af, bf)
	if err != nil {
		return nil, err
	}

	r = newReal(ii, ff, false)

	for _, t := range [2][2]*number.Number{{ai, bf}, {bi, af}} {
		c, err := crossTerm(t[0], t[1])
		if err != nil {
			return nil, err
		}

		r, err = Add(r, c)
		if err != nil {
			return nil, err
		}
	}

	return newReal(r.Integer(), r.Fraction(), a.IsNegative() != b.IsNegative()), nil
}

// Cmp compares a and b and returns -1, 0 or +1.
func Cmp(a, b *Real) int {
	if c := number.Cmp(a.Integer(), b.Integer()); c != 0 {
		return c
	}

	return number.Cmp(a.Fraction(), b.Fraction())
}

// Cmp compares r and o.
func (r *Real) Cmp(o *Real) int {
	return Cmp(r, o)
}

// Equal reports whether r and o have the same value.
func (r *Real) Equal(o *Real) bool {
	return Cmp(r, o) == 0
}
