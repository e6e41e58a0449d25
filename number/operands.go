package number

import (
	"github.com/calebcase/bcd/packed"
)

// Term is one side of a binary operation.
type Term struct {
	N   *Number
	Pos int64 // power of ten of the least significant mantissa digit
	LHS bool
}

func termOf(n *Number, lhs bool) Term {
	return Term{
		N:   n,
		Pos: n.pos(),
		LHS: lhs,
	}
}

func (t Term) top() int64 {
	return t.Pos + int64(t.N.mantissa.Len()) - 1
}

// Operands are the two terms of a binary operation ordered by magnitude.
type Operands struct {
	Long  Term
	Short Term

	// Order is the comparison of |lhs| with |rhs|.
	Order int
}

// NewOperands orders lhs and rhs according to order, the comparison of |lhs|
// with |rhs|. The left hand side is the long term when order is not negative.
func NewOperands(lhs, rhs *Number, order int) *Operands {
	ops := &Operands{
		Long:  termOf(lhs, true),
		Short: termOf(rhs, false),
		Order: order,
	}
	if order < 0 {
		ops.Swap()
	}

	return ops
}

// Select orders lhs and rhs by magnitude. They must have the same kind.
func Select(lhs, rhs *Number) (ops *Operands, err error) {
	if lhs.kind != rhs.kind {
		return nil, Error.New("%w: %s and %s", ErrTypeMismatch, lhs.kind, rhs.kind)
	}

	return NewOperands(lhs, rhs, compareMagnitude(lhs, rhs)), nil
}

// Kind returns the kind of the terms.
func (ops *Operands) Kind() Kind {
	return ops.Long.N.kind
}

// Swap exchanges the long and short terms.
func (ops *Operands) Swap() {
	ops.Long, ops.Short = ops.Short, ops.Long
}

// compareMagnitude compares |a| with |b|. The kinds may differ.
func compareMagnitude(a, b *Number) int {
	az, bz := a.IsZero(), b.IsZero()
	switch {
	case az && bz:
		return 0
	case az:
		return -1
	case bz:
		return 1
	}

	at, bt := a.top(), b.top()
	switch {
	case at > bt:
		return 1
	case at < bt:
		return -1
	}

	ia, ib := a.mantissa.Iter(), b.mantissa.Iter()
	for {
		da, oka := ia.Prev()
		db, okb := ib.Prev()

		switch {
		case !oka && !okb:
			return 0
		case !okb:
			return 1
		case !oka:
			return -1
		case da > db:
			return 1
		case da < db:
			return -1
		}
	}
}

// align returns the digit range covered by the non zero terms. Decimal ranges
// always end at 10^-1.
func (ops *Operands) align() (low, top int64, err error) {
	first := true

	for _, t := range [2]Term{ops.Long, ops.Short} {
		if t.N.IsZero() {
			continue
		}

		tt := t.top()
		if first || t.Pos < low {
			low = t.Pos
		}
		if first || tt > top {
			top = tt
		}
		first = false
	}

	if first {
		return 0, 0, Error.New("%w: no digits", ErrInvalidAlignment)
	}

	if ops.Kind() == Decimal {
		top = -1
	}

	if top < low || top-low >= MaxSpan {
		return 0, 0, Error.New("%w: digits from 10^%d to 10^%d", ErrInvalidAlignment, low, top)
	}

	return low, top, nil
}

// reader yields the digits of a term one position at a time, from the lowest
// aligned position up.
type reader struct {
	it   *packed.Iterator
	pos  int64
	top  int64
	zero bool
}

func newReader(t Term) *reader {
	return &reader{
		it:   t.N.mantissa.Iter(),
		pos:  t.Pos,
		top:  t.top(),
		zero: t.N.IsZero(),
	}
}

// at returns the digit at power p. Calls must visit each position once, in
// increasing order.
func (r *reader) at(p int64) uint8 {
	if r.zero || p < r.pos || p > r.top {
		return 0
	}

	d, _ := r.it.Next()

	return d
}

// AddPositive returns |long| + |short|.
//
// A Decimal sum reaching one returns an *OverflowError holding the fraction
// and a carry of 1.
func AddPositive(ops *Operands) (n *Number, err error) {
	a, b := ops.Long, ops.Short
	kind := ops.Kind()

	switch {
	case a.N.IsZero():
		return b.N.Abs(), nil
	case b.N.IsZero():
		return a.N.Abs(), nil
	}

	low, top, err := ops.align()
	if err != nil {
		return nil, err
	}

	ra, rb := newReader(a), newReader(b)
	digits := make([]uint8, 0, top-low+2)

	var carry uint8
	for p := low; p <= top; p++ {
		s := ra.at(p) + rb.at(p) + carry
		carry = s / 10
		digits = append(digits, s%10)
	}

	if carry == 0 {
		return build(kind, digits, low, false)
	}

	if kind == Integer {
		digits = append(digits, carry)
		return build(kind, digits, low, false)
	}

	partial, err := build(kind, digits, low, false)
	if err != nil {
		return nil, err
	}

	return nil, &OverflowError{
		Partial: partial,
		Carry:   carry,
	}
}

// SubPositive returns |long| - |short|.
//
// When |short| is the larger one an *OverflowError is returned holding the
// ten's complement of the difference over the aligned digits and a borrow of
// 1. For Decimals the partial is 1 - (|short| - |long|).
func SubPositive(ops *Operands) (n *Number, err error) {
	a, b := ops.Long, ops.Short
	kind := ops.Kind()

	if b.N.IsZero() {
		return a.N.Abs(), nil
	}

	low, top, err := ops.align()
	if err != nil {
		return nil, err
	}

	ra, rb := newReader(a), newReader(b)
	digits := make([]uint8, 0, top-low+1)

	var borrow uint8
	for p := low; p <= top; p++ {
		d := int(ra.at(p)) - int(rb.at(p)) - int(borrow)

		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}

		digits = append(digits, uint8(d))
	}

	partial, err := build(kind, digits, low, false)
	if err != nil {
		return nil, err
	}

	if borrow == 0 {
		return partial, nil
	}

	return nil, &OverflowError{
		Partial: partial,
		Carry:   borrow,
	}
}

// MulInteger returns long * short. The long term should hold the most
// mantissa digits: the short one is walked digit by digit and each scaled copy
// of the long mantissa is added to the result.
//
// The result is positive when both signs match and negative otherwise.
func MulInteger(ops *Operands) (n *Number, err error) {
	a, b := ops.Long, ops.Short
	kind := ops.Kind()

	if a.N.IsZero() || b.N.IsZero() {
		return Zero(kind), nil
	}

	negative := a.N.IsNegative() != b.N.IsNegative()

	acc := Zero(Integer)
	partial := make([]uint8, 0, a.N.mantissa.Len()+1)

	it := b.N.mantissa.Iter()
	for offset := int64(0); ; offset++ {
		coef, ok := it.Next()
		if !ok {
			break
		}
		if coef == 0 {
			continue
		}

		partial = partial[:0]

		var carry uint8
		li := a.N.mantissa.Iter()
		for {
			d, ok := li.Next()
			if !ok {
				break
			}

			r := d*coef + carry
			carry = r / 10
			partial = append(partial, r%10)
		}
		if carry > 0 {
			partial = append(partial, carry)
		}

		p, err := build(Integer, partial, offset, false)
		if err != nil {
			return nil, err
		}

		acc, err = AddPositive(NewOperands(acc, p, compareMagnitude(acc, p)))
		if err != nil {
			return nil, err
		}
	}

	s := acc.Scaled()
	s.Pos += a.Pos + b.Pos

	return build(kind, s.Digits, s.Pos, negative)
}
