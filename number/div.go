package number

// trim returns the bounds of digits without its zeros on both ends.
func trim(digits []uint8) (lo, hi int) {
	lo, hi = 0, len(digits)
	for lo < hi && digits[lo] == 0 {
		lo++
	}
	for hi > lo && digits[hi-1] == 0 {
		hi--
	}

	return lo, hi
}

// fits reports whether s can be held by a number of the given kind.
func fits(kind Kind, s Scaled) bool {
	lo, hi := trim(s.Digits)
	if lo == hi {
		return true
	}

	switch kind {
	case Integer:
		return s.Pos+int64(lo) >= 0
	case Decimal:
		return s.Pos+int64(hi)-1 < 0
	}

	return false
}

// shift returns r*10 + d.
func shift(r *Number, d uint8) (*Number, error) {
	if r.IsZero() {
		return build(Integer, []uint8{d}, 0, false)
	}

	s := r.Scaled()

	digits := make([]uint8, 0, int64(len(s.Digits))+s.Pos+1)
	digits = append(digits, d)
	for p := int64(1); p <= s.Pos; p++ {
		digits = append(digits, 0)
	}
	digits = append(digits, s.Digits...)

	return build(Integer, digits, 0, false)
}

// divide computes num / den by long division, producing quotient digits down
// to power minPos at most. When exact is set minPos is ignored and the
// division runs until the remainder is zero.
func divide(num, den Scaled, minPos int64, exact bool) (q Scaled, err error) {
	d, err := build(Integer, den.Digits, 0, false)
	if err != nil {
		return Scaled{}, err
	}
	if d.IsZero() {
		return Scaled{}, Error.Wrap(ErrDivisionByZero)
	}

	denPos := den.Pos + int64(d.Exponent())
	d = d.AsInteger()

	q.Negative = num.Negative != den.Negative

	lo, hi := trim(num.Digits)
	if lo == hi {
		q.Negative = false
		return q, nil
	}

	digits := num.Digits[lo:hi]
	pos := num.Pos + int64(lo)

	first := pos + int64(len(digits)) - 1 - denPos
	last := pos - denPos

	if exact {
		// A remainder r < d either vanishes within log2(d) more digits or
		// never does.
		minPos = last - 4*int64(d.Len()) - 4
	}

	if first-minPos >= MaxSpan {
		return Scaled{}, Error.New("%w: quotient digits from 10^%d to 10^%d", ErrInvalidAlignment, minPos, first)
	}

	out := make([]uint8, 0, len(digits)+1)
	r := Zero(Integer)
	i := len(digits) - 1
	lowest := first

loop:
	for p := first; p >= minPos; p-- {
		var nd uint8

		switch {
		case i >= 0:
			nd = digits[i]
			i--
		case r.IsZero():
			break loop
		}

		r, err = shift(r, nd)
		if err != nil {
			return Scaled{}, err
		}

		var qd uint8
		for compareMagnitude(r, d) >= 0 {
			r, err = SubPositive(NewOperands(r, d, 1))
			if err != nil {
				return Scaled{}, err
			}
			qd++
		}

		out = append(out, qd)
		lowest = p
	}

	if exact && (i >= 0 || !r.IsZero()) {
		return Scaled{}, Error.New("%w: remainder %s", ErrNonTerminating, r)
	}

	q.Digits = make([]uint8, len(out))
	for j, v := range out {
		q.Digits[len(out)-1-j] = v
	}
	q.Pos = lowest

	if len(q.Digits) == 0 {
		q.Negative = false
	}

	return q, nil
}

// Quotient returns the exact quotient num / den.
func Quotient(num, den Scaled) (q Scaled, err error) {
	defer Error.WrapP(&err)

	return divide(num, den, 0, true)
}

// QuotientTrunc returns num / den truncated toward zero, keeping digits down
// to power minPos.
func QuotientTrunc(num, den Scaled, minPos int64) (q Scaled, err error) {
	defer Error.WrapP(&err)

	return divide(num, den, minPos, false)
}

// Div returns the exact quotient a / b. The quotient must be of the kind of
// the operands.
//
//  Div(MustParse("1"), MustParse("8"))     // ErrOutOfRange: 0.125
//  Div(MustParse("0.1"), MustParse("0.8")) // 0.125
//  Div(MustParse("1"), MustParse("3"))     // ErrNonTerminating
//
func Div(a, b *Number) (n *Number, err error) {
	defer Error.WrapP(&err)

	if a.kind != b.kind {
		return nil, Error.New("%w: %s and %s", ErrTypeMismatch, a.kind, b.kind)
	}

	q, err := divide(a.Scaled(), b.Scaled(), 0, true)
	if err != nil {
		return nil, err
	}

	if !fits(a.kind, q) {
		return nil, Error.New("%w: %s / %s is not %s", ErrOutOfRange, a, b, a.kind)
	}

	return build(a.kind, q.Digits, q.Pos, q.Negative)
}

// QuoRem returns the quotient of Integers a / b truncated toward zero and the
// remainder a - q*b, which has the sign of a.
func QuoRem(a, b *Number) (q, r *Number, err error) {
	defer Error.WrapP(&err)

	if a.kind != Integer || b.kind != Integer {
		return nil, nil, Error.New("%w: %s and %s", ErrTypeMismatch, a.kind, b.kind)
	}

	s, err := divide(a.Scaled(), b.Scaled(), 0, false)
	if err != nil {
		return nil, nil, err
	}

	q, err = build(Integer, s.Digits, s.Pos, s.Negative)
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
