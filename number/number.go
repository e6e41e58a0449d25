package number

import (
	"strconv"
	"strings"

	"github.com/calebcase/bcd/packed"
)

// Kind is the kind of a number.
type Kind uint8

// Number kinds.
const (
	// Integer numbers are mantissa * 10^exponent.
	Integer Kind = iota

	// Decimal numbers are pure fractions: mantissa * 10^-exponent.
	Decimal
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Base values.
const (
	noBase  uint8 = 0
	tenBase uint8 = 10
)

// Limits.
const (
	// MaxExponent is the largest exponent a number may carry.
	MaxExponent = 1 << 48

	// MaxSpan is the largest number of digit positions two operands may
	// cover once aligned.
	MaxSpan = 1 << 26
)

// Number is a signed arbitrary precision Integer or Decimal.
//
// The mantissa never starts or ends with a zero digit, runs of zeros are held
// by the exponent instead. Zero is the single digit 0 without exponent.
//
// Numbers are never modified once built; operators return new numbers.
type Number struct {
	kind     Kind
	mantissa *packed.BCD
	exponent *packed.BCD
	base     uint8
}

// Zero returns zero of the given kind.
func Zero(kind Kind) *Number {
	m := packed.New()
	_ = m.Append(0)

	return &Number{
		kind:     kind,
		mantissa: m,
		exponent: newExponent(kind, 0),
	}
}

// newExponent returns the packed form of e. Decimal exponents carry the
// negative sign.
func newExponent(kind Kind, e uint64) *packed.BCD {
	b := packed.New()
	if kind == Decimal {
		b.SetNegative()
	}

	for e > 0 {
		_ = b.Append(uint8(e % 10))
		e /= 10
	}

	return b
}

// toUint converts the digits of b to an integer.
func toUint(b *packed.BCD) (v uint64, ok bool) {
	it := b.Iter()
	for {
		d, more := it.Prev()
		if !more {
			return v, true
		}
		if v > (MaxExponent-uint64(d))/10 {
			return 0, false
		}
		v = v*10 + uint64(d)
	}
}

// build returns the canonical number for digits given least significant
// first, the first one being at power pos.
func build(kind Kind, digits []uint8, pos int64, negative bool) (n *Number, err error) {
	lo, hi := 0, len(digits)
	for lo < hi && digits[lo] == 0 {
		lo++
	}
	for hi > lo && digits[hi-1] == 0 {
		hi--
	}

	if lo == hi {
		return Zero(kind), nil
	}

	pos += int64(lo)
	top := pos + int64(hi-lo) - 1

	var e uint64
	switch kind {
	case Integer:
		if pos < 0 {
			return nil, Error.New("%w: integer digit at 10^%d", ErrInvalidResult, pos)
		}
		e = uint64(pos)
	case Decimal:
		if top >= 0 {
			return nil, Error.New("%w: decimal digit at 10^%d", ErrInvalidResult, top)
		}
		e = uint64(-pos)
	default:
		return nil, Error.New("%w: unknown %s", ErrInvalidResult, kind)
	}

	if e > MaxExponent {
		return nil, Error.New("%w: exponent %d", ErrOutOfRange, e)
	}

	m := packed.WithCapacity(hi - lo)
	for i := lo; i < hi; i++ {
		err = m.Append(digits[i])
		if err != nil {
			return nil, Error.Wrap(err)
		}
	}
	if negative {
		m.SetNegative()
	}

	n = &Number{
		kind:     kind,
		mantissa: m,
		exponent: newExponent(kind, e),
	}
	if e > 0 {
		n.base = tenBase
	}

	return n, nil
}

// Kind returns the kind of n.
func (n *Number) Kind() Kind {
	return n.kind
}

// Exponent returns the number of zeros factored out of the mantissa.
func (n *Number) Exponent() uint64 {
	if n.base == noBase {
		return 0
	}

	e, _ := toUint(n.exponent)

	return e
}

// Len returns the number of mantissa digits.
func (n *Number) Len() int {
	return n.mantissa.Len()
}

// Digits returns the mantissa digits, most significant first.
func (n *Number) Digits() []uint8 {
	return n.mantissa.Digits()
}

// IsZero reports whether n is zero.
func (n *Number) IsZero() bool {
	return !n.mantissa.Any()
}

// IsNegative reports whether the negative sign is set. Zero may carry it
// when it is part of a Real.
func (n *Number) IsNegative() bool {
	return n.mantissa.IsNegative()
}

// Sign returns -1, 0 or +1.
func (n *Number) Sign() int {
	switch {
	case n.IsZero():
		return 0
	case n.IsNegative():
		return -1
	}

	return 1
}

// pos returns the power of ten of the least significant mantissa digit.
func (n *Number) pos() int64 {
	e := int64(n.Exponent())
	if n.kind == Decimal {
		return -e
	}

	return e
}

// top returns the power of ten of the most significant mantissa digit.
func (n *Number) top() int64 {
	return n.pos() + int64(n.mantissa.Len()) - 1
}

// Clone returns a deep copy of n.
func (n *Number) Clone() *Number {
	return &Number{
		kind:     n.kind,
		mantissa: n.mantissa.Clone(),
		exponent: n.exponent.Clone(),
		base:     n.base,
	}
}

// WithSign returns a copy of n with the given sign. Zero keeps the sign it is
// given.
func (n *Number) WithSign(negative bool) *Number {
	if n.IsNegative() == negative {
		return n
	}

	c := n.Clone()
	if negative {
		c.mantissa.SetNegative()
	} else {
		c.mantissa.SetPositive()
	}

	return c
}

// signed is WithSign with zero forced positive.
func (n *Number) signed(negative bool) *Number {
	return n.WithSign(negative && !n.IsZero())
}

// Neg returns -n.
func (n *Number) Neg() *Number {
	return n.signed(!n.IsNegative())
}

// Abs returns |n|.
func (n *Number) Abs() *Number {
	return n.WithSign(false)
}

// AsInteger returns the mantissa of n read as an Integer without exponent. The
// result shares the digit store of n.
func (n *Number) AsInteger() *Number {
	return &Number{
		kind:     Integer,
		mantissa: n.mantissa,
		exponent: newExponent(Integer, 0),
	}
}

// Scaled is a flat view of a number: Digits are least significant first and
// Digits[0] is at power Pos.
type Scaled struct {
	Digits   []uint8
	Pos      int64
	Negative bool
}

// Scaled returns the flat view of n.
func (n *Number) Scaled() Scaled {
	s := Scaled{
		Digits:   make([]uint8, 0, n.mantissa.Len()),
		Pos:      n.pos(),
		Negative: n.IsNegative(),
	}

	it := n.mantissa.Iter()
	for {
		d, ok := it.Next()
		if !ok {
			return s
		}
		s.Digits = append(s.Digits, d)
	}
}

// FromScaled returns the number of the given kind holding s.
func FromScaled(kind Kind, s Scaled) (n *Number, err error) {
	defer Error.WrapP(&err)

	return build(kind, s.Digits, s.Pos, s.Negative)
}

// Split cuts s at the decimal point into an Integer and a Decimal. Both parts
// carry the sign of s unless they are zero.
func Split(s Scaled) (integer, fraction *Number, err error) {
	defer Error.WrapP(&err)

	k := 0
	if s.Pos < 0 {
		k = len(s.Digits)
		if -s.Pos < int64(k) {
			k = int(-s.Pos)
		}
	}

	integer, err = build(Integer, s.Digits[k:], s.Pos+int64(k), s.Negative)
	if err != nil {
		return nil, nil, err
	}

	fraction, err = build(Decimal, s.Digits[:k], s.Pos, s.Negative)
	if err != nil {
		return nil, nil, err
	}

	return integer, fraction, nil
}

// String returns n as signed digits followed by the exponent, if any:
//
//  1234E5    (123400000)
//  -15E-3    (-0.015)
//
func (n *Number) String() string {
	sb := &strings.Builder{}

	if n.IsNegative() && !n.IsZero() {
		sb.WriteByte('-')
	}

	for _, d := range n.Digits() {
		sb.WriteByte('0' + d)
	}

	if e := n.Exponent(); e > 0 {
		sb.WriteByte('E')
		if n.kind == Decimal {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.FormatUint(e, 10))
	}

	return sb.String()
}

// Literal returns n as a plain literal accepted by Parse.
func (n *Number) Literal() string {
	sb := &strings.Builder{}

	if n.IsNegative() && !n.IsZero() {
		sb.WriteByte('-')
	}

	digits := n.Digits()
	e := n.Exponent()

	switch n.kind {
	case Integer:
		for _, d := range digits {
			sb.WriteByte('0' + d)
		}
		for i := uint64(0); i < e; i++ {
			sb.WriteByte('0')
		}
	case Decimal:
		sb.WriteString("0.")
		if n.IsZero() {
			sb.WriteByte('0')
			break
		}
		for i := uint64(len(digits)); i < e; i++ {
			sb.WriteByte('0')
		}
		for _, d := range digits {
			sb.WriteByte('0' + d)
		}
	}

	return sb.String()
}
