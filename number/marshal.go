package number

import (
	"bytes"
	"io"

	"github.com/calebcase/oops"
	"gopkg.in/inf.v0"

	"github.com/calebcase/bcd/control"
	"github.com/calebcase/bcd/packed"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The number is written as three control fields (see package control): the
// kind, the packed mantissa and the packed exponent. Both digit stores use the
// layout of package packed.
//
//  +------+------------------+------------------+
//  | kind | m: packed digits | packed exponent  |
//  +------+------------------+------------------+
func (n *Number) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	m, err := n.mantissa.MarshalBinary()
	if err != nil {
		return nil, err
	}

	e, err := n.exponent.MarshalBinary()
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	ce := control.NewEncoder(buf)

	for _, field := range [][]byte{{byte(n.kind)}, m, e} {
		err = ce.Data(field)
		if err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The number must be
// canonical.
func (n *Number) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	cd := control.NewDecoder(bytes.NewReader(data))

	fields := make([][]byte, 0, 3)
	for len(fields) < 3 && cd.Next() {
		field, err := cd.Data()
		if err != nil {
			return err
		}

		fields = append(fields, field)
	}
	if cd.Err() != nil {
		return cd.Err()
	}
	if len(fields) < 3 {
		return oops.Trace(io.ErrUnexpectedEOF)
	}
	if cd.Next() {
		return Error.New("trailing data after byte %d", cd.Consumed()-1)
	}
	if cd.Err() != nil {
		return cd.Err()
	}

	if len(fields[0]) != 1 {
		return Error.New("%w: kind of %d bytes", ErrOutOfRange, len(fields[0]))
	}

	kind := Kind(fields[0][0])
	if kind != Integer && kind != Decimal {
		return Error.New("%w: unknown %s", ErrOutOfRange, kind)
	}

	m := packed.New()
	err = m.UnmarshalBinary(fields[1])
	if err != nil {
		return err
	}

	ex := packed.New()
	err = ex.UnmarshalBinary(fields[2])
	if err != nil {
		return err
	}

	digits := m.Digits()
	switch {
	case len(digits) == 0:
		return Error.New("%w: empty mantissa", ErrOutOfRange)
	case len(digits) > 1 && (digits[0] == 0 || digits[len(digits)-1] == 0):
		return Error.New("%w: mantissa %s is not trimmed", ErrOutOfRange, m)
	case ex.IsNegative() != (kind == Decimal):
		return Error.New("%w: exponent sign of %s", ErrOutOfRange, kind)
	}

	e, ok := toUint(ex)
	if !ok {
		return Error.New("%w: exponent %s", ErrOutOfRange, ex)
	}

	zero := !m.Any()
	switch {
	case zero && e != 0:
		return Error.New("%w: zero with exponent %d", ErrOutOfRange, e)
	case kind == Decimal && !zero && e < uint64(len(digits)):
		return Error.New("%w: decimal %s not below one", ErrOutOfRange, m)
	}

	*n = Number{
		kind:     kind,
		mantissa: m,
		exponent: newExponent(kind, e),
	}
	if e > 0 {
		n.base = tenBase
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n *Number) MarshalText() (text []byte, err error) {
	return []byte(n.Literal()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) (err error) {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}

	*n = *p

	return nil
}

// Dec returns n as an *inf.Dec.
func (n *Number) Dec() *inf.Dec {
	d, ok := new(inf.Dec).SetString(n.Literal())
	if !ok {
		panic(Error.New("literal %q rejected", n.Literal()))
	}

	return d
}

// ScaledOf returns the flat view of d.
func ScaledOf(d *inf.Dec) Scaled {
	unscaled := d.UnscaledBig()

	text := unscaled.String()
	negative := unscaled.Sign() < 0
	if negative {
		text = text[1:]
	}

	digits := make([]uint8, 0, len(text))
	for i := len(text) - 1; i >= 0; i-- {
		digits = append(digits, text[i]-'0')
	}

	return Scaled{
		Digits:   digits,
		Pos:      -int64(d.Scale()),
		Negative: negative,
	}
}

// FromDec returns d as a number of the given kind.
func FromDec(kind Kind, d *inf.Dec) (n *Number, err error) {
	defer Error.WrapP(&err)

	s := ScaledOf(d)
	if !fits(kind, s) {
		return nil, Error.New("%w: %s is not %s", ErrOutOfRange, d, kind)
	}

	return build(kind, s.Digits, s.Pos, s.Negative)
}
