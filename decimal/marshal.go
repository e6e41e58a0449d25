package decimal

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"strings"

	"github.com/calebcase/oops"
	"gopkg.in/inf.v0"

	"github.com/calebcase/bcd/control"
	"github.com/calebcase/bcd/integer"
	"github.com/calebcase/bcd/number"
)

// Block is the fixed point form of a real: value * 10^scale.
type Block struct {
	Value integer.Block
	Scale integer.Block
}

// Block returns the fixed point form of r. The value carries no trailing
// zero, they are moved to the scale.
func (r *Real) Block() (b Block, err error) {
	defer Error.WrapP(&err)

	s := r.Scaled()

	lo := 0
	for lo < len(s.Digits)-1 && s.Digits[lo] == 0 {
		lo++
	}

	sb := &strings.Builder{}
	for i := len(s.Digits) - 1; i >= lo; i-- {
		sb.WriteByte('0' + s.Digits[i])
	}

	v, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		return Block{}, Error.New("digits %q rejected", sb.String())
	}
	if s.Negative {
		v.Neg(v)
	}

	scale := s.Pos + int64(lo)
	if v.Sign() == 0 {
		scale = 0
	}

	return Block{
		Value: integer.FromBig(v),
		Scale: integer.FromInt64(scale),
	}, nil
}

// FromBlock returns the real of a fixed point form.
func FromBlock(b Block) (r *Real, err error) {
	defer Error.WrapP(&err)

	scale, err := b.Scale.Int64()
	if err != nil {
		return nil, err
	}

	text := b.Value.Big().String()
	negative := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	s := number.Scaled{
		Digits:   make([]uint8, 0, len(text)),
		Pos:      scale,
		Negative: negative,
	}
	for i := len(text) - 1; i >= 0; i-- {
		s.Digits = append(s.Digits, text[i]-'0')
	}

	return FromScaled(s)
}

// Decoder is a decoder.
type Decoder struct {
	id *integer.Decoder
}

// NewDecoder returns a new decoder reading reals as a value block followed by
// a scale block.
func NewDecoder(cd control.Decoder) *Decoder {
	return &Decoder{
		id: integer.NewDecoder(cd),
	}
}

// Decode parses a real from the reader. It returns io.EOF when no field
// remains.
func (d *Decoder) Decode(r *Real) (err error) {
	b := Block{}

	err = d.id.Decode(&b.Value)
	if errors.Is(err, io.EOF) {
		return io.EOF
	}

	defer Error.WrapP(&err)

	if err != nil {
		return err
	}

	err = d.id.Decode(&b.Scale)
	if errors.Is(err, io.EOF) {
		return oops.Trace(io.ErrUnexpectedEOF)
	}
	if err != nil {
		return err
	}

	v, err := FromBlock(b)
	if err != nil {
		return err
	}

	*r = *v

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	ie *integer.Encoder
}

// NewEncoder returns a new encoder writing reals as a value block followed by
// a scale block.
func NewEncoder(ce control.Encoder) *Encoder {
	return &Encoder{
		ie: integer.NewEncoder(ce),
	}
}

// Encode writes a real to the writer.
func (e *Encoder) Encode(r *Real) (err error) {
	defer Error.WrapP(&err)

	b, err := r.Block()
	if err != nil {
		return err
	}

	err = e.ie.Encode(&b.Value)
	if err != nil {
		return err
	}

	return e.ie.Encode(&b.Scale)
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// See the package documentation for the layout.
func (r *Real) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	buf := &bytes.Buffer{}

	err = NewEncoder(control.NewEncoder(buf)).Encode(r)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Real) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	cd := control.NewDecoder(bytes.NewReader(data))

	v := Real{}

	err = NewDecoder(cd).Decode(&v)
	if errors.Is(err, io.EOF) {
		return oops.Trace(io.ErrUnexpectedEOF)
	}
	if err != nil {
		return err
	}

	if cd.Next() {
		return Error.New("trailing data after %s", v.String())
	}
	if cd.Err() != nil {
		return cd.Err()
	}

	*r = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r *Real) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Real) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*r = *v

	return nil
}

// Dec returns r as an *inf.Dec.
func (r *Real) Dec() *inf.Dec {
	d, ok := new(inf.Dec).SetString(r.String())
	if !ok {
		panic(Error.New("literal %q rejected", r.String()))
	}

	return d
}

// FromDec returns d as a real.
func FromDec(d *inf.Dec) (r *Real, err error) {
	defer Error.WrapP(&err)

	return FromScaled(number.ScaledOf(d))
}
