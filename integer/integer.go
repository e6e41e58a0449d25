// Package integer provides signed integer blocks: a big-endian magnitude with
// the sign held in the lowest bit of the encoding (aka zigzag).
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 1 | -127
//  |-------------------------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Zero is encoded as one zero byte. Blocks convert to and from Integer
// numbers and carry the unscaled value and scale of decimal reals. An Encoder
// writes each block as one control field and a Decoder reads them back.
package integer

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/bcd/number"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// magnitude returns the big-endian bytes of i, with zero as a single zero byte.
func magnitude(i *big.Int) []byte {
	data := i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// FromBig returns the block of i.
func FromBig(i *big.Int) Block {
	return Block{
		Value:    magnitude(new(big.Int).Abs(i)),
		Negative: i.Sign() < 0,
	}
}

// FromInt64 returns the block of v.
func FromInt64(v int64) Block {
	return FromBig(big.NewInt(v))
}

// Big returns b as a big integer.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Int64 returns b as an int64.
func (b Block) Int64() (v int64, err error) {
	i := b.Big()
	if !i.IsInt64() {
		return 0, Error.New("%s does not fit in 64 bits", i)
	}

	return i.Int64(), nil
}

// FromNumber returns the block of an Integer number.
func FromNumber(n *number.Number) (b Block, err error) {
	defer Error.WrapP(&err)

	if n.Kind() != number.Integer {
		return Block{}, Error.New("%w: %s", number.ErrTypeMismatch, n.Kind())
	}

	i, ok := new(big.Int).SetString(n.Literal(), 10)
	if !ok {
		return Block{}, Error.New("literal %q rejected", n.Literal())
	}

	return FromBig(i), nil
}

// Number returns b as an Integer number.
func (b Block) Number() (n *number.Number, err error) {
	defer Error.WrapP(&err)

	i := new(big.Int).SetBytes(b.Value)

	return number.IntegerOf(i.String(), b.Negative)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	return magnitude(i), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("no data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	b.Value = magnitude(i)

	return nil
}
