package packed

import (
	"errors"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("packed")

var (
	// ErrOutOfRange is returned when appending a value that is not a
	// decimal digit.
	ErrOutOfRange = errors.New("digit out of range")

	// ErrMalformed is returned when decoding bytes that are not a valid
	// packed store.
	ErrMalformed = errors.New("malformed packed bcd")
)

// Nibble values.
const (
	Positive byte = 0x0C
	Negative byte = 0x0D
	End      byte = 0x0B
)

// Nibble masks.
const (
	lowMask  byte = 0b0000_1111
	highMask byte = 0b1111_0000
)

// BCD is a sequence of decimal digits packed two per byte with an embedded
// sign. The zero value is an empty positive store.
type BCD struct {
	data  []byte
	total int
}

// New returns an empty positive store.
func New() *BCD {
	return &BCD{
		data: []byte{End<<4 | Positive},
	}
}

// WithCapacity returns an empty positive store with room for the given number
// of digits.
func WithCapacity(digits int) *BCD {
	b := &BCD{
		data: make([]byte, 1, digits/2+1),
	}
	b.data[0] = End<<4 | Positive

	return b
}

// FromDigits returns a store holding the digits given most significant first.
func FromDigits(digits []uint8, negative bool) (b *BCD, err error) {
	b = WithCapacity(len(digits))
	if negative {
		b.SetNegative()
	}

	for i := len(digits) - 1; i >= 0; i-- {
		err = b.Append(digits[i])
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}

// init lays out the sign byte of a zero value.
func (b *BCD) init() {
	if len(b.data) == 0 {
		b.data = append(b.data, End<<4|Positive)
	}
}

// locate returns the byte index and nibble half of digit k.
func locate(k int) (index int, high bool) {
	return (k + 1) / 2, k%2 == 0
}

func (b *BCD) digit(k int) uint8 {
	i, high := locate(k)
	if high {
		return b.data[i] >> 4
	}

	return b.data[i] & lowMask
}

// Append inserts d as the new most significant digit.
func (b *BCD) Append(d uint8) error {
	if d > 9 {
		return Error.New("%w: %d", ErrOutOfRange, d)
	}
	b.init()

	i, high := locate(b.total)
	switch {
	case high:
		b.data[i] = d<<4 | b.data[i]&lowMask
	default:
		b.data = append(b.data, End<<4|d)
	}

	b.total++

	return nil
}

// Pop removes and returns the most recently appended digit. It returns false
// when the store holds no digit.
func (b *BCD) Pop() (d uint8, ok bool) {
	if b.total == 0 {
		return 0, false
	}

	k := b.total - 1
	i, high := locate(k)
	if high {
		d = b.data[i] >> 4
		b.data[i] = End<<4 | b.data[i]&lowMask
	} else {
		d = b.data[i] & lowMask
		b.data = b.data[:i]
	}

	b.total--

	return d, true
}

// Reset removes every digit but keeps the sign.
func (b *BCD) Reset() {
	b.init()
	b.data = append(b.data[:0], End<<4|b.data[0]&lowMask)
	b.total = 0
}

// SetNegative sets the negative sign.
func (b *BCD) SetNegative() {
	b.init()
	b.data[0] = b.data[0]&highMask | Negative
}

// SetPositive sets the positive sign.
func (b *BCD) SetPositive() {
	b.init()
	b.data[0] = b.data[0]&highMask | Positive
}

// IsNegative reports whether the negative sign is set.
func (b *BCD) IsNegative() bool {
	b.init()
	return b.data[0]&lowMask == Negative
}

// HasSign reports whether either sign is set.
func (b *BCD) HasSign() bool {
	b.init()
	s := b.data[0] & lowMask

	return s == Positive || s == Negative
}

// IsEmpty reports whether no digit was appended.
func (b *BCD) IsEmpty() bool {
	return b.total == 0
}

// Len returns the number of digits.
func (b *BCD) Len() int {
	return b.total
}

// Size returns the number of bytes used by the packed form.
func (b *BCD) Size() int {
	b.init()
	return len(b.data)
}

// Any reports whether some digit is not zero.
func (b *BCD) Any() bool {
	it := b.Iter()
	for {
		d, ok := it.Next()
		if !ok {
			return false
		}
		if d != 0 {
			return true
		}
	}
}

// Digits returns the digits most significant first.
func (b *BCD) Digits() []uint8 {
	out := make([]uint8, 0, b.total)

	it := b.Iter()
	for {
		d, ok := it.Prev()
		if !ok {
			return out
		}
		out = append(out, d)
	}
}

// Clone returns a deep copy.
func (b *BCD) Clone() *BCD {
	b.init()

	return &BCD{
		data:  append([]byte(nil), b.data...),
		total: b.total,
	}
}

// Equal reports whether both stores hold the same digits and sign.
func (b *BCD) Equal(o *BCD) bool {
	b.init()
	o.init()

	if b.total != o.total || len(b.data) != len(o.data) {
		return false
	}

	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String returns the sign followed by the digits, most significant first.
func (b *BCD) String() string {
	b.init()

	sb := &strings.Builder{}

	switch b.data[0] & lowMask {
	case Positive:
		sb.WriteByte('+')
	case Negative:
		sb.WriteByte('-')
	default:
		sb.WriteByte('?')
	}

	for _, d := range b.Digits() {
		sb.WriteByte('0' + d)
	}

	return sb.String()
}
