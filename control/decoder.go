package control

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads control framed fields.
type Decoder interface {
	Seek() (err error)
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	return d
}

// read fills buf. Running out of input in the middle of a field is
// io.ErrUnexpectedEOF.
func (d *decoder) read(buf []byte) (err error) {
	n, err := io.ReadFull(d.r, buf)
	d.consumed += uint64(n)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return nil
}

// copy moves size bytes of input to w.
func (d *decoder) copy(w io.Writer, size uint64) (err error) {
	if size > math.MaxInt64 {
		return Error.New("unimplemented: size >= 2^63")
	}

	n, err := io.CopyN(w, d.r, int64(size))
	d.consumed += uint64(n)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return nil
}

// Seek moves the reading position to the end of the current field.
func (d *decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.finished || d.t == Unknown {
		return nil
	}

	switch d.t {
	case Data1, Data2:
		// Small enough to just read directly.
		_, err = d.Data()
		if err != nil {
			return err
		}
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.copy(io.Discard, size)
		if err != nil {
			return err
		}
	}

	d.finished = true

	return nil
}

// Next moves to the next field. It returns false at the end of the input or
// on error.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	d.err = d.Seek()
	if d.err != nil {
		return false
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	n, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}

		d.err = Error.Wrap(oops.Trace(err))

		return false
	}
	d.consumed += uint64(n)

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	if t == Data {
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the field.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeBytes := make([]byte, d.value[0]&d.t.Mask+1)

		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, Error.Wrap(oops.Trace(ErrInvalidOperation))
	}

	return d.size, nil
}

// Data reads the data bytes of the field. If the field was already skipped it
// returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if d.data != nil {
		return d.data, nil
	}

	if d.t == Unknown || (d.finished && d.t != Data) {
		return nil, Error.Wrap(oops.Trace(ErrInvalidOperation))
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		data = make([]byte, size)
		data[0] = d.value[0] & d.t.Mask

		err = d.read(data[1:])
		if err != nil {
			return nil, err
		}

		d.data = data
	case DataSize:
		data = make([]byte, size)

		err = d.read(data)
		if err != nil {
			return nil, err
		}

		d.data = data
	case DataSizeSize:
		// Sized by the input; grows as bytes arrive.
		buf := &bytes.Buffer{}

		err = d.copy(buf, size)
		if err != nil {
			return nil, err
		}

		d.data = buf.Bytes()
	}

	d.finished = true

	return d.data, nil
}
