package control

import (
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

// Encoder writes control framed fields.
type Encoder interface {
	Data(data []byte) (err error)
	Written() uint64
}

type encoder struct {
	w io.Writer

	written uint64
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

func (e *encoder) write(data []byte) (err error) {
	n, err := e.w.Write(data)
	e.written += uint64(n)
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return nil
}

// Data writes data as a single field using the smallest block type that can
// hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		return e.write(append(
			[]byte{DataSize.Prefix | byte(size-1)},
			data...,
		))
	case uint64(size) <= math.MaxInt64:
		s := new(big.Int).SetUint64(uint64(size - 1))
		sb := s.Bytes()

		err = e.write(append(
			[]byte{DataSizeSize.Prefix | byte(len(sb)-1)},
			sb...,
		))
		if err != nil {
			return err
		}

		return e.write(data)
	}

	return Error.New("unimplemented: size>2^63")
}

func (e *encoder) Written() uint64 {
	return e.written
}
