package integer

import (
	"io"

	"github.com/calebcase/bcd/control"
)

// Decoder is a decoder.
type Decoder struct {
	cd control.Decoder
}

// NewDecoder returns a new decoder reading one block per control field.
func NewDecoder(cd control.Decoder) *Decoder {
	return &Decoder{
		cd: cd,
	}
}

// Decode parses a block from the reader. It returns io.EOF when no field
// remains.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return Error.Wrap(d.cd.Err())
		}

		return io.EOF
	}

	defer Error.WrapP(&err)

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	return b.UnmarshalBinary(data)
}

// Encoder is an encoder.
type Encoder struct {
	ce control.Encoder
}

// NewEncoder returns a new encoder writing one control field per block.
func NewEncoder(ce control.Encoder) *Encoder {
	return &Encoder{
		ce: ce,
	}
}

// Encode writes a block to the writer.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}
