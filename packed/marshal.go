package packed

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *BCD) MarshalBinary() (data []byte, err error) {
	b.init()

	return append([]byte(nil), b.data...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// The data must be in the layout described in the package documentation and
// carry a sign.
func (b *BCD) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("%w: no data", ErrMalformed)
	}

	sign := data[0] & lowMask
	if sign != Positive && sign != Negative {
		return Error.New("%w: invalid sign nibble %#x", ErrMalformed, sign)
	}

	total := 0

	switch first := data[0] >> 4; {
	case first == End:
		if len(data) != 1 {
			return Error.New("%w: digits after end marker", ErrMalformed)
		}
	case first > 9:
		return Error.New("%w: invalid digit %#x", ErrMalformed, first)
	default:
		total = 1
	}

	for i := 1; i < len(data); i++ {
		lo, hi := data[i]&lowMask, data[i]>>4

		if lo > 9 {
			return Error.New("%w: invalid digit %#x at byte %d", ErrMalformed, lo, i)
		}
		total++

		switch {
		case hi == End && i == len(data)-1:
		case hi == End:
			return Error.New("%w: end marker at byte %d", ErrMalformed, i)
		case hi > 9:
			return Error.New("%w: invalid digit %#x at byte %d", ErrMalformed, hi, i)
		default:
			total++
		}
	}

	b.data = append(b.data[:0], data...)
	b.total = total

	return nil
}
