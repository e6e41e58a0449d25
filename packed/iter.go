package packed

// Iterator walks the digits of a store from both ends. The two ends are
// independent but never cross: every digit is yielded at most once.
type Iterator struct {
	bcd *BCD
	lo  int
	hi  int
}

// Iter returns an iterator over all digits of b.
func (b *BCD) Iter() *Iterator {
	return &Iterator{
		bcd: b,
		hi:  b.total,
	}
}

// Next returns the next digit starting from the least significant one.
func (it *Iterator) Next() (d uint8, ok bool) {
	if it.lo >= it.hi {
		return 0, false
	}

	d = it.bcd.digit(it.lo)
	if d == End {
		it.lo = it.hi
		return 0, false
	}

	it.lo++

	return d, true
}

// Prev returns the next digit starting from the most significant one.
func (it *Iterator) Prev() (d uint8, ok bool) {
	if it.hi <= it.lo {
		return 0, false
	}

	d = it.bcd.digit(it.hi - 1)
	if d == End {
		it.hi = it.lo
		return 0, false
	}

	it.hi--

	return d, true
}

// Len returns the number of digits not yet yielded.
func (it *Iterator) Len() int {
	return it.hi - it.lo
}
