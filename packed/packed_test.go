package packed

import (
	"errors"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAppendLayout(t *testing.T) {
	type TC struct {
		name     string
		digits   []uint8 // in append order (least significant first)
		negative bool
		data     []byte
	}

	tcs := []TC{
		{
			name: "empty",
			data: []byte{
				0b1011_1100,
			},
		},
		{
			name:   "+7",
			digits: []uint8{7},
			data: []byte{
				0b0111_1100,
			},
		},
		{
			name:   "+42",
			digits: []uint8{2, 4},
			data: []byte{
				0b0010_1100,
				0b1011_0100,
			},
		},
		{
			name:     "-1234",
			digits:   []uint8{4, 3, 2, 1},
			negative: true,
			data: []byte{
				0b0100_1101,
				0b0010_0011,
				0b1011_0001,
			},
		},
		{
			name:   "+90109",
			digits: []uint8{9, 0, 1, 0, 9},
			data: []byte{
				0b1001_1100,
				0b0001_0000,
				0b1001_0000,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			b := New()
			if tc.negative {
				b.SetNegative()
			}

			for _, d := range tc.digits {
				require.NoError(t, b.Append(d))
			}

			data, err := b.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, tc.data, data, spew.Sdump(b))
			require.Equal(t, len(tc.data), b.Size())
			require.Equal(t, len(tc.digits), b.Len())
			require.Equal(t, tc.negative, b.IsNegative())
			require.True(t, b.HasSign())

			dec := New()
			require.NoError(t, dec.UnmarshalBinary(data))
			require.True(t, b.Equal(dec))

			if len(tc.digits) > 0 {
				require.Equal(t, tc.name, b.String())
			}
		})
	}
}

func TestAppendOutOfRange(t *testing.T) {
	b := New()
	require.NoError(t, b.Append(9))

	err := b.Append(10)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.True(t, Error.Has(err))
	require.Equal(t, 1, b.Len())
}

func TestPop(t *testing.T) {
	b := New()
	b.SetNegative()

	in := []uint8{1, 2, 3, 4, 5}
	for _, d := range in {
		require.NoError(t, b.Append(d))
	}

	for i := len(in) - 1; i >= 0; i-- {
		d, ok := b.Pop()
		require.True(t, ok)
		require.Equal(t, in[i], d)
		require.Equal(t, i, b.Len())
		require.True(t, b.IsNegative())
	}

	_, ok := b.Pop()
	require.False(t, ok)
	require.True(t, b.IsEmpty())
	require.True(t, b.Equal(func() *BCD {
		e := New()
		e.SetNegative()
		return e
	}()))

	// Popping then appending must reproduce the same bytes.
	require.NoError(t, b.Append(8))
	require.NoError(t, b.Append(6))
	d, ok := b.Pop()
	require.True(t, ok)
	require.Equal(t, uint8(6), d)
	require.NoError(t, b.Append(6))
	require.Equal(t, "-68", b.String())
}

func TestIterator(t *testing.T) {
	b, err := FromDigits([]uint8{1, 2, 3, 4, 5, 6, 7}, false)
	require.NoError(t, err)

	t.Run("next", func(t *testing.T) {
		var got []uint8
		it := b.Iter()
		for {
			d, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, d)
		}
		if diff := cmp.Diff([]uint8{7, 6, 5, 4, 3, 2, 1}, got); diff != "" {
			t.Fatalf("digits mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("prev", func(t *testing.T) {
		if diff := cmp.Diff([]uint8{1, 2, 3, 4, 5, 6, 7}, b.Digits()); diff != "" {
			t.Fatalf("digits mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("both ends", func(t *testing.T) {
		it := b.Iter()
		require.Equal(t, 7, it.Len())

		d, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, uint8(7), d)

		d, ok = it.Prev()
		require.True(t, ok)
		require.Equal(t, uint8(1), d)
		require.Equal(t, 5, it.Len())

		var rest []uint8
		for {
			d, ok := it.Prev()
			if !ok {
				break
			}
			rest = append(rest, d)
		}
		require.Equal(t, []uint8{2, 3, 4, 5, 6}, rest)
		require.Equal(t, 0, it.Len())

		_, ok = it.Next()
		require.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		it := New().Iter()
		require.Equal(t, 0, it.Len())
		_, ok := it.Next()
		require.False(t, ok)
		_, ok = it.Prev()
		require.False(t, ok)
	})
}

func TestAny(t *testing.T) {
	require.False(t, New().Any())

	z, err := FromDigits([]uint8{0, 0, 0}, false)
	require.NoError(t, err)
	require.False(t, z.Any())
	require.False(t, z.IsEmpty())

	nz, err := FromDigits([]uint8{0, 1, 0}, false)
	require.NoError(t, err)
	require.True(t, nz.Any())
}

func TestSign(t *testing.T) {
	b, err := FromDigits([]uint8{5, 0}, true)
	require.NoError(t, err)
	require.True(t, b.IsNegative())

	b.SetPositive()
	require.False(t, b.IsNegative())
	require.True(t, b.HasSign())
	require.Equal(t, []uint8{5, 0}, b.Digits())

	b.Reset()
	require.True(t, b.IsEmpty())
	require.False(t, b.IsNegative())
}

func TestZeroValue(t *testing.T) {
	var b BCD
	require.True(t, b.IsEmpty())
	require.False(t, b.IsNegative())
	require.True(t, b.HasSign())
	require.Equal(t, 1, b.Size())
	require.True(t, b.Equal(New()))

	var n BCD
	n.SetNegative()
	require.True(t, n.IsNegative())
	require.Equal(t, "-", n.String())

	var d BCD
	require.NoError(t, d.Append(4))
	require.NoError(t, d.Append(2))
	require.Equal(t, "+24", d.String())
	require.Equal(t, 2, d.Size())

	var r BCD
	r.Reset()
	data, err := r.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0b1011_1100}, data)
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := FromDigits([]uint8{3, 1, 4}, false)
	require.NoError(t, err)

	c := b.Clone()
	require.True(t, b.Equal(c))

	require.NoError(t, c.Append(1))
	c.SetNegative()
	require.Equal(t, "+314", b.String())
	require.Equal(t, "-1314", c.String())
}

func TestUnmarshalMalformed(t *testing.T) {
	type TC struct {
		name string
		data []byte
	}

	tcs := []TC{
		{name: "no data", data: []byte{}},
		{name: "no sign", data: []byte{0b0001_0000}},
		{name: "bad first digit", data: []byte{0b1010_1100}},
		{name: "digits after empty", data: []byte{0b1011_1100, 0b1011_0001}},
		{name: "bad low digit", data: []byte{0b0001_1100, 0b1011_1010}},
		{name: "bad high digit", data: []byte{0b0001_1100, 0b1111_0001}},
		{name: "early end", data: []byte{0b0001_1100, 0b1011_0001, 0b1011_0001}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			b := New()
			err := b.UnmarshalBinary(tc.data)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformed))
		})
	}
}

func BenchmarkAppendPop(b *testing.B) {
	bcd := WithCapacity(64)

	for n := 0; n < b.N; n++ {
		for i := 0; i < 64; i++ {
			err := bcd.Append(uint8(i % 10))
			if err != nil {
				b.Fatalf("%+v", err)
			}
		}
		for !bcd.IsEmpty() {
			bcd.Pop()
		}
	}
}
