package integer

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bcd/number"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  *Block
		data []byte
	}

	tcs := []TC{
		{
			name: "+0",
			blk: &Block{
				Value: []byte{
					0b0000_0000,
				},
			},
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "-1",
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: true,
			},
			data: []byte{
				0b0000_0011,
			},
		},
		{
			name: "+127",
			blk: &Block{
				Value: []byte{
					0b0111_1111,
				},
			},
			data: []byte{
				0b1111_1110,
			},
		},
		{
			name: "+300",
			blk: &Block{
				Value: []byte{
					0b0000_0001,
					0b0010_1100,
				},
			},
			data: []byte{
				0b0000_0010,
				0b0101_1000,
			},
		},
		{
			name: "-65535",
			blk: &Block{
				Value: []byte{
					0b1111_1111,
					0b1111_1111,
				},
				Negative: true,
			},
			data: []byte{
				0b0000_0001,
				0b1111_1111,
				0b1111_1111,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				// The case name must match the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Equal(t, 0, i.Cmp(blk.Big()))
				require.Equal(t, *blk, FromBig(i))
			})
		})
	}

	require.Error(t, (&Block{}).UnmarshalBinary(nil))
}

func TestNumber(t *testing.T) {
	type TC struct {
		text string
		blk  Block
	}

	tcs := []TC{
		{text: "0", blk: Block{Value: []byte{0}}},
		{text: "-7", blk: Block{Value: []byte{7}, Negative: true}},
		{text: "1200", blk: Block{Value: []byte{0x04, 0xB0}}},
		{text: "-65535", blk: Block{Value: []byte{0xFF, 0xFF}, Negative: true}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.text), func(t *testing.T) {
			n := number.MustParse(tc.text)

			blk, err := FromNumber(n)
			require.NoError(t, err)
			require.Equal(t, tc.blk, blk)

			back, err := blk.Number()
			require.NoError(t, err)
			require.True(t, n.Equal(back))
			require.Equal(t, tc.text, back.Literal())
		})
	}

	_, err := FromNumber(number.MustParse("0.5"))
	require.True(t, errors.Is(err, number.ErrTypeMismatch))
}

func TestInt64(t *testing.T) {
	v, err := FromInt64(-42).Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)

	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	_, err = FromBig(huge).Int64()
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func BenchmarkMarshal(b *testing.B) {
	blk, err := FromNumber(number.MustParse("-123456789012345678901234567890"))
	if err != nil {
		b.Fatalf("%+v", err)
	}

	for n := 0; n < b.N; n++ {
		_, err := blk.MarshalBinary()
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
