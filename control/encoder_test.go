package control_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bcd/control"
)

func shortName(i int, data []byte) string {
	sb := &strings.Builder{}

	sb.WriteString(fmt.Sprintf("%02d/", i))

	if len(data) == 0 {
		sb.WriteString("(len=0)")

		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%02x", data[0]))
	prev := data[0]
	var dots bool

	for i, b := range data[1:] {
		if len(data) > 16 && prev == b {
			if !dots {
				sb.WriteString("..")
				dots = true
			}

			continue
		}

		if (i+1)%2 == 0 {
			sb.WriteString("_")
		}

		sb.WriteString(fmt.Sprintf("%02x", b))
		prev = b
		dots = false
	}

	sb.WriteString(fmt.Sprintf("(len=%d)", len(data)))

	return sb.String()
}

type dataTC struct {
	Input  []byte
	Output []byte
	Mark   error
}

var dataTCs = []dataTC{
	{
		Input:  []byte{0b_0000_0000},
		Output: []byte{0b_1000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0111_1100},
		Output: []byte{0b_1111_1100},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_1000_0000},
		Output: []byte{0b_0100_0000, 0b_1000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0000_1100, 0b_1011_0001},
		Output: []byte{0b_0010_1100, 0b_1011_0001},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0001_0000, 0b_0000_0000},
		Output: []byte{0b_0011_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0010_1100, 0b_1011_0100},
		Output: []byte{0b_0100_0001, 0b_0010_1100, 0b_1011_0100},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
		Output: []byte{0b_0001_1000, 0b_0000_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
		Output: []byte{0b_0100_0010, 0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  make([]byte, 4),
		Output: append([]byte{0b_0100_0011}, make([]byte, 4)...),
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  make([]byte, 64),
		Output: append([]byte{0b_0111_1111}, make([]byte, 64)...),
		Mark:   oops.New("unexpected"),
	},
	{
		Input:  make([]byte, 65),
		Output: append([]byte{0b_0000_1000, 0b_0100_0000}, make([]byte, 65)...),
		Mark:   oops.New("unexpected"),
	},
	{
		Input: make([]byte, 1024),
		Output: append(
			[]byte{0b_0000_1001, 0b_0000_0011, 0b_1111_1111},
			make([]byte, 1024)...,
		),
		Mark: oops.New("unexpected"),
	},
}

func TestEncoder(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		for i, tc := range dataTCs {
			t.Run(shortName(i, tc.Output), func(t *testing.T) {
				output := &bytes.Buffer{}
				e := control.NewEncoder(output)

				err := e.Data(tc.Input)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, len(tc.Output), len(output.Bytes()), tc.Mark)
				require.Equal(t, tc.Output, output.Bytes(), tc.Mark)
				require.Equal(t, uint64(len(tc.Output)), e.Written(), tc.Mark)
			})
		}
	})

	t.Run("empty", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := control.NewEncoder(output)

		err := e.Data(nil)
		require.Error(t, err)
		require.True(t, control.Error.Has(err))
		require.Equal(t, 0, output.Len())
	})

	t.Run("writer", func(t *testing.T) {
		mark := errors.New("full")

		e := control.NewEncoder(failWriter{mark})

		err := e.Data([]byte{0b_0000_0001})
		require.Error(t, err)
		require.True(t, errors.Is(err, mark))
	})
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (n int, err error) {
	return 0, w.err
}
