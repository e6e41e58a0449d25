package bcd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bcd/number"
)

func TestCompute(t *testing.T) {
	type TC struct {
		op   string
		a, b string
		out  string
		err  error
	}

	tcs := []TC{
		{op: "*", a: "33.0", b: "20.5", out: "676.5"},
		{op: "-", a: "-5.5", b: "-6.5", out: "1.0"},
		{op: "-", a: "5.5", b: "6.5", out: "-1.0"},
		{op: "-", a: "0", b: "1", out: "-1.0"},
		{op: "+", a: "999999999999999.999999999999999998", b: "000000000000000.000000000000000002", out: "1000000000000000.0"},
		{op: "/", a: "1", b: "8", out: "0.125"},
		{op: "/", a: "1", b: "3", err: number.ErrNonTerminating},
		{op: "/", a: "1", b: "0", err: number.ErrDivisionByZero},
		{op: "+", a: "1.5.", b: "1", err: number.ErrInvalidCharacter},
		{op: "+", a: "1", b: "+1", err: number.ErrInvalidCharacter},
		{op: "%", a: "1", b: "1", err: oops.New("unknown operator")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s%s%s", i, tc.a, tc.op, tc.b), func(t *testing.T) {
			op, err := ParseOp(tc.op)
			if err != nil {
				require.NotNil(t, tc.err)
				require.True(t, Error.Has(err))
				return
			}

			out, err := Compute(op, tc.a, tc.b)
			if tc.err != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.err), "%+v", err)
				require.True(t, Error.Has(err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.out, out)
		})
	}
}

func TestParseOp(t *testing.T) {
	for _, s := range []string{"+", "-", "*", "/"} {
		op, err := ParseOp(s)
		require.NoError(t, err)
		require.Equal(t, s, op.String())
	}

	for _, s := range []string{"", "++", "x"} {
		_, err := ParseOp(s)
		require.Error(t, err)
	}
}
