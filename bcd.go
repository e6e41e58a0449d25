// Package bcd computes exact decimal arithmetic on literals.
//
// Numbers are held as packed binary coded decimal digits (package packed),
// either as Integers or as pure Decimal fractions (package number). Reals
// (package decimal) join the two around the decimal point.
//
//  out, err := bcd.Compute(bcd.OpMul, "33.0", "20.5") // "676.5"
//
package bcd

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/bcd/decimal"
)

// Error is the error class for this package.
var Error = errs.Class("bcd")

// Op is a binary operator.
type Op byte

// Operators.
const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

func (op Op) String() string {
	return string(op)
}

// ParseOp returns the operator written as s.
func ParseOp(s string) (op Op, err error) {
	if len(s) == 1 {
		switch op = Op(s[0]); op {
		case OpAdd, OpSub, OpMul, OpDiv:
			return op, nil
		}
	}

	return 0, Error.New("unknown operator %q", s)
}

// Apply returns a op b.
func (op Op) Apply(a, b *decimal.Real) (r *decimal.Real, err error) {
	switch op {
	case OpAdd:
		return decimal.Add(a, b)
	case OpSub:
		return decimal.Sub(a, b)
	case OpMul:
		return decimal.Mul(a, b)
	case OpDiv:
		return decimal.Div(a, b)
	}

	return nil, Error.New("unknown operator %q", byte(op))
}

// Compute parses a and b as reals, applies op and renders the result.
func Compute(op Op, a, b string) (out string, err error) {
	defer Error.WrapP(&err)

	x, err := decimal.Parse(a)
	if err != nil {
		return "", err
	}

	y, err := decimal.Parse(b)
	if err != nil {
		return "", err
	}

	r, err := op.Apply(x, y)
	if err != nil {
		return "", err
	}

	return r.String(), nil
}
