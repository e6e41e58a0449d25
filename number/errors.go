package number

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("number")

var (
	// ErrOutOfRange is returned when a value cannot be held by the kind of
	// number requested.
	ErrOutOfRange = errors.New("out of range")

	// ErrTypeMismatch is returned when an operator is applied to an Integer
	// and a Decimal.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOverflow matches every *OverflowError.
	ErrOverflow = errors.New("overflow")

	// ErrInvalidCharacter is returned when parsing text that is not a
	// decimal literal.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidAlignment is returned when two operands cannot be laid
	// out on a common digit range.
	ErrInvalidAlignment = errors.New("invalid alignment")

	// ErrInvalidResult is returned when a computed result breaks the
	// range of its kind.
	ErrInvalidResult = errors.New("invalid result")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonTerminating is returned when an exact quotient has an infinite
	// decimal expansion.
	ErrNonTerminating = errors.New("non terminating quotient")
)

// OverflowError reports a carry (or borrow) out of the most significant digit
// a result can hold. Partial holds the digits that fit.
//
// Decimal sums carry into the units digit and Real uses the error to move the
// carry into its integer part.
type OverflowError struct {
	Partial *Number
	Carry   uint8
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: carry %d out of %s", ErrOverflow, e.Carry, e.Partial)
}

// Is makes errors.Is(err, ErrOverflow) true.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}
