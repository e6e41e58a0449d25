package control

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field is read in a way its type does
// not support.
var ErrInvalidOperation = errors.New("invalid operation")
