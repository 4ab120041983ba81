package register

import "errors"

var (
	ErrFieldOverlap   = errors.New("fields overlap")
	ErrFieldRange     = errors.New("field exceeds register width")
	ErrDuplicateField = errors.New("duplicate field")
	ErrIncomplete     = errors.New("fields do not cover the register")
	ErrUnknownField   = errors.New("unknown field")
	ErrAccess         = errors.New("access mode forbids operation")
)
