package termraster

import "errors"

// Status errors. A nil error is the OK status.
var (
	// ErrOutOfBounds is returned when an index or coordinate is outside
	// the valid range of a grid or font table.
	ErrOutOfBounds = errors.New("termraster: out of bounds")

	// ErrInvalidArgument is returned on a dimension mismatch or when a
	// render destination cannot hold the rendered grid.
	ErrInvalidArgument = errors.New("termraster: invalid argument")
)
