package sparse

import "errors"

var (
	// ErrInvalidIndex indicates a negative dimension or cell coordinate.
	ErrInvalidIndex = errors.New("sparse: dimensions and indices must be non-negative")
	// ErrDimensionMismatch indicates Add/Sub operands of differing shapes.
	ErrDimensionMismatch = errors.New("sparse: matrices must have identical dimensions")
	// ErrMulDimensionMismatch indicates Mul operands whose inner dimensions differ.
	ErrMulDimensionMismatch = errors.New("sparse: left matrix columns must equal right matrix rows")
	// ErrUnknownOp indicates an operation code Combine does not understand.
	ErrUnknownOp = errors.New("sparse: unknown operation")

	// ErrHeaderMissing indicates a matrix file with fewer than two non-blank lines.
	ErrHeaderMissing = errors.New("sparse: matrix file must declare rows and cols on its first two lines")
	// ErrBadDimension indicates a header line without '=' or with a non-integer value.
	ErrBadDimension = errors.New("sparse: malformed dimension header")
	// ErrBadEntry indicates an entry line that is not a (row, col, value) triple.
	ErrBadEntry = errors.New("sparse: malformed matrix entry")

	// ErrBadDensity indicates a Random fill probability outside [0, 1].
	ErrBadDensity = errors.New("sparse: density must be within [0, 1]")
)
