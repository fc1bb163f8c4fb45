package costmat

import "errors"

var (
	// ErrEmptyMatrix indicates the input has no rows or no columns.
	ErrEmptyMatrix = errors.New("costmat: matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costmat: all rows must have the same length")
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("costmat: dimensions must be > 0")
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("costmat: index out of range")
	// ErrNilMatrix indicates that a nil *Dense was used as receiver or argument.
	ErrNilMatrix = errors.New("costmat: nil matrix")
)
