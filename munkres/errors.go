package munkres

import "errors"

var (
	// ErrNilMatrix indicates that a nil cost matrix was passed to Solve.
	ErrNilMatrix = errors.New("munkres: cost matrix is nil")
	// ErrNegativeCost is returned when negative entries are present and
	// Options.AllowNegatives is false.
	ErrNegativeCost = errors.New("munkres: negative costs not permitted")
	// ErrNumericOverflow is returned when the negative-cost shift or a matrix
	// adjustment would wrap around int64.
	ErrNumericOverflow = errors.New("munkres: cost adjustment overflows int64")
	// ErrInternal signals that the step engine reached an unknown state.
	// It indicates a bug in this package, not bad input.
	ErrInternal = errors.New("munkres: step engine reached an unknown state")
)
