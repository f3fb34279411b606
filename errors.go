package attmath

import "github.com/pkg/errors"

var (
	// ErrUnknownEulerSequence is returned for an Euler sequence tag outside the 12 supported sequences.
	ErrUnknownEulerSequence = errors.New("attmath: unknown euler sequence")

	// ErrNotOrthonormal is returned by the validating DCM constructor when the
	// matrix is not a proper rotation matrix.
	ErrNotOrthonormal = errors.New("attmath: matrix is not orthonormal")

	// ErrSingularMatrix is returned when a matrix cannot be inverted.
	ErrSingularMatrix = errors.New("attmath: matrix is singular")

	// ErrIndexOutOfRange is the panic value of the indexers.
	ErrIndexOutOfRange = errors.New("attmath: index out of range")
)
