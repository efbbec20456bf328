package facerecgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/facerecgo/matrix"
)

var (
	// ErrInvalidArgument is returned for malformed input: multi-channel
	// sample matrices, label/sample count mismatches, or operations on an
	// engine that has not computed a subspace yet.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSingularMatrix is returned when the within-class scatter matrix
	// is not invertible. There is no internal recovery; callers decide
	// whether to regularize their data.
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrUnsupportedElementType is returned when an operation encounters
	// an element type outside the supported numeric kinds.
	ErrUnsupportedElementType = errors.New("unsupported element type")
)

// translateError normalizes subpackage errors into the package-level
// error kinds so callers only match against the exported sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, matrix.ErrSingular) {
		return fmt.Errorf("%w: %w", ErrSingularMatrix, err)
	}
	if errors.Is(err, matrix.ErrMultiChannel) || errors.Is(err, matrix.ErrNotOneDimensional) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	var sm *matrix.ErrShapeMismatch
	if errors.As(err, &sm) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	var ir *matrix.ErrIndexOutOfRange
	if errors.As(err, &ir) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
