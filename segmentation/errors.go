package segmentation

import "github.com/pkg/errors"

var (
	// ErrInsufficientPoints is returned when a cloud holds fewer points than the
	// operation's minimum (3 for any plane fit).
	ErrInsufficientPoints = errors.New("insufficient points to fit a plane")

	// ErrInvalidParameter is returned for a non-positive threshold or iteration count.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateGeometry is returned when the points do not determine a stable
	// plane: collinear or coincident input, or a consensus set too small to refit.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
