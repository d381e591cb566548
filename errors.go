package wsp

import "errors"

var (
	// ErrEmptyPointSet is returned when a point set is built from no points.
	ErrEmptyPointSet = errors.New("wsp: point set is empty")

	// ErrZeroDimension is returned when points have no coordinates.
	ErrZeroDimension = errors.New("wsp: points must have at least one dimension")

	// ErrDimensionMismatch is returned when coordinate vectors differ in length.
	ErrDimensionMismatch = errors.New("wsp: inconsistent point dimensions")

	// ErrNaNDistance is returned when the metric yields NaN, which leaves the
	// neighbor ordering undefined.
	ErrNaNDistance = errors.New("wsp: distance is NaN")

	// ErrInvalidOrigin is returned when a walk starts outside the point set.
	ErrInvalidOrigin = errors.New("wsp: origin out of range")

	// ErrInvalidDistance is returned for a NaN elimination threshold.
	ErrInvalidDistance = errors.New("wsp: invalid minimum distance")

	// ErrInvalidCount is returned when random generation is asked for a
	// non-positive number of points or dimensions.
	ErrInvalidCount = errors.New("wsp: count and dimension must be >= 1")
)
