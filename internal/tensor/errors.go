package tensor

import "errors"

// Argument-validation errors. All are reported to the caller before any view
// or storage state is mutated; a failed call leaves no partially-applied
// state behind.
var (
	// ErrNilSizes is returned when a resize is requested with a nil size
	// sequence.
	ErrNilSizes = errors.New("invalid size: nil size sequence")

	// ErrStrideLength is returned when a supplied stride sequence does not
	// match the size sequence's length.
	ErrStrideLength = errors.New("invalid stride: length mismatch with sizes")

	// ErrDimOutOfRange is returned for a dimension index outside a view's
	// current rank (or outside the insertable range, for Unsqueeze1d).
	ErrDimOutOfRange = errors.New("dimension out of range")

	// ErrInvalidOffset is returned for a negative storage offset.
	ErrInvalidOffset = errors.New("invalid storage offset")

	// ErrUnsqueezeEmpty is returned when unsqueezing a rank-0 view.
	ErrUnsqueezeEmpty = errors.New("cannot unsqueeze empty tensor")
)
