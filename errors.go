package tin

import "errors"

// Sentinel errors for the public façade.
var (
	// ErrGridTooSmall indicates width or height is less than 2.
	ErrGridTooSmall = errors.New("tin: width and height must each be at least 2")

	// ErrDataLength indicates the sample slice length does not equal width*height.
	ErrDataLength = errors.New("tin: data length must equal width*height")

	// ErrNegativeMaxError indicates a negative maxError was passed to Run.
	ErrNegativeMaxError = errors.New("tin: maxError must be non-negative")

	// ErrBrokenTriangulation indicates a triangle was neither in the heap nor
	// in the pending set when removal was demanded. It signals a programming
	// error in the mesh bookkeeping, not a caller mistake.
	ErrBrokenTriangulation = errors.New("tin: broken triangulation (triangle in neither heap nor pending)")
)
