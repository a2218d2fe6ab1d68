package loco

import "errors"

// Sentinel errors for programmer faults: a caller passing a nil state, image
// or segments argument, or an image with a nil Data slice, is a contract
// violation, not a data fault,
// so Compress and Decompress return one of these rather than trying to
// interpret the call as valid input.
var (
	// ErrNilImage is returned when a required *Image argument is nil.
	ErrNilImage = errors.New("loco: image is nil")

	// ErrNilData is returned when an Image's Data slice is nil.
	ErrNilData = errors.New("loco: image data is nil")

	// ErrNilState is returned when a required scratch-state argument is nil.
	ErrNilState = errors.New("loco: state is nil")

	// ErrNilSegments is returned when a required *CompressedSegments or
	// *CompressedImage argument is nil.
	ErrNilSegments = errors.New("loco: compressed segments data is nil")
)
