package arr

import "errors"

// Sentinel errors returned by arr functions.
var (
	// ErrInvalidKey is returned when a value cannot be used as an array key.
	// Only integers and strings (plus the scalars PHP casts to them) are keys.
	ErrInvalidKey = errors.New("arr: key must be an integer or a string")

	// ErrInvalidChunkSize is returned when Chunk is called with size < 1.
	ErrInvalidChunkSize = errors.New("arr: chunk size must be greater than 0")

	// ErrEmptyArray is returned by Rand when the array has no elements.
	ErrEmptyArray = errors.New("arr: array is empty")

	// ErrInvalidRandomCount is returned by Rand when the requested number of
	// elements is outside [1, Len()].
	ErrInvalidRandomCount = errors.New("arr: number of elements must be between 1 and the number of elements in the array")

	// ErrUnsupportedValue is returned by the decoders when the input does not
	// describe an array, and by the encoders for values they cannot represent.
	ErrUnsupportedValue = errors.New("arr: unsupported value")
)
