package reader

import "errors"

var (
	// ErrUnknownModel indicates a model name absent from the registry.
	ErrUnknownModel = errors.New("reader: unknown model")

	// ErrBadReprDim indicates a non-positive embedding width.
	ErrBadReprDim = errors.New("reader: repr dim must be ≥ 1")
)
