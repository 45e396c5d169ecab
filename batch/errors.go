package batch

import "errors"

var (
	// ErrNilReference indicates New was called without a reference dataset.
	ErrNilReference = errors.New("batch: reference dataset is nil")

	// ErrBadBatchSize indicates a batch size below 1.
	ErrBadBatchSize = errors.New("batch: batch size must be ≥ 1")

	// ErrExhausted indicates Next was called on a finished stream.
	// Streams do not restart; request a new stream to iterate again.
	ErrExhausted = errors.New("batch: stream exhausted")
)
