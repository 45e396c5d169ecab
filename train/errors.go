package train

import "errors"

var (
	// ErrBadEpochs indicates an epoch count below 1.
	ErrBadEpochs = errors.New("train: epochs must be ≥ 1")

	// ErrNoBatches indicates the dataset does not fill a single batch at
	// the configured batch size.
	ErrNoBatches = errors.New("train: dataset yields no full batches")
)
