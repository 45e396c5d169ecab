package dataset

import "errors"

var (
	// ErrNoCandidates indicates the globals block declares no candidate
	// vocabulary.
	ErrNoCandidates = errors.New("dataset: globals block has no candidates")

	// ErrNoQuestion indicates an instance without a usable question.
	ErrNoQuestion = errors.New("dataset: instance has no question")

	// ErrNoAnswer indicates an instance whose first question carries no
	// usable answer.
	ErrNoAnswer = errors.New("dataset: instance has no answer")
)
