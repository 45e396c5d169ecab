package dataset

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a JSON dataset from r and validates its structure.
// Returns a structural sentinel error (ErrNoCandidates, ErrNoQuestion,
// ErrNoAnswer) or a JSON decoding error; no partially-valid dataset is
// ever returned.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// Validate checks the structural invariants the batcher relies on:
// at least one global candidate, and for every instance a non-empty
// first question with a non-empty first answer. Fails on the first
// violation; no partial construction is attempted downstream.
func (d *Dataset) Validate() error {
	if len(d.Globals.Candidates) == 0 {
		return ErrNoCandidates
	}
	for i, c := range d.Globals.Candidates {
		if c.Text == "" {
			return fmt.Errorf("%w: candidate %d has empty text", ErrNoCandidates, i)
		}
	}
	for i, inst := range d.Instances {
		if len(inst.Questions) == 0 || inst.Questions[0].Question == "" {
			return fmt.Errorf("%w: instance %d", ErrNoQuestion, i)
		}
		q := inst.Questions[0]
		if len(q.Answers) == 0 || q.Answers[0].Text == "" {
			return fmt.Errorf("%w: instance %d", ErrNoAnswer, i)
		}
	}

	return nil
}
