package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DotProductScores scores every candidate slot against its question.
// questions is B × D; candidates holds one B × D matrix per slot, where
// candidates[c] row i is the representation of instance i's candidate
// in slot c. The question vector is broadcast across slots: the result
// is B × len(candidates) with Score[i][c] = ⟨questions[i], candidates[c][i]⟩.
// No normalisation is applied.
// Returns ErrShapeMismatch unless every slot matrix matches questions.
func DotProductScores(questions *mat.Dense, candidates []*mat.Dense) (*mat.Dense, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidate slots", ErrShapeMismatch)
	}
	b, d := questions.Dims()
	for c, slot := range candidates {
		sb, sd := slot.Dims()
		if sb != b || sd != d {
			return nil, fmt.Errorf("%w: slot %d is %dx%d, questions are %dx%d",
				ErrShapeMismatch, c, sb, sd, b, d)
		}
	}

	scores := mat.NewDense(b, len(candidates), nil)
	for i := 0; i < b; i++ {
		q := questions.RawRowView(i)
		for c, slot := range candidates {
			scores.Set(i, c, floats.Dot(q, slot.RawRowView(i)))
		}
	}

	return scores, nil
}
