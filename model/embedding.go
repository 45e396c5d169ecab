package model

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Embedding is a trainable (vocabSize × reprDim) lookup table mapping
// dense symbol ids to representation vectors. The table lives for the
// lifetime of the reader that owns it; the optimiser mutates it in
// place through Weights.
type Embedding struct {
	weights *mat.Dense
	vocab   int
	dim     int
}

// NewEmbedding allocates a vocabSize × reprDim table initialised from
// the standard normal distribution drawn from src. Returns
// ErrBadDimensions unless both sizes are ≥ 1.
func NewEmbedding(vocabSize, reprDim int, src rand.Source) (*Embedding, error) {
	if vocabSize < 1 || reprDim < 1 {
		return nil, fmt.Errorf("%w: got vocab=%d, dim=%d", ErrBadDimensions, vocabSize, reprDim)
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	data := make([]float64, vocabSize*reprDim)
	for i := range data {
		data[i] = normal.Rand()
	}

	return &Embedding{
		weights: mat.NewDense(vocabSize, reprDim, data),
		vocab:   vocabSize,
		dim:     reprDim,
	}, nil
}

// Lookup gathers the rows for ids into a len(ids) × reprDim matrix.
// Returns ErrBadSymbolID if any id falls outside [0, VocabSize()).
func (e *Embedding) Lookup(ids []int) (*mat.Dense, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty id list", ErrShapeMismatch)
	}
	out := mat.NewDense(len(ids), e.dim, nil)
	for i, id := range ids {
		if id < 0 || id >= e.vocab {
			return nil, fmt.Errorf("%w: %d (vocab %d)", ErrBadSymbolID, id, e.vocab)
		}
		out.SetRow(i, e.weights.RawRowView(id))
	}

	return out, nil
}

// Weights exposes the underlying table for the optimiser. Mutating it
// is how training happens; concurrent readers must not overlap with a
// mutating optimiser step.
func (e *Embedding) Weights() *mat.Dense { return e.weights }

// VocabSize returns the number of rows in the table.
func (e *Embedding) VocabSize() int { return e.vocab }

// ReprDim returns the embedding width.
func (e *Embedding) ReprDim() int { return e.dim }
