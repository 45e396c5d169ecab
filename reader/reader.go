package reader

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/LukasMut/jack/batch"
	"github.com/LukasMut/jack/dataset"
	"github.com/LukasMut/jack/model"
)

// Default option values; these mirror the training defaults the tool
// ships with.
const (
	// DefaultReprDim is the default embedding width.
	DefaultReprDim = 5

	// DefaultModel is the default registry key.
	DefaultModel = ModelF
)

// Options configures reader construction.
//
// Fields:
//   - ReprDim — embedding width for both tables.
//   - Seed    — seeds both the batcher's negative sampler and the
//     parameter initialiser. The two draw from independent sources, so
//     sampling sequences do not shift when table sizes change.
type Options struct {
	ReprDim int
	Seed    uint64
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{ReprDim: DefaultReprDim, Seed: batch.DefaultSeed}
}

// Reader is the trained unit: a batcher plus the two trainable
// embedding tables, with the scoring and loss graph over them. It holds
// no state beyond these; training mutates the tables in place.
type Reader struct {
	batcher    *batch.AtomicBatcher
	questions  *model.Embedding
	candidates *model.Embedding
}

// NewModelF builds the "model_f" reader: one embedding table per
// lexicon, scores by broadcast dot product, softmax cross-entropy loss.
func NewModelF(reference *dataset.Dataset, opts Options) (*Reader, error) {
	if opts.ReprDim < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadReprDim, opts.ReprDim)
	}
	batcher, err := batch.New(reference, opts.Seed)
	if err != nil {
		return nil, err
	}
	// Independent init source; the batcher owns its own sampling source.
	src := rand.NewSource(opts.Seed)
	questions, err := model.NewEmbedding(batcher.NumQuestions(), opts.ReprDim, src)
	if err != nil {
		return nil, err
	}
	candidates, err := model.NewEmbedding(batcher.NumCandidates(), opts.ReprDim, src)
	if err != nil {
		return nil, err
	}

	return &Reader{batcher: batcher, questions: questions, candidates: candidates}, nil
}

// Batcher returns the reader's atomic batcher.
func (r *Reader) Batcher() *batch.AtomicBatcher { return r.batcher }

// QuestionEmbedding returns the trainable question table.
func (r *Reader) QuestionEmbedding() *model.Embedding { return r.questions }

// CandidateEmbedding returns the trainable candidate table.
func (r *Reader) CandidateEmbedding() *model.Embedding { return r.candidates }

// Scores computes the B × 2 score matrix for b: each question
// representation against its positive (slot 0) and sampled negative
// (slot 1) candidate representations.
func (r *Reader) Scores(b *batch.Batch) (*mat.Dense, error) {
	qReprs, err := r.questions.Lookup(b.QuestionIDs)
	if err != nil {
		return nil, err
	}
	slots, err := r.candidateSlots(b)
	if err != nil {
		return nil, err
	}

	return model.DotProductScores(qReprs, slots)
}

// Loss computes the per-instance softmax cross-entropy of b under the
// current parameters.
func (r *Reader) Loss(b *batch.Batch) ([]float64, error) {
	scores, err := r.Scores(b)
	if err != nil {
		return nil, err
	}

	return model.SoftmaxCrossEntropy(scores, Targets(b))
}

// candidateSlots gathers one B × D representation matrix per candidate
// slot.
func (r *Reader) candidateSlots(b *batch.Batch) ([]*mat.Dense, error) {
	slots := make([]*mat.Dense, batch.NumSlots)
	ids := make([]int, b.Size())
	for c := 0; c < batch.NumSlots; c++ {
		for i := range b.CandidateIDs {
			ids[i] = b.CandidateIDs[i][c]
		}
		slot, err := r.candidates.Lookup(ids)
		if err != nil {
			return nil, err
		}
		slots[c] = slot
	}

	return slots, nil
}

// Targets converts a batch's target values into the B × 2 dense matrix
// the loss consumes.
func Targets(b *batch.Batch) *mat.Dense {
	out := mat.NewDense(b.Size(), batch.NumSlots, nil)
	for i, row := range b.TargetValues {
		out.SetRow(i, row[:])
	}

	return out
}
