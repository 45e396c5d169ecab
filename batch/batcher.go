package batch

import (
	"golang.org/x/exp/rand"

	"github.com/LukasMut/jack/dataset"
	"github.com/LukasMut/jack/lexicon"
)

// AtomicBatcher owns the two lexicons built from a reference dataset
// and a private, seeded random source for negative sampling. The
// lexicons are frozen at construction; texts seen later that are absent
// from them fail the stream rather than extend the vocabulary.
type AtomicBatcher struct {
	reference  *dataset.Dataset
	questions  *lexicon.Frozen
	candidates *lexicon.Frozen
	rng        *rand.Rand
}

// New builds an AtomicBatcher from reference: the candidate lexicon
// from the global candidate texts, the question lexicon from the
// distinct question texts of the instances, and a sampler seeded with
// seed. reference is validated before any lexicon is built; structural
// errors from dataset.Validate propagate unchanged.
func New(reference *dataset.Dataset, seed uint64) (*AtomicBatcher, error) {
	if reference == nil {
		return nil, ErrNilReference
	}
	if err := reference.Validate(); err != nil {
		return nil, err
	}

	candidateTexts := make([]string, 0, len(reference.Globals.Candidates))
	for _, c := range reference.Globals.Candidates {
		candidateTexts = append(candidateTexts, c.Text)
	}
	questionTexts := make([]string, 0, len(reference.Instances))
	for _, inst := range reference.Instances {
		questionTexts = append(questionTexts, inst.First().Question)
	}

	return &AtomicBatcher{
		reference:  reference,
		questions:  lexicon.New(questionTexts),
		candidates: lexicon.New(candidateTexts),
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// QuestionLexicon returns the frozen question lexicon.
func (ab *AtomicBatcher) QuestionLexicon() *lexicon.Frozen { return ab.questions }

// CandidateLexicon returns the frozen candidate lexicon.
func (ab *AtomicBatcher) CandidateLexicon() *lexicon.Frozen { return ab.candidates }

// NumQuestions returns the number of distinct question symbols.
func (ab *AtomicBatcher) NumQuestions() int { return ab.questions.Size() }

// NumCandidates returns the number of distinct candidate symbols.
func (ab *AtomicBatcher) NumCandidates() int { return ab.candidates.Size() }

// Batches returns a lazy, finite, non-restartable stream of batches
// over data. A nil data falls back to the reference dataset supplied at
// construction. Instances are windowed per the policy documented in the
// package comment. Returns ErrBadBatchSize if opts.BatchSize < 1.
//
// Negative ids are drawn from the batcher's private sampler, so streams
// created from one batcher share its deterministic draw sequence.
func (ab *AtomicBatcher) Batches(data *dataset.Dataset, opts Options) (*Stream, error) {
	if opts.BatchSize < 1 {
		return nil, ErrBadBatchSize
	}
	instances := ab.reference.Instances
	if data != nil {
		instances = data.Instances
	}

	return &Stream{batcher: ab, instances: instances, batchSize: opts.BatchSize}, nil
}
