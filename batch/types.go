package batch

// NumSlots is the number of candidate slots per instance: one observed
// positive followed by one sampled negative.
const NumSlots = 2

// Default option values.
const (
	// DefaultBatchSize is the window size used when Options are left at
	// their defaults.
	DefaultBatchSize = 1

	// DefaultSeed seeds the batcher's private sampler when no explicit
	// seed is supplied.
	DefaultSeed uint64 = 0
)

// Batch is one fixed-size group of instances converted to numeric form
// for a single training or scoring step. All three fields have the same
// leading length. Batches are transient values: built per step, never
// persisted.
type Batch struct {
	// QuestionIDs[i] is the question lexicon id of instance i.
	QuestionIDs []int

	// CandidateIDs[i] holds the candidate lexicon ids for instance i:
	// slot 0 the observed positive, slot 1 the sampled negative.
	CandidateIDs [][NumSlots]int

	// TargetValues[i] is the target distribution over the two slots,
	// always (1.0, 0.0): slot 0 is positive by construction.
	TargetValues [][NumSlots]float64
}

// Size returns the number of instances in the batch.
func (b *Batch) Size() int {
	return len(b.QuestionIDs)
}

// Options configures one call to Batches.
//
// Fields:
//   - BatchSize — window size; trailing instances that do not fill a
//     full window are dropped.
//   - Eval      — marks the stream as an evaluation pass. Accepted for
//     API symmetry; sampling behavior is identical in both modes.
type Options struct {
	BatchSize int
	Eval      bool
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{BatchSize: DefaultBatchSize}
}
