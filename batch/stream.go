package batch

import (
	"fmt"

	"github.com/LukasMut/jack/dataset"
)

// Stream is a lazy, finite sequence of batches over a fixed instance
// slice. It is pull-based and non-restartable: once Next has returned
// ErrExhausted it returns ErrExhausted forever; iterate again by
// requesting a new stream from the batcher.
type Stream struct {
	batcher   *AtomicBatcher
	instances []dataset.Instance
	batchSize int
	// cursor is the index of the next unconsumed instance.
	cursor int
}

// Next produces the next batch, or ErrExhausted once fewer than a full
// window of instances remains (trailing instances are dropped, never
// emitted). A question or answer text absent from its lexicon fails
// with lexicon.ErrUnknownSymbol wrapped with the instance position; the
// stream is left unusable in that case.
func (s *Stream) Next() (*Batch, error) {
	if s.cursor+s.batchSize > len(s.instances) {
		return nil, ErrExhausted
	}
	window := s.instances[s.cursor : s.cursor+s.batchSize]

	b := &Batch{
		QuestionIDs:  make([]int, s.batchSize),
		CandidateIDs: make([][NumSlots]int, s.batchSize),
		TargetValues: make([][NumSlots]float64, s.batchSize),
	}
	for i, inst := range window {
		if len(inst.Questions) == 0 {
			return nil, fmt.Errorf("batch: instance %d: %w", s.cursor+i, dataset.ErrNoQuestion)
		}
		q := inst.First()
		if len(q.Answers) == 0 {
			return nil, fmt.Errorf("batch: instance %d: %w", s.cursor+i, dataset.ErrNoAnswer)
		}
		qid, err := s.batcher.questions.ID(q.Question)
		if err != nil {
			return nil, fmt.Errorf("batch: instance %d: question: %w", s.cursor+i, err)
		}
		pos, err := s.batcher.candidates.ID(q.Answers[0].Text)
		if err != nil {
			return nil, fmt.Errorf("batch: instance %d: answer: %w", s.cursor+i, err)
		}
		// Uniform over the whole candidate vocabulary; may equal pos.
		neg := s.batcher.rng.Intn(s.batcher.candidates.Size())

		b.QuestionIDs[i] = qid
		b.CandidateIDs[i] = [NumSlots]int{pos, neg}
		b.TargetValues[i] = [NumSlots]float64{1.0, 0.0}
	}
	s.cursor += s.batchSize

	return b, nil
}

// Remaining reports how many full batches the stream can still yield.
func (s *Stream) Remaining() int {
	left := len(s.instances) - s.cursor
	if left < 0 {
		return 0
	}

	return left / s.batchSize
}
