// Package batch converts a QA dataset into lexicons and a lazy stream
// of fixed-size numeric batches for the scoring graph.
//
// What:
//
//   - AtomicBatcher builds two frozen lexicons from a reference dataset
//     (question texts, global candidate texts) and owns a seeded random
//     source for negative sampling.
//   - Batches returns a Stream: a finite, non-restartable sequence of
//     Batch values. Each batch pairs every question with its observed
//     positive candidate and one uniformly sampled negative candidate.
//
// Batching policy (explicit, not incidental):
//
//   - Instances are cut into consecutive, non-overlapping windows of
//     exactly BatchSize; trailing instances that do not fill a full
//     window are dropped. With L instances a stream yields exactly
//     L/BatchSize batches.
//   - Candidate slot 0 is always the positive; TargetValues is always
//     (1.0, 0.0) for every element.
//   - The negative is drawn with replacement from [0, NumCandidates())
//     and may coincide with the positive id; no exclusion rule is
//     applied.
//   - Options.Eval is accepted but does not change sampling behavior.
//
// Why:
//
//   - Reproducibility: the sampler is owned by the batcher and seeded at
//     construction, never shared global state; the same seed replays the
//     same negatives.
//   - A closed vocabulary: texts absent from the lexicons fail the
//     stream with lexicon.ErrUnknownSymbol instead of being mapped to a
//     silent default.
//
// Complexity:
//
//   - New:     O(C + Q log Q + C log C) over candidates and questions.
//   - Next:    O(B) per batch.
//
// Errors:
//
//   - ErrNilReference: New was given a nil reference dataset.
//   - ErrBadBatchSize: Batches was given a batch size < 1.
//   - ErrExhausted: Next was called after the final full window.
//   - lexicon.ErrUnknownSymbol: a question or answer text at batch time
//     is absent from its lexicon (propagated, fatal to the stream's caller).
//
// The batcher's random source is not safe for concurrent use; streams
// from one batcher must be consumed from a single goroutine unless
// externally synchronized.
package batch
