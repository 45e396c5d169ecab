// Package model implements the numeric operations of the reader:
// dense embedding lookup, dot-product scoring, and softmax
// cross-entropy loss, all over gonum dense matrices.
//
// What:
//
//   - Embedding owns a trainable (vocabSize × reprDim) lookup table,
//     initialised from a standard normal distribution with an explicit,
//     caller-supplied random source.
//   - DotProductScores broadcasts each question vector across the
//     candidate slots and produces one scalar score per (instance,
//     slot) pair. No normalisation is applied.
//   - SoftmaxCrossEntropy treats each score row as logits over the
//     candidate slots and returns one loss per instance; aggregation
//     over the batch is the caller's decision.
//
// Why:
//
//   - These operations are pure apart from reading (and, for the
//     optimiser, writing) the embedding tables, so they compose into a
//     data-dependency graph the trainer can differentiate analytically.
//   - The log-sum-exp formulation keeps the loss finite for large
//     logits.
//
// Complexity (B instances, C slots, D dimensions, V symbols):
//
//   - NewEmbedding:        O(V·D).
//   - Lookup:              O(B·D).
//   - DotProductScores:    O(B·C·D).
//   - SoftmaxCrossEntropy: O(B·C).
//
// Errors:
//
//   - ErrBadDimensions: a non-positive vocabulary size or embedding width.
//   - ErrBadSymbolID: a lookup id outside [0, vocabSize) — a caller bug,
//     since lexicon ids are dense by construction.
//   - ErrShapeMismatch: operands whose dimensions do not agree.
package model
