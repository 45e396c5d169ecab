// Package reader assembles a trainable multiple-choice reader: one
// atomic batcher plus the embedding/scoring/loss graph over its two
// lexicons.
//
// What:
//
//   - Reader binds a batcher, a question embedding table, and a
//     candidate embedding table, and exposes the scores and loss
//     computations over a batch. It adds no semantics of its own beyond
//     shape consistency.
//   - New looks a construction strategy up by name in a fixed registry;
//     "model_f" (dot-product of dense question and candidate embeddings)
//     is the only registered strategy.
//
// Why:
//
//   - The training driver should select models by configuration string,
//     not by compile-time wiring, mirroring how experiments are launched.
//
// Errors:
//
//   - ErrUnknownModel: New was given a name absent from the registry.
//   - ErrBadReprDim: a non-positive embedding width.
//   - Construction also propagates batcher and dataset errors unchanged.
package reader
