// Package dataset defines the explicit schema for multiple-choice QA
// datasets and a validating JSON decoder for it.
//
// What:
//
//   - Dataset mirrors the on-disk JSON shape: a globals block with the
//     closed candidate vocabulary, and a list of instances, each with
//     questions and labeled answers.
//   - Decode reads and validates a dataset in one step; Validate can be
//     run on an already-assembled value.
//
// Why:
//
//   - The batching core must never parse loosely-shaped maps: structural
//     problems (a missing question, an instance without answers) are
//     caught here, at the load boundary, before any lexicon is built.
//   - Only the first question and the first answer of each instance are
//     consumed downstream; additional entries are carried but ignored.
//
// Errors:
//
//   - ErrNoCandidates: the globals block has no candidates.
//   - ErrNoQuestion: an instance has no questions, or an empty question text.
//   - ErrNoAnswer: an instance's first question has no answers, or an
//     empty answer text.
//
// Validation is all-or-nothing: a dataset that fails Validate must not
// be handed to the batcher.
package dataset
