// Package jack is an in-memory machine reader for multiple-choice
// question answering: it maps question and candidate strings to dense
// ids, batches instances with sampled negatives, and scores candidates
// against a learned question representation.
//
// 🚀 What is jack?
//
//	A small, deterministic training core that brings together:
//		• lexicon/  — frozen, reproducible symbol↔id bijections
//		• dataset/  — an explicit schema + validating decoder for QA datasets
//		• batch/    — the atomic batcher: lazy, finite batch streams with
//		  seeded negative sampling
//		• model/    — dense embeddings, dot-product scoring, softmax
//		  cross-entropy loss (gonum)
//		• reader/   — the reader aggregate and its model registry
//		• train/    — an epoch driver with an Adam optimiser
//
// ✨ Why jack?
//
//   - Reproducible by construction – every random source is owned and
//     seeded explicitly; lexicon ids are assigned in sorted order, never
//     map-iteration order
//   - Fail-fast – unknown symbols and malformed datasets surface as
//     sentinel errors at the boundary, never as silent defaults
//   - Pure Go numeric core – dense linear algebra via gonum, no cgo
//
// Quick start:
//
//	ds, _ := dataset.Decode(f)
//	rd, _ := reader.New("model_f", ds, reader.DefaultOptions())
//	tr := train.New(rd, train.DefaultOptions())
//	_ = tr.Run(ds)
//
// See cmd/train for the full command-line driver.
package jack
