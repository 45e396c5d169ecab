// Package lexicon provides frozen, reproducible mappings between string
// symbols and dense integer ids.
//
// What:
//
//   - Frozen is an immutable bijection between a finite set of symbols
//     and the ids 0..Size()-1.
//   - Ids are assigned in sorted lexical order of the deduplicated
//     input, so the mapping depends only on the symbol set as a value,
//     never on slice or map iteration order.
//
// Why:
//
//   - Training experiments must reproduce: the same dataset must yield
//     the same symbol→id mapping on every run, or embeddings and logged
//     ids cannot be compared across runs.
//   - A dense, zero-based id range lets callers index embedding tables
//     directly without holes.
//
// Complexity:
//
//   - New:    O(n log n) time, O(n) memory (n = distinct symbols).
//   - ID:     O(1).
//   - Symbol: O(1).
//   - Size:   O(1).
//
// Errors:
//
//   - ErrUnknownSymbol: ID was called with a symbol absent at construction.
//   - ErrIDOutOfRange: Symbol was called with an id outside [0, Size()).
//
// Frozen is immutable after construction and therefore safe for
// concurrent readers.
package lexicon
