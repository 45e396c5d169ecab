package lexicon

import (
	"fmt"
	"sort"
)

// Frozen is an immutable bijection between a finite set of string
// symbols and the dense integer ids 0..Size()-1.
//
// Construction deduplicates its input and assigns ids in sorted lexical
// order, so two Frozen values built from the same symbol set are
// identical regardless of the order the symbols arrived in. Frozen has
// no mutating methods and is safe for concurrent readers.
type Frozen struct {
	// ids maps symbol → id.
	ids map[string]int
	// symbols is the inverse: symbols[id] holds the symbol for id.
	symbols []string
}

// New builds a Frozen lexicon from symbols. Duplicates are collapsed;
// ids are assigned in sorted lexical order of the distinct symbols.
// Complexity: O(n log n) time, O(n) memory.
func New(symbols []string) *Frozen {
	seen := make(map[string]struct{}, len(symbols))
	distinct := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		distinct = append(distinct, s)
	}
	sort.Strings(distinct)

	ids := make(map[string]int, len(distinct))
	for i, s := range distinct {
		ids[s] = i
	}

	return &Frozen{ids: ids, symbols: distinct}
}

// ID returns the id assigned to symbol.
// Returns ErrUnknownSymbol if symbol was not in the construction set.
// Complexity: O(1).
func (f *Frozen) ID(symbol string) (int, error) {
	id, ok := f.ids[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	return id, nil
}

// Symbol returns the symbol assigned to id, the inverse of ID.
// Returns ErrIDOutOfRange if id is not in [0, Size()).
// Complexity: O(1).
func (f *Frozen) Symbol(id int) (string, error) {
	if id < 0 || id >= len(f.symbols) {
		return "", fmt.Errorf("%w: %d (size %d)", ErrIDOutOfRange, id, len(f.symbols))
	}

	return f.symbols[id], nil
}

// Size returns the number of distinct symbols in the lexicon.
// Complexity: O(1).
func (f *Frozen) Size() int {
	return len(f.symbols)
}
