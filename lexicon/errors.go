package lexicon

import "errors"

var (
	// ErrUnknownSymbol indicates a lookup of a symbol that was not part
	// of the construction set.
	ErrUnknownSymbol = errors.New("lexicon: unknown symbol")

	// ErrIDOutOfRange indicates an inverse lookup with an id outside
	// [0, Size()).
	ErrIDOutOfRange = errors.New("lexicon: id out of range")
)
