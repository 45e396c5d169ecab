package lexicon_test

import (
	"testing"

	"github.com/LukasMut/jack/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_DeduplicatesAndSorts verifies that duplicates collapse and
// ids follow sorted lexical order.
func TestNew_DeduplicatesAndSorts(t *testing.T) {
	lex := lexicon.New([]string{"Paris", "Berlin", "Paris", "Amsterdam"})

	require.Equal(t, 3, lex.Size(), "duplicates must collapse")

	id, err := lex.ID("Amsterdam")
	require.NoError(t, err)
	assert.Equal(t, 0, id, "lexically smallest symbol gets id 0")

	id, err = lex.ID("Berlin")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = lex.ID("Paris")
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

// TestNew_DeterministicAcrossInputOrder verifies the mapping depends on
// the symbol set as a value, not on input ordering.
func TestNew_DeterministicAcrossInputOrder(t *testing.T) {
	a := lexicon.New([]string{"x", "y", "z"})
	b := lexicon.New([]string{"z", "x", "y", "x"})

	require.Equal(t, a.Size(), b.Size())
	for id := 0; id < a.Size(); id++ {
		sa, err := a.Symbol(id)
		require.NoError(t, err)
		sb, err := b.Symbol(id)
		require.NoError(t, err)
		assert.Equal(t, sa, sb, "id %d must map to the same symbol", id)
	}
}

// TestFrozen_Bijection round-trips every symbol and every id.
func TestFrozen_Bijection(t *testing.T) {
	symbols := []string{"alpha", "beta", "gamma", "delta"}
	lex := lexicon.New(symbols)

	for _, s := range symbols {
		id, err := lex.ID(s)
		require.NoError(t, err)
		back, err := lex.Symbol(id)
		require.NoError(t, err)
		assert.Equal(t, s, back, "Symbol(ID(s)) must return s")
	}
	for id := 0; id < lex.Size(); id++ {
		s, err := lex.Symbol(id)
		require.NoError(t, err)
		back, err := lex.ID(s)
		require.NoError(t, err)
		assert.Equal(t, id, back, "ID(Symbol(id)) must return id")
	}
}

// TestFrozen_UnknownSymbol verifies lookups of absent symbols fail with
// ErrUnknownSymbol rather than a silent default.
func TestFrozen_UnknownSymbol(t *testing.T) {
	lex := lexicon.New([]string{"known"})

	_, err := lex.ID("unknown")
	assert.ErrorIs(t, err, lexicon.ErrUnknownSymbol)
}

// TestFrozen_IDOutOfRange verifies invalid inverse lookups fail with
// ErrIDOutOfRange.
func TestFrozen_IDOutOfRange(t *testing.T) {
	lex := lexicon.New([]string{"a", "b"})

	_, err := lex.Symbol(-1)
	assert.ErrorIs(t, err, lexicon.ErrIDOutOfRange)

	_, err = lex.Symbol(2)
	assert.ErrorIs(t, err, lexicon.ErrIDOutOfRange)
}

// TestNew_Empty verifies an empty construction set yields a usable,
// zero-size lexicon.
func TestNew_Empty(t *testing.T) {
	lex := lexicon.New(nil)

	assert.Equal(t, 0, lex.Size())
	_, err := lex.ID("anything")
	assert.ErrorIs(t, err, lexicon.ErrUnknownSymbol)
	_, err = lex.Symbol(0)
	assert.ErrorIs(t, err, lexicon.ErrIDOutOfRange)
}
