package lexicon_test

import (
	"fmt"

	"github.com/LukasMut/jack/lexicon"
)

// ExampleNew demonstrates that ids are dense, zero-based, and assigned
// in sorted lexical order regardless of input order.
func ExampleNew() {
	lex := lexicon.New([]string{"Paris", "Berlin", "Paris"})

	for id := 0; id < lex.Size(); id++ {
		s, _ := lex.Symbol(id)
		fmt.Printf("%d → %s\n", id, s)
	}
	// Output:
	// 0 → Berlin
	// 1 → Paris
}
