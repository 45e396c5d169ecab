package reader

import (
	"fmt"
	"sort"

	"github.com/LukasMut/jack/dataset"
)

// ModelF is the registry key for the dot-product embedding reader.
const ModelF = "model_f"

// Builder constructs a reader from reference data and options.
type Builder func(reference *dataset.Dataset, opts Options) (*Reader, error)

// registry is the fixed set of construction strategies. Extending it
// means registering here at compile time; there is no runtime mutation.
var registry = map[string]Builder{
	ModelF: NewModelF,
}

// New builds the reader registered under name.
// Returns ErrUnknownModel (listing the known names) for unknown keys.
func New(name string, reference *dataset.Dataset, opts Options) (*Reader, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownModel, name, Models())
	}

	return build(reference, opts)
}

// Models returns the registered model names in sorted order.
func Models() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
