package ai

import (
	"fmt"

	"github.com/freelancelance17/parrot/internal/parse"
)

// ModelSet is a vendor's recognized-model registry. It is loaded from data
// (an embedded JSON array of model names per vendor package) rather than
// hard-coded, so shipping a new model list is a data change. Lookups are
// default-closed: a model not in the set is rejected.
type ModelSet struct {
	names map[string]struct{}
}

// LoadModelSet decodes a JSON array of model names into a ModelSet. The
// decode is lenient so a hand-edited registry file with minor JSON damage
// still loads.
func LoadModelSet(data []byte) (ModelSet, error) {
	names, err := parse.DecodeLenient[[]string](data)
	if err != nil {
		return ModelSet{}, fmt.Errorf("loading model registry: %w", err)
	}
	set := ModelSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		set.names[name] = struct{}{}
	}
	return set, nil
}

// MustLoadModelSet is LoadModelSet for embedded registry data, panicking on
// error. Vendor packages use it in package variable initialization.
func MustLoadModelSet(data []byte) ModelSet {
	set, err := LoadModelSet(data)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether name is a recognized model.
func (set ModelSet) Contains(name string) bool {
	_, ok := set.names[name]
	return ok
}

// CheckModel resolves spec and reports whether the resolved name is in the
// set. Unresolvable specs are rejected.
func (set ModelSet) CheckModel(spec ModelSpec) bool {
	name, ok := spec.Resolve()
	if !ok {
		return false
	}
	return set.Contains(name)
}
