package ai

// ModelSpec identifies a requested model in one of two shapes: a bare model
// name, or a structured parameter set exposing a "model" field (the form
// agent configurations use). Both shapes resolve through [ModelSpec.Resolve]
// so adapters never duck-type at call sites.
type ModelSpec struct {
	name   string
	params Payload
}

// ModelName builds a ModelSpec from a bare model name.
func ModelName(name string) ModelSpec {
	return ModelSpec{name: name}
}

// ModelParams builds a ModelSpec from a structured parameter set whose
// "model" field carries the model name.
func ModelParams(params Payload) ModelSpec {
	return ModelSpec{params: params}
}

// Resolve returns the model name the spec designates. The second return is
// false when the spec is empty or the structured form lacks a usable
// "model" field.
func (spec ModelSpec) Resolve() (string, bool) {
	if spec.name != "" {
		return spec.name, true
	}
	if spec.params != nil {
		if name, ok := spec.params["model"].(string); ok && name != "" {
			return name, true
		}
	}
	return "", false
}
