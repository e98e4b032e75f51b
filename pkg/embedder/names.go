package embedder

import "strings"

// VectorNamePrefix is prepended to every derived vector name.
const VectorNamePrefix = "fast-"

// VectorNameForModel derives the vector-space name for a model identifier:
// the last "/"-separated segment, lower-cased, with VectorNamePrefix.
//
//	VectorNameForModel("org/Some-Model") // "fast-some-model"
//	VectorNameForModel("ModelY")         // "fast-modely"
func VectorNameForModel(model string) string {
	name := model
	if i := strings.LastIndex(model, "/"); i >= 0 {
		name = model[i+1:]
	}
	return VectorNamePrefix + strings.ToLower(name)
}
