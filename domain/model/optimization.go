package model

// OptimizationMode selects the prompt template and expected output schema.
type OptimizationMode string

const (
	ModeSEO      OptimizationMode = "seo"
	ModeSummary  OptimizationMode = "summary"
	ModeHashtags OptimizationMode = "hashtags"
)

// Valid reports whether the mode is one of the enumerated set.
func (m OptimizationMode) Valid() bool {
	switch m {
	case ModeSEO, ModeSummary, ModeHashtags:
		return true
	}
	return false
}

// OptimizationResult is the structured record parsed from the model response.
// Its key set depends on the mode; field presence is not validated before it
// is returned to the caller.
type OptimizationResult map[string]interface{}

// Prompt is the composed instruction handed to the generative model together
// with its generation budget.
type Prompt struct {
	Instruction string
	SystemRole  string
	MaxTokens   int32
	Temperature float32
}
