package model

const DEFAULT_MAX_PREDICTIONS int = 5
const DEFAULT_MIN_CONFIDENCE float64 = 0.3
const DEFAULT_MAX_STEPS int = 5

type PredictionOptions struct {
	MaxPredictions   int     `json:"maxPredictions,omitempty"`
	MinConfidence    float64 `json:"minConfidence,omitempty"`
	IncludeTemplates bool    `json:"includeTemplates,omitempty"`
}

// Normalized applies defaults for unset fields. Zero MinConfidence means
// unset; callers wanting an unfiltered result pass a small negative value.
func (o PredictionOptions) Normalized() PredictionOptions {
	if o.MaxPredictions <= 0 {
		o.MaxPredictions = DEFAULT_MAX_PREDICTIONS
	}
	if o.MinConfidence == 0 {
		o.MinConfidence = DEFAULT_MIN_CONFIDENCE
	}
	return o
}

type WorkflowOptions struct {
	MaxSteps           int  `json:"maxSteps,omitempty"`
	PreferEfficiency   bool `json:"preferEfficiency,omitempty"`
	PreferCompleteness bool `json:"preferCompleteness,omitempty"`
}

func (o WorkflowOptions) Normalized() WorkflowOptions {
	if o.MaxSteps <= 0 {
		o.MaxSteps = DEFAULT_MAX_STEPS
	}
	return o
}
