package predictor

import (
	"sort"
	"time"

	"github.com/foresight-io/foresight/logger"
	"github.com/foresight-io/foresight/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Candidate is the shared intermediate shape every rule family produces.
// The Set pools candidates from all predictors before ranking.
type Candidate struct {
	Action       string
	EntityType   model.EntityType
	EntityId     string
	Confidence   float64
	Impact       string
	Minutes      int
	Priority     string
	Evidence     string
	Alternatives []string
}

// Predictor proposes candidates from a single signal source. Unknown entity
// types or unmatched patterns contribute zero candidates, never an error.
type Predictor interface {
	Name() string
	Candidates(pctx model.PredictionContext) []Candidate
	GenerateSuggestions(pctx model.PredictionContext, opts model.PredictionOptions) []model.Suggestion
}

// Set composes the tagged predictor implementations. A malfunctioning
// member is isolated: its panic is recovered and it contributes nothing,
// the remaining members still run.
type Set struct {
	members []Predictor
	clock   func() time.Time
}

func NewSet(clock func() time.Time, members ...Predictor) *Set {
	if clock == nil {
		clock = time.Now
	}
	if len(members) == 0 {
		members = []Predictor{
			NewEntityPredictor(),
			NewSequencePredictor(),
			NewTimeOfDayPredictor(),
			NewIntentPredictor(),
		}
	}
	return &Set{members: members, clock: clock}
}

func (s *Set) collect(p Predictor, pctx model.PredictionContext) (out []Candidate) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("predictor failed, skipping", zap.String("predictor", p.Name()), zap.Any("cause", r))
			out = nil
		}
	}()
	return p.Candidates(pctx)
}

// PredictNextActions pools candidates from every member, deduplicates by
// action plus entity type keeping the first occurrence, drops candidates
// below MinConfidence, orders by descending confidence and truncates to
// MaxPredictions.
func (s *Set) PredictNextActions(pctx model.PredictionContext, opts model.PredictionOptions) []model.WorkflowPrediction {
	merged := s.rank(pctx, opts)
	now := s.clock()
	predictions := make([]model.WorkflowPrediction, 0, len(merged))
	for _, c := range merged {
		predictions = append(predictions, model.WorkflowPrediction{
			Id:                     uuid.New().String(),
			PredictedAction:        c.Action,
			EntityType:             c.EntityType,
			EntityId:               c.EntityId,
			Confidence:             c.Confidence,
			Evidence:               []string{c.Evidence},
			ExpectedImpact:         c.Impact,
			EstimatedTimeMinutes:   c.Minutes,
			PriorityRecommendation: c.Priority,
			Alternatives:           c.Alternatives,
			Timestamp:              now,
		})
	}
	return predictions
}

// GenerateSuggestions runs the same pooling pipeline into the lighter
// suggestion shape.
func (s *Set) GenerateSuggestions(pctx model.PredictionContext, opts model.PredictionOptions) []model.Suggestion {
	merged := s.rank(pctx, opts)
	suggestions := make([]model.Suggestion, 0, len(merged))
	for _, c := range merged {
		suggestions = append(suggestions, suggestionFromCandidate(c))
	}
	return suggestions
}

func (s *Set) rank(pctx model.PredictionContext, opts model.PredictionOptions) []Candidate {
	var pooled []Candidate
	for _, p := range s.members {
		pooled = append(pooled, s.collect(p, pctx)...)
	}
	return rankCandidates(pooled, opts)
}

func rankCandidates(pooled []Candidate, opts model.PredictionOptions) []Candidate {
	seen := make(map[string]bool, len(pooled))
	merged := make([]Candidate, 0, len(pooled))
	for _, c := range pooled {
		key := c.Action + "|" + string(c.EntityType)
		if seen[key] {
			continue
		}
		seen[key] = true
		if c.Confidence < opts.MinConfidence {
			continue
		}
		merged = append(merged, c)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})
	if len(merged) > opts.MaxPredictions {
		merged = merged[:opts.MaxPredictions]
	}
	return merged
}

func suggestionFromCandidate(c Candidate) model.Suggestion {
	return model.Suggestion{
		Action:               c.Action,
		EntityId:             c.EntityId,
		EntityType:           c.EntityType,
		Confidence:           c.Confidence,
		Reasoning:            c.Evidence,
		EstimatedTimeMinutes: c.Minutes,
		Priority:             c.Priority,
		Impact:               c.Impact,
	}
}

// suggestionsFromCandidates is the shared per-predictor implementation of
// GenerateSuggestions.
func suggestionsFromCandidates(candidates []Candidate, opts model.PredictionOptions) []model.Suggestion {
	merged := rankCandidates(candidates, opts)
	out := make([]model.Suggestion, 0, len(merged))
	for _, c := range merged {
		out = append(out, suggestionFromCandidate(c))
	}
	return out
}
