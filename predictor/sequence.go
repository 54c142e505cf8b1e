package predictor

import (
	"fmt"
	"strings"

	"github.com/foresight-io/foresight/model"
)

// SequencePredictor matches the last recorded action against fixed pattern
// keys and proposes the usual follow up actions.
type SequencePredictor struct{}

func NewSequencePredictor() *SequencePredictor {
	return &SequencePredictor{}
}

func (p *SequencePredictor) Name() string {
	return "action-sequence"
}

func (p *SequencePredictor) Candidates(pctx model.PredictionContext) []Candidate {
	if len(pctx.RecentActions) == 0 {
		return nil
	}
	last := strings.ToLower(pctx.RecentActions[len(pctx.RecentActions)-1])
	var out []Candidate
	for _, set := range sequenceRules {
		if !strings.Contains(last, set.Pattern) {
			continue
		}
		for _, rule := range set.Rules {
			out = append(out, Candidate{
				Action:     rule.NextAction,
				Confidence: rule.Confidence,
				Impact:     "medium",
				Minutes:    rule.Minutes,
				Priority:   "medium",
				Evidence:   fmt.Sprintf("sequence rule: last action %q matches pattern %q", pctx.RecentActions[len(pctx.RecentActions)-1], set.Pattern),
			})
		}
	}
	return out
}

func (p *SequencePredictor) GenerateSuggestions(pctx model.PredictionContext, opts model.PredictionOptions) []model.Suggestion {
	return suggestionsFromCandidates(p.Candidates(pctx), opts)
}
