package predictor

import (
	"fmt"
	"strings"

	"github.com/foresight-io/foresight/model"
)

// IntentPredictor only triggers when the caller supplied a free text intent.
type IntentPredictor struct{}

func NewIntentPredictor() *IntentPredictor {
	return &IntentPredictor{}
}

func (p *IntentPredictor) Name() string {
	return "intent"
}

func (p *IntentPredictor) Candidates(pctx model.PredictionContext) []Candidate {
	if pctx.UserIntent == "" {
		return nil
	}
	intent := strings.ToLower(pctx.UserIntent)
	var out []Candidate
	for _, set := range intentRules {
		if !strings.Contains(intent, set.Keyword) {
			continue
		}
		for _, rule := range set.Rules {
			out = append(out, Candidate{
				Action:     rule.Action,
				EntityType: rule.EntityType,
				Confidence: rule.Confidence,
				Impact:     "high",
				Minutes:    rule.Minutes,
				Priority:   "high",
				Evidence:   fmt.Sprintf("intent rule: intent matches keyword %q", set.Keyword),
			})
		}
	}
	return out
}

func (p *IntentPredictor) GenerateSuggestions(pctx model.PredictionContext, opts model.PredictionOptions) []model.Suggestion {
	return suggestionsFromCandidates(p.Candidates(pctx), opts)
}
