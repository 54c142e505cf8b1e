package predictor

import (
	"fmt"

	"github.com/foresight-io/foresight/model"
)

// EntityPredictor proposes one candidate per (entity type present in the
// context x rule in that type's list).
type EntityPredictor struct{}

func NewEntityPredictor() *EntityPredictor {
	return &EntityPredictor{}
}

func (p *EntityPredictor) Name() string {
	return "entity-type"
}

func (p *EntityPredictor) Candidates(pctx model.PredictionContext) []Candidate {
	byType := make(map[model.EntityType][]model.WorkflowEntity)
	for _, e := range pctx.Entities {
		byType[e.Type] = append(byType[e.Type], e)
	}
	var out []Candidate
	for _, set := range entityActionRules {
		entities, ok := byType[set.EntityType]
		if !ok {
			continue
		}
		// The most recent entity of the type anchors the candidate.
		anchor := entities[0]
		for _, rule := range set.Rules {
			out = append(out, Candidate{
				Action:     rule.Action,
				EntityType: set.EntityType,
				EntityId:   anchor.Id,
				Confidence: rule.Confidence,
				Impact:     rule.Impact,
				Minutes:    rule.Minutes,
				Priority:   rule.Priority,
				Evidence:   fmt.Sprintf("entity rule: %d %s entity(s) in recent context", len(entities), set.EntityType),
			})
		}
	}
	return out
}

func (p *EntityPredictor) GenerateSuggestions(pctx model.PredictionContext, opts model.PredictionOptions) []model.Suggestion {
	return suggestionsFromCandidates(p.Candidates(pctx), opts)
}
