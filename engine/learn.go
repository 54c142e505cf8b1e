package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/foresight-io/foresight/confidence"
	"github.com/foresight-io/foresight/logger"
	"github.com/foresight-io/foresight/model"
	"github.com/oliveagle/jsonpath"
	"go.uber.org/zap"
)

const maxPersonalizedSuggestions int = 3

const patternTypeAction string = "action"
const patternTypeEntityType string = "entityType"

// LearnFromBehavior extracts recurring patterns from a behavior log and
// derives personalized suggestions. It is a pure transform; no per user
// model is kept between calls.
func (e *Engine) LearnFromBehavior(ctx context.Context, userId string, behaviorData []map[string]any) (*model.LearningResult, error) {
	actionFreq := make(map[string]int)
	typeFreq := make(map[string]int)
	for _, record := range behaviorData {
		if action := lookupString(record, "$.action"); action != "" {
			actionFreq[action]++
		}
		entityType := lookupString(record, "$.entityType")
		if entityType == "" {
			entityType = lookupString(record, "$.entity.type")
		}
		if entityType != "" && model.ValidEntityType(entityType) {
			typeFreq[entityType]++
		}
	}

	patterns := make([]model.BehaviorPattern, 0, len(actionFreq)+len(typeFreq))
	for key, freq := range actionFreq {
		patterns = append(patterns, model.BehaviorPattern{Type: patternTypeAction, Key: key, Frequency: freq})
	}
	for key, freq := range typeFreq {
		patterns = append(patterns, model.BehaviorPattern{Type: patternTypeEntityType, Key: key, Frequency: freq})
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Frequency != patterns[j].Frequency {
			return patterns[i].Frequency > patterns[j].Frequency
		}
		if patterns[i].Type != patterns[j].Type {
			return patterns[i].Type < patterns[j].Type
		}
		return patterns[i].Key < patterns[j].Key
	})

	updated := confidence.UpdatePatternConfidence(patterns)

	var suggestions []model.Suggestion
	for _, p := range updated {
		if len(suggestions) >= maxPersonalizedSuggestions {
			break
		}
		suggestions = append(suggestions, personalizedSuggestion(p))
	}

	logger.Info("behavior patterns extracted",
		zap.String("userId", userId),
		zap.Int("records", len(behaviorData)),
		zap.Int("patterns", len(updated)))
	return &model.LearningResult{
		PatternsExtracted:       len(updated),
		UpdatedPatterns:         updated,
		PersonalizedSuggestions: suggestions,
	}, nil
}

func personalizedSuggestion(p model.BehaviorPattern) model.Suggestion {
	s := model.Suggestion{
		Confidence:           p.Confidence,
		Reasoning:            fmt.Sprintf("observed %d time(s) in recent behavior", p.Frequency),
		EstimatedTimeMinutes: 5,
		Priority:             "medium",
		Impact:               "medium",
	}
	switch p.Type {
	case patternTypeEntityType:
		s.EntityType = model.EntityType(p.Key)
		s.Action = fmt.Sprintf("Continue working with %s entities", p.Key)
	default:
		s.Action = fmt.Sprintf("Repeat frequent action: %s", p.Key)
	}
	return s
}

func lookupString(record map[string]any, path string) string {
	v, err := jsonpath.JsonPathLookup(record, path)
	if err != nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
