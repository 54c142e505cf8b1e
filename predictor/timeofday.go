package predictor

import (
	"fmt"

	"github.com/foresight-io/foresight/model"
)

// TimeOfDayPredictor proposes actions typical for the current time bucket.
// Its confidences are discounted relative to entity and sequence candidates.
type TimeOfDayPredictor struct{}

func NewTimeOfDayPredictor() *TimeOfDayPredictor {
	return &TimeOfDayPredictor{}
}

func (p *TimeOfDayPredictor) Name() string {
	return "time-of-day"
}

func bucketFor(pctx model.PredictionContext) timeBucket {
	if pctx.Weekend {
		return bucketWeekend
	}
	switch pctx.TimeOfDay {
	case model.TIME_OF_DAY_MORNING:
		return bucketWeekdayMorning
	case model.TIME_OF_DAY_AFTERNOON:
		return bucketWeekdayAfternoon
	default:
		return bucketWeekdayEvening
	}
}

func (p *TimeOfDayPredictor) Candidates(pctx model.PredictionContext) []Candidate {
	bucket := bucketFor(pctx)
	var out []Candidate
	for _, set := range timeRules {
		if set.Bucket != bucket {
			continue
		}
		for _, rule := range set.Rules {
			out = append(out, Candidate{
				Action:     rule.Action,
				Confidence: rule.Confidence * timeConfidenceScale,
				Impact:     "medium",
				Minutes:    rule.Minutes,
				Priority:   "low",
				Evidence:   fmt.Sprintf("time rule: %s", bucket),
			})
		}
	}
	return out
}

func (p *TimeOfDayPredictor) GenerateSuggestions(pctx model.PredictionContext, opts model.PredictionOptions) []model.Suggestion {
	return suggestionsFromCandidates(p.Candidates(pctx), opts)
}
