package confidence

import (
	"fmt"
	"strings"

	"github.com/foresight-io/foresight/model"
)

const predictionWeight float64 = 0.6
const suggestionWeight float64 = 0.4

const actionMatchWeight float64 = 0.7
const impactWeight float64 = 0.2
const timeWeight float64 = 0.1

// Impact and time terms are fixed until real outcome signals are recorded
// alongside feedback; only the action term carries information today.
const placeholderImpactTerm float64 = 0.5
const placeholderTimeTerm float64 = 0.5

// Overall blends mean prediction confidence with mean suggestion confidence.
// Returns 0 when there is nothing to score.
func Overall(predictions []model.WorkflowPrediction, suggestions []model.Suggestion) float64 {
	if len(predictions) == 0 && len(suggestions) == 0 {
		return 0
	}
	var predMean, suggMean float64
	if len(predictions) > 0 {
		var sum float64
		for _, p := range predictions {
			sum += p.Confidence
		}
		predMean = sum / float64(len(predictions))
	}
	if len(suggestions) > 0 {
		var sum float64
		for _, s := range suggestions {
			sum += s.Confidence
		}
		suggMean = sum / float64(len(suggestions))
	}
	return predictionWeight*predMean + suggestionWeight*suggMean
}

// WordOverlap is the fraction of predicted's lower cased words found
// verbatim in actual's word set. Order independent, no stemming.
func WordOverlap(predicted string, actual string) float64 {
	predictedWords := strings.Fields(strings.ToLower(predicted))
	if len(predictedWords) == 0 {
		return 0
	}
	actualSet := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(actual)) {
		actualSet[w] = true
	}
	found := 0
	for _, w := range predictedWords {
		if actualSet[w] {
			found++
		}
	}
	return float64(found) / float64(len(predictedWords))
}

// PredictionAccuracy scores how well a prediction anticipated the action the
// user actually took. Result is clamped to [0,1].
func PredictionAccuracy(p model.WorkflowPrediction, actualAction string, actualEntityId string) float64 {
	accuracy := actionMatchWeight*WordOverlap(p.PredictedAction, actualAction) +
		impactWeight*placeholderImpactTerm +
		timeWeight*placeholderTimeTerm
	return Clamp(accuracy, 0, 1)
}

// AdjustPredictions returns a new slice in which only the prediction with
// the given id is changed: its confidence is rescaled by the feedback and
// one evidence string documenting the adjustment is appended. Siblings pass
// through unchanged; a single feedback sample never generalizes across
// predictions.
func AdjustPredictions(predictions []model.WorkflowPrediction, predictionId string, accuracy float64) []model.WorkflowPrediction {
	out := make([]model.WorkflowPrediction, len(predictions))
	copy(out, predictions)
	for i := range out {
		if out[i].Id != predictionId {
			continue
		}
		adjusted := Clamp(out[i].Confidence*(0.7+0.3*accuracy), 0.1, 1)
		evidence := make([]string, 0, len(out[i].Evidence)+1)
		evidence = append(evidence, out[i].Evidence...)
		evidence = append(evidence, fmt.Sprintf("feedback: accuracy %.2f adjusted confidence %.2f -> %.2f", accuracy, out[i].Confidence, adjusted))
		out[i].Confidence = adjusted
		out[i].Evidence = evidence
	}
	return out
}

// UpdatePatternConfidence derives confidence from observation frequency,
// capped at 0.9.
func UpdatePatternConfidence(patterns []model.BehaviorPattern) []model.BehaviorPattern {
	out := make([]model.BehaviorPattern, len(patterns))
	copy(out, patterns)
	for i := range out {
		if out[i].Frequency <= 0 {
			continue
		}
		bump := float64(out[i].Frequency) * 0.1
		if bump > 0.4 {
			bump = 0.4
		}
		out[i].Confidence = 0.5 + bump
	}
	return out
}

// AccuracyFeedback maps an accuracy score to a descriptive string. It has no
// behavioral effect.
func AccuracyFeedback(p model.WorkflowPrediction, accuracy float64) string {
	switch {
	case accuracy >= 0.8:
		return fmt.Sprintf("excellent prediction: %q closely matched the actual action", p.PredictedAction)
	case accuracy >= 0.6:
		return fmt.Sprintf("good prediction: %q was close to the actual action", p.PredictedAction)
	case accuracy >= 0.4:
		return fmt.Sprintf("fair prediction: %q partially matched the actual action", p.PredictedAction)
	default:
		return fmt.Sprintf("prediction %q needs improvement", p.PredictedAction)
	}
}

func Clamp(v float64, lo float64, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
