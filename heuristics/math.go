package heuristics

import (
	"strings"

	"github.com/foresight-io/foresight/model"
)

// Duration estimates per action verb, in minutes.
var actionDurations = map[string]int{
	"create":    5,
	"define":    5,
	"schedule":  5,
	"open":      2,
	"check":     5,
	"review":    10,
	"summarize": 10,
	"extract":   10,
	"annotate":  10,
	"organize":  10,
	"complete":  15,
	"generate":  15,
	"plan":      15,
}

const defaultActionMinutes int = 5

func durationFor(action string) int {
	words := strings.Fields(strings.ToLower(action))
	if len(words) == 0 {
		return defaultActionMinutes
	}
	if minutes, ok := actionDurations[words[0]]; ok {
		return minutes
	}
	return defaultActionMinutes
}

func TotalEstimatedTime(steps []model.WorkflowStep) int {
	total := 0
	for _, s := range steps {
		total += s.EstimatedTimeMinutes
	}
	return total
}

// CompletenessScore is the fraction of goal required actions and entity
// types covered by the steps.
func CompletenessScore(steps []model.WorkflowStep, goal model.GoalAnalysis) float64 {
	actions := make([]string, 0, len(steps))
	types := make([]model.EntityType, 0, len(steps))
	for _, s := range steps {
		actions = append(actions, s.Action)
		types = append(types, s.EntityType)
	}
	return goalCoverage(actions, types, goal)
}

// EfficiencyScore is monotonic non-increasing in total time for a fixed
// step count.
func EfficiencyScore(steps []model.WorkflowStep, totalTime int) float64 {
	return timeEfficiency(totalTime)
}

func timeEfficiency(totalTime int) float64 {
	return 1.0 / (1.0 + float64(totalTime)/60.0)
}

func PathEstimatedTime(path Path) int {
	total := 0
	for _, action := range path.Actions {
		total += durationFor(action)
	}
	return total
}

func PathConfidence(path Path) float64 {
	return path.Confidence
}

func goalCoverage(actions []string, types []model.EntityType, goal model.GoalAnalysis) float64 {
	total := len(goal.RequiredActions) + len(goal.TargetEntityTypes)
	if total == 0 {
		return 1
	}
	joined := strings.ToLower(strings.Join(actions, " "))
	covered := 0
	for _, required := range goal.RequiredActions {
		if strings.Contains(joined, strings.ToLower(required)) {
			covered++
		}
	}
	for _, target := range goal.TargetEntityTypes {
		for _, t := range types {
			if t == target {
				covered++
				break
			}
		}
	}
	return float64(covered) / float64(total)
}
