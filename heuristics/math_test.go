package heuristics

import (
	"testing"

	"github.com/foresight-io/foresight/model"
	"github.com/stretchr/testify/require"
)

func TestTotalEstimatedTime(t *testing.T) {
	steps := []model.WorkflowStep{
		{Action: "Create task from note", EstimatedTimeMinutes: 5},
		{Action: "Complete task", EstimatedTimeMinutes: 15},
	}
	require.Equal(t, 20, TotalEstimatedTime(steps))
	require.Equal(t, 0, TotalEstimatedTime(nil))
}

func TestCompletenessScore(t *testing.T) {
	goal := model.GoalAnalysis{
		RequiredActions:   []string{"create"},
		TargetEntityTypes: []model.EntityType{model.ENTITY_TYPE_TASK},
	}
	full := []model.WorkflowStep{
		{Action: "Create task from note", EntityType: model.ENTITY_TYPE_NOTE},
		{Action: "Complete task", EntityType: model.ENTITY_TYPE_TASK},
	}
	require.Equal(t, 1.0, CompletenessScore(full, goal))

	half := []model.WorkflowStep{
		{Action: "Create task from note", EntityType: model.ENTITY_TYPE_NOTE},
	}
	require.Equal(t, 0.5, CompletenessScore(half, goal))

	// A goal with nothing required is trivially complete.
	require.Equal(t, 1.0, CompletenessScore(nil, model.GoalAnalysis{}))
}

func TestEfficiencyScoreMonotonic(t *testing.T) {
	steps := []model.WorkflowStep{{Action: "Create task"}}
	prev := EfficiencyScore(steps, 0)
	for _, total := range []int{5, 10, 30, 60, 120, 600} {
		current := EfficiencyScore(steps, total)
		require.LessOrEqual(t, current, prev)
		require.Greater(t, current, 0.0)
		prev = current
	}
}

func TestPathAggregates(t *testing.T) {
	path := Path{
		Actions:    []string{"Create task from note", "Review document"},
		Confidence: 0.75,
	}
	require.Equal(t, actionDurations["create"]+actionDurations["review"], PathEstimatedTime(path))
	require.Equal(t, 0.75, PathConfidence(path))
}

func TestDurationForUnknownVerb(t *testing.T) {
	require.Equal(t, defaultActionMinutes, durationFor("Fling the widget"))
	require.Equal(t, defaultActionMinutes, durationFor(""))
}
