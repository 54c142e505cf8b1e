package heuristics

import (
	"testing"

	"github.com/foresight-io/foresight/model"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeGoalCategories(t *testing.T) {
	a := NewAnalyzer()

	creation := a.AnalyzeGoal("turn this into a task")
	require.Equal(t, CATEGORY_CREATION, creation.Category)
	require.Contains(t, creation.TargetEntityTypes, model.ENTITY_TYPE_TASK)
	require.Equal(t, []string{"create"}, creation.RequiredActions)

	review := a.AnalyzeGoal("review the quarterly document")
	require.Equal(t, CATEGORY_REVIEW, review.Category)
	require.Contains(t, review.TargetEntityTypes, model.ENTITY_TYPE_DOCUMENT)

	reporting := a.AnalyzeGoal("summarize my notes into a report")
	require.Equal(t, CATEGORY_REPORTING, reporting.Category)
}

func TestAnalyzeGoalNeverFails(t *testing.T) {
	a := NewAnalyzer()

	empty := a.AnalyzeGoal("")
	require.Equal(t, CATEGORY_GENERAL, empty.Category)
	require.Empty(t, empty.RequiredActions)

	gibberish := a.AnalyzeGoal("!!! ??? %%%")
	require.Equal(t, CATEGORY_GENERAL, gibberish.Category)
}

func TestAnalyzeGoalCached(t *testing.T) {
	a := NewAnalyzer()
	first := a.AnalyzeGoal("Plan the week")
	second := a.AnalyzeGoal("plan the week")
	require.Equal(t, first, second)
}

func TestAnalyzeGoalKeywordsDropStopwords(t *testing.T) {
	a := NewAnalyzer()
	analysis := a.AnalyzeGoal("turn this into a task")
	require.NotContains(t, analysis.Keywords, "this")
	require.NotContains(t, analysis.Keywords, "into")
	require.Contains(t, analysis.Keywords, "task")
}
