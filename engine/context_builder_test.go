package engine

import (
	"testing"
	"time"

	"github.com/foresight-io/foresight/graph"
	"github.com/foresight-io/foresight/model"
	"github.com/stretchr/testify/require"
)

func clockAt(weekday time.Weekday, hour int) func() time.Time {
	// 2024-03-04 is a Monday.
	base := time.Date(2024, 3, 4, hour, 0, 0, 0, time.UTC)
	return func() time.Time {
		return base.AddDate(0, 0, int(weekday-time.Monday))
	}
}

func TestBuildTimeBuckets(t *testing.T) {
	g := graph.NewInMemoryGraph(nil, nil)
	for _, tc := range []struct {
		hour     int
		expected model.TimeOfDay
	}{
		{hour: 0, expected: model.TIME_OF_DAY_MORNING},
		{hour: 11, expected: model.TIME_OF_DAY_MORNING},
		{hour: 12, expected: model.TIME_OF_DAY_AFTERNOON},
		{hour: 16, expected: model.TIME_OF_DAY_AFTERNOON},
		{hour: 17, expected: model.TIME_OF_DAY_EVENING},
		{hour: 23, expected: model.TIME_OF_DAY_EVENING},
	} {
		b := NewContextBuilder(clockAt(time.Monday, tc.hour))
		pctx := b.Build(model.WorkflowContext{}, g)
		require.Equal(t, tc.expected, pctx.TimeOfDay, "hour %d", tc.hour)
		require.False(t, pctx.Weekend)
	}
}

func TestBuildWeekend(t *testing.T) {
	g := graph.NewInMemoryGraph(nil, nil)
	b := NewContextBuilder(clockAt(time.Saturday, 9))
	pctx := b.Build(model.WorkflowContext{}, g)
	require.True(t, pctx.Weekend)
	require.Equal(t, time.Saturday, pctx.DayOfWeek)
}

func TestBuildDropsUnresolvedIds(t *testing.T) {
	g := graph.NewInMemoryGraph(
		[]model.WorkflowEntity{{Id: "N1", Type: model.ENTITY_TYPE_NOTE}},
		nil,
	)
	b := NewContextBuilder(clockAt(time.Monday, 9))
	pctx := b.Build(model.WorkflowContext{RecentEntityIds: []string{"N1", "ghost", "another-ghost"}}, g)

	require.Len(t, pctx.Entities, 1)
	require.Equal(t, "N1", pctx.Entities[0].Id)
}

func TestBuildMetadataDefaults(t *testing.T) {
	g := graph.NewInMemoryGraph(nil, nil)
	b := NewContextBuilder(clockAt(time.Monday, 9))

	bare := b.Build(model.WorkflowContext{}, g)
	require.NotNil(t, bare.RecentActions)
	require.Empty(t, bare.RecentActions)
	require.Zero(t, bare.AvailableTime)

	full := b.Build(model.WorkflowContext{
		UserIntent: "plan the week",
		Metadata: &model.ContextMetadata{
			RecentActions: []string{"created note"},
			AvailableTime: 45,
		},
	}, g)
	require.Equal(t, []string{"created note"}, full.RecentActions)
	require.Equal(t, 45, full.AvailableTime)
	require.Equal(t, "plan the week", full.UserIntent)
}
