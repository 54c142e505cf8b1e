package engine

import (
	"time"

	"github.com/foresight-io/foresight/graph"
	"github.com/foresight-io/foresight/model"
)

// ContextBuilder normalizes a caller supplied WorkflowContext plus the graph
// into the internal PredictionContext. The clock is injected so time of day
// and day of week bucketing is reproducible in tests.
type ContextBuilder struct {
	clock func() time.Time
}

func NewContextBuilder(clock func() time.Time) *ContextBuilder {
	if clock == nil {
		clock = time.Now
	}
	return &ContextBuilder{clock: clock}
}

// Build resolves each recent entity id through the graph. Unresolved ids
// are dropped silently; a partial context is acceptable.
func (b *ContextBuilder) Build(wctx model.WorkflowContext, g graph.Provider) model.PredictionContext {
	now := b.clock()
	pctx := model.PredictionContext{
		TimeOfDay:  timeOfDay(now),
		DayOfWeek:  now.Weekday(),
		Weekend:    now.Weekday() == time.Saturday || now.Weekday() == time.Sunday,
		UserIntent: wctx.UserIntent,
	}
	for _, id := range wctx.RecentEntityIds {
		if e, ok := g.GetEntity(id); ok {
			pctx.Entities = append(pctx.Entities, *e)
		}
	}
	pctx.RecentActions = []string{}
	if wctx.Metadata != nil {
		if wctx.Metadata.RecentActions != nil {
			pctx.RecentActions = wctx.Metadata.RecentActions
		}
		pctx.AvailableTime = wctx.Metadata.AvailableTime
	}
	return pctx
}

func timeOfDay(t time.Time) model.TimeOfDay {
	switch hour := t.Hour(); {
	case hour < 12:
		return model.TIME_OF_DAY_MORNING
	case hour < 17:
		return model.TIME_OF_DAY_AFTERNOON
	default:
		return model.TIME_OF_DAY_EVENING
	}
}
