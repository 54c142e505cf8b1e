package history

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/foresight-io/foresight/model"
	"github.com/stretchr/testify/require"
)

func entryAt(id string, ts time.Time, predictions ...model.WorkflowPrediction) model.PredictionHistoryEntry {
	return model.PredictionHistoryEntry{
		Id:          id,
		Timestamp:   ts,
		Predictions: predictions,
	}
}

func TestLogAppendAndEntries(t *testing.T) {
	l := NewLog()
	require.Equal(t, 0, l.Len())

	l.Append(entryAt("e1", time.Now()))
	l.Append(entryAt("e2", time.Now()))
	require.Equal(t, 2, l.Len())

	entries := l.Entries()
	entries[0].Id = "mutated"
	require.Equal(t, "e1", l.Entries()[0].Id, "Entries must return a copy")
}

func TestApplyFeedback(t *testing.T) {
	l := NewLog()
	l.Append(entryAt("e1", time.Now(),
		model.WorkflowPrediction{Id: "p1", PredictedAction: "Create task", Confidence: 0.8},
		model.WorkflowPrediction{Id: "p2", PredictedAction: "Review note", Confidence: 0.5},
	))

	result, err := l.ApplyFeedback("p1", "create task now",
		func(p model.WorkflowPrediction) float64 { return 0.9 },
		func(preds []model.WorkflowPrediction, id string, acc float64) []model.WorkflowPrediction {
			out := append([]model.WorkflowPrediction{}, preds...)
			for i := range out {
				if out[i].Id == id {
					out[i].Confidence = 0.99
				}
			}
			return out
		},
	)
	require.NoError(t, err)
	require.Equal(t, 0.9, result.Accuracy)
	require.Equal(t, "p1", result.Prediction.Id)
	require.Equal(t, 0.8, result.Prediction.Confidence, "result carries the pre-adjustment prediction")

	entry := l.Entries()[0]
	require.Equal(t, "create task now", entry.ActualAction)
	require.NotNil(t, entry.Accuracy)
	require.Equal(t, 0.9, *entry.Accuracy)
	require.Equal(t, 0.99, entry.Predictions[0].Confidence)
	require.Equal(t, 0.5, entry.Predictions[1].Confidence)
}

func TestApplyFeedbackNotFound(t *testing.T) {
	l := NewLog()
	l.Append(entryAt("e1", time.Now(), model.WorkflowPrediction{Id: "p1"}))
	before := l.Entries()

	_, err := l.ApplyFeedback("missing", "anything",
		func(p model.WorkflowPrediction) float64 { return 1 },
		func(preds []model.WorkflowPrediction, id string, acc float64) []model.WorkflowPrediction { return preds },
	)
	require.Error(t, err)
	var notFound model.NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, before, l.Entries())
}

func TestPrune(t *testing.T) {
	l := NewLog()
	now := time.Now()
	l.Append(entryAt("old", now.Add(-2*time.Hour)))
	l.Append(entryAt("recent", now.Add(-time.Minute)))

	removed := l.Prune(now.Add(-time.Hour))
	require.Equal(t, 1, removed)
	require.Equal(t, 1, l.Len())
	require.Equal(t, "recent", l.Entries()[0].Id)
}

func TestAttachStoreTee(t *testing.T) {
	l := NewLog()
	store := NewInMemStore()
	var wg sync.WaitGroup
	l.AttachStore(store, &wg)
	defer l.StopSink()

	l.Append(entryAt("e1", time.Now()))

	require.Eventually(t, func() bool {
		_, err := store.Get(context.Background(), "e1")
		return err == nil
	}, time.Second, 10*time.Millisecond)
}

func TestInMemStoreGetMissing(t *testing.T) {
	store := NewInMemStore()
	_, err := store.Get(context.Background(), "nope")
	require.Error(t, err)
	var storageErr StorageError
	require.True(t, errors.As(err, &storageErr))
}
