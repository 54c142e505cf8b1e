package history

import (
	"context"
	"sync"
	"time"

	"github.com/foresight-io/foresight/logger"
	"github.com/foresight-io/foresight/model"
	"github.com/foresight-io/foresight/util"
	"go.uber.org/zap"
)

// Log is the append only record of issued predictions, correlated by
// prediction id for feedback. A single mutex guards both appends and the
// lookup-then-mutate cycle feedback performs.
type Log struct {
	mu      sync.Mutex
	entries []model.PredictionHistoryEntry
	sink    *util.Worker
}

func NewLog() *Log {
	return &Log{}
}

// AttachStore tees every appended entry to the store on a background worker
// so persistence never blocks the prediction path.
func (l *Log) AttachStore(store Store, wg *sync.WaitGroup) {
	l.sink = util.NewWorker("history-store", wg, func(a util.Action) error {
		entry := a.(model.PredictionHistoryEntry)
		return store.Put(context.Background(), entry)
	}, 256)
	l.sink.Start()
}

func (l *Log) StopSink() {
	if l.sink != nil {
		l.sink.Stop()
	}
}

func (l *Log) Append(entry model.PredictionHistoryEntry) {
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()
	if l.sink != nil {
		select {
		case l.sink.Sender() <- entry:
		default:
			logger.Warn("history store sink full, dropping entry", zap.String("entry", entry.Id))
		}
	}
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the current log.
func (l *Log) Entries() []model.PredictionHistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.PredictionHistoryEntry{}, l.entries...)
}

type FeedbackResult struct {
	Entry      model.PredictionHistoryEntry
	Prediction model.WorkflowPrediction
	Accuracy   float64
	Updated    []model.WorkflowPrediction
}

// ApplyFeedback locates the entry holding predictionId and performs the
// whole read-modify-write under the log's lock: the accuracy is computed
// via score, the entry's predictions are replaced by adjust's output and
// its actualAction/accuracy fields are set. Returns NotFoundError and
// leaves the log unmutated when no entry holds the id. Repeated feedback
// for the same id re-applies the adjustment to the already adjusted value.
func (l *Log) ApplyFeedback(
	predictionId string,
	actualAction string,
	score func(model.WorkflowPrediction) float64,
	adjust func([]model.WorkflowPrediction, string, float64) []model.WorkflowPrediction,
) (*FeedbackResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		for _, p := range l.entries[i].Predictions {
			if p.Id != predictionId {
				continue
			}
			accuracy := score(p)
			updated := adjust(l.entries[i].Predictions, predictionId, accuracy)
			l.entries[i].Predictions = updated
			l.entries[i].ActualAction = actualAction
			l.entries[i].Accuracy = &accuracy
			return &FeedbackResult{
				Entry:      l.entries[i],
				Prediction: p,
				Accuracy:   accuracy,
				Updated:    append([]model.WorkflowPrediction{}, updated...),
			}, nil
		}
	}
	return nil, model.NotFoundError{PredictionId: predictionId}
}

// Prune drops entries older than the cutoff and returns how many were
// removed.
func (l *Log) Prune(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.entries[:0]
	removed := 0
	for _, e := range l.entries {
		if e.Timestamp.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	return removed
}

// StartRetention runs a periodic sweep removing entries older than the
// retention window. The log is unbounded when retention is never started.
func (l *Log) StartRetention(retention time.Duration, interval time.Duration, stop chan struct{}, wg *sync.WaitGroup) *util.TickWorker {
	tw := util.NewTickWorker("history-retention", interval, stop, func() {
		removed := l.Prune(time.Now().Add(-retention))
		if removed > 0 {
			logger.Info("pruned prediction history", zap.Int("removed", removed))
		}
	}, wg)
	tw.Start()
	return tw
}
