package engine

import (
	"context"
	"time"

	"github.com/foresight-io/foresight/confidence"
	"github.com/foresight-io/foresight/graph"
	"github.com/foresight-io/foresight/heuristics"
	"github.com/foresight-io/foresight/history"
	"github.com/foresight-io/foresight/logger"
	"github.com/foresight-io/foresight/model"
	"github.com/foresight-io/foresight/predictor"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxAlternativePaths int = 3

// Engine is the prediction orchestrator. It is stateless per call over the
// injected graph; the only state it owns is the in-process history log.
type Engine struct {
	graph      graph.Provider
	history    *history.Log
	predictors *predictor.Set
	builder    *ContextBuilder
	analyzer   *heuristics.Analyzer
	clock      func() time.Time
}

// New wires an engine over a graph and history log. A nil clock means wall
// clock time; tests inject a fixed clock for reproducible bucketing.
func New(g graph.Provider, hist *history.Log, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		graph:      g,
		history:    hist,
		predictors: predictor.NewSet(clock),
		builder:    NewContextBuilder(clock),
		analyzer:   heuristics.NewAnalyzer(),
		clock:      clock,
	}
}

// GeneratePredictions builds the prediction context, fans out to the
// predictor set, matches templates when requested and appends a history
// entry. An empty predictions slice means no recommendation available, not
// an error.
func (e *Engine) GeneratePredictions(ctx context.Context, wctx model.WorkflowContext, opts model.PredictionOptions) (*model.PredictionBundle, error) {
	opts = opts.Normalized()
	pctx := e.builder.Build(wctx, e.graph)

	predictions := e.predictors.PredictNextActions(pctx, opts)
	suggestions := e.predictors.GenerateSuggestions(pctx, opts)

	bundle := &model.PredictionBundle{
		Predictions:       predictions,
		Suggestions:       suggestions,
		OverallConfidence: confidence.Overall(predictions, suggestions),
	}
	if opts.IncludeTemplates {
		bundle.Templates = matchTemplates(pctx)
	}

	e.history.Append(model.PredictionHistoryEntry{
		Id:          uuid.New().String(),
		Timestamp:   e.clock(),
		Context:     pctx,
		Predictions: predictions,
	})
	logger.Debug("generated predictions",
		zap.Int("predictions", len(predictions)),
		zap.Int("suggestions", len(suggestions)),
		zap.Float64("overallConfidence", bundle.OverallConfidence))
	return bundle, nil
}

// UpdatePredictionAccuracy scores a past prediction against the action the
// user actually took and adjusts that one prediction's confidence in the
// history entry. Returns model.NotFoundError when the id was never issued.
func (e *Engine) UpdatePredictionAccuracy(ctx context.Context, predictionId string, actualAction string, actualEntityId string) (*model.AccuracyResult, error) {
	result, err := e.history.ApplyFeedback(predictionId, actualAction,
		func(p model.WorkflowPrediction) float64 {
			return confidence.PredictionAccuracy(p, actualAction, actualEntityId)
		},
		confidence.AdjustPredictions,
	)
	if err != nil {
		return nil, err
	}
	logger.Info("prediction accuracy updated",
		zap.String("predictionId", predictionId),
		zap.Float64("accuracy", result.Accuracy))
	return &model.AccuracyResult{
		Accuracy:           result.Accuracy,
		Feedback:           confidence.AccuracyFeedback(result.Prediction, result.Accuracy),
		UpdatedPredictions: result.Updated,
	}, nil
}

// SuggestOptimalWorkflow plans a multi step path from the start entities
// toward the stated goal. The plan is a deterministic, explainable heuristic
// over a bounded search, not a global optimum.
func (e *Engine) SuggestOptimalWorkflow(ctx context.Context, startEntityIds []string, goalDescription string, opts model.WorkflowOptions) (*model.WorkflowPlan, error) {
	opts = opts.Normalized()
	var start []model.WorkflowEntity
	for _, id := range startEntityIds {
		if entity, ok := e.graph.GetEntity(id); ok {
			start = append(start, *entity)
		}
	}
	if len(start) == 0 {
		return nil, model.InvalidInputError{Message: "no start entities resolve to graph entities"}
	}

	goal := e.analyzer.AnalyzeGoal(goalDescription)
	paths := heuristics.FindWorkflowPaths(start, goal, e.graph, opts)
	ranked := heuristics.RankPaths(paths, opts)
	best := ranked[0]
	steps := heuristics.ConvertPathToSteps(best, goal)
	totalTime := heuristics.TotalEstimatedTime(steps)

	plan := &model.WorkflowPlan{
		Steps:              steps,
		TotalEstimatedTime: totalTime,
		CompletenessScore:  heuristics.CompletenessScore(steps, goal),
		EfficiencyScore:    heuristics.EfficiencyScore(steps, totalTime),
		AlternativePaths:   []model.AlternativePath{},
	}
	for _, alt := range ranked[1:] {
		if len(plan.AlternativePaths) >= maxAlternativePaths {
			break
		}
		plan.AlternativePaths = append(plan.AlternativePaths, model.AlternativePath{
			Steps:         heuristics.ConvertPathToSteps(alt, goal),
			EstimatedTime: heuristics.PathEstimatedTime(alt),
			Confidence:    heuristics.PathConfidence(alt),
			Differences:   heuristics.IdentifyPathDifferences(best, alt),
		})
	}
	logger.Debug("suggested workflow",
		zap.String("goalCategory", goal.Category),
		zap.Int("steps", len(steps)),
		zap.Int("alternatives", len(plan.AlternativePaths)))
	return plan, nil
}
