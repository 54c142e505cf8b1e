package model

import "time"

type TimeOfDay string

const TIME_OF_DAY_MORNING TimeOfDay = "morning"
const TIME_OF_DAY_AFTERNOON TimeOfDay = "afternoon"
const TIME_OF_DAY_EVENING TimeOfDay = "evening"

// WorkflowContext is the caller supplied view of recent activity. It is
// transient, created per interaction and discarded.
type WorkflowContext struct {
	RecentEntityIds []string         `json:"recentEntityIds"`
	UserIntent      string           `json:"userIntent,omitempty"`
	Metadata        *ContextMetadata `json:"metadata,omitempty"`
}

type ContextMetadata struct {
	RecentActions []string `json:"recentActions,omitempty"`
	AvailableTime int      `json:"availableTime,omitempty"`
}

// PredictionContext is the normalized internal context. It is rebuilt fresh
// on every engine call and never cached.
type PredictionContext struct {
	Entities      []WorkflowEntity `json:"entities"`
	RecentActions []string         `json:"recentActions"`
	TimeOfDay     TimeOfDay        `json:"timeOfDay"`
	DayOfWeek     time.Weekday     `json:"dayOfWeek"`
	Weekend       bool             `json:"weekend"`
	AvailableTime int              `json:"availableTime"`
	UserIntent    string           `json:"userIntent,omitempty"`
}

// WorkflowPrediction is a proposed next action. Id is the correlation key
// for accuracy feedback. Confidence is always kept within [0,1].
type WorkflowPrediction struct {
	Id                     string     `json:"id"`
	PredictedAction        string     `json:"predictedAction"`
	EntityType             EntityType `json:"entityType,omitempty"`
	EntityId               string     `json:"entityId,omitempty"`
	Confidence             float64    `json:"confidence"`
	Evidence               []string   `json:"evidence"`
	ExpectedImpact         string     `json:"expectedImpact"`
	EstimatedTimeMinutes   int        `json:"estimatedTimeMinutes"`
	PriorityRecommendation string     `json:"priorityRecommendation"`
	Alternatives           []string   `json:"alternatives,omitempty"`
	Timestamp              time.Time  `json:"timestamp"`
}

// Suggestion is a lighter weight recommendation with no identity and no
// feedback loop attached.
type Suggestion struct {
	Action               string     `json:"action"`
	EntityId             string     `json:"entityId,omitempty"`
	EntityType           EntityType `json:"entityType,omitempty"`
	Confidence           float64    `json:"confidence"`
	Reasoning            string     `json:"reasoning"`
	EstimatedTimeMinutes int        `json:"estimatedTimeMinutes"`
	Priority             string     `json:"priority"`
	Impact               string     `json:"impact"`
}

type TemplateStep struct {
	Action               string     `json:"action"`
	EntityType           EntityType `json:"entityType"`
	Description          string     `json:"description"`
	EstimatedTimeMinutes int        `json:"estimatedTimeMinutes"`
}

// WorkflowTemplate is a predefined multi step pattern matched against the
// entity mix of the current context. Templates are recomputed per call and
// never stored.
type WorkflowTemplate struct {
	Id               string         `json:"id"`
	Name             string         `json:"name"`
	Steps            []TemplateStep `json:"steps"`
	SuitabilityScore float64        `json:"suitabilityScore"`
	MatchReasons     []string       `json:"matchReasons"`
}

// PredictionHistoryEntry records one issued prediction batch. Accuracy stays
// nil until feedback arrives through UpdatePredictionAccuracy.
type PredictionHistoryEntry struct {
	Id           string               `json:"id"`
	Timestamp    time.Time            `json:"timestamp"`
	Context      PredictionContext    `json:"context"`
	Predictions  []WorkflowPrediction `json:"predictions"`
	ActualAction string               `json:"actualAction,omitempty"`
	Accuracy     *float64             `json:"accuracy,omitempty"`
}

type PredictionBundle struct {
	Predictions       []WorkflowPrediction `json:"predictions"`
	Suggestions       []Suggestion         `json:"suggestions"`
	Templates         []WorkflowTemplate   `json:"templates,omitempty"`
	OverallConfidence float64              `json:"overallConfidence"`
}

type AccuracyResult struct {
	Accuracy           float64              `json:"accuracy"`
	Feedback           string               `json:"feedback"`
	UpdatedPredictions []WorkflowPrediction `json:"updatedPredictions"`
}

// WorkflowStep is one unit of a suggested workflow plan.
type WorkflowStep struct {
	Action               string     `json:"action"`
	EntityType           EntityType `json:"entityType"`
	EntityId             string     `json:"entityId,omitempty"`
	Description          string     `json:"description"`
	EstimatedTimeMinutes int        `json:"estimatedTimeMinutes"`
}

type AlternativePath struct {
	Steps         []WorkflowStep `json:"steps"`
	EstimatedTime int            `json:"estimatedTime"`
	Confidence    float64        `json:"confidence"`
	Differences   []string       `json:"differences"`
}

type WorkflowPlan struct {
	Steps              []WorkflowStep    `json:"steps"`
	TotalEstimatedTime int               `json:"totalEstimatedTime"`
	CompletenessScore  float64           `json:"completenessScore"`
	EfficiencyScore    float64           `json:"efficiencyScore"`
	AlternativePaths   []AlternativePath `json:"alternativePaths"`
}

// GoalAnalysis is the structured classification of a free text goal.
type GoalAnalysis struct {
	Category          string       `json:"category"`
	Keywords          []string     `json:"keywords"`
	TargetEntityTypes []EntityType `json:"targetEntityTypes"`
	RequiredActions   []string     `json:"requiredActions"`
}

// BehaviorPattern is one recurring pattern extracted from a behavior log.
type BehaviorPattern struct {
	Type       string  `json:"type"`
	Key        string  `json:"key"`
	Frequency  int     `json:"frequency"`
	Confidence float64 `json:"confidence"`
}

type LearningResult struct {
	PatternsExtracted       int               `json:"patternsExtracted"`
	UpdatedPatterns         []BehaviorPattern `json:"updatedPatterns"`
	PersonalizedSuggestions []Suggestion      `json:"personalizedSuggestions"`
}
