package predictor

import "github.com/foresight-io/foresight/model"

// All rule tables are declared as data so they can be tuned and tested
// independently of the predictor logic. Tables are ordered slices, not maps,
// so candidate generation stays deterministic.

type entityActionRule struct {
	Action     string
	Confidence float64
	Impact     string
	Minutes    int
	Priority   string
}

type entityRuleSet struct {
	EntityType model.EntityType
	Rules      []entityActionRule
}

var entityActionRules = []entityRuleSet{
	{
		EntityType: model.ENTITY_TYPE_NOTE,
		Rules: []entityActionRule{
			{Action: "Create task from note", Confidence: 0.8, Impact: "high", Minutes: 5, Priority: "high"},
			{Action: "Link note to document", Confidence: 0.6, Impact: "medium", Minutes: 3, Priority: "medium"},
			{Action: "Summarize note", Confidence: 0.5, Impact: "medium", Minutes: 10, Priority: "low"},
		},
	},
	{
		EntityType: model.ENTITY_TYPE_TASK,
		Rules: []entityActionRule{
			{Action: "Complete task", Confidence: 0.75, Impact: "high", Minutes: 15, Priority: "high"},
			{Action: "Break task into subtasks", Confidence: 0.6, Impact: "medium", Minutes: 10, Priority: "medium"},
			{Action: "Schedule task", Confidence: 0.55, Impact: "medium", Minutes: 5, Priority: "medium"},
		},
	},
	{
		EntityType: model.ENTITY_TYPE_DOCUMENT,
		Rules: []entityActionRule{
			{Action: "Review document", Confidence: 0.7, Impact: "high", Minutes: 20, Priority: "high"},
			{Action: "Extract tasks from document", Confidence: 0.65, Impact: "high", Minutes: 10, Priority: "medium"},
			{Action: "Share document", Confidence: 0.45, Impact: "low", Minutes: 2, Priority: "low"},
		},
	},
	{
		EntityType: model.ENTITY_TYPE_MEDIA,
		Rules: []entityActionRule{
			{Action: "Annotate media", Confidence: 0.6, Impact: "medium", Minutes: 10, Priority: "medium"},
			{Action: "Attach media to note", Confidence: 0.55, Impact: "medium", Minutes: 3, Priority: "low"},
		},
	},
	{
		EntityType: model.ENTITY_TYPE_MAP,
		Rules: []entityActionRule{
			{Action: "Add location note", Confidence: 0.6, Impact: "medium", Minutes: 5, Priority: "medium"},
			{Action: "Plan route", Confidence: 0.5, Impact: "medium", Minutes: 15, Priority: "low"},
		},
	},
	{
		EntityType: model.ENTITY_TYPE_REPORT,
		Rules: []entityActionRule{
			{Action: "Generate report summary", Confidence: 0.7, Impact: "high", Minutes: 15, Priority: "high"},
			{Action: "Export report", Confidence: 0.5, Impact: "medium", Minutes: 5, Priority: "low"},
		},
	},
}

type sequenceRule struct {
	NextAction string
	Confidence float64
	Minutes    int
}

type sequenceRuleSet struct {
	// Pattern is matched as a case insensitive substring of the last
	// recorded action.
	Pattern string
	Rules   []sequenceRule
}

var sequenceRules = []sequenceRuleSet{
	{
		Pattern: "create",
		Rules: []sequenceRule{
			{NextAction: "Review created item", Confidence: 0.65, Minutes: 5},
			{NextAction: "Share with collaborators", Confidence: 0.4, Minutes: 3},
		},
	},
	{
		Pattern: "review",
		Rules: []sequenceRule{
			{NextAction: "Approve and finalize", Confidence: 0.6, Minutes: 5},
			{NextAction: "Request changes", Confidence: 0.45, Minutes: 10},
		},
	},
	{
		Pattern: "complete",
		Rules: []sequenceRule{
			{NextAction: "Start next task", Confidence: 0.7, Minutes: 15},
			{NextAction: "Log progress", Confidence: 0.5, Minutes: 5},
		},
	},
	{
		Pattern: "edit",
		Rules: []sequenceRule{
			{NextAction: "Save and review changes", Confidence: 0.6, Minutes: 5},
		},
	},
	{
		Pattern: "search",
		Rules: []sequenceRule{
			{NextAction: "Open top result", Confidence: 0.55, Minutes: 2},
		},
	},
}

// timeConfidenceScale discounts time of day candidates relative to entity
// and sequence candidates.
const timeConfidenceScale float64 = 0.8

type timeRule struct {
	Action     string
	Confidence float64
	Minutes    int
}

type timeBucket string

const bucketWeekdayMorning timeBucket = "weekday-morning"
const bucketWeekdayAfternoon timeBucket = "weekday-afternoon"
const bucketWeekdayEvening timeBucket = "weekday-evening"
const bucketWeekend timeBucket = "weekend"

type timeRuleSet struct {
	Bucket timeBucket
	Rules  []timeRule
}

var timeRules = []timeRuleSet{
	{
		Bucket: bucketWeekdayMorning,
		Rules: []timeRule{
			{Action: "Plan today's tasks", Confidence: 0.7, Minutes: 10},
			{Action: "Review yesterday's notes", Confidence: 0.55, Minutes: 10},
		},
	},
	{
		Bucket: bucketWeekdayAfternoon,
		Rules: []timeRule{
			{Action: "Process pending documents", Confidence: 0.6, Minutes: 20},
			{Action: "Update task progress", Confidence: 0.5, Minutes: 5},
		},
	},
	{
		Bucket: bucketWeekdayEvening,
		Rules: []timeRule{
			{Action: "Summarize the day", Confidence: 0.6, Minutes: 10},
			{Action: "Prepare tomorrow's plan", Confidence: 0.5, Minutes: 10},
		},
	},
	{
		Bucket: bucketWeekend,
		Rules: []timeRule{
			{Action: "Organize workspace", Confidence: 0.5, Minutes: 15},
			{Action: "Review weekly progress", Confidence: 0.45, Minutes: 15},
		},
	},
}

type intentRule struct {
	Action     string
	Confidence float64
	Minutes    int
	EntityType model.EntityType
}

type intentRuleSet struct {
	// Keyword is matched as a case insensitive substring of the user intent.
	Keyword string
	Rules   []intentRule
}

var intentRules = []intentRuleSet{
	{
		Keyword: "task",
		Rules: []intentRule{
			{Action: "Create task from intent", Confidence: 0.75, Minutes: 5, EntityType: model.ENTITY_TYPE_TASK},
		},
	},
	{
		Keyword: "review",
		Rules: []intentRule{
			{Action: "Review recent documents", Confidence: 0.65, Minutes: 20, EntityType: model.ENTITY_TYPE_DOCUMENT},
		},
	},
	{
		Keyword: "organize",
		Rules: []intentRule{
			{Action: "Group related notes", Confidence: 0.6, Minutes: 15, EntityType: model.ENTITY_TYPE_NOTE},
		},
	},
	{
		Keyword: "report",
		Rules: []intentRule{
			{Action: "Draft report from recent work", Confidence: 0.7, Minutes: 30, EntityType: model.ENTITY_TYPE_REPORT},
		},
	},
	{
		Keyword: "summar",
		Rules: []intentRule{
			{Action: "Summarize recent activity", Confidence: 0.65, Minutes: 10, EntityType: model.ENTITY_TYPE_NOTE},
		},
	},
	{
		Keyword: "plan",
		Rules: []intentRule{
			{Action: "Draft a plan of next steps", Confidence: 0.6, Minutes: 15, EntityType: model.ENTITY_TYPE_TASK},
		},
	},
}
