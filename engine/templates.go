package engine

import (
	"fmt"
	"sort"

	"github.com/foresight-io/foresight/model"
	"golang.org/x/exp/slices"
)

// Workflow templates are matched against the entity type mix of the current
// context. They are rule derived and recomputed per call, never stored.

type templateRule struct {
	Id       string
	Name     string
	Requires []model.EntityType
	Steps    []model.TemplateStep
	Base     float64
}

var templateRules = []templateRule{
	{
		Id:       "note-to-action",
		Name:     "Capture to action",
		Requires: []model.EntityType{model.ENTITY_TYPE_NOTE},
		Base:     0.75,
		Steps: []model.TemplateStep{
			{Action: "Create task from note", EntityType: model.ENTITY_TYPE_NOTE, Description: "Turn the captured note into an actionable task", EstimatedTimeMinutes: 5},
			{Action: "Schedule task", EntityType: model.ENTITY_TYPE_TASK, Description: "Pick a time slot for the new task", EstimatedTimeMinutes: 5},
			{Action: "Complete task", EntityType: model.ENTITY_TYPE_TASK, Description: "Work the task to completion", EstimatedTimeMinutes: 15},
		},
	},
	{
		Id:       "research-capture",
		Name:     "Research capture",
		Requires: []model.EntityType{model.ENTITY_TYPE_DOCUMENT, model.ENTITY_TYPE_NOTE},
		Base:     0.7,
		Steps: []model.TemplateStep{
			{Action: "Review document", EntityType: model.ENTITY_TYPE_DOCUMENT, Description: "Read the source document", EstimatedTimeMinutes: 20},
			{Action: "Extract tasks from document", EntityType: model.ENTITY_TYPE_DOCUMENT, Description: "Pull actionable items out of the document", EstimatedTimeMinutes: 10},
			{Action: "Link note to document", EntityType: model.ENTITY_TYPE_NOTE, Description: "Connect the research note to its source", EstimatedTimeMinutes: 3},
		},
	},
	{
		Id:       "daily-review",
		Name:     "Daily review",
		Requires: []model.EntityType{model.ENTITY_TYPE_TASK},
		Base:     0.6,
		Steps: []model.TemplateStep{
			{Action: "Review open tasks", EntityType: model.ENTITY_TYPE_TASK, Description: "Go through tasks still in flight", EstimatedTimeMinutes: 10},
			{Action: "Update task progress", EntityType: model.ENTITY_TYPE_TASK, Description: "Record progress on each task", EstimatedTimeMinutes: 5},
			{Action: "Plan next steps", EntityType: model.ENTITY_TYPE_TASK, Description: "Decide what to pick up next", EstimatedTimeMinutes: 10},
		},
	},
	{
		Id:       "report-assembly",
		Name:     "Report assembly",
		Requires: []model.EntityType{model.ENTITY_TYPE_REPORT, model.ENTITY_TYPE_DOCUMENT},
		Base:     0.65,
		Steps: []model.TemplateStep{
			{Action: "Extract summary from document", EntityType: model.ENTITY_TYPE_DOCUMENT, Description: "Summarize the supporting documents", EstimatedTimeMinutes: 10},
			{Action: "Generate report", EntityType: model.ENTITY_TYPE_REPORT, Description: "Assemble the report from summaries", EstimatedTimeMinutes: 15},
			{Action: "Export report", EntityType: model.ENTITY_TYPE_REPORT, Description: "Export the finished report", EstimatedTimeMinutes: 5},
		},
	},
}

// matchTemplates scores every template against the entity types present in
// the context. A template qualifies when at least half of its required
// types co-occur; the suitability score scales the base by that coverage.
func matchTemplates(pctx model.PredictionContext) []model.WorkflowTemplate {
	present := make([]model.EntityType, 0, len(pctx.Entities))
	for _, e := range pctx.Entities {
		if !slices.Contains(present, e.Type) {
			present = append(present, e.Type)
		}
	}
	var out []model.WorkflowTemplate
	for _, rule := range templateRules {
		matched := 0
		var reasons []string
		for _, req := range rule.Requires {
			if slices.Contains(present, req) {
				matched++
				reasons = append(reasons, fmt.Sprintf("%s entity present in recent context", req))
			}
		}
		coverage := float64(matched) / float64(len(rule.Requires))
		if coverage < 0.5 {
			continue
		}
		out = append(out, model.WorkflowTemplate{
			Id:               rule.Id,
			Name:             rule.Name,
			Steps:            rule.Steps,
			SuitabilityScore: rule.Base * coverage,
			MatchReasons:     reasons,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SuitabilityScore > out[j].SuitabilityScore
	})
	return out
}
