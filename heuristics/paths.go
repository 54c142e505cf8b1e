package heuristics

import (
	"fmt"

	"github.com/foresight-io/foresight/graph"
	"github.com/foresight-io/foresight/model"
	"github.com/foresight-io/foresight/util"
)

// Path is an ordered action sequence over graph entities, a candidate answer
// to "how do I get from these entities to the stated goal".
type Path struct {
	Entities     []model.WorkflowEntity
	Actions      []string
	Confidence   float64
	Completeness float64
}

func (p Path) Len() int {
	return len(p.Actions)
}

// pathsPerStart bounds enumeration per start entity so path search stays
// finite on dense graphs.
const pathsPerStart int = 24

type pathActionRule struct {
	EntityType model.EntityType
	Category   string
	Action     string
	Confidence float64
}

// Per entity type action templates; an empty category is the fallback for
// goals the table has no specific entry for.
var pathActionTemplates = []pathActionRule{
	{EntityType: model.ENTITY_TYPE_NOTE, Category: CATEGORY_CREATION, Action: "Create task from note", Confidence: 0.8},
	{EntityType: model.ENTITY_TYPE_NOTE, Category: CATEGORY_REPORTING, Action: "Summarize note", Confidence: 0.6},
	{EntityType: model.ENTITY_TYPE_NOTE, Category: "", Action: "Review note", Confidence: 0.5},
	{EntityType: model.ENTITY_TYPE_TASK, Category: CATEGORY_PLANNING, Action: "Schedule task", Confidence: 0.6},
	{EntityType: model.ENTITY_TYPE_TASK, Category: CATEGORY_CREATION, Action: "Define task details", Confidence: 0.7},
	{EntityType: model.ENTITY_TYPE_TASK, Category: "", Action: "Complete task", Confidence: 0.7},
	{EntityType: model.ENTITY_TYPE_DOCUMENT, Category: CATEGORY_REVIEW, Action: "Review document", Confidence: 0.7},
	{EntityType: model.ENTITY_TYPE_DOCUMENT, Category: CATEGORY_REPORTING, Action: "Extract summary from document", Confidence: 0.6},
	{EntityType: model.ENTITY_TYPE_DOCUMENT, Category: "", Action: "Open document", Confidence: 0.5},
	{EntityType: model.ENTITY_TYPE_MEDIA, Category: "", Action: "Annotate media", Confidence: 0.5},
	{EntityType: model.ENTITY_TYPE_MAP, Category: "", Action: "Check locations", Confidence: 0.5},
	{EntityType: model.ENTITY_TYPE_REPORT, Category: CATEGORY_REPORTING, Action: "Generate report", Confidence: 0.7},
	{EntityType: model.ENTITY_TYPE_REPORT, Category: "", Action: "Review report", Confidence: 0.5},
}

func actionFor(entityType model.EntityType, category string) (string, float64) {
	for _, rule := range pathActionTemplates {
		if rule.EntityType == entityType && rule.Category == category {
			return rule.Action, rule.Confidence
		}
	}
	for _, rule := range pathActionTemplates {
		if rule.EntityType == entityType && rule.Category == "" {
			return rule.Action, rule.Confidence
		}
	}
	return fmt.Sprintf("Work on %s", entityType), 0.4
}

// FindWorkflowPaths enumerates candidate action sequences reachable from the
// start entities by walking relationship edges, bounded by MaxSteps. Every
// start entity contributes at least its trivial single entity path.
func FindWorkflowPaths(startEntities []model.WorkflowEntity, goal model.GoalAnalysis, g graph.Provider, opts model.WorkflowOptions) []Path {
	opts = opts.Normalized()
	var paths []Path
	for _, start := range startEntities {
		chains := enumerateChains(start, g, opts.MaxSteps)
		for _, chain := range chains {
			paths = append(paths, buildPath(chain, goal))
		}
	}
	return paths
}

// enumerateChains walks neighbors depth first, emitting every prefix as a
// chain. Cycles are cut by a per chain visited set, total output is capped.
func enumerateChains(start model.WorkflowEntity, g graph.Provider, maxSteps int) [][]model.WorkflowEntity {
	var chains [][]model.WorkflowEntity
	var walk func(chain []model.WorkflowEntity, visited map[string]bool)
	walk = func(chain []model.WorkflowEntity, visited map[string]bool) {
		if len(chains) >= pathsPerStart {
			return
		}
		chains = append(chains, append([]model.WorkflowEntity{}, chain...))
		if len(chain) >= maxSteps {
			return
		}
		current := chain[len(chain)-1]
		for _, next := range g.Neighbors(current.Id) {
			if visited[next.Id] {
				continue
			}
			visited[next.Id] = true
			walk(append(chain, next), visited)
			delete(visited, next.Id)
		}
	}
	walk([]model.WorkflowEntity{start}, map[string]bool{start.Id: true})
	return chains
}

func buildPath(chain []model.WorkflowEntity, goal model.GoalAnalysis) Path {
	p := Path{Entities: chain}
	var confidenceSum float64
	types := make([]model.EntityType, 0, len(chain))
	for _, e := range chain {
		action, conf := actionFor(e.Type, goal.Category)
		p.Actions = append(p.Actions, action)
		confidenceSum += conf
		types = append(types, e.Type)
	}
	if len(p.Actions) > 0 {
		p.Confidence = confidenceSum / float64(len(p.Actions))
	}
	p.Completeness = goalCoverage(p.Actions, types, goal)
	return p
}

// RankPaths orders paths by the blended efficiency/completeness score, best
// first. Ties fall to fewer steps, then to higher aggregate confidence.
// Ranking is deterministic for identical inputs.
func RankPaths(paths []Path, opts model.WorkflowOptions) []Path {
	ranked := append([]Path{}, paths...)
	effWeight, compWeight := blendWeights(opts)
	score := func(p Path) float64 {
		eff := timeEfficiency(PathEstimatedTime(p))
		return effWeight*eff + compWeight*p.Completeness
	}
	// Insertion order is preserved on full ties, so selection stays stable.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && pathLess(ranked[j-1], ranked[j], score); j-- {
			ranked[j-1], ranked[j] = ranked[j], ranked[j-1]
		}
	}
	return ranked
}

func pathLess(a Path, b Path, score func(Path) float64) bool {
	sa, sb := score(a), score(b)
	if sa != sb {
		return sa < sb
	}
	if a.Len() != b.Len() {
		return a.Len() > b.Len()
	}
	return a.Confidence < b.Confidence
}

func blendWeights(opts model.WorkflowOptions) (float64, float64) {
	switch {
	case opts.PreferEfficiency && !opts.PreferCompleteness:
		return 0.7, 0.3
	case opts.PreferCompleteness && !opts.PreferEfficiency:
		return 0.3, 0.7
	default:
		return 0.5, 0.5
	}
}

// SelectOptimalPath picks the best ranked path. Zero value when no paths
// were found.
func SelectOptimalPath(paths []Path, opts model.WorkflowOptions) Path {
	if len(paths) == 0 {
		return Path{}
	}
	return RankPaths(paths, opts)[0]
}

// ConvertPathToSteps maps the chosen path to the public step shape using the
// static per action duration table. Durations are estimates, not
// measurements.
func ConvertPathToSteps(path Path, goal model.GoalAnalysis) []model.WorkflowStep {
	steps := make([]model.WorkflowStep, 0, len(path.Actions))
	for i, action := range path.Actions {
		e := path.Entities[i]
		steps = append(steps, model.WorkflowStep{
			Action:               action,
			EntityType:           e.Type,
			EntityId:             e.Id,
			Description:          fmt.Sprintf("%s (%s %s)", action, e.Type, e.Id),
			EstimatedTimeMinutes: durationFor(action),
		})
	}
	return steps
}

// IdentifyPathDifferences lists the steps unique to each side, for
// presenting an alternative next to the chosen plan.
func IdentifyPathDifferences(a Path, b Path) []string {
	var diffs []string
	for _, action := range a.Actions {
		if !util.ContainsFold(b.Actions, action) {
			diffs = append(diffs, fmt.Sprintf("only in chosen path: %s", action))
		}
	}
	for _, action := range b.Actions {
		if !util.ContainsFold(a.Actions, action) {
			diffs = append(diffs, fmt.Sprintf("only in alternative: %s", action))
		}
	}
	return diffs
}
