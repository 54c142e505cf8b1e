package heuristics

import (
	"strings"

	"github.com/foresight-io/foresight/model"
	"github.com/foresight-io/foresight/util"
	c "github.com/patrickmn/go-cache"
)

const CATEGORY_CREATION string = "creation"
const CATEGORY_REVIEW string = "review"
const CATEGORY_ORGANIZATION string = "organization"
const CATEGORY_REPORTING string = "reporting"
const CATEGORY_PLANNING string = "planning"
const CATEGORY_GENERAL string = "general"

type goalCategoryRule struct {
	Category        string
	Keywords        []string
	RequiredActions []string
}

var goalCategoryRules = []goalCategoryRule{
	{Category: CATEGORY_CREATION, Keywords: []string{"create", "turn", "make", "convert", "add", "new"}, RequiredActions: []string{"create"}},
	{Category: CATEGORY_REVIEW, Keywords: []string{"review", "check", "verify", "approve", "read"}, RequiredActions: []string{"review"}},
	{Category: CATEGORY_ORGANIZATION, Keywords: []string{"organize", "group", "sort", "clean", "arrange"}, RequiredActions: []string{"organize"}},
	{Category: CATEGORY_REPORTING, Keywords: []string{"report", "summarize", "summary", "export"}, RequiredActions: []string{"summarize"}},
	{Category: CATEGORY_PLANNING, Keywords: []string{"plan", "schedule", "roadmap", "prepare"}, RequiredActions: []string{"plan"}},
}

var entityTypeKeywords = []struct {
	Keyword string
	Type    model.EntityType
}{
	{Keyword: "note", Type: model.ENTITY_TYPE_NOTE},
	{Keyword: "task", Type: model.ENTITY_TYPE_TASK},
	{Keyword: "document", Type: model.ENTITY_TYPE_DOCUMENT},
	{Keyword: "media", Type: model.ENTITY_TYPE_MEDIA},
	{Keyword: "map", Type: model.ENTITY_TYPE_MAP},
	{Keyword: "report", Type: model.ENTITY_TYPE_REPORT},
}

var goalStopwords = map[string]bool{
	"this": true, "that": true, "the": true, "a": true, "an": true,
	"into": true, "to": true, "for": true, "of": true, "and": true,
	"my": true, "it": true, "in": true, "on": true, "with": true,
}

// Analyzer classifies free text goals. Analysis is a pure function of the
// goal text, so results are cached.
type Analyzer struct {
	cache *c.Cache
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		cache: c.New(c.NoExpiration, 0),
	}
}

// AnalyzeGoal never fails; unrecognized or empty input yields a general
// analysis with no required actions.
func (a *Analyzer) AnalyzeGoal(goalDescription string) model.GoalAnalysis {
	key := strings.ToLower(strings.TrimSpace(goalDescription))
	if cached, found := a.cache.Get(key); found {
		return cached.(model.GoalAnalysis)
	}
	analysis := analyze(key)
	a.cache.Set(key, analysis, c.NoExpiration)
	return analysis
}

func analyze(goal string) model.GoalAnalysis {
	words := strings.Fields(goal)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:")
		if w == "" || goalStopwords[w] {
			continue
		}
		keywords = append(keywords, w)
	}

	analysis := model.GoalAnalysis{
		Category: CATEGORY_GENERAL,
		Keywords: keywords,
	}
	for _, rule := range goalCategoryRules {
		if util.ContainsAnySubstring(goal, rule.Keywords) {
			analysis.Category = rule.Category
			analysis.RequiredActions = rule.RequiredActions
			break
		}
	}
	for _, ek := range entityTypeKeywords {
		if strings.Contains(goal, ek.Keyword) {
			analysis.TargetEntityTypes = append(analysis.TargetEntityTypes, ek.Type)
		}
	}
	return analysis
}
