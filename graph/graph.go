package graph

import (
	"sort"
	"sync"

	"github.com/foresight-io/foresight/model"
)

// Provider is the read only view of the workspace graph the engine reasons
// over. The engine never mutates entities or relationships.
type Provider interface {
	GetEntity(id string) (*model.WorkflowEntity, bool)
	Entities() map[string]model.WorkflowEntity
	Relationships() []model.WorkflowRelationship
	Neighbors(id string) []model.WorkflowEntity
}

type InMemoryGraph struct {
	mu            sync.RWMutex
	entities      map[string]model.WorkflowEntity
	relationships []model.WorkflowRelationship
}

func NewInMemoryGraph(entities []model.WorkflowEntity, relationships []model.WorkflowRelationship) *InMemoryGraph {
	g := &InMemoryGraph{}
	g.Replace(entities, relationships)
	return g
}

// Replace swaps the whole snapshot. Used by the graph seeding endpoint.
func (g *InMemoryGraph) Replace(entities []model.WorkflowEntity, relationships []model.WorkflowRelationship) {
	m := make(map[string]model.WorkflowEntity, len(entities))
	for _, e := range entities {
		m[e.Id] = e
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entities = m
	g.relationships = append([]model.WorkflowRelationship{}, relationships...)
}

func (g *InMemoryGraph) GetEntity(id string) (*model.WorkflowEntity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.entities[id]
	if !ok {
		return nil, false
	}
	return &e, true
}

func (g *InMemoryGraph) Entities() map[string]model.WorkflowEntity {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]model.WorkflowEntity, len(g.entities))
	for k, v := range g.entities {
		out[k] = v
	}
	return out
}

func (g *InMemoryGraph) Relationships() []model.WorkflowRelationship {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]model.WorkflowRelationship{}, g.relationships...)
}

// Neighbors returns entities connected to id over any relationship, in
// either direction, ordered by entity id so graph walks stay deterministic.
func (g *InMemoryGraph) Neighbors(id string) []model.WorkflowEntity {
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[string]bool)
	var out []model.WorkflowEntity
	add := func(other string) {
		if other == id || seen[other] {
			return
		}
		if e, ok := g.entities[other]; ok {
			seen[other] = true
			out = append(out, e)
		}
	}
	for _, rel := range g.relationships {
		if rel.SourceId == id {
			add(rel.TargetId)
		}
		if rel.TargetId == id {
			add(rel.SourceId)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}
