package graph

import (
	"encoding/json"
	"os"

	"github.com/foresight-io/foresight/model"
)

type snapshot struct {
	Entities      []model.WorkflowEntity       `json:"entities"`
	Relationships []model.WorkflowRelationship `json:"relationships"`
}

// LoadFromFile reads a JSON graph snapshot from disk. Used to bootstrap a
// workspace graph without a running backend.
func LoadFromFile(path string) (*InMemoryGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return NewInMemoryGraph(snap.Entities, snap.Relationships), nil
}
