package graph

import (
	"testing"

	"github.com/foresight-io/foresight/model"
	"github.com/stretchr/testify/require"
)

func testGraph() *InMemoryGraph {
	return NewInMemoryGraph(
		[]model.WorkflowEntity{
			{Id: "N1", Type: model.ENTITY_TYPE_NOTE},
			{Id: "T1", Type: model.ENTITY_TYPE_TASK},
			{Id: "D1", Type: model.ENTITY_TYPE_DOCUMENT},
		},
		[]model.WorkflowRelationship{
			{SourceId: "N1", TargetId: "T1", Type: "derived-from"},
			{SourceId: "D1", TargetId: "N1", Type: "references"},
		},
	)
}

func TestGetEntity(t *testing.T) {
	g := testGraph()
	e, ok := g.GetEntity("N1")
	require.True(t, ok)
	require.Equal(t, model.ENTITY_TYPE_NOTE, e.Type)

	_, ok = g.GetEntity("ghost")
	require.False(t, ok)
}

func TestNeighborsBothDirections(t *testing.T) {
	g := testGraph()
	neighbors := g.Neighbors("N1")

	require.Len(t, neighbors, 2)
	// Ordered by id so graph walks stay deterministic.
	require.Equal(t, "D1", neighbors[0].Id)
	require.Equal(t, "T1", neighbors[1].Id)

	require.Empty(t, g.Neighbors("ghost"))
}

func TestReplaceSwapsSnapshot(t *testing.T) {
	g := testGraph()
	g.Replace(
		[]model.WorkflowEntity{{Id: "M1", Type: model.ENTITY_TYPE_MEDIA}},
		nil,
	)

	_, ok := g.GetEntity("N1")
	require.False(t, ok)
	_, ok = g.GetEntity("M1")
	require.True(t, ok)
	require.Empty(t, g.Relationships())
}

func TestEntitiesIsACopy(t *testing.T) {
	g := testGraph()
	entities := g.Entities()
	delete(entities, "N1")

	_, ok := g.GetEntity("N1")
	require.True(t, ok)
}
