package model

type EntityType string

const ENTITY_TYPE_NOTE EntityType = "note"
const ENTITY_TYPE_TASK EntityType = "task"
const ENTITY_TYPE_DOCUMENT EntityType = "document"
const ENTITY_TYPE_MEDIA EntityType = "media"
const ENTITY_TYPE_MAP EntityType = "map"
const ENTITY_TYPE_REPORT EntityType = "report"

// WorkflowEntity is a first class workspace item. The engine treats it as
// immutable; attributes are opaque to the core.
type WorkflowEntity struct {
	Id         string         `json:"id"`
	Type       EntityType     `json:"type"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type WorkflowRelationship struct {
	SourceId string `json:"sourceId"`
	TargetId string `json:"targetId"`
	Type     string `json:"type"`
}

func ValidEntityType(t string) bool {
	switch EntityType(t) {
	case ENTITY_TYPE_NOTE, ENTITY_TYPE_TASK, ENTITY_TYPE_DOCUMENT,
		ENTITY_TYPE_MEDIA, ENTITY_TYPE_MAP, ENTITY_TYPE_REPORT:
		return true
	}
	return false
}
