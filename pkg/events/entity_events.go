package events

import "time"

const (
	ParentEntityCreated = "PARENT_ENTITY_CREATED"
	ParentEntityUpdated = "PARENT_ENTITY_UPDATED"
	ParentEntityDeleted = "PARENT_ENTITY_DELETED"

	ChildEntityCreated  = "CHILD_ENTITY_CREATED"
	ChildEntityUpdated  = "CHILD_ENTITY_UPDATED"
	ChildEntityDeleted  = "CHILD_ENTITY_DELETED"
	ChildEntityRelinked = "CHILD_ENTITY_RELINKED"
)

// AllEntityEventTypes lists every type emitted by the entity services.
var AllEntityEventTypes = []string{
	ParentEntityCreated,
	ParentEntityUpdated,
	ParentEntityDeleted,
	ChildEntityCreated,
	ChildEntityUpdated,
	ChildEntityDeleted,
	ChildEntityRelinked,
}

// NewEntityEvent builds the event published after a committed mutation.
// extra is merged into the payload.
func NewEntityEvent(eventType, entityName string, id int64, extra map[string]interface{}) BaseEvent {
	data := map[string]interface{}{
		"entity": entityName,
		"id":     id,
	}
	for k, v := range extra {
		data[k] = v
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}
