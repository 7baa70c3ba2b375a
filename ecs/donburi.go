package ecs

import (
	"github.com/phanxgames/dnd"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEvent is a dnd.Event together with the entities bound to its source
// and top zone nodes. A node is bound to an entity by storing the
// donburi.Entity in its UserData; unbound nodes map to donburi.Null.
type DragEvent struct {
	dnd.Event

	SourceEntity donburi.Entity
	TopEntity    donburi.Entity
}

// DragEventType is the Donburi event type for drag lifecycle events.
// Subscribe to this in your ECS systems to react to drags and drops.
var DragEventType = events.NewEventType[DragEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Drag events are published to DragEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dnd.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dnd.Event) {
	de := DragEvent{
		Event:        event,
		SourceEntity: EntityOf(event.Source),
		TopEntity:    donburi.Null,
	}
	if event.Top != nil {
		de.TopEntity = EntityOf(event.Top.Node)
	}
	DragEventType.Publish(s.world, de)
}

// EntityOf returns the entity stored in n.UserData, or donburi.Null.
func EntityOf(n *dnd.Node) donburi.Entity {
	if n == nil {
		return donburi.Null
	}
	if e, ok := n.UserData.(donburi.Entity); ok {
		return e
	}
	return donburi.Null
}
