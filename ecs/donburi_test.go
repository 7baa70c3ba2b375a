package ecs

import (
	"testing"

	"github.com/phanxgames/dnd"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var tagComponent = donburi.NewTag()

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	srcEntity := world.Create(tagComponent)
	src := dnd.NewBox("row", 10, 10)
	src.UserData = srcEntity
	zone := &dnd.DropZone{Node: dnd.NewBox("folder", 50, 50)}

	var received []DragEvent
	DragEventType.Subscribe(world, func(w donburi.World, e DragEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dnd.Event{
		Type:      dnd.EventDragStart,
		SessionID: "s1",
		DragType:  "file",
		Source:    src,
		Position:  dnd.Vec2{X: 100, Y: 200},
	})
	store.EmitEvent(dnd.Event{
		Type:    dnd.EventDrop,
		Source:  src,
		Top:     zone,
		Success: true,
	})

	// Events are queued until processed.
	DragEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != dnd.EventDragStart || e0.SessionID != "s1" || e0.DragType != "file" {
		t.Errorf("event 0: %+v", e0.Event)
	}
	if e0.SourceEntity != srcEntity {
		t.Errorf("event 0 source entity = %v, want %v", e0.SourceEntity, srcEntity)
	}
	if e0.TopEntity != donburi.Null {
		t.Errorf("event 0 top entity = %v, want Null", e0.TopEntity)
	}

	e1 := received[1]
	if e1.Type != dnd.EventDrop || !e1.Success || e1.Top != zone {
		t.Errorf("event 1: %+v", e1.Event)
	}
	if e1.TopEntity != donburi.Null {
		t.Errorf("event 1 top entity = %v, want Null for unbound node", e1.TopEntity)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store dnd.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	DragEventType.Subscribe(world, func(w donburi.World, e DragEvent) {
		count1++
	})
	DragEventType.Subscribe(world, func(w donburi.World, e DragEvent) {
		count2++
	})

	store.EmitEvent(dnd.Event{Type: dnd.EventDragEnd})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_SceneDrag(t *testing.T) {
	world := donburi.NewWorld()
	scene := dnd.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	src := dnd.NewBox("row", 20, 20)
	src.Drag = &dnd.DragSource{Type: "file"}
	scene.Root().AddChild(src)

	folder := dnd.NewBox("folder", 50, 50)
	folder.X = 100
	folderEntity := world.Create(tagComponent)
	folder.UserData = folderEntity
	scene.Root().AddChild(folder)
	scene.Registry().Register(&dnd.DropZone{Node: folder, Accepts: dnd.ExactType("file")})

	var types []dnd.EventType
	var dropTop donburi.Entity
	DragEventType.Subscribe(world, func(w donburi.World, e DragEvent) {
		types = append(types, e.Type)
		if e.Type == dnd.EventDrop {
			dropTop = e.TopEntity
		}
	})

	scene.Session().Start(src, dnd.PointerEvent{}, 5, 5, "file", nil)
	scene.Session().RoutePointer(dnd.PointerEvent{X: 120, Y: 10}, scene.Registry().Resolve(120, 10, "file"))
	scene.Session().Stop(dnd.PointerEvent{X: 120, Y: 10})
	DragEventType.ProcessEvents(world)

	want := []dnd.EventType{dnd.EventDragStart, dnd.EventDragTopChanged, dnd.EventDragPositionChanged, dnd.EventDrop, dnd.EventDragEnd}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
	if dropTop != folderEntity {
		t.Errorf("drop top entity = %v, want %v", dropTop, folderEntity)
	}
}
