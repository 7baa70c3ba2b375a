package dnd

// Presenter renders drag feedback from session events. It never mutates the
// session; a Scene subscribes it to the bus and advances it every frame.
type Presenter interface {
	DragStart(Event)
	TopChanged(Event)
	PositionChanged(Event)
	DragEnd(Event)
	// Update advances animations by dt seconds.
	Update(dt float32)
}

// attachPresenter subscribes p to every event it consumes on bus.
func attachPresenter(bus *Bus, p Presenter) []Subscription {
	return []Subscription{
		bus.OnDragStart(p.DragStart),
		bus.OnDragTopChanged(p.TopChanged),
		bus.OnDragPositionChanged(p.PositionChanged),
		bus.OnDragEnd(p.DragEnd),
	}
}
