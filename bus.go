package dnd

const numEventTypes = int(EventDragEnd) + 1

type handler struct {
	id uint32
	fn func(Event)
}

// Bus delivers drag lifecycle events to subscribers synchronously, in
// subscription order. Each listener runs isolated: a panicking listener is
// logged and skipped, the remaining listeners and the session are unaffected.
type Bus struct {
	handlers [numEventTypes][]handler
	nextID   uint32
	store    EntityStore
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscription allows removing a registered listener.
type Subscription struct {
	id    uint32
	bus   *Bus
	event EventType
}

// Remove unregisters the listener so it no longer fires. Removing twice is a
// no-op.
func (h Subscription) Remove() {
	if h.bus == nil || int(h.event) >= numEventTypes {
		return
	}
	s := h.bus.handlers[h.event]
	for i := range s {
		if s[i].id == h.id {
			// Copy on write: an emit in progress keeps iterating the old slice.
			h.bus.handlers[h.event] = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

// Subscribe registers fn for events of type t.
func (b *Bus) Subscribe(t EventType, fn func(Event)) Subscription {
	if int(t) >= numEventTypes {
		panic("dnd: unknown event type")
	}
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], handler{id: id, fn: fn})
	return Subscription{id: id, bus: b, event: t}
}

// Unsubscribe is Subscription.Remove.
func (b *Bus) Unsubscribe(sub Subscription) {
	sub.Remove()
}

// OnDragStart registers a listener for EventDragStart.
func (b *Bus) OnDragStart(fn func(Event)) Subscription {
	return b.Subscribe(EventDragStart, fn)
}

// OnDragTopChanged registers a listener for EventDragTopChanged.
func (b *Bus) OnDragTopChanged(fn func(Event)) Subscription {
	return b.Subscribe(EventDragTopChanged, fn)
}

// OnDragPositionChanged registers a listener for EventDragPositionChanged.
func (b *Bus) OnDragPositionChanged(fn func(Event)) Subscription {
	return b.Subscribe(EventDragPositionChanged, fn)
}

// OnDrop registers a listener for EventDrop.
func (b *Bus) OnDrop(fn func(Event)) Subscription {
	return b.Subscribe(EventDrop, fn)
}

// OnDragEnd registers a listener for EventDragEnd.
func (b *Bus) OnDragEnd(fn func(Event)) Subscription {
	return b.Subscribe(EventDragEnd, fn)
}

// SetEntityStore sets the optional ECS bridge.
func (b *Bus) SetEntityStore(store EntityStore) {
	b.store = store
}

// Len returns the number of listeners for t.
func (b *Bus) Len(t EventType) int {
	if int(t) >= numEventTypes {
		return 0
	}
	return len(b.handlers[t])
}

// emit delivers ev to every listener of its type, then to the ECS bridge.
func (b *Bus) emit(ev Event) {
	for _, h := range b.handlers[ev.Type] {
		safeCall(ev.Type.String()+" listener", h.fn, ev)
	}
	if b.store != nil {
		safeCall("entity store", b.store.EmitEvent, ev)
	}
}

// safeCall runs fn(ev), recovering and logging a panic.
func safeCall(what string, fn func(Event), ev Event) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("%s panicked on %s (session %s): %v", what, ev.Type, ev.SessionID, r)
		}
	}()
	fn(ev)
}
