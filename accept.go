package dnd

// TypeFilter decides which drag types a drop zone participates in. It is a
// closed set: AnyType, ExactType, OneOfTypes and TypePredicate. A nil
// TypeFilter accepts every type.
type TypeFilter interface {
	acceptsType(typ string) bool
}

type anyType struct{}

func (anyType) acceptsType(string) bool { return true }

// AnyType accepts every drag type.
func AnyType() TypeFilter { return anyType{} }

// ExactType accepts exactly one drag type.
type ExactType string

func (e ExactType) acceptsType(typ string) bool { return string(e) == typ }

type oneOfTypes map[string]struct{}

func (o oneOfTypes) acceptsType(typ string) bool {
	_, ok := o[typ]
	return ok
}

// OneOfTypes accepts any of the listed drag types.
func OneOfTypes(types ...string) TypeFilter {
	set := make(oneOfTypes, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// TypePredicate accepts the drag types for which the function returns true.
type TypePredicate func(typ string) bool

func (p TypePredicate) acceptsType(typ string) bool {
	if p == nil {
		return true
	}
	return p(typ)
}

// DropZone is the capability set of a drop target. Bind it to a node and
// register it with a Registry; the zone is only a candidate while its node is
// attached, visible and interactable.
type DropZone struct {
	// Node is the region this zone covers. Required.
	Node *Node

	// Accepts selects the drag types this zone participates in.
	Accepts TypeFilter
	// AcceptsData vetoes individual payloads of an accepted type. Nil
	// accepts everything.
	AcceptsData func(data any, typ string) bool
	// Modes lists the non-copy modes this zone can materialize. Copy is
	// always supported.
	Modes []Mode
	// Mask turns the zone into an opaque "no drop here" region: resolution
	// stops at it and yields no top.
	Mask bool
	// Reorder marks a zone whose drops reorder items of its own list.
	Reorder bool

	// Image replaces the drag image while this zone is top. Nil keeps the
	// source's image.
	Image *Node

	OnDragEnter func(Event)
	OnDragLeave func(Event)
	OnDragOver  func(Event)
	// OnDrop runs only for a legal drop on this zone.
	OnDrop func(Event)

	registry *Registry
	bound    *Node
}

// AcceptsType reports whether the zone participates in drags of typ.
func (z *DropZone) AcceptsType(typ string) bool {
	if z.Accepts == nil {
		return true
	}
	return z.Accepts.acceptsType(typ)
}

// AcceptsPayload reports whether the zone's data predicate accepts data.
func (z *DropZone) AcceptsPayload(data any, typ string) bool {
	if z.AcceptsData == nil {
		return true
	}
	return z.AcceptsData(data, typ)
}

// SupportsMode reports whether the zone can materialize a drop in mode m.
func (z *DropZone) SupportsMode(m Mode) bool {
	if m == ModeCopy {
		return true
	}
	for _, supported := range z.Modes {
		if supported == m {
			return true
		}
	}
	return false
}

// TypeAllowed is AcceptsType under the name used by drop feedback.
func (z *DropZone) TypeAllowed(typ string) bool {
	return z.AcceptsType(typ)
}

// CompatibleMode reports whether a session in mode m may drop here.
func (z *DropZone) CompatibleMode(m Mode) bool {
	return z.SupportsMode(m)
}

// DropAllowed reports whether dropping data of type typ in mode m is legal.
// It is recomputed on every call; nothing is cached on the zone.
func (z *DropZone) DropAllowed(typ string, data any, m Mode) bool {
	return z.TypeAllowed(typ) && z.CompatibleMode(m) && z.AcceptsPayload(data, typ)
}
