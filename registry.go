package dnd

// Registry tracks the mounted drop zones of one node tree and resolves which
// of them owns a pointer position.
//
// Resolution mirrors event bubbling without depending on it: the frontmost
// hit node is found in reverse painter order, then its ancestor chain is
// walked innermost-first and the first zone that is a mask or accepts the
// drag type ends the walk.
type Registry struct {
	root  *Node
	zones []*DropZone

	hitBuf  []*Node
	candBuf []*DropZone
}

// NewRegistry creates an empty registry over the tree rooted at root.
func NewRegistry(root *Node) *Registry {
	return &Registry{root: root}
}

// Register adds z to the registry and binds it to z.Node. A zone already
// bound to that node is replaced. Registering z again is a no-op unless
// z.Node changed, in which case the zone moves to the new node.
// Panics if z or z.Node is nil.
func (r *Registry) Register(z *DropZone) {
	if z == nil || z.Node == nil {
		panic("dnd: drop zone has no node")
	}
	if z.registry == r && z.bound == z.Node && z.Node.Drop == z {
		return
	}
	if z.registry != nil {
		z.registry.Unregister(z)
	}
	if prev := z.Node.Drop; prev != nil && prev != z && prev.registry != nil {
		prev.registry.Unregister(prev)
	}
	z.registry = r
	z.bound = z.Node
	z.Node.Drop = z
	r.zones = append(r.zones, z)
}

// Unregister removes z. Unregistering a zone that is not registered is a
// no-op.
func (r *Registry) Unregister(z *DropZone) {
	if z == nil || z.registry != r {
		return
	}
	for i, c := range r.zones {
		if c == z {
			copy(r.zones[i:], r.zones[i+1:])
			r.zones[len(r.zones)-1] = nil
			r.zones = r.zones[:len(r.zones)-1]
			break
		}
	}
	z.registry = nil
	if z.bound != nil && z.bound.Drop == z {
		z.bound.Drop = nil
	}
	z.bound = nil
}

// Registered reports whether z is currently registered here.
func (r *Registry) Registered(z *DropZone) bool {
	return z != nil && z.registry == r
}

// Len returns the number of registered zones.
func (r *Registry) Len() int {
	return len(r.zones)
}

// Zones returns the registered zones in registration order. The returned
// slice MUST NOT be mutated.
func (r *Registry) Zones() []*DropZone {
	return r.zones
}

// collectHittable walks the tree in painter order (DFS, ZIndex-sorted),
// appending nodes that have a hit area. Skips Visible=false and
// Interactable=false subtrees.
func collectHittable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Width != 0 || n.Height != 0 {
		buf = append(buf, n)
	}
	if len(n.children) == 0 {
		return buf
	}
	for _, child := range sortedChildrenOf(n) {
		buf = collectHittable(child, buf)
	}
	return buf
}

// HitTest returns the frontmost node whose hit area contains the world point
// (x, y), or nil.
func (r *Registry) HitTest(x, y float64) *Node {
	if r.root == nil {
		return nil
	}
	updateWorldTransform(r.root, identityTransform, false)
	r.hitBuf = collectHittable(r.root, r.hitBuf[:0])
	for i := len(r.hitBuf) - 1; i >= 0; i-- {
		n := r.hitBuf[i]
		lx, ly := n.WorldToLocal(x, y)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// Candidates returns the registered zones containing the frontmost node at
// (x, y), innermost first. The returned slice is reused by the next call.
func (r *Registry) Candidates(x, y float64) []*DropZone {
	r.candBuf = r.candBuf[:0]
	for n := r.HitTest(x, y); n != nil; n = n.Parent {
		if z := n.Drop; z != nil && z.registry == r {
			r.candBuf = append(r.candBuf, z)
		}
	}
	return r.candBuf
}

// Resolve returns the zone at which resolution for a drag of typ stops at
// (x, y): the innermost mask or accepting zone. It returns nil when the walk
// reaches the root without a match. The caller distinguishes masks with
// DropZone.Mask.
func (r *Registry) Resolve(x, y float64, typ string) *DropZone {
	for _, z := range r.Candidates(x, y) {
		if z.Mask || z.AcceptsType(typ) {
			return z
		}
	}
	return nil
}

// ResolveTopCandidate returns the innermost zone at pos that accepts typ, or
// nil. With excludeMasked, a mask reached first hides every zone beneath it;
// without it masks are transparent. data is not consulted: a zone that
// rejects the payload still becomes top, and reports a forbidden drop
// through DropAllowed.
func (r *Registry) ResolveTopCandidate(pos Vec2, typ string, data any, excludeMasked bool) *DropZone {
	for _, z := range r.Candidates(pos.X, pos.Y) {
		if z.Mask {
			if excludeMasked {
				return nil
			}
			continue
		}
		if z.AcceptsType(typ) {
			return z
		}
	}
	return nil
}
