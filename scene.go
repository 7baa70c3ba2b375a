package dnd

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, the drop zone
// registry, the drag session and the input state. Drive it by calling Update
// once per tick from the game's Update.
type Scene struct {
	root    *Node
	overlay *Node
	debug   bool

	registry *Registry
	bus      *Bus
	session  *Session
	tracker  *Tracker
	loop     RunLoop
	viewport *Viewport

	presenter     Presenter
	presenterSubs []Subscription

	// Watchdog
	watchdog bool
	focused  bool

	// Input state
	mouseDown    bool
	touchDown    bool
	touchID      ebiten.TouchID
	prevTouchIDs []ebiten.TouchID
	lastMouse    Vec2
	lastTouch    Vec2
	lastEvent    PointerEvent

	// Synthetic input
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewScene creates a scene with DefaultConfig.
func NewScene() *Scene {
	return NewSceneWithConfig(DefaultConfig())
}

// NewSceneWithConfig creates a scene with a pre-created root node, an empty
// registry, an idle session and the default drag-image presenter.
func NewSceneWithConfig(cfg Config) *Scene {
	root := NewNode("root")
	overlay := NewNode("drag-layer")
	bus := NewBus()
	s := &Scene{
		root:     root,
		overlay:  overlay,
		registry: NewRegistry(root),
		bus:      bus,
		session:  NewSession(bus),
		viewport: NewViewport(Rect{}),
		watchdog: !cfg.DisableWatchdog,
		focused:  true,
	}

	s.tracker = NewTracker(&s.loop)
	if cfg.Delta > 0 {
		s.tracker.Delta = cfg.Delta
	}
	s.tracker.OnIntent = s.onDragIntent
	s.tracker.OnMove = s.onDragMove
	s.tracker.OnRelease = s.onRelease
	s.tracker.OnEnd = s.onGestureEnd

	images := NewDragImages(overlay)
	if cfg.DragImageOpacity > 0 {
		images.Opacity = cfg.DragImageOpacity
	}
	if cfg.GoBackDuration > 0 {
		images.GoBackDuration = cfg.GoBackDuration
	}
	if cfg.DragImageFade > 0 {
		images.FadeDuration = cfg.DragImageFade
	}
	s.SetPresenter(images)
	s.SetDebugMode(cfg.Debug)
	return s
}

// Root returns the scene's root node. Drag sources and drop zones live in
// its subtree.
func (s *Scene) Root() *Node { return s.root }

// Overlay returns the node drag images are attached to. It is drawn above
// Root and never hit tested.
func (s *Scene) Overlay() *Node { return s.overlay }

// Registry returns the scene's drop zone registry.
func (s *Scene) Registry() *Registry { return s.registry }

// Bus returns the bus drag events are published on.
func (s *Scene) Bus() *Bus { return s.bus }

// Session returns the scene's drag session.
func (s *Scene) Session() *Session { return s.session }

// Tracker returns the scene's pointer tracker.
func (s *Scene) Tracker() *Tracker { return s.tracker }

// Viewport returns the viewport used for screen-to-world conversion.
func (s *Scene) Viewport() *Viewport { return s.viewport }

// SetViewport replaces the viewport. Nil restores an identity viewport.
func (s *Scene) SetViewport(v *Viewport) {
	if v == nil {
		v = NewViewport(Rect{})
	}
	s.viewport = v
}

// Presenter returns the active presenter, or nil.
func (s *Scene) Presenter() Presenter { return s.presenter }

// SetPresenter replaces the presenter. Nil disables drag feedback.
func (s *Scene) SetPresenter(p Presenter) {
	for _, sub := range s.presenterSubs {
		sub.Remove()
	}
	s.presenterSubs = nil
	s.presenter = p
	if p != nil {
		s.presenterSubs = attachPresenter(s.bus, p)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.bus.SetEntityStore(store)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access and session protocol violations panic, tree depth warnings are
// printed and every routing decision is logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// SetWatchdog enables or disables aborting the drag when focus is lost.
func (s *Scene) SetWatchdog(enabled bool) {
	s.watchdog = enabled
}

// InProgress reports whether a drag session is active.
func (s *Scene) InProgress() bool { return s.session.InProgress() }

// DragInProgress reports the tracker's drag marker, which stays set until
// the deferred end of the gesture.
func (s *Scene) DragInProgress() bool { return s.tracker.DragInProgress() }

// SelectionSuppressed reports whether text selection should be disabled.
func (s *Scene) SelectionSuppressed() bool { return s.tracker.SelectionSuppressed() }

// CurrentDropMode returns the drop mode to show as feedback for the current
// top zone. See Session.CurrentDropMode.
func (s *Scene) CurrentDropMode() Mode { return s.session.CurrentDropMode() }

// Update runs deferred tasks, advances animations and processes input.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.beginFrame(dt)
	if !s.processInjectedInput() {
		s.processInput()
	}
}

// beginFrame runs everything that precedes input for a frame.
func (s *Scene) beginFrame(dt float32) {
	s.loop.Flush()
	s.viewport.update(dt)
	if s.presenter != nil {
		s.presenter.Update(dt)
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
}

// --- Gesture wiring ---

func (s *Scene) onDragIntent(g Gesture, ev PointerEvent) {
	src := g.Source.Drag
	if src == nil {
		return
	}
	if err := s.session.Start(g.Source, ev, g.StartX, g.StartY, src.Type, src.Data); err != nil {
		s.check(err)
		return
	}
	if src.Mode != "" {
		s.check(s.session.SetMode(src.Mode))
	}
}

func (s *Scene) onDragMove(_ Gesture, ev PointerEvent) {
	if !s.session.InProgress() {
		return
	}
	candidate := s.registry.Resolve(ev.X, ev.Y, s.session.Type())
	s.check(s.session.RoutePointer(ev, candidate))
}

// onRelease dispatches the source's click while the session, if any, is
// still in progress.
func (s *Scene) onRelease(g Gesture, ev PointerEvent) {
	src := g.Source.Drag
	if src == nil || src.OnClick == nil {
		return
	}
	hit := s.registry.HitTest(ev.X, ev.Y)
	if hit == nil || !isAncestor(g.Source, hit) {
		return
	}
	src.OnClick(ClickContext{
		Node:    g.Source,
		GlobalX: ev.X,
		GlobalY: ev.Y,
		Kind:    ev.Kind,
		InDrag:  s.session.InProgress(),
	})
}

func (s *Scene) onGestureEnd(_ Gesture, ev PointerEvent) {
	// The watchdog may have aborted the session already.
	if !s.session.InProgress() {
		return
	}
	s.check(s.session.Stop(ev))
}

// checkFocus aborts the drag and the tracked gesture when focus is lost.
func (s *Scene) checkFocus(focused bool) {
	wasFocused := s.focused
	s.focused = focused
	if focused || !wasFocused || !s.watchdog {
		return
	}
	if !s.session.InProgress() && !s.tracker.Active() {
		return
	}
	debugf("focus lost, aborting drag")
	ev := s.lastEvent
	ev.Phase = PointerUp
	s.tracker.Cancel()
	s.mouseDown = false
	s.touchDown = false
	if s.session.InProgress() {
		s.check(s.session.Abort(ev))
	}
}

// check logs a session protocol violation and panics in debug mode.
func (s *Scene) check(err error) {
	if err == nil {
		return
	}
	logger.Printf("%v", err)
	if s.debug {
		panic(err)
	}
}
