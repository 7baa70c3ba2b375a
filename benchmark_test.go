package dnd

import "testing"

// setupBenchScene creates a Scene with n rows, every tenth one a drop zone.
func setupBenchScene(n int) *Scene {
	s := NewScene()
	for i := 0; i < n; i++ {
		row := NewBox("row", 10, 10)
		row.X = float64(i%100) * 12
		row.Y = float64(i/100) * 12
		s.Root().AddChild(row)
		if i%10 == 0 {
			s.Registry().Register(&DropZone{Node: row, Accepts: ExactType("file")})
		}
	}
	return s
}

func BenchmarkResolve_1000Nodes(b *testing.B) {
	s := setupBenchScene(1000)
	s.Registry().Resolve(0, 0, "file")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Registry().Resolve(500, 50, "file")
	}
}

func BenchmarkRoutePointer(b *testing.B) {
	s := setupBenchScene(1000)
	zone := s.Registry().Zones()[3]
	if err := s.Session().Start(nil, PointerEvent{}, 0, 0, "file", nil); err != nil {
		b.Fatal(err)
	}
	ev := PointerEvent{Kind: PointerMouse, Phase: PointerMove}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			s.Session().RoutePointer(ev, zone)
		} else {
			s.Session().RoutePointer(ev, nil)
		}
	}
}

func BenchmarkEmit_10Listeners(b *testing.B) {
	bus := NewBus()
	for i := 0; i < 10; i++ {
		bus.OnDragPositionChanged(func(Event) {})
	}
	ev := Event{Type: EventDragPositionChanged}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bus.emit(ev)
	}
}
