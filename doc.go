// Package dnd coordinates drag and drop for tree and list widgets built on
// [Ebitengine].
//
// It tracks an in-progress drag, decides which drop zone currently owns the
// pointer, evaluates whether that zone accepts the dragged payload and
// publishes lifecycle events so drag images and highlight state can react.
//
// # Quick start
//
// Implement [ebiten.Game] and call [Scene.Update] and [Scene.Draw]:
//
//	type Game struct{ scene *dnd.Scene }
//
//	func (g *Game) Update() error               { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)        { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Sources and zones
//
// Every widget is a [Node] in the tree rooted at [Scene.Root]. A node becomes
// draggable by setting [Node.Drag], and becomes a drop target by registering
// a [DropZone] with [Scene.Registry]:
//
//	row := dnd.NewBox("row-1", 200, 24)
//	row.Drag = &dnd.DragSource{Type: "file", Data: file}
//	list.AddChild(row)
//
//	scene.Registry().Register(&dnd.DropZone{
//		Node:    folder,
//		Accepts: dnd.ExactType("file"),
//		OnDrop:  func(e dnd.Event) { move(e.Data, folder) },
//	})
//
// Zones nest. The innermost zone under the pointer that accepts the drag
// type becomes the session's top; a zone with Mask set hides every zone
// beneath it.
//
// # Events
//
// The [Session] publishes on the scene's [Bus], synchronously and in order:
// dragstart, then dragtopchanged and dragpositionchanged for every pointer
// move, then drop (when released over a top zone) and dragend. A drag ends
// on the frame after the release, so the click produced by the release still
// sees the drag in progress.
//
// # Testing
//
// Input can be injected with [Scene.InjectDrag] and friends, or scripted with
// [LoadTestScript]. The ECS bridge in dnd/ecs forwards every event into a
// [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package dnd
