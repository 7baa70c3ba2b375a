// Package ecs provides ECS adapters for dnd's drag event bus.
//
// The primary adapter is [NewDonburiStore], which bridges drag lifecycle
// events (dragstart, dragtopchanged, dragpositionchanged, drop, dragend) into
// a [Donburi] world as typed events. Subscribe to [DragEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
