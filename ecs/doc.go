// Package ecs provides ECS adapters for uicam's routed events.
//
// The primary adapter is [NewDonburiStore], which publishes every event
// routed to a node with a non-zero EntityID (hover, press, click, drag,
// drop, select, key, ...) into a [Donburi] world as [uicam.Event] values.
// Subscribe to [RoutedEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	router.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
