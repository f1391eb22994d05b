package ecs

import (
	"github.com/phanxgames/uicam"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RoutedEventType is the Donburi event type for routed uicam events.
var RoutedEventType = events.NewEventType[uicam.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on RoutedEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) uicam.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event uicam.Event) {
	RoutedEventType.Publish(s.world, event)
}

// Filter returns a subscriber that forwards only events of type t to fn.
func Filter(t uicam.EventType, fn func(donburi.World, uicam.Event)) func(donburi.World, uicam.Event) {
	return func(w donburi.World, e uicam.Event) {
		if e.Type == t {
			fn(w, e)
		}
	}
}
