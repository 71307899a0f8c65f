package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeTrackerAdded   EventType = "tracker_added"
	EventTypeTrackerRemoved EventType = "tracker_removed"
	EventTypeKillboardReset EventType = "killboard_reset"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// TrackerAddedEvent fires when a server starts tracking a player or guild
type TrackerAddedEvent struct {
	GuildID    int64
	EntityID   string
	EntityName string
	EntityType string
}

func (e TrackerAddedEvent) Type() EventType {
	return EventTypeTrackerAdded
}

// TrackerRemovedEvent fires when a server stops tracking an entity
type TrackerRemovedEvent struct {
	GuildID    int64
	EntityID   string
	EntityName string
}

func (e TrackerRemovedEvent) Type() EventType {
	return EventTypeTrackerRemoved
}

// KillboardResetEvent fires when a server wipes its killboard configuration
type KillboardResetEvent struct {
	GuildID int64
}

func (e KillboardResetEvent) Type() EventType {
	return EventTypeKillboardReset
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously so a slow subscriber cannot block the publisher.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}
