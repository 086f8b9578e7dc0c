package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"holdscroll/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPositionChanged    = domain.EventPositionChanged
	EventScrollStateChanged = domain.EventScrollStateChanged
	EventHoldStarted        = domain.EventHoldStarted
	EventHoldEnded          = domain.EventHoldEnded
	EventVisibilityChanged  = domain.EventVisibilityChanged
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
)

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Publish runs handlers inline, in subscription order, on the caller's goroutine.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	logger   zerolog.Logger
}

// New creates a new event bus
func New(logger zerolog.Logger) EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
		logger:   logger,
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	// Position changes fire every animation frame
	if event.Type() != EventPositionChanged {
		b.logger.Debug().Str("event", string(event.Type())).Msg("publishing event")
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("event", string(event.Type())).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("event handler panic")
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, sub := range subs {
				if sub.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}
