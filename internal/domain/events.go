package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPositionChanged    EventType = "PositionChanged"
	EventScrollStateChanged EventType = "ScrollStateChanged"
	EventHoldStarted        EventType = "HoldStarted"
	EventHoldEnded          EventType = "HoldEnded"
	EventVisibilityChanged  EventType = "VisibilityChanged"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PositionChangedEvent is emitted after every scroll position mutation
type PositionChangedEvent struct {
	From ScrollPosition
	To   ScrollPosition
}

func (e PositionChangedEvent) Type() EventType { return EventPositionChanged }

// ScrollStateChangedEvent is emitted when a scroll animation or gesture starts or settles
type ScrollStateChangedEvent struct {
	InProgress bool
}

func (e ScrollStateChangedEvent) Type() EventType { return EventScrollStateChanged }

// HoldStartedEvent is emitted when a directional button is pressed
type HoldStartedEvent struct {
	Direction Direction
}

func (e HoldStartedEvent) Type() EventType { return EventHoldStarted }

// HoldEndedEvent is emitted when a held button is released
type HoldEndedEvent struct {
	Direction Direction
	Repeats   int // ticks fired while held
}

func (e HoldEndedEvent) Type() EventType { return EventHoldEnded }

// VisibilityChangedEvent is emitted when the scrollbar shows or hides
type VisibilityChangedEvent struct {
	Visible bool
}

func (e VisibilityChangedEvent) Type() EventType { return EventVisibilityChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
