package wayroute

import "sync"

// EventType identifies navigation lifecycle events.
type EventType string

const (
	EventNavigationStart    EventType = "navigation.start"
	EventNavigationEnd      EventType = "navigation.end"
	EventNavigationRedirect EventType = "navigation.redirect"
	EventNavigationError    EventType = "navigation.error"
)

// Event is one navigation lifecycle notification. ID ties together every
// event of a single Navigate call, across redirect hops.
type Event struct {
	Type       EventType
	ID         string
	URL        string
	RedirectTo string
	Err        error
}

// EventHandler is a function that handles navigation events.
type EventHandler func(Event)

// EventBus is a simple pub/sub bus for navigation events.
// Handlers run synchronously on the navigating goroutine, in subscription
// order, so event sequences observe navigation order.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

func newEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe adds a handler for one event type.
func (b *EventBus) Subscribe(eventType EventType, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll adds a handler for every navigation event type.
func (b *EventBus) SubscribeAll(handler EventHandler) {
	for _, eventType := range []EventType{
		EventNavigationStart,
		EventNavigationEnd,
		EventNavigationRedirect,
		EventNavigationError,
	} {
		b.Subscribe(eventType, handler)
	}
}

// Clear removes all handlers.
func (b *EventBus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = make(map[EventType][]EventHandler)
}

// publish delivers an event to its subscribers.
func (b *EventBus) publish(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.handlers[event.Type]))
	copy(handlers, b.handlers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
