// internal/handler/event_bus.go
package handler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event represents a job lifecycle event
type Event struct {
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// EventBus manages event distribution to websocket subscribers
type EventBus struct {
	subscribers map[chan Event]struct{}
	events      chan Event
	mutex       sync.RWMutex
	logger      *zap.Logger
}

// NewEventBus creates a new event bus
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		subscribers: make(map[chan Event]struct{}),
		events:      make(chan Event, 1000),
		logger:      logger,
	}
}

// Start drains the event queue; run once in its own goroutine.
func (eb *EventBus) Start() {
	for event := range eb.events {
		eb.distribute(event)
	}
}

// Publish enqueues an event without blocking; events are dropped when the
// queue is full.
func (eb *EventBus) Publish(eventType string, data interface{}) {
	event := Event{
		Type:      eventType,
		Source:    "printer-service",
		Data:      data,
		Timestamp: time.Now(),
	}

	select {
	case eb.events <- event:
	default:
		eb.logger.Warn("Event bus full, dropping event",
			zap.String("event_type", event.Type),
		)
	}
}

// Subscribe registers a new subscriber channel.
func (eb *EventBus) Subscribe() chan Event {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	subscriber := make(chan Event, 100)
	eb.subscribers[subscriber] = struct{}{}
	return subscriber
}

// Unsubscribe removes and closes a subscriber channel.
func (eb *EventBus) Unsubscribe(subscriber chan Event) {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	if _, ok := eb.subscribers[subscriber]; ok {
		delete(eb.subscribers, subscriber)
		close(subscriber)
	}
}

// distribute fans an event out to subscribers; slow subscribers are skipped.
func (eb *EventBus) distribute(event Event) {
	eb.mutex.RLock()
	defer eb.mutex.RUnlock()

	for subscriber := range eb.subscribers {
		select {
		case subscriber <- event:
		default:
		}
	}
}
