package events

import (
	"context"
	"encoding/json"
	"sync"
)

// EventType represents the type of event
type EventType string

const (
	EventCheckoutCompleted EventType = "checkout_completed"
	EventItemAdded         EventType = "item_added"
	EventItemUpdated       EventType = "item_updated"
	EventItemDeleted       EventType = "item_deleted"
	EventCategoryAdded     EventType = "category_added"
	EventWalletToppedUp    EventType = "wallet_topped_up"
)

// Event represents a server-sent event
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// EventBus manages SSE subscriptions and broadcasts storefront events
type EventBus struct {
	subscribers map[string]chan Event
	mu          sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string]chan Event),
	}
}

// Subscribe adds a new subscriber and returns a channel for receiving events
func (eb *EventBus) Subscribe(ctx context.Context, id string) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	// Buffered so a slow dashboard client cannot block publishers
	ch := make(chan Event, 10)
	eb.subscribers[id] = ch

	go func() {
		<-ctx.Done()
		eb.Unsubscribe(id)
	}()

	return ch
}

// Unsubscribe removes a subscriber
func (eb *EventBus) Unsubscribe(id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if ch, exists := eb.subscribers[id]; exists {
		close(ch)
		delete(eb.subscribers, id)
	}
}

// Publish sends an event to all subscribers without blocking
func (eb *EventBus) Publish(eventType EventType, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	event := Event{
		Type: eventType,
		Data: data,
	}

	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full
		}
	}
}

// PublishCheckoutCompleted publishes a completed-purchase event
func (eb *EventBus) PublishCheckoutCompleted(txn interface{}) {
	eb.Publish(EventCheckoutCompleted, txn)
}

// PublishItemAdded publishes a catalog item creation event
func (eb *EventBus) PublishItemAdded(item interface{}) {
	eb.Publish(EventItemAdded, item)
}

// PublishItemUpdated publishes a catalog item edit event
func (eb *EventBus) PublishItemUpdated(item interface{}) {
	eb.Publish(EventItemUpdated, item)
}

// PublishItemDeleted publishes a catalog item deletion event
func (eb *EventBus) PublishItemDeleted(itemID string) {
	eb.Publish(EventItemDeleted, map[string]string{"item_id": itemID})
}

// PublishCategoryAdded publishes a category creation event
func (eb *EventBus) PublishCategoryAdded(name string) {
	eb.Publish(EventCategoryAdded, map[string]string{"name": name})
}

// PublishWalletToppedUp publishes a wallet credit event
func (eb *EventBus) PublishWalletToppedUp(userID string, balance int) {
	eb.Publish(EventWalletToppedUp, map[string]interface{}{
		"user_id": userID,
		"balance": balance,
	})
}

// FormatSSE formats an event as Server-Sent Event string
func FormatSSE(event Event) (string, error) {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return "", err
	}

	return "event: " + string(event.Type) + "\ndata: " + string(data) + "\n\n", nil
}
