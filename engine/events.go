// Package engine provides the simulation core of brunch-rush: the tick
// loop, the entity collections, session state, the event queue that
// decouples game systems from feedback consumers (audio, particles), and
// the dispatch commands the input shell invokes.
//
// Event flow pattern:
//  1. A command or system pushes an event: ctx.PushEvent(GameEvent{...})
//  2. The event lands in a lock-free ring buffer
//  3. The router dispatches all pending events to registered handlers at
//     the start of the next tick, before systems update
package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/brunch-rush/catalog"
)

// EventType represents the type of game event
type EventType int

const (
	// EventCustomerSpawned signals a new arrival joined the waiting pool
	EventCustomerSpawned EventType = iota

	// EventCustomerSeated signals a customer took a table (directly on
	// spawn or from the waiting pool)
	EventCustomerSeated

	// EventOrderTaken signals an order was generated and registered
	EventOrderTaken

	// EventOrderDeclined signals order-taking failed because nothing on
	// the menu is available; the customer leaves unserved
	EventOrderDeclined

	// EventItemQueued signals a recipe was accepted by a station
	EventItemQueued

	// EventQueueFull signals a station rejected a recipe request
	EventQueueFull

	// EventItemReady signals a station finished cooking an item
	EventItemReady

	// EventItemCollected signals the player picked up a finished item
	EventItemCollected

	// EventItemDelivered signals a held item was accepted by a customer
	EventItemDelivered

	// EventDeliveryRejected signals a held item did not match any
	// unfulfilled order slot; the item stays in hand
	EventDeliveryRejected

	// EventItemDiscarded signals the held item went into the trash
	EventItemDiscarded

	// EventOrderSettled signals a completed order was paid: Amount holds
	// bill plus tip
	EventOrderSettled

	// EventCustomerAngry signals a customer ran out of patience and is
	// being removed
	EventCustomerAngry

	// EventCustomerLeft signals a satisfied customer departed
	EventCustomerLeft

	// EventPurchaseMade signals a shop purchase: Amount holds the cost
	EventPurchaseMade

	// EventPurchaseRejected signals a purchase failed (insufficient funds
	// or unknown item)
	EventPurchaseRejected

	// EventDayStarted signals a day began; systems reset their timers
	EventDayStarted

	// EventDayEnded signals the day timer expired and the session froze
	EventDayEnded
)

// GameEvent carries an event type and its context. Unused fields stay at
// their zero values.
type GameEvent struct {
	Type       EventType
	CustomerID int64
	TableID    int
	StationID  catalog.StationID
	RecipeID   catalog.RecipeID
	Amount     int
	Frame      int64
}

const eventQueueSize = 256

// EventQueue is a lock-free single-consumer ring buffer. Producers claim
// slots with a CAS on the tail; the game loop consumes in FIFO order.
// When the buffer overflows, the oldest events are overwritten.
type EventQueue struct {
	events [eventQueueSize]GameEvent
	head   atomic.Uint64
	tail   atomic.Uint64
}

// NewEventQueue creates an empty event queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event to the queue. Safe for concurrent producers; retries
// on CAS contention.
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			eq.events[currentTail%eventQueueSize] = event

			// Advance head past overwritten events; best-effort
			currentHead := eq.head.Load()
			if nextTail-currentHead > eventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-eventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and marks them
// consumed. Designed for the single game-loop consumer.
func (eq *EventQueue) Consume() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	available := currentTail - currentHead
	if available == 0 {
		return nil
	}
	if available > eventQueueSize {
		available = eventQueueSize
		currentHead = currentTail - eventQueueSize
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(currentHead+i)%eventQueueSize]
	}

	for !eq.head.CompareAndSwap(currentHead, currentTail) {
		currentHead = eq.head.Load()
		currentTail = eq.tail.Load()
		if currentTail == currentHead {
			return result
		}
	}
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	available := currentTail - currentHead
	if available == 0 {
		return nil
	}
	if available > eventQueueSize {
		available = eventQueueSize
		currentHead = currentTail - eventQueueSize
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(currentHead+i)%eventQueueSize]
	}
	return result
}

// Len returns the number of pending events (snapshot)
func (eq *EventQueue) Len() int {
	available := eq.tail.Load() - eq.head.Load()
	if available > eventQueueSize {
		return eventQueueSize
	}
	return int(available)
}
