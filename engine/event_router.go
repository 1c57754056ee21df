package engine

// EventHandler processes specific event types. Systems and feedback
// layers implement this to receive routed events.
type EventHandler interface {
	// HandleEvent processes a single event. Called synchronously during
	// the dispatch phase at the start of a tick, before systems update.
	HandleEvent(ctx *GameContext, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EventRouter dispatches queued events to registered handlers in
// registration order. Dispatch is single-threaded; handlers may mutate
// the world freely.
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types. A handler can
// register for multiple types; multiple handlers can share a type.
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them. All handlers
// for an event are called before the next event is considered.
func (r *EventRouter) DispatchAll(ctx *GameContext) {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for the type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
