package engine

import "testing"

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventCustomerSpawned, CustomerID: 1})
	eq.Push(GameEvent{Type: EventOrderTaken, CustomerID: 2})
	eq.Push(GameEvent{Type: EventItemReady, StationID: "stove"})

	if eq.Len() != 3 {
		t.Fatalf("Expected 3 pending events, got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 consumed events, got %d", len(events))
	}
	if events[0].Type != EventCustomerSpawned || events[1].Type != EventOrderTaken || events[2].Type != EventItemReady {
		t.Errorf("Events out of FIFO order: %v", events)
	}

	if eq.Consume() != nil {
		t.Error("Second consume returned events")
	}
}

func TestEventQueuePeekDoesNotConsume(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventCustomerLeft})

	if got := eq.Peek(); len(got) != 1 {
		t.Fatalf("Peek returned %d events", len(got))
	}
	if eq.Len() != 1 {
		t.Error("Peek consumed the event")
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	eq := NewEventQueue()
	for i := 0; i < eventQueueSize+10; i++ {
		eq.Push(GameEvent{Type: EventItemQueued, Amount: i})
	}

	events := eq.Consume()
	if len(events) != eventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", eventQueueSize, len(events))
	}
	if events[0].Amount != 10 {
		t.Errorf("Expected oldest surviving event 10, got %d", events[0].Amount)
	}
	if events[len(events)-1].Amount != eventQueueSize+9 {
		t.Errorf("Expected newest event %d, got %d", eventQueueSize+9, events[len(events)-1].Amount)
	}
}

// recordingHandler collects routed events for assertions
type recordingHandler struct {
	types    []EventType
	received []GameEvent
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }
func (h *recordingHandler) HandleEvent(ctx *GameContext, event GameEvent) {
	h.received = append(h.received, event)
}

func TestEventRouterDispatch(t *testing.T) {
	eq := NewEventQueue()
	router := NewEventRouter(eq)

	coins := &recordingHandler{types: []EventType{EventOrderSettled, EventPurchaseMade}}
	angry := &recordingHandler{types: []EventType{EventCustomerAngry}}
	router.Register(coins)
	router.Register(angry)

	if router.HandlerCount(EventOrderSettled) != 1 {
		t.Error("Expected one handler for EventOrderSettled")
	}

	eq.Push(GameEvent{Type: EventOrderSettled, Amount: 13})
	eq.Push(GameEvent{Type: EventCustomerAngry, CustomerID: 4})
	eq.Push(GameEvent{Type: EventItemReady}) // no handler, silently dropped

	router.DispatchAll(nil)

	if len(coins.received) != 1 || coins.received[0].Amount != 13 {
		t.Errorf("Coin handler received %v", coins.received)
	}
	if len(angry.received) != 1 || angry.received[0].CustomerID != 4 {
		t.Errorf("Angry handler received %v", angry.received)
	}
	if eq.Len() != 0 {
		t.Error("Dispatch left events in the queue")
	}
}
