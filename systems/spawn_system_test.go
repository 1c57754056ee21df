package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/brunch-rush/catalog"
	"github.com/lixenwraith/brunch-rush/components"
	"github.com/lixenwraith/brunch-rush/constants"
	"github.com/lixenwraith/brunch-rush/engine"
)

func newStartedContext(t *testing.T) *engine.GameContext {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New() failed: %v", err)
	}
	ctx := engine.NewGameContext(cat, engine.NewMockTimeProvider(time.Unix(0, 0)), 11)
	ctx.StartDay()
	ctx.Events.Consume()
	return ctx
}

func TestSpawnSeatsWhenTableFree(t *testing.T) {
	ctx := newStartedContext(t)
	spawn := NewSpawnSystem()

	if !spawn.Spawn(ctx) {
		t.Fatal("Spawn rejected on an empty floor")
	}
	if len(ctx.World.Customers) != 1 || len(ctx.World.Waiting) != 0 {
		t.Errorf("Seated=%d waiting=%d, want 1/0", len(ctx.World.Customers), len(ctx.World.Waiting))
	}
	c := ctx.World.Customers[0]
	if c.State != components.StateWaitingToOrder {
		t.Errorf("State = %v, want waiting_to_order", c.State)
	}
	if c.TableID < 0 {
		t.Error("Seated customer has no table")
	}

	events := ctx.Events.Consume()
	if len(events) != 1 || events[0].Type != engine.EventCustomerSeated {
		t.Errorf("Events = %v, want one seated event", events)
	}
}

func TestSpawnPoolsWhenFloorFull(t *testing.T) {
	ctx := newStartedContext(t)
	spawn := NewSpawnSystem()

	// fill every table
	for i := 0; i < constants.BaseTableCount; i++ {
		if !spawn.Spawn(ctx) {
			t.Fatalf("Spawn %d rejected with tables free", i)
		}
	}

	// first overflow arrival queues
	if !spawn.Spawn(ctx) {
		t.Fatal("Spawn rejected with an empty pool")
	}
	if len(ctx.World.Waiting) != 1 {
		t.Fatalf("Waiting = %d, want 1", len(ctx.World.Waiting))
	}
	if ctx.World.Waiting[0].State != components.StateWaiting {
		t.Errorf("Pooled customer state = %v, want waiting", ctx.World.Waiting[0].State)
	}

	// with no free tables and a non-empty pool, arrivals walk past
	for i := 0; i < 10; i++ {
		if spawn.Spawn(ctx) {
			t.Fatal("Spawn admitted a customer past a queue at a full floor")
		}
	}
	if len(ctx.World.Waiting) != 1 {
		t.Errorf("Waiting = %d after walk-bys, want 1", len(ctx.World.Waiting))
	}
}

func TestWaitingPoolNeverExceedsCap(t *testing.T) {
	ctx := newStartedContext(t)
	spawn := NewSpawnSystem()

	// free tables but a pre-filled pool: arrivals seat, pool stays put
	arch, _ := ctx.Catalog.Archetype("regular")
	for i := 0; i < constants.MaxWaitingCustomers; i++ {
		c := components.NewCustomer(ctx.World.NextCustomerID(), arch, 0, 0, ctx.Rand)
		c.State = components.StateWaiting
		ctx.World.Waiting = append(ctx.World.Waiting, c)
	}

	for i := 0; i < 20; i++ {
		spawn.Spawn(ctx)
		if len(ctx.World.Waiting) > constants.MaxWaitingCustomers {
			t.Fatalf("Waiting pool grew to %d", len(ctx.World.Waiting))
		}
	}
	if len(ctx.World.Customers) != 0 {
		t.Errorf("Full pool still admitted %d arrivals", len(ctx.World.Customers))
	}
}

func TestSpawnAccumulatorCrossesInterval(t *testing.T) {
	ctx := newStartedContext(t)
	spawn := NewSpawnSystem()
	interval := ctx.State.SpawnInterval()

	spawn.Update(ctx, interval-time.Millisecond)
	if len(ctx.World.Customers)+len(ctx.World.Waiting) != 0 {
		t.Fatal("Spawned before the interval elapsed")
	}

	spawn.Update(ctx, time.Millisecond)
	if len(ctx.World.Customers) != 1 {
		t.Fatal("No spawn after the interval elapsed")
	}

	// threshold crossing resets the accumulator
	spawn.Update(ctx, interval/2)
	if len(ctx.World.Customers) != 1 {
		t.Error("Accumulator carried over past a spawn")
	}
}

func TestDayStartResetsSpawnAccumulator(t *testing.T) {
	ctx := newStartedContext(t)
	spawn := NewSpawnSystem()
	interval := ctx.State.SpawnInterval()

	spawn.Update(ctx, interval-time.Millisecond)
	spawn.HandleEvent(ctx, engine.GameEvent{Type: engine.EventDayStarted})
	spawn.Update(ctx, time.Millisecond)

	if len(ctx.World.Customers)+len(ctx.World.Waiting) != 0 {
		t.Error("Accumulator survived the day-start reset")
	}
}
