package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/brunch-rush/components"
	"github.com/lixenwraith/brunch-rush/constants"
	"github.com/lixenwraith/brunch-rush/engine"
)

func TestDepartureFreesTablesAndAdjustsReputation(t *testing.T) {
	ctx := newStartedContext(t)
	spawn := NewSpawnSystem()
	for i := 0; i < 3; i++ {
		spawn.Spawn(ctx)
	}
	ctx.Events.Consume()
	ctx.State.Reputation = 3.0

	happy := ctx.World.Customers[0]
	angry := ctx.World.Customers[1]
	staying := ctx.World.Customers[2]
	happy.State = components.StateLeaving
	angry.State = components.StateAngry

	NewDepartureSystem().Update(ctx, 33*time.Millisecond)

	if len(ctx.World.Customers) != 1 || ctx.World.Customers[0] != staying {
		t.Fatalf("Kept %d customers, want only the seated one", len(ctx.World.Customers))
	}
	for _, c := range []*components.Customer{happy, angry} {
		table := ctx.World.TableByID(c.TableID)
		if table == nil || table.Occupied() {
			t.Errorf("Customer %d did not free table %d", c.ID, c.TableID)
		}
	}

	if got := ctx.State.Reputation; got != 3.0-constants.ReputationPenalty+constants.ReputationReward {
		t.Errorf("Reputation = %v, want %v", got, 3.0-constants.ReputationPenalty+constants.ReputationReward)
	}

	events := ctx.Events.Consume()
	if e, ok := findEvent(events, engine.EventCustomerAngry); !ok || e.CustomerID != angry.ID {
		t.Errorf("Missing angry event in %v", events)
	}
	if e, ok := findEvent(events, engine.EventCustomerLeft); !ok || e.CustomerID != happy.ID {
		t.Errorf("Missing left event in %v", events)
	}
}

func TestDepartureClampsReputationAtFloor(t *testing.T) {
	ctx := newStartedContext(t)
	spawn := NewSpawnSystem()
	for i := 0; i < constants.BaseTableCount; i++ {
		spawn.Spawn(ctx)
	}
	for _, c := range ctx.World.Customers {
		c.State = components.StateAngry
	}

	NewDepartureSystem().Update(ctx, 33*time.Millisecond)

	if ctx.State.Reputation != constants.ReputationMin {
		t.Errorf("Reputation = %v, want floor %v", ctx.State.Reputation, constants.ReputationMin)
	}
	if len(ctx.World.Customers) != 0 {
		t.Error("Angry customers not removed")
	}
	if ctx.World.EmptyTableCount() != constants.BaseTableCount {
		t.Error("Tables not freed")
	}
}

// Full-loop check: a customer whose patience runs out during a tick is
// angry and gone by the end of that same tick.
func TestPatienceExhaustionResolvesWithinOneTick(t *testing.T) {
	ctx := newStartedContext(t)
	ctx.World.AddSystem(NewKitchenSystem())
	ctx.World.AddSystem(NewCustomerSystem())
	ctx.World.AddSystem(NewDepartureSystem())

	spawn := NewSpawnSystem()
	spawn.Spawn(ctx)
	customer := ctx.World.Customers[0]
	customer.Patience = 10 * time.Millisecond
	ctx.State.Reputation = 3.0
	repBefore := ctx.State.Reputation

	ctx.Tick(50 * time.Millisecond)

	if len(ctx.World.Customers) != 0 {
		t.Fatal("Exhausted customer survived the tick")
	}
	if customer.State != components.StateAngry {
		t.Errorf("State = %v, want angry", customer.State)
	}
	if ctx.State.Reputation >= repBefore {
		t.Error("Reputation did not drop")
	}
	if ctx.World.EmptyTableCount() != constants.BaseTableCount {
		t.Error("Table not freed")
	}
}

// Full-loop check: eating customers leave after the dwell passes in
// simulated time, earning reputation.
func TestEatingCustomerLeavesAfterDwell(t *testing.T) {
	ctx := newStartedContext(t)
	ctx.World.AddSystem(NewCustomerSystem())
	ctx.World.AddSystem(NewDepartureSystem())

	spawn := NewSpawnSystem()
	spawn.Spawn(ctx)
	customer := ctx.World.Customers[0]
	customer.State = components.StateEating
	customer.EatingSince = ctx.World.Now()
	repBefore := ctx.State.Reputation

	elapsed := time.Duration(0)
	for elapsed < constants.DwellDuration+200*time.Millisecond {
		ctx.Tick(50 * time.Millisecond)
		elapsed += 50 * time.Millisecond
	}

	if len(ctx.World.Customers) != 0 {
		t.Fatal("Customer still seated after the dwell")
	}
	if customer.State != components.StateLeaving {
		t.Errorf("State = %v, want leaving", customer.State)
	}
	if ctx.State.Reputation <= repBefore {
		t.Error("Reputation did not rise")
	}
}
