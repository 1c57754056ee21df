// Package systems holds the per-tick game logic driven by the engine:
// customer arrivals, station cooking, customer lifecycle, and departure
// resolution. System priorities fix the intra-tick order.
package systems

import (
	"time"

	"github.com/lixenwraith/brunch-rush/components"
	"github.com/lixenwraith/brunch-rush/constants"
	"github.com/lixenwraith/brunch-rush/engine"
)

// SpawnSystem accumulates elapsed time against the current spawn
// interval and admits one customer per threshold crossing. The interval
// tightens day over day and with the customer-attraction bonus.
type SpawnSystem struct {
	accumulator time.Duration
}

// NewSpawnSystem creates a spawn system with an empty accumulator
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority runs spawning before stations and customers
func (s *SpawnSystem) Priority() int { return 10 }

// Update accrues dt and spawns when the interval elapses
func (s *SpawnSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	s.accumulator += dt
	if s.accumulator < ctx.State.SpawnInterval() {
		return
	}
	s.accumulator = 0
	s.Spawn(ctx)
}

// EventTypes registers the system for day-start resets
func (s *SpawnSystem) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventDayStarted}
}

// HandleEvent resets the accumulator when a day begins
func (s *SpawnSystem) HandleEvent(ctx *engine.GameContext, event engine.GameEvent) {
	s.accumulator = 0
}

// Spawn admits one customer if there is room: the waiting pool is
// bounded, and arrivals stop queueing once the pool is non-empty with no
// free tables. A random archetype walks in; with a free table the
// customer is seated immediately, otherwise it joins the pool.
func (s *SpawnSystem) Spawn(ctx *engine.GameContext) bool {
	world := ctx.World
	if len(world.Waiting) >= constants.MaxWaitingCustomers {
		return false
	}
	if world.EmptyTableCount() == 0 && len(world.Waiting) > 0 {
		return false
	}

	archetypes := ctx.Catalog.Archetypes()
	arch := archetypes[ctx.Rand.Intn(len(archetypes))]
	customer := components.NewCustomer(world.NextCustomerID(), arch, ctx.State.Bonuses.Patience, ctx.State.Bonuses.Tip, ctx.Rand)

	if table := world.EmptyTable(); table != nil {
		table.Seat(customer)
		customer.State = components.StateWaitingToOrder
		world.Customers = append(world.Customers, customer)
		ctx.PushEvent(engine.GameEvent{Type: engine.EventCustomerSeated, CustomerID: customer.ID, TableID: table.ID})
	} else {
		customer.State = components.StateWaiting
		world.Waiting = append(world.Waiting, customer)
		ctx.PushEvent(engine.GameEvent{Type: engine.EventCustomerSpawned, CustomerID: customer.ID})
	}
	return true
}
