package systems

import (
	"time"

	"github.com/lixenwraith/brunch-rush/components"
	"github.com/lixenwraith/brunch-rush/constants"
	"github.com/lixenwraith/brunch-rush/engine"
)

// DepartureSystem removes customers who finished or gave up. It runs
// strictly after CustomerSystem in the same tick, so a customer that
// decayed into angry this tick is removed here, never served.
type DepartureSystem struct{}

// NewDepartureSystem creates the departure system
func NewDepartureSystem() *DepartureSystem {
	return &DepartureSystem{}
}

// Priority runs departures last among the simulation systems
func (s *DepartureSystem) Priority() int { return 40 }

// Update partitions the active collection: angry customers free their
// table and cost reputation, leaving customers free their table and earn
// a little. Everyone else stays. Order-board entries need no cleanup;
// the board is derived from the customers that remain.
func (s *DepartureSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	world := ctx.World
	kept := world.Customers[:0]
	for _, c := range world.Customers {
		switch c.State {
		case components.StateAngry:
			s.freeTable(world, c)
			ctx.State.AdjustReputation(-constants.ReputationPenalty)
			ctx.PushEvent(engine.GameEvent{Type: engine.EventCustomerAngry, CustomerID: c.ID, TableID: c.TableID})
		case components.StateLeaving:
			s.freeTable(world, c)
			ctx.State.AdjustReputation(constants.ReputationReward)
			ctx.PushEvent(engine.GameEvent{Type: engine.EventCustomerLeft, CustomerID: c.ID, TableID: c.TableID})
		default:
			kept = append(kept, c)
		}
	}
	// Zero the tail so departed customers are collectable
	for i := len(kept); i < len(world.Customers); i++ {
		world.Customers[i] = nil
	}
	world.Customers = kept
}

func (s *DepartureSystem) freeTable(world *engine.World, c *components.Customer) {
	if table := world.TableByID(c.TableID); table != nil && table.Customer == c {
		table.Clear()
	}
}
