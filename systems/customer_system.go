package systems

import (
	"time"

	"github.com/lixenwraith/brunch-rush/engine"
)

// CustomerSystem drives every active customer's per-tick update:
// patience decay, the eating dwell, and movement interpolation
type CustomerSystem struct{}

// NewCustomerSystem creates the customer system
func NewCustomerSystem() *CustomerSystem {
	return &CustomerSystem{}
}

// Priority runs customer updates after stations, before departures
func (s *CustomerSystem) Priority() int { return 30 }

// Update advances seated and waiting customers. Waiting-pool customers
// only animate; patience does not decay until they are seated.
func (s *CustomerSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	now := ctx.World.Now()
	for _, c := range ctx.World.Customers {
		c.Update(dt, now)
	}
	for _, c := range ctx.World.Waiting {
		c.Update(dt, now)
	}
}
