package systems

import (
	"time"

	"github.com/lixenwraith/brunch-rush/engine"
)

// KitchenSystem advances every station's cooking progress each tick and
// announces completions
type KitchenSystem struct{}

// NewKitchenSystem creates the kitchen system
func NewKitchenSystem() *KitchenSystem {
	return &KitchenSystem{}
}

// Priority runs stations after spawning, before customers
func (s *KitchenSystem) Priority() int { return 20 }

// Update advances all stations in catalog order. A station readies at
// most one item per tick; the ready bell rings once per completion.
func (s *KitchenSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	for _, station := range ctx.World.StationsInOrder() {
		wasReady := station.HasReady()
		station.Advance(dt)
		if !wasReady && station.HasReady() {
			ctx.PushEvent(engine.GameEvent{Type: engine.EventItemReady, StationID: station.ID, RecipeID: station.Ready().ID})
		}
	}
}
