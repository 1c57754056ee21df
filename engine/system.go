package engine

import "time"

// System is a unit of per-tick game logic. Systems run in ascending
// priority order within a tick; the ordering is part of the simulation
// contract (customer updates must precede departure resolution).
type System interface {
	// Priority orders systems within a tick; lower runs first
	Priority() int

	// Update advances the system by dt of simulated time
	Update(ctx *GameContext, dt time.Duration)
}
