package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/brunch-rush/catalog"
	"github.com/lixenwraith/brunch-rush/constants"
)

// GameContext threads the whole simulation through every operation:
// session state, the world, the catalog, events, time, and randomness.
// There is no global state; everything an operation touches arrives
// through this struct.
type GameContext struct {
	State   *GameState
	World   *World
	Catalog *catalog.Catalog

	Events *EventQueue
	Router *EventRouter

	TimeProvider TimeProvider
	Rand         *rand.Rand

	// DayLength is the per-day timer budget; configurable by the shell
	DayLength time.Duration

	frame int64
}

// NewGameContext creates a ready-to-start session over the given catalog.
// The seed fixes the randomness for reproducible sessions and tests.
func NewGameContext(cat *catalog.Catalog, tp TimeProvider, seed int64) *GameContext {
	queue := NewEventQueue()
	return &GameContext{
		State:        NewGameState(),
		World:        NewWorld(tp.Now()),
		Catalog:      cat,
		Events:       queue,
		Router:       NewEventRouter(queue),
		TimeProvider: tp,
		Rand:         rand.New(rand.NewSource(seed)),
		DayLength:    constants.DayDuration,
	}
}

// Frame returns the current tick counter
func (ctx *GameContext) Frame() int64 { return ctx.frame }

// PushEvent stamps the event with the current frame and queues it
func (ctx *GameContext) PushEvent(event GameEvent) {
	event.Frame = ctx.frame
	ctx.Events.Push(event)
}

// Tick advances the simulation by one frame delta. The delta is clamped
// so a suspended terminal cannot produce a catch-up jump. Order within a
// tick: day timer, event dispatch, then systems by priority (stations,
// customers, departures). A paused or stopped session ignores ticks
// except for event dispatch, which keeps feedback cues responsive on
// menu screens.
func (ctx *GameContext) Tick(dt time.Duration) {
	ctx.frame++
	ctx.Router.DispatchAll(ctx)

	if !ctx.State.Running || ctx.State.Paused {
		return
	}
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}

	ctx.State.TimeRemaining -= dt
	if ctx.State.TimeRemaining <= 0 {
		ctx.State.TimeRemaining = 0
		ctx.EndDay()
		return
	}

	ctx.World.advanceClock(dt)
	ctx.World.Update(ctx, dt)
}
