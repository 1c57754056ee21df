package engine

import (
	"time"

	"github.com/lixenwraith/brunch-rush/catalog"
	"github.com/lixenwraith/brunch-rush/constants"
)

// Bonuses are additive session-wide multipliers granted by decor
// upgrades. Tip, Patience, and Speed are fractional (0.1 = +10%);
// Customers and Seating are whole counts.
type Bonuses struct {
	Tip       float64
	Patience  float64
	Speed     float64
	Customers int
	Seating   int
}

// DayStats accumulates the current day's results for the day-end screen
type DayStats struct {
	CustomersServed int
	OrdersCompleted int
	TipsEarned      int
	TotalEarnings   int
}

// GameState is the session run state: economy, reputation, the day
// timer, and everything purchases unlock. It survives across days;
// StartDay resets only the per-day portion.
type GameState struct {
	Money         int
	Day           int
	Reputation    float64
	TimeRemaining time.Duration
	Running       bool
	Paused        bool

	Bonuses Bonuses
	Stats   DayStats

	unlockedRecipes  map[catalog.RecipeID]struct{}
	unlockedStations map[catalog.StationID]struct{}
	ownedUpgrades    map[string]struct{}
}

// NewGameState creates a fresh session
func NewGameState() *GameState {
	return &GameState{
		Money:            constants.StartingMoney,
		Day:              1,
		Reputation:       constants.StartingReputation,
		unlockedRecipes:  make(map[catalog.RecipeID]struct{}),
		unlockedStations: make(map[catalog.StationID]struct{}),
		ownedUpgrades:    make(map[string]struct{}),
	}
}

// RecipeUnlocked reports whether the session purchased the recipe.
// Together with StationUnlocked this implements catalog.UnlockView.
func (gs *GameState) RecipeUnlocked(id catalog.RecipeID) bool {
	_, ok := gs.unlockedRecipes[id]
	return ok
}

// StationUnlocked reports whether the session purchased the station
func (gs *GameState) StationUnlocked(id catalog.StationID) bool {
	_, ok := gs.unlockedStations[id]
	return ok
}

// HasUpgrade reports whether the decor upgrade is owned
func (gs *GameState) HasUpgrade(id string) bool {
	_, ok := gs.ownedUpgrades[id]
	return ok
}

// UnlockRecipe records a recipe purchase
func (gs *GameState) UnlockRecipe(id catalog.RecipeID) {
	gs.unlockedRecipes[id] = struct{}{}
}

// UnlockStation records a station purchase
func (gs *GameState) UnlockStation(id catalog.StationID) {
	gs.unlockedStations[id] = struct{}{}
}

// OwnUpgrade records a decor purchase and applies its effect
func (gs *GameState) OwnUpgrade(u *catalog.Upgrade) {
	gs.ownedUpgrades[u.ID] = struct{}{}
	switch u.Effect {
	case catalog.EffectTip:
		gs.Bonuses.Tip += u.Value
	case catalog.EffectPatience:
		gs.Bonuses.Patience += u.Value
	case catalog.EffectSpeed:
		gs.Bonuses.Speed += u.Value
	case catalog.EffectCustomers:
		gs.Bonuses.Customers += int(u.Value)
	case catalog.EffectSeating:
		gs.Bonuses.Seating += int(u.Value)
	}
}

// SpawnInterval returns the current interval between customer arrivals:
// the base interval tightened per day (floor-clamped), reduced further by
// the customer-attraction bonus
func (gs *GameState) SpawnInterval() time.Duration {
	interval := constants.SpawnIntervalBase - time.Duration(gs.Day)*constants.SpawnIntervalStepPerDay
	if interval < constants.SpawnIntervalFloor {
		interval = constants.SpawnIntervalFloor
	}
	return interval - time.Duration(gs.Bonuses.Customers)*constants.SpawnIntervalPerCustomerBonus
}

// AdjustReputation applies a clamped reputation delta
func (gs *GameState) AdjustReputation(delta float64) {
	gs.Reputation += delta
	if gs.Reputation < constants.ReputationMin {
		gs.Reputation = constants.ReputationMin
	}
	if gs.Reputation > constants.ReputationMax {
		gs.Reputation = constants.ReputationMax
	}
}

// ResetDayStats clears the per-day counters
func (gs *GameState) ResetDayStats() {
	gs.Stats = DayStats{}
}
