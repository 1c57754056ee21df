package components

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/brunch-rush/catalog"
	"github.com/lixenwraith/brunch-rush/constants"
)

// CustomerState is a node in the customer lifecycle state machine
type CustomerState int

const (
	StateEntering CustomerState = iota
	StateWaiting
	StateWaitingToOrder
	StateOrdered
	StateEating
	StateLeaving
	StateAngry
)

// String returns the state name for display and logging
func (s CustomerState) String() string {
	switch s {
	case StateEntering:
		return "entering"
	case StateWaiting:
		return "waiting"
	case StateWaitingToOrder:
		return "waiting_to_order"
	case StateOrdered:
		return "ordered"
	case StateEating:
		return "eating"
	case StateLeaving:
		return "leaving"
	case StateAngry:
		return "angry"
	default:
		return "unknown"
	}
}

// OrderItem is one slot of a customer's order. Duplicate recipes get
// independent slots and are fulfilled first-match-wins.
type OrderItem struct {
	RecipeID  catalog.RecipeID
	Fulfilled bool
}

// Position is a point on the floor in cell coordinates
type Position struct {
	X, Y float64
}

var customerNames = []string{
	"Alex", "Sam", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Quinn",
	"Avery", "Jamie", "Drew", "Cameron", "Blake", "Charlie", "Frankie",
}

// Customer tracks one guest from arrival to departure. Patience decays
// only while the customer is waiting to order or waiting for food;
// reaching zero in either state turns the customer angry.
type Customer struct {
	ID        int64
	Archetype *catalog.Archetype
	TableID   int // -1 while unseated
	Name      string
	Sprite    string
	State     CustomerState

	Order    []OrderItem
	Received []catalog.RecipeID

	Patience      time.Duration
	MaxPatience   time.Duration
	TipMultiplier float64

	// OrderedAt feeds order-board aging; EatingSince drives the dwell
	// check, both in simulated time
	OrderedAt   time.Time
	EatingSince time.Time

	Position  Position
	Target    Position
	AnimFrame float64
}

// NewCustomer creates a customer from an archetype with session bonuses
// applied: patienceBonus stretches the patience budget, tipBonus boosts
// the archetype tip multiplier.
func NewCustomer(id int64, arch *catalog.Archetype, patienceBonus, tipBonus float64, rng *rand.Rand) *Customer {
	patience := time.Duration(float64(arch.Patience) * (1 + patienceBonus))
	return &Customer{
		ID:            id,
		Archetype:     arch,
		TableID:       -1,
		Name:          customerNames[rng.Intn(len(customerNames))],
		Sprite:        arch.Sprites[rng.Intn(len(arch.Sprites))],
		State:         StateEntering,
		Patience:      patience,
		MaxPatience:   patience,
		TipMultiplier: arch.TipMultiplier * (1 + tipBonus),
	}
}

// GenerateOrder fills the order from currently available recipes: size
// uniform in the archetype range, each slot drawn from preferences with
// constants.PreferencePickChance probability when any preferred recipe is
// available, uniform over all available recipes otherwise. The order stays
// empty when nothing is available; callers must handle that.
func (c *Customer) GenerateOrder(cat *catalog.Catalog, unlocks catalog.UnlockView, rng *rand.Rand) {
	available := cat.AvailableRecipes(unlocks)
	if len(available) == 0 {
		return
	}

	var preferred []*catalog.Recipe
	if len(c.Archetype.Preferences) > 0 {
		prefs := make(map[catalog.RecipeID]bool, len(c.Archetype.Preferences))
		for _, id := range c.Archetype.Preferences {
			prefs[id] = true
		}
		for _, r := range available {
			if prefs[r.ID] {
				preferred = append(preferred, r)
			}
		}
	}

	count := rng.Intn(c.Archetype.OrderSizeMax-c.Archetype.OrderSizeMin+1) + c.Archetype.OrderSizeMin
	for i := 0; i < count; i++ {
		var recipe *catalog.Recipe
		if len(preferred) > 0 && rng.Float64() < constants.PreferencePickChance {
			recipe = preferred[rng.Intn(len(preferred))]
		} else {
			recipe = available[rng.Intn(len(available))]
		}
		c.Order = append(c.Order, OrderItem{RecipeID: recipe.ID})
	}
}

// ReceiveItem fulfills the first unfulfilled order slot matching recipeID.
// Completing the last slot moves the customer to StateEating and stamps
// EatingSince with now. Returns false when no unfulfilled slot matches.
func (c *Customer) ReceiveItem(recipeID catalog.RecipeID, now time.Time) bool {
	for i := range c.Order {
		if c.Order[i].RecipeID != recipeID || c.Order[i].Fulfilled {
			continue
		}
		c.Order[i].Fulfilled = true
		c.Received = append(c.Received, recipeID)

		if c.OrderComplete() {
			c.State = StateEating
			c.EatingSince = now
		}
		return true
	}
	return false
}

// OrderComplete reports whether every order slot is fulfilled
func (c *Customer) OrderComplete() bool {
	for i := range c.Order {
		if !c.Order[i].Fulfilled {
			return false
		}
	}
	return true
}

// UnfulfilledCount returns the number of slots still awaiting delivery
func (c *Customer) UnfulfilledCount() int {
	n := 0
	for i := range c.Order {
		if !c.Order[i].Fulfilled {
			n++
		}
	}
	return n
}

// CalculateBill sums the prices of fulfilled order slots only
func (c *Customer) CalculateBill(cat *catalog.Catalog) int {
	total := 0
	for i := range c.Order {
		if !c.Order[i].Fulfilled {
			continue
		}
		if r, ok := cat.Recipe(c.Order[i].RecipeID); ok {
			total += r.Price
		}
	}
	return total
}

// CalculateTip returns the gratuity: the base rate applied to the whole
// order, scaled by remaining patience and the customer's tip multiplier,
// floored to whole currency. Settlement only happens on full fulfillment,
// so basing the tip on all slots matches basing it on fulfilled ones.
func (c *Customer) CalculateTip(cat *catalog.Catalog) int {
	base := 0.0
	for i := range c.Order {
		if r, ok := cat.Recipe(c.Order[i].RecipeID); ok {
			base += float64(r.Price) * constants.TipRate
		}
	}
	modifier := constants.TipModifierMin + c.PatienceRatio()*constants.TipModifierSpan
	return int(math.Floor(base * modifier * c.TipMultiplier))
}

// PatienceRatio returns remaining patience as a fraction in [0, 1]
func (c *Customer) PatienceRatio() float64 {
	if c.MaxPatience <= 0 {
		return 0
	}
	ratio := float64(c.Patience) / float64(c.MaxPatience)
	if ratio < 0 {
		return 0
	}
	return ratio
}

// Update advances the customer by dt of simulated time. Patience decays
// only in waiting_to_order and ordered; exhaustion flips the state to
// angry. A customer eating past the dwell duration starts leaving. The
// positional interpolation is presentation-only and never affects
// gameplay outcomes.
func (c *Customer) Update(dt time.Duration, now time.Time) {
	switch c.State {
	case StateWaitingToOrder, StateOrdered:
		c.Patience -= dt
		if c.Patience <= 0 {
			c.State = StateAngry
		}
	case StateEating:
		if now.Sub(c.EatingSince) >= constants.DwellDuration {
			c.State = StateLeaving
		}
	}

	c.moveTowardTarget()
	c.AnimFrame = math.Mod(c.AnimFrame+float64(dt.Milliseconds())*constants.CustomerAnimRate, constants.CustomerAnimFrames)
}

func (c *Customer) moveTowardTarget() {
	dx := c.Target.X - c.Position.X
	dy := c.Target.Y - c.Position.Y
	if math.Abs(dx) > 1 {
		c.Position.X += math.Copysign(math.Min(constants.CustomerMoveSpeed, math.Abs(dx)), dx)
	}
	if math.Abs(dy) > 1 {
		c.Position.Y += math.Copysign(math.Min(constants.CustomerMoveSpeed, math.Abs(dy)), dy)
	}
}
