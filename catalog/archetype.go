package catalog

import "time"

// ArchetypeID identifies a customer template
type ArchetypeID string

// Archetype is a customer template: patience budget, tip propensity,
// order-size range, and optional preferred recipes
type Archetype struct {
	Type          ArchetypeID
	Name          string
	Sprites       []string
	Patience      time.Duration
	TipMultiplier float64
	OrderSizeMin  int
	OrderSizeMax  int
	Preferences   []RecipeID // nil for no preference bias
}
