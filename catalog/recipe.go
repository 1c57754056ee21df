package catalog

import "time"

// RecipeID identifies a recipe in the catalog
type RecipeID string

// StationID identifies a cooking station
type StationID string

// Category groups recipes for shop tabs and display
type Category string

const (
	CategoryFood    Category = "food"
	CategoryDrink   Category = "drink"
	CategoryAlcohol Category = "alcohol"
)

// Recipe is a menu item cooked at exactly one station.
// Catalog entries are immutable at runtime; unlock purchases are tracked
// in session state, not by mutating the catalog.
type Recipe struct {
	ID          RecipeID
	Name        string
	Icon        string
	Category    Category
	Station     StationID
	CookTime    time.Duration
	Price       int
	Unlocked    bool // available from day one
	UnlockCost  int  // shop price when not Unlocked
	Description string
}

// StationDef is the static definition of a cooking station
type StationDef struct {
	ID         StationID
	Name       string
	Icon       string
	Unlocked   bool
	UnlockCost int
}
