// Package catalog holds the static configuration of the diner: recipes,
// stations, customer archetypes, and shop upgrades. The catalog is built
// once at startup and validated eagerly; a recipe referencing an unknown
// station is a construction error, not a runtime surprise.
package catalog

import "fmt"

// UnlockView reports which locked catalog entries the session has purchased.
// Session state implements this; the catalog itself never mutates.
type UnlockView interface {
	RecipeUnlocked(RecipeID) bool
	StationUnlocked(StationID) bool
}

// Catalog is the validated, immutable configuration set
type Catalog struct {
	recipes      []Recipe
	recipeByID   map[RecipeID]*Recipe
	stations     []StationDef
	stationByID  map[StationID]*StationDef
	archetypes   []Archetype
	archetypeByT map[ArchetypeID]*Archetype
	decor        []Upgrade
	decorByID    map[string]*Upgrade
}

// New builds the default catalog and validates cross-references
func New() (*Catalog, error) {
	return build(defaultRecipes(), defaultStations(), defaultArchetypes(), defaultDecor())
}

// NewCustom builds a catalog from caller-supplied tables, applying the
// same validation as New
func NewCustom(recipes []Recipe, stations []StationDef, archetypes []Archetype, decor []Upgrade) (*Catalog, error) {
	return build(recipes, stations, archetypes, decor)
}

func build(recipes []Recipe, stations []StationDef, archetypes []Archetype, decor []Upgrade) (*Catalog, error) {
	c := &Catalog{
		recipes:      recipes,
		recipeByID:   make(map[RecipeID]*Recipe, len(recipes)),
		stations:     stations,
		stationByID:  make(map[StationID]*StationDef, len(stations)),
		archetypes:   archetypes,
		archetypeByT: make(map[ArchetypeID]*Archetype, len(archetypes)),
		decor:        decor,
		decorByID:    make(map[string]*Upgrade, len(decor)),
	}

	for i := range c.stations {
		s := &c.stations[i]
		if _, dup := c.stationByID[s.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate station %q", s.ID)
		}
		c.stationByID[s.ID] = s
	}

	for i := range c.recipes {
		r := &c.recipes[i]
		if _, dup := c.recipeByID[r.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate recipe %q", r.ID)
		}
		if _, ok := c.stationByID[r.Station]; !ok {
			return nil, fmt.Errorf("catalog: recipe %q references unknown station %q", r.ID, r.Station)
		}
		if r.CookTime <= 0 {
			return nil, fmt.Errorf("catalog: recipe %q has non-positive cook time", r.ID)
		}
		if r.Price <= 0 {
			return nil, fmt.Errorf("catalog: recipe %q has non-positive price", r.ID)
		}
		c.recipeByID[r.ID] = r
	}

	for i := range c.archetypes {
		a := &c.archetypes[i]
		if _, dup := c.archetypeByT[a.Type]; dup {
			return nil, fmt.Errorf("catalog: duplicate archetype %q", a.Type)
		}
		if a.OrderSizeMin < 1 || a.OrderSizeMax < a.OrderSizeMin {
			return nil, fmt.Errorf("catalog: archetype %q has invalid order size range [%d, %d]", a.Type, a.OrderSizeMin, a.OrderSizeMax)
		}
		for _, pref := range a.Preferences {
			if _, ok := c.recipeByID[pref]; !ok {
				return nil, fmt.Errorf("catalog: archetype %q prefers unknown recipe %q", a.Type, pref)
			}
		}
		c.archetypeByT[a.Type] = a
	}

	for i := range c.decor {
		u := &c.decor[i]
		if _, dup := c.decorByID[u.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate upgrade %q", u.ID)
		}
		c.decorByID[u.ID] = u
	}

	return c, nil
}

// Recipe looks up a recipe by id
func (c *Catalog) Recipe(id RecipeID) (*Recipe, bool) {
	r, ok := c.recipeByID[id]
	return r, ok
}

// Station looks up a station definition by id
func (c *Catalog) Station(id StationID) (*StationDef, bool) {
	s, ok := c.stationByID[id]
	return s, ok
}

// Archetype looks up a customer archetype by type
func (c *Catalog) Archetype(t ArchetypeID) (*Archetype, bool) {
	a, ok := c.archetypeByT[t]
	return a, ok
}

// Upgrade looks up a decor upgrade by id
func (c *Catalog) Upgrade(id string) (*Upgrade, bool) {
	u, ok := c.decorByID[id]
	return u, ok
}

// Recipes returns all recipes in catalog order
func (c *Catalog) Recipes() []*Recipe {
	out := make([]*Recipe, len(c.recipes))
	for i := range c.recipes {
		out[i] = &c.recipes[i]
	}
	return out
}

// Stations returns all station definitions in catalog order
func (c *Catalog) Stations() []*StationDef {
	out := make([]*StationDef, len(c.stations))
	for i := range c.stations {
		out[i] = &c.stations[i]
	}
	return out
}

// Archetypes returns all customer archetypes in catalog order
func (c *Catalog) Archetypes() []*Archetype {
	out := make([]*Archetype, len(c.archetypes))
	for i := range c.archetypes {
		out[i] = &c.archetypes[i]
	}
	return out
}

// Decor returns all decor upgrades in catalog order
func (c *Catalog) Decor() []*Upgrade {
	out := make([]*Upgrade, len(c.decor))
	for i := range c.decor {
		out[i] = &c.decor[i]
	}
	return out
}

// recipeAvailable reports whether a recipe and its station are usable
// given the session's purchases
func (c *Catalog) recipeAvailable(r *Recipe, u UnlockView) bool {
	if !r.Unlocked && !u.RecipeUnlocked(r.ID) {
		return false
	}
	st := c.stationByID[r.Station]
	return st.Unlocked || u.StationUnlocked(st.ID)
}

// AvailableRecipes returns every recipe a customer can currently order:
// the recipe is unlocked and its station is unlocked
func (c *Catalog) AvailableRecipes(u UnlockView) []*Recipe {
	var out []*Recipe
	for i := range c.recipes {
		if c.recipeAvailable(&c.recipes[i], u) {
			out = append(out, &c.recipes[i])
		}
	}
	return out
}

// RecipesForStation returns all recipes cooked at the given station
func (c *Catalog) RecipesForStation(id StationID) []*Recipe {
	var out []*Recipe
	for i := range c.recipes {
		if c.recipes[i].Station == id {
			out = append(out, &c.recipes[i])
		}
	}
	return out
}

// UnlockedRecipesForStation returns the station's recipes the session can cook
func (c *Catalog) UnlockedRecipesForStation(id StationID, u UnlockView) []*Recipe {
	var out []*Recipe
	for i := range c.recipes {
		r := &c.recipes[i]
		if r.Station != id {
			continue
		}
		if r.Unlocked || u.RecipeUnlocked(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
