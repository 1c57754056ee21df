package catalog

import (
	"strings"
	"testing"
	"time"
)

// fakeUnlocks implements UnlockView for tests
type fakeUnlocks struct {
	recipes  map[RecipeID]bool
	stations map[StationID]bool
}

func (f *fakeUnlocks) RecipeUnlocked(id RecipeID) bool   { return f.recipes[id] }
func (f *fakeUnlocks) StationUnlocked(id StationID) bool { return f.stations[id] }

func noUnlocks() *fakeUnlocks {
	return &fakeUnlocks{recipes: map[RecipeID]bool{}, stations: map[StationID]bool{}}
}

func TestNewDefaultCatalogValidates(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if got := len(c.Recipes()); got != 32 {
		t.Errorf("Expected 32 recipes, got %d", got)
	}
	if got := len(c.Stations()); got != 7 {
		t.Errorf("Expected 7 stations, got %d", got)
	}
	if got := len(c.Archetypes()); got != 6 {
		t.Errorf("Expected 6 archetypes, got %d", got)
	}
	if got := len(c.Decor()); got != 5 {
		t.Errorf("Expected 5 decor upgrades, got %d", got)
	}
}

func TestBuildRejectsBadReferences(t *testing.T) {
	stations := []StationDef{{ID: "stove", Name: "Stove", Unlocked: true}}
	okRecipe := Recipe{ID: "eggs", Name: "Eggs", Station: "stove", CookTime: time.Second, Price: 5, Unlocked: true}

	tests := []struct {
		name       string
		recipes    []Recipe
		archetypes []Archetype
		wantErr    string
	}{
		{
			name:    "recipe references unknown station",
			recipes: []Recipe{{ID: "ghost", Name: "Ghost", Station: "fryer", CookTime: time.Second, Price: 5}},
			wantErr: "unknown station",
		},
		{
			name:    "duplicate recipe id",
			recipes: []Recipe{okRecipe, okRecipe},
			wantErr: "duplicate recipe",
		},
		{
			name:    "non-positive cook time",
			recipes: []Recipe{{ID: "raw", Name: "Raw", Station: "stove", Price: 5}},
			wantErr: "non-positive cook time",
		},
		{
			name:       "archetype prefers unknown recipe",
			recipes:    []Recipe{okRecipe},
			archetypes: []Archetype{{Type: "ghostfan", Name: "Ghost Fan", Patience: time.Minute, TipMultiplier: 1, OrderSizeMin: 1, OrderSizeMax: 1, Preferences: []RecipeID{"nothing"}}},
			wantErr:    "unknown recipe",
		},
		{
			name:       "invalid order size range",
			recipes:    []Recipe{okRecipe},
			archetypes: []Archetype{{Type: "empty", Name: "Empty", Patience: time.Minute, TipMultiplier: 1, OrderSizeMin: 2, OrderSizeMax: 1}},
			wantErr:    "order size range",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := build(test.recipes, stations, test.archetypes, nil)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Expected error containing %q, got %q", test.wantErr, err.Error())
			}
		})
	}
}

func TestAvailableRecipes(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	t.Run("no purchases", func(t *testing.T) {
		avail := c.AvailableRecipes(noUnlocks())
		for _, r := range avail {
			if !r.Unlocked {
				t.Errorf("Locked recipe %q reported available", r.ID)
			}
			st, _ := c.Station(r.Station)
			if !st.Unlocked {
				t.Errorf("Recipe %q available on locked station %q", r.ID, st.ID)
			}
		}
		// orange_juice is unlocked but lives on the locked juice_bar
		for _, r := range avail {
			if r.ID == "orange_juice" {
				t.Error("orange_juice should be unavailable while juice_bar is locked")
			}
		}
	})

	t.Run("purchasing the station exposes its default recipes", func(t *testing.T) {
		u := noUnlocks()
		u.stations["juice_bar"] = true
		found := false
		for _, r := range c.AvailableRecipes(u) {
			if r.ID == "orange_juice" {
				found = true
			}
		}
		if !found {
			t.Error("orange_juice should be available once juice_bar is unlocked")
		}
	})

	t.Run("purchasing a recipe exposes it", func(t *testing.T) {
		u := noUnlocks()
		u.recipes["omelette"] = true
		found := false
		for _, r := range c.UnlockedRecipesForStation("stove", u) {
			if r.ID == "omelette" {
				found = true
			}
		}
		if !found {
			t.Error("omelette should be cookable after purchase")
		}
	})
}
