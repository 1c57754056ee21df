package components

import (
	"time"

	"github.com/lixenwraith/brunch-rush/catalog"
	"github.com/lixenwraith/brunch-rush/constants"
)

// QueuedRecipe is a pending cook request with the speed bonus captured
// at enqueue time
type QueuedRecipe struct {
	Recipe     *catalog.Recipe
	SpeedBonus float64
}

// CookingStation processes one recipe at a time with a bounded FIFO backlog.
// The in-flight slot and the ready slot are mutually exclusive: a completed
// item must be collected before the next queued request starts cooking.
type CookingStation struct {
	ID         catalog.StationID
	Name       string
	Icon       string
	Unlocked   bool
	UnlockCost int

	current    *catalog.Recipe
	progress   time.Duration
	target     time.Duration
	speedBonus float64
	ready      *catalog.Recipe
	queue      []QueuedRecipe
	capacity   int
}

// NewCookingStation creates a station from its catalog definition.
// unlocked overrides the catalog default when the session purchased it.
func NewCookingStation(def *catalog.StationDef, unlocked bool) *CookingStation {
	return &CookingStation{
		ID:         def.ID,
		Name:       def.Name,
		Icon:       def.Icon,
		Unlocked:   def.Unlocked || unlocked,
		UnlockCost: def.UnlockCost,
		capacity:   constants.StationQueueCapacity,
	}
}

// Enqueue requests a cook. If the station is idle it starts immediately,
// otherwise the request joins the queue. Returns false when the queue is
// full; the station state is unchanged in that case.
func (s *CookingStation) Enqueue(recipe *catalog.Recipe, speedBonus float64) bool {
	if s.current == nil && s.ready == nil {
		s.startCooking(recipe, speedBonus)
		return true
	}
	if len(s.queue) < s.capacity {
		s.queue = append(s.queue, QueuedRecipe{Recipe: recipe, SpeedBonus: speedBonus})
		return true
	}
	return false
}

func (s *CookingStation) startCooking(recipe *catalog.Recipe, speedBonus float64) {
	s.current = recipe
	s.target = time.Duration(float64(recipe.CookTime) * (1 - speedBonus))
	s.speedBonus = speedBonus
	s.progress = 0
}

// Advance progresses cooking by dt. When the in-flight item completes it
// moves to the ready slot, and if the ready slot is then free and the queue
// non-empty, the queue head starts cooking within the same call. At most
// one item becomes ready per call.
func (s *CookingStation) Advance(dt time.Duration) {
	if s.current != nil && s.ready == nil {
		s.progress += dt
		if s.progress >= s.target {
			s.ready = s.current
			s.current = nil
		}
	}

	if s.current == nil && s.ready == nil && len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.startCooking(next.Recipe, next.SpeedBonus)
	}
}

// CollectReady clears and returns the ready item, or nil when nothing is
// ready. Each completed item is returned exactly once.
func (s *CookingStation) CollectReady() *catalog.Recipe {
	if s.ready == nil {
		return nil
	}
	item := s.ready
	s.ready = nil
	s.progress = 0
	return item
}

// Cooking returns the in-flight recipe, or nil when idle
func (s *CookingStation) Cooking() *catalog.Recipe { return s.current }

// Ready returns the completed, uncollected recipe without consuming it
func (s *CookingStation) Ready() *catalog.Recipe { return s.ready }

// HasReady reports whether a completed item awaits collection
func (s *CookingStation) HasReady() bool { return s.ready != nil }

// ProgressPercent returns cook progress in [0, 100]
func (s *CookingStation) ProgressPercent() float64 {
	if s.current == nil || s.target <= 0 {
		return 0
	}
	pct := float64(s.progress) / float64(s.target) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// QueueLen returns the number of pending requests behind the cooking slot
func (s *CookingStation) QueueLen() int { return len(s.queue) }

// Queue returns a copy of the pending requests in FIFO order
func (s *CookingStation) Queue() []QueuedRecipe {
	out := make([]QueuedRecipe, len(s.queue))
	copy(out, s.queue)
	return out
}

// TotalHeldItems counts in-flight, ready, and queued items together.
// The station invariant bounds this at capacity+1.
func (s *CookingStation) TotalHeldItems() int {
	count := len(s.queue)
	if s.current != nil {
		count++
	}
	if s.ready != nil {
		count++
	}
	return count
}

// Reset clears all cooking state for a fresh day
func (s *CookingStation) Reset() {
	s.current = nil
	s.ready = nil
	s.queue = nil
	s.progress = 0
	s.target = 0
	s.speedBonus = 0
}
