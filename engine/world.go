package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/brunch-rush/catalog"
	"github.com/lixenwraith/brunch-rush/components"
	"github.com/lixenwraith/brunch-rush/constants"
)

// World holds the entity collections for one day on the floor: stations,
// tables, seated customers, the waiting pool, and the single held item.
// It also owns the simulated clock, which advances only through Tick.
type World struct {
	Stations     map[catalog.StationID]*components.CookingStation
	stationOrder []catalog.StationID
	Tables       []*components.Table
	Customers    []*components.Customer
	Waiting      []*components.Customer
	HeldItem     *catalog.Recipe

	nextCustomerID int64
	now            time.Time
	systems        []System
}

// NewWorld creates an empty world with the simulated clock at epoch
func NewWorld(epoch time.Time) *World {
	return &World{
		Stations: make(map[catalog.StationID]*components.CookingStation),
		now:      epoch,
	}
}

// Now returns the current simulated time. Station and customer
// timestamps (order age, eating dwell) are measured against this clock,
// so pausing the session pauses them as well.
func (w *World) Now() time.Time { return w.now }

func (w *World) advanceClock(dt time.Duration) { w.now = w.now.Add(dt) }

// AddSystem registers a system, kept sorted by ascending priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Update runs all systems in priority order
func (w *World) Update(ctx *GameContext, dt time.Duration) {
	for _, s := range w.systems {
		s.Update(ctx, dt)
	}
}

// SetupFloor builds stations for every catalog station and lays out
// tables. Called on day start; purchased station unlocks and the seating
// bonus take effect here.
func (w *World) SetupFloor(cat *catalog.Catalog, state *GameState) {
	w.Stations = make(map[catalog.StationID]*components.CookingStation)
	w.stationOrder = w.stationOrder[:0]
	for _, def := range cat.Stations() {
		w.Stations[def.ID] = components.NewCookingStation(def, state.StationUnlocked(def.ID))
		w.stationOrder = append(w.stationOrder, def.ID)
	}

	tableCount := constants.BaseTableCount + state.Bonuses.Seating
	w.Tables = make([]*components.Table, 0, tableCount)
	for i := 0; i < tableCount; i++ {
		w.Tables = append(w.Tables, &components.Table{ID: i, Seats: constants.TableSeatsMin + i%(constants.TableSeatsMax-constants.TableSeatsMin+1)})
	}

	w.Customers = nil
	w.Waiting = nil
	w.HeldItem = nil
}

// StationsInOrder returns the stations in catalog order for display and
// deterministic per-tick iteration
func (w *World) StationsInOrder() []*components.CookingStation {
	out := make([]*components.CookingStation, 0, len(w.stationOrder))
	for _, id := range w.stationOrder {
		out = append(out, w.Stations[id])
	}
	return out
}

// NextCustomerID returns a monotonically increasing per-session id
func (w *World) NextCustomerID() int64 {
	w.nextCustomerID++
	return w.nextCustomerID
}

// EmptyTable returns the first unoccupied table, or nil
func (w *World) EmptyTable() *components.Table {
	for _, t := range w.Tables {
		if !t.Occupied() {
			return t
		}
	}
	return nil
}

// EmptyTableCount returns the number of unoccupied tables
func (w *World) EmptyTableCount() int {
	n := 0
	for _, t := range w.Tables {
		if !t.Occupied() {
			n++
		}
	}
	return n
}

// TableByID looks up a table, or nil for an unknown id
func (w *World) TableByID(id int) *components.Table {
	for _, t := range w.Tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// CustomerByID looks up an active (seated) customer, or nil
func (w *World) CustomerByID(id int64) *components.Customer {
	for _, c := range w.Customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// OrderBoardEntry is a display projection of one in-flight order
type OrderBoardEntry struct {
	CustomerID int64
	Name       string
	Sprite     string
	Items      []components.OrderItem
	Age        time.Duration
}

// OrderBoard derives the in-flight order list from live customer state.
// There is no tracker to keep in sync: a customer leaving the ordered
// state (served, angry, removed) drops off the board on the next call.
func (w *World) OrderBoard() []OrderBoardEntry {
	var out []OrderBoardEntry
	for _, c := range w.Customers {
		if c.State != components.StateOrdered {
			continue
		}
		items := make([]components.OrderItem, len(c.Order))
		copy(items, c.Order)
		out = append(out, OrderBoardEntry{
			CustomerID: c.ID,
			Name:       c.Name,
			Sprite:     c.Sprite,
			Items:      items,
			Age:        w.now.Sub(c.OrderedAt),
		})
	}
	return out
}
