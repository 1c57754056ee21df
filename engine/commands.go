package engine

import (
	"github.com/lixenwraith/brunch-rush/components"

	"github.com/lixenwraith/brunch-rush/catalog"
)

// Dispatch commands: the operations the input shell invokes. Every
// command mutates the core synchronously and reports success as a bool;
// a rejected command leaves all state unchanged and pushes an event the
// feedback layers render as a cue. Nothing here panics.

// ShopCategory selects a shop tab for Purchase
type ShopCategory int

const (
	ShopRecipes ShopCategory = iota
	ShopStations
	ShopDecor
)

// StartDay begins the current day: fresh floor, fresh stats, full timer
func (ctx *GameContext) StartDay() {
	ctx.State.ResetDayStats()
	ctx.State.TimeRemaining = ctx.DayLength
	ctx.State.Running = true
	ctx.State.Paused = false
	ctx.World.SetupFloor(ctx.Catalog, ctx.State)
	ctx.PushEvent(GameEvent{Type: EventDayStarted})
}

// AdvanceDay increments the day counter and starts the next day. The day
// counter never changes inside Tick.
func (ctx *GameContext) AdvanceDay() {
	ctx.State.Day++
	ctx.StartDay()
}

// EndDay freezes the session. Reached from Tick when the timer expires,
// or directly when quitting to the menu.
func (ctx *GameContext) EndDay() {
	if !ctx.State.Running {
		return
	}
	ctx.State.Running = false
	ctx.PushEvent(GameEvent{Type: EventDayEnded})
}

// Pause suspends simulation ticks; feedback dispatch continues
func (ctx *GameContext) Pause() {
	if ctx.State.Running {
		ctx.State.Paused = true
	}
}

// Resume continues a paused session
func (ctx *GameContext) Resume() {
	ctx.State.Paused = false
}

// SeatFromWaiting moves the head of the waiting pool to the first empty
// table. Returns false when the pool is empty or every table is taken.
func (ctx *GameContext) SeatFromWaiting() bool {
	if len(ctx.World.Waiting) == 0 {
		return false
	}
	table := ctx.World.EmptyTable()
	if table == nil {
		return false
	}

	customer := ctx.World.Waiting[0]
	ctx.World.Waiting = ctx.World.Waiting[1:]
	table.Seat(customer)
	customer.State = components.StateWaitingToOrder
	ctx.World.Customers = append(ctx.World.Customers, customer)
	ctx.PushEvent(GameEvent{Type: EventCustomerSeated, CustomerID: customer.ID, TableID: table.ID})
	return true
}

// TakeOrder generates and registers the order for the customer at the
// table. Only valid in waiting_to_order. When nothing on the menu is
// available the customer leaves immediately with a zero bill.
func (ctx *GameContext) TakeOrder(tableID int) bool {
	table := ctx.World.TableByID(tableID)
	if table == nil || table.Customer == nil {
		return false
	}
	customer := table.Customer
	if customer.State != components.StateWaitingToOrder {
		return false
	}

	customer.GenerateOrder(ctx.Catalog, ctx.State, ctx.Rand)
	if len(customer.Order) == 0 {
		customer.State = components.StateLeaving
		ctx.PushEvent(GameEvent{Type: EventOrderDeclined, CustomerID: customer.ID, TableID: tableID})
		return false
	}

	customer.State = components.StateOrdered
	customer.OrderedAt = ctx.World.Now()
	ctx.PushEvent(GameEvent{Type: EventOrderTaken, CustomerID: customer.ID, TableID: tableID})
	return true
}

// QueueRecipe requests a cook at the station, capturing the current
// speed bonus. Returns false for locked stations, unavailable recipes, a
// recipe from another station, or a full queue.
func (ctx *GameContext) QueueRecipe(stationID catalog.StationID, recipeID catalog.RecipeID) bool {
	station, ok := ctx.World.Stations[stationID]
	if !ok || !station.Unlocked {
		return false
	}
	recipe, ok := ctx.Catalog.Recipe(recipeID)
	if !ok || recipe.Station != stationID {
		return false
	}
	if !recipe.Unlocked && !ctx.State.RecipeUnlocked(recipeID) {
		return false
	}

	if !station.Enqueue(recipe, ctx.State.Bonuses.Speed) {
		ctx.PushEvent(GameEvent{Type: EventQueueFull, StationID: stationID, RecipeID: recipeID})
		return false
	}
	ctx.PushEvent(GameEvent{Type: EventItemQueued, StationID: stationID, RecipeID: recipeID})
	return true
}

// CollectFromStation picks the station's ready item into the single
// held-item slot. Rejected while already holding something.
func (ctx *GameContext) CollectFromStation(stationID catalog.StationID) bool {
	if ctx.World.HeldItem != nil {
		return false
	}
	station, ok := ctx.World.Stations[stationID]
	if !ok {
		return false
	}
	item := station.CollectReady()
	if item == nil {
		return false
	}
	ctx.World.HeldItem = item
	ctx.PushEvent(GameEvent{Type: EventItemCollected, StationID: stationID, RecipeID: item.ID})
	return true
}

// DeliverHeldItem offers the held item to the customer at the table. On
// acceptance the item leaves the hand; completing the order settles the
// bill and tip immediately. On rejection the item stays in hand.
func (ctx *GameContext) DeliverHeldItem(tableID int) bool {
	held := ctx.World.HeldItem
	if held == nil {
		return false
	}
	table := ctx.World.TableByID(tableID)
	if table == nil || table.Customer == nil {
		return false
	}
	customer := table.Customer
	if customer.State != components.StateOrdered {
		return false
	}

	if !customer.ReceiveItem(held.ID, ctx.World.Now()) {
		ctx.PushEvent(GameEvent{Type: EventDeliveryRejected, CustomerID: customer.ID, TableID: tableID, RecipeID: held.ID})
		return false
	}

	ctx.World.HeldItem = nil
	ctx.PushEvent(GameEvent{Type: EventItemDelivered, CustomerID: customer.ID, TableID: tableID, RecipeID: held.ID})

	if customer.State == components.StateEating {
		ctx.settle(customer, tableID)
	}
	return true
}

// settle pays out a completed order
func (ctx *GameContext) settle(customer *components.Customer, tableID int) {
	bill := customer.CalculateBill(ctx.Catalog)
	tip := customer.CalculateTip(ctx.Catalog)
	total := bill + tip

	ctx.State.Money += total
	ctx.State.Stats.TipsEarned += tip
	ctx.State.Stats.TotalEarnings += total
	ctx.State.Stats.CustomersServed++
	ctx.State.Stats.OrdersCompleted++
	ctx.PushEvent(GameEvent{Type: EventOrderSettled, CustomerID: customer.ID, TableID: tableID, Amount: total})
}

// DiscardHeldItem trashes the held item. The cook is lost; there is no
// further penalty.
func (ctx *GameContext) DiscardHeldItem() bool {
	if ctx.World.HeldItem == nil {
		return false
	}
	recipeID := ctx.World.HeldItem.ID
	ctx.World.HeldItem = nil
	ctx.PushEvent(GameEvent{Type: EventItemDiscarded, RecipeID: recipeID})
	return true
}

// Purchase buys a shop item by category and id. Rejected for unknown
// items, repeat purchases, and insufficient funds. Station unlocks take
// effect immediately; seating takes effect on the next day start.
func (ctx *GameContext) Purchase(category ShopCategory, id string) bool {
	var cost int
	var apply func()

	switch category {
	case ShopRecipes:
		recipe, ok := ctx.Catalog.Recipe(catalog.RecipeID(id))
		if !ok || recipe.Unlocked || ctx.State.RecipeUnlocked(recipe.ID) {
			return false
		}
		cost = recipe.UnlockCost
		apply = func() { ctx.State.UnlockRecipe(recipe.ID) }
	case ShopStations:
		def, ok := ctx.Catalog.Station(catalog.StationID(id))
		if !ok || def.Unlocked || ctx.State.StationUnlocked(def.ID) {
			return false
		}
		cost = def.UnlockCost
		apply = func() {
			ctx.State.UnlockStation(def.ID)
			if station, live := ctx.World.Stations[def.ID]; live {
				station.Unlocked = true
			}
		}
	case ShopDecor:
		upgrade, ok := ctx.Catalog.Upgrade(id)
		if !ok || ctx.State.HasUpgrade(id) {
			return false
		}
		cost = upgrade.Price
		apply = func() { ctx.State.OwnUpgrade(upgrade) }
	default:
		return false
	}

	if ctx.State.Money < cost {
		ctx.PushEvent(GameEvent{Type: EventPurchaseRejected, Amount: cost})
		return false
	}

	ctx.State.Money -= cost
	apply()
	ctx.PushEvent(GameEvent{Type: EventPurchaseMade, Amount: cost})
	return true
}
