package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brunch-rush/catalog"
	"github.com/lixenwraith/brunch-rush/engine"
)

// ShopTab selects the visible shop category
type ShopTab int

const (
	TabRecipes ShopTab = iota
	TabStations
	TabDecor
)

func (t ShopTab) String() string {
	switch t {
	case TabRecipes:
		return "Recipes"
	case TabStations:
		return "Stations"
	case TabDecor:
		return "Decor"
	default:
		return "?"
	}
}

// ShopItem is one purchasable row in the shop view
type ShopItem struct {
	ID    string
	Label string
	Cost  int
	Owned bool
}

// ShopItems lists the rows for a tab, locked items first in catalog order
func ShopItems(ctx *engine.GameContext, tab ShopTab) []ShopItem {
	var items []ShopItem
	switch tab {
	case TabRecipes:
		for _, rec := range ctx.Catalog.Recipes() {
			if rec.Unlocked {
				continue
			}
			items = append(items, ShopItem{
				ID:    string(rec.ID),
				Label: fmt.Sprintf("%s %s ($%d each)", rec.Icon, rec.Name, rec.Price),
				Cost:  rec.UnlockCost,
				Owned: ctx.State.RecipeUnlocked(rec.ID),
			})
		}
	case TabStations:
		for _, def := range ctx.Catalog.Stations() {
			if def.Unlocked {
				continue
			}
			items = append(items, ShopItem{
				ID:    string(def.ID),
				Label: fmt.Sprintf("%s %s", def.Icon, def.Name),
				Cost:  def.UnlockCost,
				Owned: ctx.State.StationUnlocked(def.ID),
			})
		}
	case TabDecor:
		for _, u := range ctx.Catalog.Decor() {
			items = append(items, ShopItem{
				ID:    u.ID,
				Label: fmt.Sprintf("%s %s  %s", u.Icon, u.Name, u.Description),
				Cost:  u.Price,
				Owned: ctx.State.HasUpgrade(u.ID),
			})
		}
	}
	return items
}

// Category converts a tab to the matching purchase category
func (t ShopTab) Category() engine.ShopCategory {
	switch t {
	case TabStations:
		return engine.ShopStations
	case TabDecor:
		return engine.ShopDecor
	default:
		return engine.ShopRecipes
	}
}

// DrawTitle renders the start screen
func (r *Renderer) DrawTitle() {
	cx := r.width / 2
	cy := r.height / 2

	title := "B R U N C H   R U S H"
	r.drawText(cx-len(title)/2, cy-3, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true), title)
	sub := "run the morning shift, keep the mimosas flowing"
	r.drawText(cx-len(sub)/2, cy-1, tcell.StyleDefault.Foreground(tcell.ColorWhite), sub)
	r.drawText(cx-12, cy+2, tcell.StyleDefault.Foreground(tcell.ColorGreen), "[enter] start   [q] quit")
}

// DrawPauseOverlay renders the pause banner over the frozen game view
func (r *Renderer) DrawPauseOverlay() {
	cx := r.width / 2
	cy := r.height / 2
	r.drawBox(cx-14, cy-2, 28, 5, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.drawText(cx-4, cy-1, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true), "PAUSED")
	r.drawText(cx-12, cy+1, tcell.StyleDefault.Foreground(tcell.ColorWhite), "[p] resume   [q] give up")
}

// DrawDayEnd renders the end-of-day summary
func (r *Renderer) DrawDayEnd(ctx *engine.GameContext) {
	cx := r.width / 2
	cy := r.height/2 - 4

	header := fmt.Sprintf("Day %d complete", ctx.State.Day)
	r.drawText(cx-len(header)/2, cy, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true), header)

	stats := ctx.State.Stats
	lines := []string{
		fmt.Sprintf("Customers served: %d", stats.CustomersServed),
		fmt.Sprintf("Orders completed: %d", stats.OrdersCompleted),
		fmt.Sprintf("Tips earned:      $%d", stats.TipsEarned),
		fmt.Sprintf("Total earnings:   $%d", stats.TotalEarnings),
		fmt.Sprintf("Bankroll:         $%d", ctx.State.Money),
		fmt.Sprintf("Reputation:       %.1f", ctx.State.Reputation),
	}
	for i, line := range lines {
		r.drawText(cx-12, cy+2+i, tcell.StyleDefault.Foreground(tcell.ColorWhite), line)
	}

	r.drawText(cx-16, cy+9, tcell.StyleDefault.Foreground(tcell.ColorGreen), "[b] shop   [enter] next day   [q] quit")
}

// DrawShop renders the between-days shop with one tab visible
func (r *Renderer) DrawShop(ctx *engine.GameContext, tab ShopTab, cursor int) {
	r.drawText(2, 0, tcell.StyleDefault.Bold(true), fmt.Sprintf("SHOP  $%d", ctx.State.Money))

	x := 2
	for t := TabRecipes; t <= TabDecor; t++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if t == tab {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
		r.drawText(x, 2, style, t.String())
		x += len(t.String()) + 3
	}

	items := ShopItems(ctx, tab)
	for i, item := range items {
		y := 4 + i
		if y >= r.height-2 {
			break
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		switch {
		case item.Owned:
			style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
		case ctx.State.Money < item.Cost:
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		if i == cursor {
			style = style.Reverse(true)
		}

		tag := fmt.Sprintf("$%d", item.Cost)
		if item.Owned {
			tag = "owned"
		}
		r.drawText(2, y, style, fmt.Sprintf("%-44s %s", item.Label, tag))
	}

	r.drawText(2, r.height-1, tcell.StyleDefault.Foreground(tcell.ColorGray),
		"[tab] category  [↑↓] select  [enter] buy  [esc] back")
}

// DrawCookMenu renders the recipe picker for a station as a modal
func (r *Renderer) DrawCookMenu(ctx *engine.GameContext, station catalog.StationID, cursor int) {
	recipes := ctx.Catalog.UnlockedRecipesForStation(station, ctx.State)
	def, ok := ctx.Catalog.Station(station)
	if !ok {
		return
	}

	h := len(recipes) + 4
	w := 36
	x := r.width/2 - w/2
	y := r.height/2 - h/2

	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	r.drawBox(x, y, w, h, boxStyle)
	r.drawText(x+2, y, boxStyle.Bold(true), fmt.Sprintf(" %s %s ", def.Icon, def.Name))

	for i, rec := range recipes {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if i == cursor {
			style = style.Reverse(true)
		}
		line := fmt.Sprintf("%s %-18s $%-3d %0.1fs", rec.Icon, rec.Name, rec.Price, rec.CookTime.Seconds())
		r.drawText(x+2, y+1+i, style, line)
	}
	if len(recipes) == 0 {
		r.drawText(x+2, y+1, tcell.StyleDefault.Foreground(tcell.ColorGray), "nothing unlocked here")
	}

	r.drawText(x+2, y+h-2, tcell.StyleDefault.Foreground(tcell.ColorGray), "[enter] queue  [esc] close")
}
