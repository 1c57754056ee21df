// Package render draws the diner onto a tcell screen. Rendering is a
// pure projection of the simulation: nothing here mutates game state.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brunch-rush/components"
	"github.com/lixenwraith/brunch-rush/constants"
	"github.com/lixenwraith/brunch-rush/engine"
)

// Selection is the player's current focus on the floor
type Selection struct {
	StationIndex int
	TableID      int
}

// Renderer draws onto a tcell screen with a fixed layout: HUD on top,
// stations below it, tables in the middle, the order board on the
// right, and the waiting pool at the bottom.
type Renderer struct {
	screen        tcell.Screen
	width, height int
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the terminal dimensions
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// Show flushes the frame
func (r *Renderer) Show() { r.screen.Show() }

// Clear wipes the frame buffer
func (r *Renderer) Clear() { r.screen.Clear() }

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	col := x
	for _, ch := range text {
		if col >= r.width || y >= r.height || y < 0 {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, y, ch, nil, style)
		}
		col++
	}
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for cx := x + 1; cx < x+w-1; cx++ {
		r.setCell(cx, y, tcell.RuneHLine, style)
		r.setCell(cx, y+h-1, tcell.RuneHLine, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		r.setCell(x, cy, tcell.RuneVLine, style)
		r.setCell(x+w-1, cy, tcell.RuneVLine, style)
	}
	r.setCell(x, y, tcell.RuneULCorner, style)
	r.setCell(x+w-1, y, tcell.RuneURCorner, style)
	r.setCell(x, y+h-1, tcell.RuneLLCorner, style)
	r.setCell(x+w-1, y+h-1, tcell.RuneLRCorner, style)
}

func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawBar renders a horizontal gauge filled to ratio in [0, 1]
func (r *Renderer) drawBar(x, y, width int, ratio float64, style tcell.Style) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	for i := 0; i < width; i++ {
		ch := tcell.RuneBoard
		if i < filled {
			ch = tcell.RuneBlock
		}
		r.setCell(x+i, y, ch, style)
	}
}

// DrawGame renders the full in-day view
func (r *Renderer) DrawGame(ctx *engine.GameContext, sel Selection) {
	r.drawHUD(ctx)
	r.drawStations(ctx, sel.StationIndex)
	r.drawTables(ctx, sel.TableID)
	r.drawOrderBoard(ctx)
	r.drawWaiting(ctx)
	r.drawHeldItem(ctx)
	r.drawKeyHints()
}

func (r *Renderer) drawHUD(ctx *engine.GameContext) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	remaining := ctx.State.TimeRemaining.Round(time.Second)
	minutes := int(remaining.Minutes())
	seconds := int(remaining.Seconds()) % 60

	stars := ""
	for i := 1; i <= int(constants.ReputationMax); i++ {
		if float64(i) <= ctx.State.Reputation {
			stars += "★"
		} else {
			stars += "☆"
		}
	}

	hud := fmt.Sprintf(" $%d  Day %d  %d:%02d  %s ", ctx.State.Money, ctx.State.Day, minutes, seconds, stars)
	r.drawText(1, 0, style, hud)

	if ctx.State.Paused {
		r.drawText(r.width-10, 0, style.Foreground(tcell.ColorYellow), "PAUSED")
	}
}

func (r *Renderer) drawStations(ctx *engine.GameContext, selected int) {
	y := 2
	x := 1
	for i, station := range ctx.World.StationsInOrder() {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if !station.Unlocked {
			style = style.Foreground(tcell.ColorGray)
		}
		if i == selected {
			style = style.Reverse(true)
		}

		label := fmt.Sprintf("%d·%s", i+1, station.Name)
		if !station.Unlocked {
			label = fmt.Sprintf("%d·%s 🔒", i+1, station.Name)
		}
		r.drawText(x, y, style, label)

		lineStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if station.HasReady() {
			r.drawText(x, y+1, lineStyle.Bold(true), "READY "+station.Ready().Icon)
		} else if station.Cooking() != nil {
			r.drawBar(x, y+1, 8, station.ProgressPercent()/100, lineStyle)
			r.drawText(x+9, y+1, tcell.StyleDefault, station.Cooking().Icon)
		} else if station.Unlocked {
			r.drawText(x, y+1, tcell.StyleDefault.Foreground(tcell.ColorGray), "idle")
		}

		if n := station.QueueLen(); n > 0 {
			r.drawText(x, y+2, tcell.StyleDefault.Foreground(tcell.ColorYellow), fmt.Sprintf("+%d queued", n))
		}

		x += 14
		if x+13 >= r.width {
			x = 1
			y += 4
		}
	}
}

func (r *Renderer) drawTables(ctx *engine.GameContext, selectedTable int) {
	baseY := 7
	for i, table := range ctx.World.Tables {
		x := 2 + (i%4)*16
		y := baseY + (i/4)*5

		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if table.ID == selectedTable {
			style = style.Foreground(tcell.ColorAqua)
		}
		r.drawBox(x, y, 14, 4, style)
		r.drawText(x+1, y, style, fmt.Sprintf("T%d", table.ID+1))

		c := table.Customer
		if c == nil {
			r.drawText(x+2, y+1, tcell.StyleDefault.Foreground(tcell.ColorGray), "empty")
			continue
		}

		r.drawText(x+1, y+1, tcell.StyleDefault, fmt.Sprintf("%s %s", c.Sprite, c.Name))
		r.drawText(x+1, y+2, r.stateStyle(c.State), c.State.String())

		if c.State == components.StateWaitingToOrder || c.State == components.StateOrdered {
			r.drawBar(x+1, y+3, 12, c.PatienceRatio(), r.patienceStyle(c.PatienceRatio()))
		}
	}
}

func (r *Renderer) stateStyle(s components.CustomerState) tcell.Style {
	switch s {
	case components.StateAngry:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case components.StateEating:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case components.StateOrdered:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

func (r *Renderer) patienceStyle(ratio float64) tcell.Style {
	switch {
	case ratio < 0.25:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case ratio < 0.5:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

func (r *Renderer) drawOrderBoard(ctx *engine.GameContext) {
	x := r.width - 24
	if x < 68 {
		return // terminal too narrow for the side board
	}
	y := 2
	r.drawText(x, y, tcell.StyleDefault.Bold(true), "ORDERS")
	y++

	for _, entry := range ctx.World.OrderBoard() {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		switch {
		case entry.Age >= constants.OrderCriticalAge:
			style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		case entry.Age >= constants.OrderUrgentAge:
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}

		icons := ""
		for _, item := range entry.Items {
			if item.Fulfilled {
				icons += "·"
			} else if rec, ok := ctx.Catalog.Recipe(item.RecipeID); ok {
				icons += rec.Icon
			}
		}
		r.drawText(x, y, style, fmt.Sprintf("%s %s", entry.Sprite, icons))
		y++
		if y >= r.height-3 {
			return
		}
	}
}

func (r *Renderer) drawWaiting(ctx *engine.GameContext) {
	y := r.height - 3
	label := fmt.Sprintf("Waiting (%d/%d): ", len(ctx.World.Waiting), constants.MaxWaitingCustomers)
	r.drawText(1, y, tcell.StyleDefault.Foreground(tcell.ColorWhite), label)
	x := 1 + len(label)
	for _, c := range ctx.World.Waiting {
		r.drawText(x, y, tcell.StyleDefault, c.Sprite+" ")
		x += 3
	}
}

func (r *Renderer) drawHeldItem(ctx *engine.GameContext) {
	y := r.height - 2
	if held := ctx.World.HeldItem; held != nil {
		r.drawText(1, y, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
			fmt.Sprintf("Holding: %s %s", held.Icon, held.Name))
	} else {
		r.drawText(1, y, tcell.StyleDefault.Foreground(tcell.ColorGray), "Hands free")
	}
}

func (r *Renderer) drawKeyHints() {
	y := r.height - 1
	hints := "[s]eat  [1-9]table  [tab]station  [enter]cook  [c]ollect  [x]discard  [p]ause  [q]uit"
	r.drawText(1, y, tcell.StyleDefault.Foreground(tcell.ColorGray), hints)
}
