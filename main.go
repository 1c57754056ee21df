package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brunch-rush/audio"
	"github.com/lixenwraith/brunch-rush/catalog"
	"github.com/lixenwraith/brunch-rush/config"
	"github.com/lixenwraith/brunch-rush/constants"
	"github.com/lixenwraith/brunch-rush/engine"
	"github.com/lixenwraith/brunch-rush/render"
	"github.com/lixenwraith/brunch-rush/systems"
)

var (
	configFlag = flag.String("config", "brunch-rush.toml", "Path to the settings file")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	seedFlag   = flag.Int64("seed", 0, "Fix the session randomness (0 = time-derived)")
)

type screenMode int

const (
	modeTitle screenMode = iota
	modePlaying
	modeCookMenu
	modePaused
	modeDayEnd
	modeShop
)

// shell owns the terminal, the simulation context, and the UI state
// machine. All input handling happens here; the engine never sees keys.
type shell struct {
	screen   tcell.Screen
	renderer *render.Renderer
	ctx      *engine.GameContext
	player   *audio.Player

	mode       screenMode
	sel        render.Selection
	cookCursor int
	shopTab    render.ShopTab
	shopCursor int
}

func newShell(settings config.Settings, seed int64) (*shell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cat, err := catalog.New()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	ctx := engine.NewGameContext(cat, engine.NewMonotonicTimeProvider(), seed)
	ctx.DayLength = settings.DayLength()

	s := &shell{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		ctx:      ctx,
		sel:      render.Selection{TableID: -1},
	}

	ctx.World.AddSystem(systems.NewKitchenSystem())
	ctx.World.AddSystem(systems.NewCustomerSystem())
	ctx.World.AddSystem(systems.NewDepartureSystem())
	spawn := systems.NewSpawnSystem()
	ctx.World.AddSystem(spawn)
	ctx.Router.Register(spawn)

	if !settings.Mute && !*muteFlag {
		s.player = audio.NewPlayer(1.0)
		if err := s.player.Initialize(); err != nil {
			// sound is optional; the game runs silent
			s.player = nil
		} else {
			ctx.Router.Register(s.player)
		}
	}

	return s, nil
}

func (s *shell) cleanup() {
	if s.player != nil {
		s.player.Close()
	}
	s.screen.Fini()
}

func (s *shell) run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			s.ctx.Tick(dt)
			if s.mode == modePlaying || s.mode == modeCookMenu {
				if !s.ctx.State.Running {
					s.mode = modeDayEnd
				}
			}
			s.draw()
		}
	}
}

func (s *shell) draw() {
	s.renderer.Clear()
	switch s.mode {
	case modeTitle:
		s.renderer.DrawTitle()
	case modePlaying:
		s.renderer.DrawGame(s.ctx, s.sel)
	case modeCookMenu:
		s.renderer.DrawGame(s.ctx, s.sel)
		s.renderer.DrawCookMenu(s.ctx, s.selectedStationID(), s.cookCursor)
	case modePaused:
		s.renderer.DrawGame(s.ctx, s.sel)
		s.renderer.DrawPauseOverlay()
	case modeDayEnd:
		s.renderer.DrawDayEnd(s.ctx)
	case modeShop:
		s.renderer.DrawShop(s.ctx, s.shopTab, s.shopCursor)
	}
	s.renderer.Show()
}

func (s *shell) selectedStationID() catalog.StationID {
	stations := s.ctx.World.StationsInOrder()
	if len(stations) == 0 {
		return ""
	}
	return stations[s.sel.StationIndex%len(stations)].ID
}

// handleEvent dispatches one terminal event; false means quit
func (s *shell) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.renderer.Resize()
		s.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch s.mode {
		case modeTitle:
			return s.handleTitleKey(ev)
		case modePlaying:
			return s.handleGameKey(ev)
		case modeCookMenu:
			s.handleCookMenuKey(ev)
		case modePaused:
			return s.handlePauseKey(ev)
		case modeDayEnd:
			return s.handleDayEndKey(ev)
		case modeShop:
			s.handleShopKey(ev)
		}
	}
	return true
}

func (s *shell) handleTitleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEnter:
		s.ctx.StartDay()
		s.mode = modePlaying
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return false
	}
	return true
}

func (s *shell) handleGameKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyTab:
		stations := s.ctx.World.StationsInOrder()
		if len(stations) > 0 {
			s.sel.StationIndex = (s.sel.StationIndex + 1) % len(stations)
		}
		return true
	case tcell.KeyEnter:
		if station, ok := s.ctx.World.Stations[s.selectedStationID()]; ok && station.Unlocked {
			s.cookCursor = 0
			s.mode = modeCookMenu
		}
		return true
	case tcell.KeyEscape:
		s.ctx.Pause()
		s.mode = modePaused
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == 'p':
		s.ctx.Pause()
		s.mode = modePaused
	case r == 's':
		s.ctx.SeatFromWaiting()
	case r == 'c':
		s.ctx.CollectFromStation(s.selectedStationID())
	case r == 'x':
		s.ctx.DiscardHeldItem()
	case r >= '1' && r <= '9':
		s.tableAction(int(r - '1'))
	}
	return true
}

// tableAction routes a table key to the state-appropriate command:
// take the order, or deliver the held item
func (s *shell) tableAction(tableID int) {
	table := s.ctx.World.TableByID(tableID)
	if table == nil {
		return
	}
	s.sel.TableID = tableID

	if s.ctx.World.HeldItem != nil {
		s.ctx.DeliverHeldItem(tableID)
		return
	}
	s.ctx.TakeOrder(tableID)
}

func (s *shell) handleCookMenuKey(ev *tcell.EventKey) {
	recipes := s.ctx.Catalog.UnlockedRecipesForStation(s.selectedStationID(), s.ctx.State)
	switch ev.Key() {
	case tcell.KeyEscape:
		s.mode = modePlaying
	case tcell.KeyUp:
		if s.cookCursor > 0 {
			s.cookCursor--
		}
	case tcell.KeyDown:
		if s.cookCursor < len(recipes)-1 {
			s.cookCursor++
		}
	case tcell.KeyEnter:
		if s.cookCursor < len(recipes) {
			s.ctx.QueueRecipe(s.selectedStationID(), recipes[s.cookCursor].ID)
		}
	}
}

func (s *shell) handlePauseKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'p', ev.Key() == tcell.KeyEscape:
		s.ctx.Resume()
		s.mode = modePlaying
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return false
	}
	return true
}

func (s *shell) handleDayEndKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEnter:
		s.ctx.AdvanceDay()
		s.sel = render.Selection{TableID: -1}
		s.mode = modePlaying
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'b':
		s.shopTab = render.TabRecipes
		s.shopCursor = 0
		s.mode = modeShop
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return false
	}
	return true
}

func (s *shell) handleShopKey(ev *tcell.EventKey) {
	items := render.ShopItems(s.ctx, s.shopTab)
	switch ev.Key() {
	case tcell.KeyEscape:
		s.mode = modeDayEnd
	case tcell.KeyTab:
		s.shopTab = (s.shopTab + 1) % 3
		s.shopCursor = 0
	case tcell.KeyUp:
		if s.shopCursor > 0 {
			s.shopCursor--
		}
	case tcell.KeyDown:
		if s.shopCursor < len(items)-1 {
			s.shopCursor++
		}
	case tcell.KeyEnter:
		if s.shopCursor < len(items) && !items[s.shopCursor].Owned {
			s.ctx.Purchase(s.shopTab.Category(), items[s.shopCursor].ID)
		}
	}
}

func main() {
	// Terminal must be reset even when the game crashes
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBRUNCH RUSH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	settings, err := config.LoadOrDefault(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	seed := settings.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := newShell(settings, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
