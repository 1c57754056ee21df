package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/brunch-rush/constants"
	"github.com/lixenwraith/brunch-rush/engine"
)

// SoundType selects a synthesized cue
type SoundType int

const (
	SoundClick SoundType = iota
	SoundError
	SoundCoin
	SoundSuccess
	SoundBell
	SoundSizzle
)

// Player owns the speaker and a persistent mixer. Cues are fire and
// forget: each Play adds a bounded streamer that drains and is dropped
// by the mixer on its own.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewPlayer creates a silent player; Initialize opens the speaker
func NewPlayer(masterVolume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constants.AudioSampleRate),
		volume: masterVolume,
	}
}

// Initialize opens the audio device and starts the mixer. Failure
// leaves the player silent but usable; callers may treat audio as
// optional.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(constants.AudioBufferLength)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the player. beep has no speaker teardown; clearing
// the mixer stops all output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues a cue on the mixer
func (p *Player) Play(s SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	var streamer beep.Streamer
	switch s {
	case SoundClick:
		streamer = CreateClickSound(p.rate, p.volume)
	case SoundError:
		streamer = CreateErrorSound(p.rate, p.volume)
	case SoundCoin:
		streamer = CreateCoinSound(p.rate, p.volume)
	case SoundSuccess:
		streamer = CreateSuccessSound(p.rate, p.volume)
	case SoundBell:
		streamer = CreateBellSound(p.rate, p.volume)
	case SoundSizzle:
		streamer = CreateSizzleSound(p.rate, p.volume)
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// EventTypes registers the player for every event with an audible cue
func (p *Player) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventCustomerSeated,
		engine.EventItemQueued,
		engine.EventQueueFull,
		engine.EventItemReady,
		engine.EventItemCollected,
		engine.EventItemDelivered,
		engine.EventDeliveryRejected,
		engine.EventOrderDeclined,
		engine.EventOrderSettled,
		engine.EventCustomerAngry,
		engine.EventPurchaseMade,
		engine.EventPurchaseRejected,
		engine.EventDayStarted,
	}
}

// HandleEvent maps simulation events to cues
func (p *Player) HandleEvent(ctx *engine.GameContext, event engine.GameEvent) {
	switch event.Type {
	case engine.EventCustomerSeated, engine.EventItemCollected, engine.EventItemDelivered:
		p.Play(SoundClick)
	case engine.EventItemQueued:
		p.Play(SoundSizzle)
	case engine.EventItemReady:
		p.Play(SoundBell)
	case engine.EventOrderSettled:
		p.Play(SoundCoin)
	case engine.EventPurchaseMade, engine.EventDayStarted:
		p.Play(SoundSuccess)
	case engine.EventQueueFull, engine.EventDeliveryRejected, engine.EventOrderDeclined,
		engine.EventCustomerAngry, engine.EventPurchaseRejected:
		p.Play(SoundError)
	}
}
