package constants

import "time"

// Audio Sample Rate
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
)

// Error Sound Timing
const (
	ErrorSoundDuration = 200 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 60 * time.Millisecond
)

// Click Sound Timing
const (
	ClickSoundDuration = 50 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 20 * time.Millisecond
)

// Coin Sound Timing
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 120 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 90 * time.Millisecond
)

// Success Sound Timing (three-note arpeggio)
const (
	SuccessNoteDuration  = 100 * time.Millisecond
	SuccessFinalDuration = 150 * time.Millisecond
	SuccessNoteAttack    = 5 * time.Millisecond
	SuccessNoteRelease   = 50 * time.Millisecond
)

// Bell Sound Timing (item ready at a station)
const (
	BellSoundDuration           = 300 * time.Millisecond
	BellSoundAttack             = 2 * time.Millisecond
	BellSoundFundamentalRelease = 250 * time.Millisecond
	BellSoundOvertoneRelease    = 150 * time.Millisecond
)

// Sizzle Sound Timing (recipe queued on a station)
const (
	SizzleSoundDuration = 100 * time.Millisecond
	SizzleSoundAttack   = 10 * time.Millisecond
	SizzleSoundRelease  = 40 * time.Millisecond
)
