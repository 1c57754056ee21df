package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxFrameDelta caps the simulation delta per frame to avoid large
	// catch-up jumps after the terminal is suspended
	MaxFrameDelta = 100 * time.Millisecond
)

// Day Constants
const (
	// DayDuration is the length of one restaurant day
	DayDuration = 5 * time.Minute

	// StartingMoney is the bankroll on a fresh session
	StartingMoney = 50

	// StartingReputation is the initial star rating
	StartingReputation = 1.0
)

// Reputation Bounds and Adjustments
const (
	ReputationMin = 1.0
	ReputationMax = 5.0

	// ReputationPenalty is subtracted when a customer leaves angry
	ReputationPenalty = 0.5

	// ReputationReward is added when a customer leaves satisfied
	ReputationReward = 0.1
)
