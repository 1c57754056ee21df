package constants

import "time"

// Station Constants
const (
	// StationQueueCapacity bounds the pending queue behind the cooking slot.
	// Total held items per station never exceeds capacity+1 (one in-flight
	// or ready item plus the queue).
	StationQueueCapacity = 5
)

// Customer Constants
const (
	// DwellDuration is how long a fully served customer keeps the seat
	// before leaving
	DwellDuration = 3 * time.Second

	// PreferencePickChance is the probability an order slot is drawn from
	// the archetype's preferred recipes
	PreferencePickChance = 0.7

	// CustomerMoveSpeed is movement interpolation speed in cells per update
	CustomerMoveSpeed = 3.0

	// CustomerAnimRate scales the walk-cycle frame counter per millisecond
	CustomerAnimRate = 0.005

	// CustomerAnimFrames is the walk-cycle length
	CustomerAnimFrames = 4
)

// Tip Calculation
const (
	// TipRate is the base tip as a fraction of the order total
	TipRate = 0.2

	// TipModifierMin is the tip multiplier at zero remaining patience
	TipModifierMin = 0.5

	// TipModifierSpan is added to TipModifierMin scaled by the remaining
	// patience fraction, giving a modifier in [0.5, 1.5]
	TipModifierSpan = 1.0
)

// Seating Constants
const (
	// BaseTableCount is the table count before seating upgrades
	BaseTableCount = 4

	// TableSeatsMin and TableSeatsMax bound the random per-table seat count
	TableSeatsMin = 2
	TableSeatsMax = 3
)

// Order Board Aging
const (
	// OrderUrgentAge marks board entries for urgent styling
	OrderUrgentAge = 25 * time.Second

	// OrderCriticalAge marks board entries for critical styling
	OrderCriticalAge = 45 * time.Second
)
