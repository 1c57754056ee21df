package constants

import "time"

// Customer Spawn Constants
const (
	// SpawnIntervalBase is the interval between customer arrivals on day one
	SpawnIntervalBase = 8 * time.Second

	// SpawnIntervalFloor is the tightest the interval gets from difficulty scaling
	SpawnIntervalFloor = 4 * time.Second

	// SpawnIntervalStepPerDay is subtracted from the base interval per day number
	SpawnIntervalStepPerDay = 300 * time.Millisecond

	// SpawnIntervalPerCustomerBonus is subtracted per point of the
	// customer-attraction upgrade bonus
	SpawnIntervalPerCustomerBonus = 500 * time.Millisecond

	// MaxWaitingCustomers caps the waiting pool; spawns are dropped past it
	MaxWaitingCustomers = 3
)
