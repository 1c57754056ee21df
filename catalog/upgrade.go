package catalog

// EffectKind names the session bonus a decor upgrade adjusts
type EffectKind string

const (
	EffectTip       EffectKind = "tip"
	EffectPatience  EffectKind = "patience"
	EffectSpeed     EffectKind = "speed"
	EffectCustomers EffectKind = "customers"
	EffectSeating   EffectKind = "seating"
)

// Upgrade is a purchasable decor item with a permanent session effect
type Upgrade struct {
	ID          string
	Name        string
	Icon        string
	Price       int
	Description string
	Effect      EffectKind
	Value       float64
}
