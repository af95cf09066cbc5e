package model

import "fmt"

// SetupType identifies one of the five Win More setups.
type SetupType int

const (
	SetupOversoldBounce SetupType = iota + 1
	SetupSupportBounce
	SetupEarningsOverreaction
	SetupSympathySelloff
	SetupGapFill
)

// AllSetupTypes lists the five setups in id order.
var AllSetupTypes = []SetupType{
	SetupOversoldBounce,
	SetupSupportBounce,
	SetupEarningsOverreaction,
	SetupSympathySelloff,
	SetupGapFill,
}

// Valid reports whether t is one of the five declared setups.
func (t SetupType) Valid() bool {
	return t >= SetupOversoldBounce && t <= SetupGapFill
}

func (t SetupType) String() string {
	return fmt.Sprintf("Setup %d", int(t))
}
