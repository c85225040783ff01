package core

import (
	"github.com/shopspring/decimal"
)

// MinHealthFactor is the solvency threshold. An account whose ratio drops
// below 1 is liquidatable.
var MinHealthFactor = decimal.New(1, 0)

// HealthFactor is the risk ratio of an account. A zero-debt account carries
// the distinguished Unconstrained variant instead of a numeric sentinel so
// that comparisons can never wrap around.
type HealthFactor struct {
	Unconstrained bool            `json:"unconstrained,omitempty"`
	Ratio         decimal.Decimal `json:"ratio"`
}

// UnconstrainedHealthFactor the health factor of an account with no debt
func UnconstrainedHealthFactor() HealthFactor {
	return HealthFactor{Unconstrained: true}
}

// RatioHealthFactor health factor with a concrete ratio
func RatioHealthFactor(ratio decimal.Decimal) HealthFactor {
	return HealthFactor{Ratio: ratio}
}

// Safe reports whether the account may keep its current position.
func (h HealthFactor) Safe() bool {
	return h.Unconstrained || h.Ratio.GreaterThanOrEqual(MinHealthFactor)
}

// Cmp orders two health factors; Unconstrained ranks above every ratio.
func (h HealthFactor) Cmp(other HealthFactor) int {
	switch {
	case h.Unconstrained && other.Unconstrained:
		return 0
	case h.Unconstrained:
		return 1
	case other.Unconstrained:
		return -1
	default:
		return h.Ratio.Cmp(other.Ratio)
	}
}

func (h HealthFactor) String() string {
	if h.Unconstrained {
		return "unconstrained"
	}

	return h.Ratio.String()
}
