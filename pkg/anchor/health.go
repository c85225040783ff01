package anchor

import (
	"anchor/core"
	"anchor/pkg/number"

	"github.com/shopspring/decimal"
)

// HealthFactor computes the risk ratio of a position from its debt value
// and nominal collateral value, both in the unit of account.
//
// ratio = (collateralValue * LiquidationThreshold) / debtValue
//
// Zero debt yields the Unconstrained variant: such an account can never be
// blocked or liquidated, whatever its collateral. All arithmetic truncates
// toward zero so rounding can only understate solvency, never overstate it.
func HealthFactor(debtValue, collateralValue decimal.Decimal) core.HealthFactor {
	if !debtValue.IsPositive() {
		return core.UnconstrainedHealthFactor()
	}

	adjusted := collateralValue.Mul(LiquidationThreshold).Truncate(ValuePrecision)
	return core.RatioHealthFactor(number.DivFloor(adjusted, debtValue, ValuePrecision))
}
