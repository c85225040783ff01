package anchor

import (
	"anchor/pkg/number"

	"github.com/shopspring/decimal"
)

// ToUnitOfAccount values an asset quantity in AUSD at the given normalized
// price, floor-truncated.
func ToUnitOfAccount(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price).Truncate(ValuePrecision)
}

// FromUnitOfAccount converts an AUSD value back into an asset quantity at
// the given price, floor-truncated to the asset's native precision.
//
// Not an exact inverse of ToUnitOfAccount: truncating both ways loses at
// most one smallest asset unit, and the loss is always downward.
func FromUnitOfAccount(value, price decimal.Decimal, precision int32) decimal.Decimal {
	return number.DivFloor(value, price, precision)
}

// Seize splits a covered-debt collateral quantity into the total seizure
// and the liquidator bonus part of it.
func Seize(collateralQuantity decimal.Decimal, precision int32) (total, bonus decimal.Decimal) {
	bonus = collateralQuantity.Mul(LiquidationBonus).Truncate(precision)
	total = collateralQuantity.Add(bonus)
	return total, bonus
}
