package anchor

import (
	"anchor/pkg/number"
)

const (
	// ValuePrecision decimal places of the unit of account (AUSD)
	ValuePrecision int32 = 18
)

var (
	// LiquidationThreshold share of nominal collateral value that counts
	// toward solvency. 0.5 means positions must be at least 200% backed.
	LiquidationThreshold = number.Decimal("0.5")

	// LiquidationBonus extra share of seized collateral paid to the
	// liquidator on top of the covered debt.
	LiquidationBonus = number.Decimal("0.1")
)
