package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountSummary derived account state. Always recomputed from positions,
// debt and current oracle prices; never cached.
type AccountSummary struct {
	Account         string          `json:"account"`
	DebtValue       decimal.Decimal `json:"debt_value"`
	CollateralValue decimal.Decimal `json:"collateral_value"`
	Collaterals     []*Position     `json:"collaterals"`
	HealthFactor    HealthFactor    `json:"health_factor"`
}

// IAccountService valuation and read-only account queries
type IAccountService interface {
	// ToUnitOfAccount converts an asset quantity into AUSD value at the
	// current oracle price, floor-truncated.
	ToUnitOfAccount(ctx context.Context, assetID string, quantity decimal.Decimal) (decimal.Decimal, error)
	// FromUnitOfAccount converts an AUSD value back into an asset quantity,
	// floor-truncated to the asset's native precision.
	FromUnitOfAccount(ctx context.Context, assetID string, value decimal.Decimal) (decimal.Decimal, error)
	TotalCollateralValue(ctx context.Context, account string) (decimal.Decimal, error)
	HealthFactor(ctx context.Context, account string) (HealthFactor, error)
	Summary(ctx context.Context, account string) (*AccountSummary, error)
}
