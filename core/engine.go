package core

import (
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Database the transactional boundary every mutating operation runs inside.
// *db.DB satisfies it; tests inject a pass-through.
type Database interface {
	Tx(fn func(tx *db.DB) error) error
}

// IEngineService the state-mutating surface of the engine. Every call is
// atomic: it either fully applies, ledger mutation and external transfer
// together, or leaves no trace. Re-entrant invocation from within another
// mutating call fails with ErrReentrancyBlocked.
type IEngineService interface {
	Deposit(ctx context.Context, account, assetID string, quantity decimal.Decimal) error
	Redeem(ctx context.Context, account, assetID string, quantity decimal.Decimal) error
	Mint(ctx context.Context, account string, amount decimal.Decimal) error
	Burn(ctx context.Context, account string, amount decimal.Decimal) error
	DepositAndMint(ctx context.Context, account, assetID string, quantity, amount decimal.Decimal) error
	RedeemAndBurn(ctx context.Context, account, assetID string, quantity, amount decimal.Decimal) error
	// Liquidate covers debtToCover of the target's debt and pays the seized
	// collateral, bonus included, directly to the liquidator. Returns the
	// seized quantity.
	Liquidate(ctx context.Context, liquidator, account, assetID string, debtToCover decimal.Decimal) (decimal.Decimal, error)
}
