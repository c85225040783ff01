package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// ITokenService moves collateral assets between user wallets and the engine
// vault. Both calls either fully apply or fail; a boolean-false reply from
// the ledger and a transport error both surface as ErrTransferFailed.
type ITokenService interface {
	// TransferFrom pulls quantity of the asset from the account into the vault.
	TransferFrom(ctx context.Context, assetID, from string, quantity decimal.Decimal) error
	// Transfer pays quantity of the asset out of the vault to the account.
	Transfer(ctx context.Context, assetID, to string, quantity decimal.Decimal) error
}

// ISyntheticService mints and retires AUSD. The engine is the sole
// authorized minter.
type ISyntheticService interface {
	Mint(ctx context.Context, to string, amount decimal.Decimal) error
	// Burn pulls amount from the account and permanently retires it.
	Burn(ctx context.Context, from string, amount decimal.Decimal) error
}
