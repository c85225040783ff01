package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Position collateral deposited by an account, per asset
type Position struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Account   string          `sql:"size:36;unique_index:idx_positions_account_asset" json:"account"`
	AssetID   string          `sql:"size:36;unique_index:idx_positions_account_asset" json:"asset_id"`
	Quantity  decimal.Decimal `sql:"type:decimal(32,18)" json:"quantity"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPositionStore position store interface. Find returns a zero-quantity row
// (ID == 0) when the account has never deposited the asset.
type IPositionStore interface {
	Save(ctx context.Context, tx *db.DB, position *Position) error
	Find(ctx context.Context, account, assetID string) (*Position, error)
	FindByAccount(ctx context.Context, account string) ([]*Position, error)
	All(ctx context.Context) ([]*Position, error)
}
