package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Price latest observed price of a collateral asset, normalized to the
// unit-of-account precision.
type Price struct {
	ID         int64           `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	AssetID    string          `sql:"size:36;unique_index:idx_prices_asset" json:"asset_id,omitempty"`
	Price      decimal.Decimal `sql:"type:decimal(32,18)" json:"price,omitempty"`
	ObservedAt time.Time       `json:"observed_at,omitempty"`
	Version    int64           `sql:"default:0" json:"version,omitempty"`
	CreatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// PriceTicker raw feed payload. Price is an integer mantissa; the real price
// is Price * 10^-Exponent.
type PriceTicker struct {
	Symbol    string          `json:"symbol,omitempty"`
	Price     decimal.Decimal `json:"price,omitempty"`
	Exponent  int32           `json:"exponent,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// PriceData a normalized, freshness-checked price
type PriceData struct {
	AssetID    string          `json:"asset_id"`
	Price      decimal.Decimal `json:"price"`
	ObservedAt time.Time       `json:"observed_at"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Save(ctx context.Context, price *Price) error
	Find(ctx context.Context, assetID string) (*Price, bool, error)
}

// IOracleService oracle adapter interface. GetPrice fails with
// ErrOracleUnavailable for unregistered assets and ErrStalePrice when the
// latest observation is outside the freshness window; staleness is fatal to
// the calling operation, never retried here.
type IOracleService interface {
	GetPrice(ctx context.Context, assetID string) (*PriceData, error)
	PullPriceTicker(ctx context.Context, oracleID string, t time.Time) (*PriceTicker, error)
}
