package views

import (
	"time"

	"anchor/core"

	"github.com/shopspring/decimal"
)

// Asset asset view with its latest oracle observation
type Asset struct {
	core.Asset
	Price      decimal.Decimal `json:"price"`
	ObservedAt *time.Time      `json:"observed_at,omitempty"`
}
