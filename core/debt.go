package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Debt AUSD principal issued to an account. Principal is the unit of
// account, 18 decimal places, and never goes negative.
type Debt struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Account   string          `sql:"size:36;unique_index:idx_debts_account" json:"account"`
	Principal decimal.Decimal `sql:"type:decimal(32,18)" json:"principal"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IDebtStore debt store interface. Find returns a zero-principal record
// (ID == 0) for accounts that never minted.
type IDebtStore interface {
	Save(ctx context.Context, tx *db.DB, debt *Debt) error
	Find(ctx context.Context, account string) (*Debt, error)
	All(ctx context.Context) ([]*Debt, error)
}
