package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// ActionType engine operation type
type ActionType int

const (
	// ActionTypeDeposit deposit collateral
	ActionTypeDeposit ActionType = iota + 1
	// ActionTypeRedeem redeem collateral
	ActionTypeRedeem
	// ActionTypeMint mint AUSD debt
	ActionTypeMint
	// ActionTypeBurn repay AUSD debt
	ActionTypeBurn
	// ActionTypeLiquidate liquidate an unsafe account
	ActionTypeLiquidate
)

const (
	// TransactionKeyLiquidator liquidator account :string
	TransactionKeyLiquidator = "liquidator"
	// TransactionKeySeizedQuantity seized collateral quantity :decimal
	TransactionKeySeizedQuantity = "seized_quantity"
	// TransactionKeyBonusQuantity liquidation bonus quantity :decimal
	TransactionKeyBonusQuantity = "bonus_quantity"
	// TransactionKeyRepaidDebt repaid debt value :decimal
	TransactionKeyRepaidDebt = "repaid_debt"
	// TransactionKeyHealthFactor health factor after the operation
	TransactionKeyHealthFactor = "health_factor"
)

// Transaction a committed engine operation, written in the same database
// transaction as the ledger mutation it records.
type Transaction struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string          `sql:"size:36;unique_index:idx_transactions_trace" json:"trace_id"`
	Action    ActionType      `json:"action"`
	Account   string          `sql:"size:36;index:idx_transactions_account" json:"account"`
	AssetID   string          `sql:"size:36" json:"asset_id"`
	Amount    decimal.Decimal `sql:"type:decimal(32,18)" json:"amount"`
	Data      types.JSONText  `sql:"type:varchar(1024)" json:"data"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TransactionExtra extra event payload
type TransactionExtra map[string]interface{}

// Put put data
func (t TransactionExtra) Put(key string, value interface{}) {
	t[key] = value
}

// Format format as json
func (t TransactionExtra) Format() types.JSONText {
	bs, err := json.Marshal(t)
	if err != nil {
		return types.JSONText("{}")
	}

	return types.JSONText(bs)
}

// ITransactionStore transaction store interface
type ITransactionStore interface {
	Create(ctx context.Context, tx *db.DB, transaction *Transaction) error
	FindByTraceID(ctx context.Context, traceID string) (*Transaction, error)
	List(ctx context.Context, fromID uint64, limit int) ([]*Transaction, error)
}
