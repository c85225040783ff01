package account

import (
	"context"
	"testing"
	"time"

	"anchor/core"
	"anchor/pkg/number"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOracle struct {
	prices map[string]decimal.Decimal
	err    error
}

func (f *fakeOracle) GetPrice(ctx context.Context, assetID string) (*core.PriceData, error) {
	if f.err != nil {
		return nil, f.err
	}

	price, ok := f.prices[assetID]
	if !ok {
		return nil, core.ErrOracleUnavailable
	}

	return &core.PriceData{AssetID: assetID, Price: price, ObservedAt: time.Now()}, nil
}

func (f *fakeOracle) PullPriceTicker(ctx context.Context, oracleID string, t time.Time) (*core.PriceTicker, error) {
	return nil, core.ErrOracleUnavailable
}

type fakePositionStore struct {
	rows map[string]*core.Position
}

func positionKey(account, assetID string) string { return account + "/" + assetID }

func (f *fakePositionStore) Save(ctx context.Context, tx *db.DB, position *core.Position) error {
	if position.ID == 0 {
		position.ID = uint64(len(f.rows) + 1)
	}
	f.rows[positionKey(position.Account, position.AssetID)] = position
	return nil
}

func (f *fakePositionStore) Find(ctx context.Context, account, assetID string) (*core.Position, error) {
	if p, ok := f.rows[positionKey(account, assetID)]; ok {
		copied := *p
		return &copied, nil
	}

	return &core.Position{Account: account, AssetID: assetID}, nil
}

func (f *fakePositionStore) FindByAccount(ctx context.Context, account string) ([]*core.Position, error) {
	var positions []*core.Position
	for _, p := range f.rows {
		if p.Account == account {
			copied := *p
			positions = append(positions, &copied)
		}
	}

	return positions, nil
}

func (f *fakePositionStore) All(ctx context.Context) ([]*core.Position, error) {
	var positions []*core.Position
	for _, p := range f.rows {
		copied := *p
		positions = append(positions, &copied)
	}

	return positions, nil
}

type fakeDebtStore struct {
	rows map[string]*core.Debt
}

func (f *fakeDebtStore) Save(ctx context.Context, tx *db.DB, debt *core.Debt) error {
	if debt.ID == 0 {
		debt.ID = uint64(len(f.rows) + 1)
	}
	f.rows[debt.Account] = debt
	return nil
}

func (f *fakeDebtStore) Find(ctx context.Context, account string) (*core.Debt, error) {
	if d, ok := f.rows[account]; ok {
		copied := *d
		return &copied, nil
	}

	return &core.Debt{Account: account}, nil
}

func (f *fakeDebtStore) All(ctx context.Context) ([]*core.Debt, error) {
	var debts []*core.Debt
	for _, d := range f.rows {
		copied := *d
		debts = append(debts, &copied)
	}

	return debts, nil
}

func newTestRegistry(t *testing.T) *core.AssetRegistry {
	registry, err := core.NewAssetRegistry([]*core.Asset{
		{AssetID: "eth", Symbol: "ETH", Precision: 8},
		{AssetID: "btc", Symbol: "BTC", Precision: 8},
	}, []string{"eth-usd", "btc-usd"})
	require.Nil(t, err)
	return registry
}

func TestTotalCollateralValue(t *testing.T) {
	ctx := context.Background()
	positions := &fakePositionStore{rows: map[string]*core.Position{}}
	debts := &fakeDebtStore{rows: map[string]*core.Debt{}}
	oracle := &fakeOracle{prices: map[string]decimal.Decimal{
		"eth": number.Decimal("2000"),
		"btc": number.Decimal("30000"),
	}}

	service := New(newTestRegistry(t), positions, debts, oracle)

	_ = positions.Save(ctx, nil, &core.Position{Account: "alice", AssetID: "eth", Quantity: number.Decimal("10")})
	_ = positions.Save(ctx, nil, &core.Position{Account: "alice", AssetID: "btc", Quantity: number.Decimal("0.5")})

	total, err := service.TotalCollateralValue(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, "35000", total.String())

	// empty accounts are worth zero without touching the oracle
	oracle.err = core.ErrStalePrice
	total, err = service.TotalCollateralValue(ctx, "nobody")
	require.Nil(t, err)
	assert.True(t, total.IsZero())
}

func TestHealthFactorQuery(t *testing.T) {
	ctx := context.Background()
	positions := &fakePositionStore{rows: map[string]*core.Position{}}
	debts := &fakeDebtStore{rows: map[string]*core.Debt{}}
	oracle := &fakeOracle{prices: map[string]decimal.Decimal{"eth": number.Decimal("2000")}}

	service := New(newTestRegistry(t), positions, debts, oracle)

	_ = positions.Save(ctx, nil, &core.Position{Account: "alice", AssetID: "eth", Quantity: number.Decimal("10")})
	_ = debts.Save(ctx, nil, &core.Debt{Account: "alice", Principal: number.Decimal("6000")})

	factor, err := service.HealthFactor(ctx, "alice")
	require.Nil(t, err)
	assert.False(t, factor.Unconstrained)
	assert.Equal(t, "1.666666666666666666", factor.Ratio.String())
	assert.True(t, factor.Safe())
}

func TestHealthFactorZeroDebtSkipsOracle(t *testing.T) {
	ctx := context.Background()
	positions := &fakePositionStore{rows: map[string]*core.Position{}}
	debts := &fakeDebtStore{rows: map[string]*core.Debt{}}
	oracle := &fakeOracle{err: core.ErrStalePrice}

	service := New(newTestRegistry(t), positions, debts, oracle)

	_ = positions.Save(ctx, nil, &core.Position{Account: "alice", AssetID: "eth", Quantity: number.Decimal("10")})

	factor, err := service.HealthFactor(ctx, "alice")
	require.Nil(t, err)
	assert.True(t, factor.Unconstrained)
}

func TestStalePriceIsFatal(t *testing.T) {
	ctx := context.Background()
	positions := &fakePositionStore{rows: map[string]*core.Position{}}
	debts := &fakeDebtStore{rows: map[string]*core.Debt{}}
	oracle := &fakeOracle{err: core.ErrStalePrice}

	service := New(newTestRegistry(t), positions, debts, oracle)

	_ = positions.Save(ctx, nil, &core.Position{Account: "alice", AssetID: "eth", Quantity: number.Decimal("10")})
	_ = debts.Save(ctx, nil, &core.Debt{Account: "alice", Principal: number.Decimal("6000")})

	_, err := service.HealthFactor(ctx, "alice")
	assert.Equal(t, core.ErrStalePrice, err)

	_, err = service.ToUnitOfAccount(ctx, "eth", number.Decimal("1"))
	assert.Equal(t, core.ErrStalePrice, err)
}

func TestConversionQueries(t *testing.T) {
	ctx := context.Background()
	positions := &fakePositionStore{rows: map[string]*core.Position{}}
	debts := &fakeDebtStore{rows: map[string]*core.Debt{}}
	oracle := &fakeOracle{prices: map[string]decimal.Decimal{"eth": number.Decimal("2000")}}

	service := New(newTestRegistry(t), positions, debts, oracle)

	value, err := service.ToUnitOfAccount(ctx, "eth", number.Decimal("10"))
	require.Nil(t, err)
	assert.Equal(t, "20000", value.String())

	quantity, err := service.FromUnitOfAccount(ctx, "eth", number.Decimal("5000"))
	require.Nil(t, err)
	assert.Equal(t, "2.5", quantity.String())

	_, err = service.ToUnitOfAccount(ctx, "doge", number.Decimal("10"))
	assert.Equal(t, core.ErrUnsupportedAsset, err)
}
