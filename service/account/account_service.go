package account

import (
	"context"

	"anchor/core"
	"anchor/pkg/anchor"

	"github.com/shopspring/decimal"
)

type accountService struct {
	registry      *core.AssetRegistry
	positionStore core.IPositionStore
	debtStore     core.IDebtStore
	oracleService core.IOracleService
}

// New new account service
func New(
	registry *core.AssetRegistry,
	positionStore core.IPositionStore,
	debtStore core.IDebtStore,
	oracleService core.IOracleService,
) core.IAccountService {
	return &accountService{
		registry:      registry,
		positionStore: positionStore,
		debtStore:     debtStore,
		oracleService: oracleService,
	}
}

func (s *accountService) ToUnitOfAccount(ctx context.Context, assetID string, quantity decimal.Decimal) (decimal.Decimal, error) {
	if _, ok := s.registry.Find(assetID); !ok {
		return decimal.Zero, core.ErrUnsupportedAsset
	}

	price, err := s.oracleService.GetPrice(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	return anchor.ToUnitOfAccount(quantity, price.Price), nil
}

func (s *accountService) FromUnitOfAccount(ctx context.Context, assetID string, value decimal.Decimal) (decimal.Decimal, error) {
	asset, ok := s.registry.Find(assetID)
	if !ok {
		return decimal.Zero, core.ErrUnsupportedAsset
	}

	price, err := s.oracleService.GetPrice(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	return anchor.FromUnitOfAccount(value, price.Price, asset.Precision), nil
}

// TotalCollateralValue sums the value of every registered asset the account
// has deposited. A stale or missing price on any non-empty position is
// fatal; solvency is never judged on partial data.
func (s *accountService) TotalCollateralValue(ctx context.Context, account string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, asset := range s.registry.All() {
		position, err := s.positionStore.Find(ctx, account, asset.AssetID)
		if err != nil {
			return decimal.Zero, err
		}

		if !position.Quantity.IsPositive() {
			continue
		}

		price, err := s.oracleService.GetPrice(ctx, asset.AssetID)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(anchor.ToUnitOfAccount(position.Quantity, price.Price))
	}

	return total, nil
}

func (s *accountService) HealthFactor(ctx context.Context, account string) (core.HealthFactor, error) {
	debt, err := s.debtStore.Find(ctx, account)
	if err != nil {
		return core.HealthFactor{}, err
	}

	// zero debt is unconditionally safe; don't let a stale price block it
	if !debt.Principal.IsPositive() {
		return core.UnconstrainedHealthFactor(), nil
	}

	collateral, err := s.TotalCollateralValue(ctx, account)
	if err != nil {
		return core.HealthFactor{}, err
	}

	return anchor.HealthFactor(debt.Principal, collateral), nil
}

func (s *accountService) Summary(ctx context.Context, account string) (*core.AccountSummary, error) {
	debt, err := s.debtStore.Find(ctx, account)
	if err != nil {
		return nil, err
	}

	collateral, err := s.TotalCollateralValue(ctx, account)
	if err != nil {
		return nil, err
	}

	positions, err := s.positionStore.FindByAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	return &core.AccountSummary{
		Account:         account,
		DebtValue:       debt.Principal,
		CollateralValue: collateral,
		Collaterals:     positions,
		HealthFactor:    anchor.HealthFactor(debt.Principal, collateral),
	}, nil
}
