package vault

import (
	"context"
	"sync/atomic"

	"anchor/core"
	"anchor/pkg/anchor"
	"anchor/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// vaultService is the collateral/debt engine. Every mutating entry point is
// serialized behind an in-flight guard and runs inside one database
// transaction together with its external transfer call, so an operation
// either fully applies or leaves no trace.
type vaultService struct {
	db               core.Database
	registry         *core.AssetRegistry
	positionStore    core.IPositionStore
	debtStore        core.IDebtStore
	transactionStore core.ITransactionStore
	accountService   core.IAccountService
	tokenService     core.ITokenService
	syntheticService core.ISyntheticService

	busy int32
}

// New new vault engine service
func New(
	database core.Database,
	registry *core.AssetRegistry,
	positionStore core.IPositionStore,
	debtStore core.IDebtStore,
	transactionStore core.ITransactionStore,
	accountService core.IAccountService,
	tokenService core.ITokenService,
	syntheticService core.ISyntheticService,
) core.IEngineService {
	return &vaultService{
		db:               database,
		registry:         registry,
		positionStore:    positionStore,
		debtStore:        debtStore,
		transactionStore: transactionStore,
		accountService:   accountService,
		tokenService:     tokenService,
		syntheticService: syntheticService,
	}
}

// enter blocks re-entrant invocation of any mutating operation, transfer
// callbacks included. Checked atomically with the mutation it wraps.
func (s *vaultService) enter() error {
	if !atomic.CompareAndSwapInt32(&s.busy, 0, 1) {
		return core.ErrReentrancyBlocked
	}

	return nil
}

func (s *vaultService) exit() {
	atomic.StoreInt32(&s.busy, 0)
}

func (s *vaultService) Deposit(ctx context.Context, account, assetID string, quantity decimal.Decimal) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	return s.db.Tx(func(tx *db.DB) error {
		return s.deposit(ctx, tx, account, assetID, quantity)
	})
}

func (s *vaultService) Redeem(ctx context.Context, account, assetID string, quantity decimal.Decimal) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	return s.db.Tx(func(tx *db.DB) error {
		return s.redeem(ctx, tx, account, assetID, quantity, decimal.Zero)
	})
}

func (s *vaultService) Mint(ctx context.Context, account string, amount decimal.Decimal) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	return s.db.Tx(func(tx *db.DB) error {
		return s.mint(ctx, tx, account, amount, decimal.Zero)
	})
}

func (s *vaultService) Burn(ctx context.Context, account string, amount decimal.Decimal) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	return s.db.Tx(func(tx *db.DB) error {
		return s.burn(ctx, tx, account, amount)
	})
}

// DepositAndMint deposit before mint, one atomic unit.
func (s *vaultService) DepositAndMint(ctx context.Context, account, assetID string, quantity, amount decimal.Decimal) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	asset, ok := s.registry.Find(assetID)
	if !ok {
		return core.ErrUnsupportedAsset
	}

	// value the pending deposit up front so the mint solvency check can see
	// it before the position row is committed; truncated exactly as deposit
	// will book it, never the raw request quantity
	pending, err := s.accountService.ToUnitOfAccount(ctx, assetID, quantity.Truncate(asset.Precision))
	if err != nil {
		return err
	}

	return s.db.Tx(func(tx *db.DB) error {
		if err := s.deposit(ctx, tx, account, assetID, quantity); err != nil {
			return err
		}

		return s.mint(ctx, tx, account, amount, pending)
	})
}

// RedeemAndBurn burn before redeem, one atomic unit.
func (s *vaultService) RedeemAndBurn(ctx context.Context, account, assetID string, quantity, amount decimal.Decimal) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.exit()

	return s.db.Tx(func(tx *db.DB) error {
		if err := s.burn(ctx, tx, account, amount); err != nil {
			return err
		}

		return s.redeem(ctx, tx, account, assetID, quantity, amount.Truncate(anchor.ValuePrecision).Neg())
	})
}

// deposit needs no solvency check; it can only improve the health factor.
func (s *vaultService) deposit(ctx context.Context, tx *db.DB, account, assetID string, quantity decimal.Decimal) error {
	asset, ok := s.registry.Find(assetID)
	if !ok {
		return core.ErrUnsupportedAsset
	}

	quantity = quantity.Truncate(asset.Precision)
	if !quantity.IsPositive() {
		return core.ErrInvalidAmount
	}

	position, err := s.positionStore.Find(ctx, account, assetID)
	if err != nil {
		return err
	}

	position.Quantity = position.Quantity.Add(quantity)
	if err := s.positionStore.Save(ctx, tx, position); err != nil {
		return err
	}

	if err := s.logTransaction(ctx, tx, core.ActionTypeDeposit, account, assetID, quantity, nil); err != nil {
		return err
	}

	// ledger first, external call last; failure aborts the transaction
	return s.tokenService.TransferFrom(ctx, assetID, account, quantity)
}

// redeem decrements the position, pays out, and must leave the account
// solvent. debtDelta carries the principal change of a preceding burn in
// the composite path.
func (s *vaultService) redeem(ctx context.Context, tx *db.DB, account, assetID string, quantity, debtDelta decimal.Decimal) error {
	asset, ok := s.registry.Find(assetID)
	if !ok {
		return core.ErrUnsupportedAsset
	}

	quantity = quantity.Truncate(asset.Precision)
	if !quantity.IsPositive() {
		return core.ErrInvalidAmount
	}

	position, err := s.positionStore.Find(ctx, account, assetID)
	if err != nil {
		return err
	}

	if quantity.GreaterThan(position.Quantity) {
		return core.ErrInsufficientBalance
	}

	debt, err := s.debtStore.Find(ctx, account)
	if err != nil {
		return err
	}

	if remaining := debt.Principal.Add(debtDelta); remaining.IsPositive() {
		collateral, err := s.accountService.TotalCollateralValue(ctx, account)
		if err != nil {
			return err
		}

		redeemed, err := s.accountService.ToUnitOfAccount(ctx, assetID, quantity)
		if err != nil {
			return err
		}

		if factor := anchor.HealthFactor(remaining, collateral.Sub(redeemed)); !factor.Safe() {
			return &core.HealthFactorError{Code: core.ErrBrokenHealthFactor, Factor: factor}
		}
	}

	position.Quantity = position.Quantity.Sub(quantity)
	if err := s.positionStore.Save(ctx, tx, position); err != nil {
		return err
	}

	if err := s.logTransaction(ctx, tx, core.ActionTypeRedeem, account, assetID, quantity, nil); err != nil {
		return err
	}

	return s.tokenService.Transfer(ctx, assetID, account, quantity)
}

// mint issues AUSD debt; collateralDelta carries the value of a pending
// deposit in the composite path.
func (s *vaultService) mint(ctx context.Context, tx *db.DB, account string, amount, collateralDelta decimal.Decimal) error {
	amount = amount.Truncate(anchor.ValuePrecision)
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	debt, err := s.debtStore.Find(ctx, account)
	if err != nil {
		return err
	}

	collateral, err := s.accountService.TotalCollateralValue(ctx, account)
	if err != nil {
		return err
	}

	principal := debt.Principal.Add(amount)
	if factor := anchor.HealthFactor(principal, collateral.Add(collateralDelta)); !factor.Safe() {
		return &core.HealthFactorError{Code: core.ErrBrokenHealthFactor, Factor: factor}
	}

	debt.Principal = principal
	if err := s.debtStore.Save(ctx, tx, debt); err != nil {
		return err
	}

	if err := s.logTransaction(ctx, tx, core.ActionTypeMint, account, "", amount, nil); err != nil {
		return err
	}

	return s.syntheticService.Mint(ctx, account, amount)
}

// burn retires AUSD debt; no solvency check, repayment only improves the
// health factor.
func (s *vaultService) burn(ctx context.Context, tx *db.DB, account string, amount decimal.Decimal) error {
	amount = amount.Truncate(anchor.ValuePrecision)
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	debt, err := s.debtStore.Find(ctx, account)
	if err != nil {
		return err
	}

	if amount.GreaterThan(debt.Principal) {
		return core.ErrInsufficientBalance
	}

	debt.Principal = debt.Principal.Sub(amount)
	if err := s.debtStore.Save(ctx, tx, debt); err != nil {
		return err
	}

	if err := s.logTransaction(ctx, tx, core.ActionTypeBurn, account, "", amount, nil); err != nil {
		return err
	}

	return s.syntheticService.Burn(ctx, account, amount)
}

// Liquidate covers part of an unsafe account's debt and seizes the matching
// collateral plus bonus, paid directly to the liquidator. Direct transfer is
// deliberate: crediting the liquidator's own position would open a second
// implicit deposit path.
func (s *vaultService) Liquidate(ctx context.Context, liquidator, account, assetID string, debtToCover decimal.Decimal) (decimal.Decimal, error) {
	if err := s.enter(); err != nil {
		return decimal.Zero, err
	}
	defer s.exit()

	log := logger.FromContext(ctx).WithField("service", "vault")

	asset, ok := s.registry.Find(assetID)
	if !ok {
		return decimal.Zero, core.ErrUnsupportedAsset
	}

	debtToCover = debtToCover.Truncate(anchor.ValuePrecision)
	if !debtToCover.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	debt, err := s.debtStore.Find(ctx, account)
	if err != nil {
		return decimal.Zero, err
	}

	if debtToCover.GreaterThan(debt.Principal) {
		return decimal.Zero, core.ErrInsufficientBalance
	}

	starting, err := s.accountService.HealthFactor(ctx, account)
	if err != nil {
		return decimal.Zero, err
	}

	if starting.Safe() {
		return decimal.Zero, &core.HealthFactorError{Code: core.ErrHealthFactorOkay, Factor: starting}
	}

	collateralQty, err := s.accountService.FromUnitOfAccount(ctx, assetID, debtToCover)
	if err != nil {
		return decimal.Zero, err
	}

	seized, bonus := anchor.Seize(collateralQty, asset.Precision)

	position, err := s.positionStore.Find(ctx, account, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	// known structural limitation: a thin or concentrated position can make
	// full liquidation impossible; surfaced, not papered over
	if seized.GreaterThan(position.Quantity) {
		return decimal.Zero, core.ErrInsufficientCollateralToLiquidate
	}

	collateral, err := s.accountService.TotalCollateralValue(ctx, account)
	if err != nil {
		return decimal.Zero, err
	}

	seizedValue, err := s.accountService.ToUnitOfAccount(ctx, assetID, seized)
	if err != nil {
		return decimal.Zero, err
	}

	ending := anchor.HealthFactor(debt.Principal.Sub(debtToCover), collateral.Sub(seizedValue))
	if ending.Cmp(starting) < 0 {
		return decimal.Zero, core.ErrLiquidationIneffective
	}

	// the liquidator must itself be solvent after taking over the repayment
	callerFactor, err := s.accountService.HealthFactor(ctx, liquidator)
	if err != nil {
		return decimal.Zero, err
	}

	if !callerFactor.Safe() {
		return decimal.Zero, &core.HealthFactorError{Code: core.ErrBrokenHealthFactor, Factor: callerFactor}
	}

	err = s.db.Tx(func(tx *db.DB) error {
		position.Quantity = position.Quantity.Sub(seized)
		if err := s.positionStore.Save(ctx, tx, position); err != nil {
			return err
		}

		debt.Principal = debt.Principal.Sub(debtToCover)
		if err := s.debtStore.Save(ctx, tx, debt); err != nil {
			return err
		}

		extra := make(core.TransactionExtra)
		extra.Put(core.TransactionKeyLiquidator, liquidator)
		extra.Put(core.TransactionKeySeizedQuantity, seized)
		extra.Put(core.TransactionKeyBonusQuantity, bonus)
		extra.Put(core.TransactionKeyRepaidDebt, debtToCover)
		extra.Put(core.TransactionKeyHealthFactor, ending)
		if err := s.logTransaction(ctx, tx, core.ActionTypeLiquidate, account, assetID, seized, extra); err != nil {
			return err
		}

		if err := s.tokenService.Transfer(ctx, assetID, liquidator, seized); err != nil {
			return err
		}

		return s.syntheticService.Burn(ctx, liquidator, debtToCover)
	})
	if err != nil {
		return decimal.Zero, err
	}

	log.WithField("account", account).Infof("liquidated %s debt, seized %s %s", debtToCover, seized, asset.Symbol)

	return seized, nil
}

func (s *vaultService) logTransaction(ctx context.Context, tx *db.DB, action core.ActionType, account, assetID string, amount decimal.Decimal, extra core.TransactionExtra) error {
	transaction := &core.Transaction{
		TraceID: id.GenTraceID(),
		Action:  action,
		Account: account,
		AssetID: assetID,
		Amount:  amount,
	}

	if extra != nil {
		transaction.Data = extra.Format()
	}

	return s.transactionStore.Create(ctx, tx, transaction)
}
