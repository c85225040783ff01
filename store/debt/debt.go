package debt

import (
	"context"

	"anchor/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type debtStore struct {
	db *db.DB
}

// New new debt store
func New(db *db.DB) core.IDebtStore {
	return &debtStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Debt{})
		if err := tx.AutoMigrate(core.Debt{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *debtStore) Save(ctx context.Context, tx *db.DB, debt *core.Debt) error {
	if debt.ID == 0 {
		return tx.Update().Where("account=?", debt.Account).FirstOrCreate(debt).Error
	}

	version := debt.Version
	debt.Version++
	updates := tx.Update().Model(core.Debt{}).
		Where("account=? and version=?", debt.Account, version).
		Updates(map[string]interface{}{
			"principal": debt.Principal,
			"version":   debt.Version,
		})
	if updates.Error != nil {
		return updates.Error
	}

	if updates.RowsAffected == 0 {
		return core.ErrUnknown
	}

	return nil
}

func (s *debtStore) Find(ctx context.Context, account string) (*core.Debt, error) {
	var debt core.Debt
	if err := s.db.View().Where("account=?", account).First(&debt).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.Debt{Account: account}, nil
		}

		return nil, err
	}

	return &debt, nil
}

func (s *debtStore) All(ctx context.Context) ([]*core.Debt, error) {
	var debts []*core.Debt
	if err := s.db.View().Find(&debts).Error; err != nil {
		return nil, err
	}

	return debts, nil
}
