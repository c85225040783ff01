package position

import (
	"context"

	"anchor/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type positionStore struct {
	db *db.DB
}

// New new position store
func New(db *db.DB) core.IPositionStore {
	return &positionStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Position{})
		if err := tx.AutoMigrate(core.Position{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *positionStore) Save(ctx context.Context, tx *db.DB, position *core.Position) error {
	if position.ID == 0 {
		return tx.Update().Where("account=? and asset_id=?", position.Account, position.AssetID).FirstOrCreate(position).Error
	}

	version := position.Version
	position.Version++
	updates := tx.Update().Model(core.Position{}).
		Where("account=? and asset_id=? and version=?", position.Account, position.AssetID, version).
		Updates(map[string]interface{}{
			"quantity": position.Quantity,
			"version":  position.Version,
		})
	if updates.Error != nil {
		return updates.Error
	}

	if updates.RowsAffected == 0 {
		return core.ErrUnknown
	}

	return nil
}

func (s *positionStore) Find(ctx context.Context, account, assetID string) (*core.Position, error) {
	var position core.Position
	if err := s.db.View().Where("account=? and asset_id=?", account, assetID).First(&position).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.Position{Account: account, AssetID: assetID}, nil
		}

		return nil, err
	}

	return &position, nil
}

func (s *positionStore) FindByAccount(ctx context.Context, account string) ([]*core.Position, error) {
	var positions []*core.Position
	if err := s.db.View().Where("account=?", account).Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}

func (s *positionStore) All(ctx context.Context) ([]*core.Position, error) {
	var positions []*core.Position
	if err := s.db.View().Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}
