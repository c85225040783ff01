package price

import (
	"context"

	"anchor/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type priceStore struct {
	db *db.DB
}

// New new price store
func New(db *db.DB) core.IPriceStore {
	return &priceStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Price{})
		if err := tx.AutoMigrate(core.Price{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Save upserts the latest observation for the asset.
func (s *priceStore) Save(ctx context.Context, price *core.Price) error {
	var existing core.Price
	if err := s.db.View().Where("asset_id=?", price.AssetID).First(&existing).Error; err != nil {
		if store.IsErrNotFound(err) {
			return s.db.Update().Create(price).Error
		}

		return err
	}

	version := existing.Version
	return s.db.Update().Model(core.Price{}).
		Where("asset_id=? and version=?", price.AssetID, version).
		Updates(map[string]interface{}{
			"price":       price.Price,
			"observed_at": price.ObservedAt,
			"version":     version + 1,
		}).Error
}

func (s *priceStore) Find(ctx context.Context, assetID string) (*core.Price, bool, error) {
	var price core.Price
	if err := s.db.View().Where("asset_id=?", assetID).First(&price).Error; err != nil {
		if store.IsErrNotFound(err) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return &price, true, nil
}
