package cmd

import (
	"anchor/core"
	"anchor/store/debt"
	"anchor/store/position"
	"anchor/store/price"
	"anchor/store/transaction"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func providePositionStore(db *db.DB) core.IPositionStore {
	return position.New(db)
}

func provideDebtStore(db *db.DB) core.IDebtStore {
	return debt.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return price.New(db)
}

func provideTransactionStore(db *db.DB) core.ITransactionStore {
	return transaction.New(db)
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}
