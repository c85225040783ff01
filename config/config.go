package config

import (
	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/store/db"
)

// Config anchor node config
type Config struct {
	DB        db.Config `json:"db"`
	Oracle    Oracle    `json:"oracle"`
	Token     Token     `json:"token"`
	Synthetic Synthetic `json:"synthetic"`
	Assets    []Asset   `json:"assets" valid:"required"`
}

// Oracle price feed config
type Oracle struct {
	Endpoint string `json:"endpoint" valid:"url,required"`
}

// Token collateral token ledger config
type Token struct {
	Endpoint string `json:"endpoint" valid:"url,required"`
	// VaultID the vault account on the token ledger that custodies
	// deposited collateral
	VaultID string `json:"vault_id" valid:"required"`
}

// Synthetic synthetic asset ledger config
type Synthetic struct {
	Endpoint string `json:"endpoint" valid:"url,required"`
	// AssetID the synthetic asset issued against collateral
	AssetID string `json:"asset_id" valid:"required"`
}

// Asset a supported collateral asset
type Asset struct {
	AssetID   string `json:"asset_id" valid:"required"`
	Symbol    string `json:"symbol" valid:"required"`
	Precision int32  `json:"precision"`
	OracleID  string `json:"oracle_id" valid:"required"`
}

// Validate validate config
func (c *Config) Validate() error {
	_, err := govalidator.ValidateStruct(c)
	return err
}
