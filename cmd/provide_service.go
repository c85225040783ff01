package cmd

import (
	"anchor/core"
	"anchor/service/account"
	"anchor/service/oracle"
	"anchor/service/token"
	"anchor/service/vault"
)

func provideAssetRegistry() *core.AssetRegistry {
	assets := make([]*core.Asset, 0, len(cfg.Assets))
	oracleIDs := make([]string, 0, len(cfg.Assets))
	for _, a := range cfg.Assets {
		assets = append(assets, &core.Asset{
			AssetID:   a.AssetID,
			Symbol:    a.Symbol,
			Precision: a.Precision,
			OracleID:  a.OracleID,
		})
		oracleIDs = append(oracleIDs, a.OracleID)
	}

	registry, err := core.NewAssetRegistry(assets, oracleIDs)
	if err != nil {
		panic(err)
	}

	return registry
}

func provideOracleService(registry *core.AssetRegistry, priceStore core.IPriceStore) core.IOracleService {
	return oracle.New(oracle.Config{
		Endpoint: cfg.Oracle.Endpoint,
	}, registry, priceStore)
}

func provideTokenService() core.ITokenService {
	return token.New(token.Config{
		Endpoint: cfg.Token.Endpoint,
		VaultID:  cfg.Token.VaultID,
	})
}

func provideSyntheticService() core.ISyntheticService {
	return token.NewSynthetic(token.SyntheticConfig{
		Endpoint: cfg.Synthetic.Endpoint,
		AssetID:  cfg.Synthetic.AssetID,
	})
}

func provideAccountService(
	registry *core.AssetRegistry,
	positionStore core.IPositionStore,
	debtStore core.IDebtStore,
	oracleService core.IOracleService,
) core.IAccountService {
	return account.New(registry, positionStore, debtStore, oracleService)
}

func provideVaultService(
	database core.Database,
	registry *core.AssetRegistry,
	positionStore core.IPositionStore,
	debtStore core.IDebtStore,
	transactionStore core.ITransactionStore,
	accountService core.IAccountService,
	tokenService core.ITokenService,
	syntheticService core.ISyntheticService,
) core.IEngineService {
	return vault.New(
		database,
		registry,
		positionStore,
		debtStore,
		transactionStore,
		accountService,
		tokenService,
		syntheticService,
	)
}
