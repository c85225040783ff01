package core

// Asset a registered collateral asset and its oracle binding
type Asset struct {
	AssetID   string `json:"asset_id"`
	Symbol    string `json:"symbol"`
	Precision int32  `json:"precision"`
	OracleID  string `json:"oracle_id"`
}

// AssetRegistry the immutable set of supported collateral assets. Built once
// at startup; the engine never mutates it.
type AssetRegistry struct {
	assets []*Asset
	index  map[string]*Asset
}

// NewAssetRegistry pairs assets with oracle ids by index, the way they are
// listed in the config file.
func NewAssetRegistry(assets []*Asset, oracleIDs []string) (*AssetRegistry, error) {
	if len(assets) == 0 || len(assets) != len(oracleIDs) {
		return nil, ErrConfigurationMismatch
	}

	r := &AssetRegistry{
		assets: make([]*Asset, 0, len(assets)),
		index:  make(map[string]*Asset, len(assets)),
	}

	for idx, asset := range assets {
		if asset.AssetID == "" || oracleIDs[idx] == "" {
			return nil, ErrConfigurationMismatch
		}

		if _, ok := r.index[asset.AssetID]; ok {
			return nil, ErrConfigurationMismatch
		}

		a := *asset
		a.OracleID = oracleIDs[idx]
		if a.Precision <= 0 {
			a.Precision = 8
		}

		r.assets = append(r.assets, &a)
		r.index[a.AssetID] = &a
	}

	return r, nil
}

// Find looks up a registered asset
func (r *AssetRegistry) Find(assetID string) (*Asset, bool) {
	asset, ok := r.index[assetID]
	return asset, ok
}

// All returns registered assets in registration order
func (r *AssetRegistry) All() []*Asset {
	return r.assets
}
