package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/render"
	"anchor/handler/views"
)

func assetsHandler(registry *core.AssetRegistry, oracleService core.IOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		assets := make([]views.Asset, 0, len(registry.All()))
		for _, asset := range registry.All() {
			view := views.Asset{Asset: *asset}

			// a missing or stale price hides the quote, not the asset
			if data, err := oracleService.GetPrice(ctx, asset.AssetID); err == nil {
				view.Price = data.Price
				observedAt := data.ObservedAt
				view.ObservedAt = &observedAt
			}

			assets = append(assets, view)
		}

		render.JSON(w, render.H{"assets": assets})
	}
}
