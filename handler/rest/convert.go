package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/param"
	"anchor/handler/render"

	"github.com/shopspring/decimal"
)

func convertHandler(accountService core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID  string          `json:"asset"`
			Quantity decimal.Decimal `json:"quantity"`
			Value    decimal.Decimal `json:"value"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		ctx := r.Context()

		if params.Quantity.IsPositive() {
			value, err := accountService.ToUnitOfAccount(ctx, params.AssetID, params.Quantity)
			if err != nil {
				render.BadRequest(w, err)
				return
			}

			render.JSON(w, render.H{"asset_id": params.AssetID, "quantity": params.Quantity, "value": value})
			return
		}

		if params.Value.IsPositive() {
			quantity, err := accountService.FromUnitOfAccount(ctx, params.AssetID, params.Value)
			if err != nil {
				render.BadRequest(w, err)
				return
			}

			render.JSON(w, render.H{"asset_id": params.AssetID, "quantity": quantity, "value": params.Value})
			return
		}

		render.BadRequest(w, core.ErrInvalidAmount)
	}
}
