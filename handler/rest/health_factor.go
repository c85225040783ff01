package rest

import (
	"net/http"

	"anchor/handler/param"
	"anchor/handler/render"
	"anchor/pkg/anchor"

	"github.com/shopspring/decimal"
)

// healthFactorHandler exposes the pure calculator so callers can simulate
// a position without touching any state.
func healthFactorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Debt       decimal.Decimal `json:"debt"`
			Collateral decimal.Decimal `json:"collateral"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, anchor.HealthFactor(params.Debt, params.Collateral))
	}
}
