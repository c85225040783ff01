package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/param"
	"anchor/handler/render"

	"github.com/shopspring/decimal"
)

type vaultParams struct {
	Account  string          `json:"account"`
	AssetID  string          `json:"asset"`
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

func depositHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params vaultParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.Deposit(r.Context(), params.Account, params.AssetID, params.Quantity); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func redeemHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params vaultParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.Redeem(r.Context(), params.Account, params.AssetID, params.Quantity); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func mintHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params vaultParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.Mint(r.Context(), params.Account, params.Amount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func burnHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params vaultParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.Burn(r.Context(), params.Account, params.Amount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func depositAndMintHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params vaultParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.DepositAndMint(r.Context(), params.Account, params.AssetID, params.Quantity, params.Amount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func redeemAndBurnHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params vaultParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.RedeemAndBurn(r.Context(), params.Account, params.AssetID, params.Quantity, params.Amount); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func liquidateHandler(engine core.IEngineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Liquidator string          `json:"liquidator"`
			Account    string          `json:"account"`
			AssetID    string          `json:"asset"`
			Amount     decimal.Decimal `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		seized, err := engine.Liquidate(r.Context(), params.Liquidator, params.Account, params.AssetID, params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"seized": seized})
	}
}
