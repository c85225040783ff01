package rest

import (
	"errors"
	"net/http"

	"anchor/core"
	"anchor/handler/render"

	"github.com/go-chi/chi"
	"github.com/spf13/cast"
)

func transactionsHandler(transactionStore core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fromID := cast.ToUint64(r.URL.Query().Get("from"))
		limit := cast.ToInt(r.URL.Query().Get("limit"))

		transactions, err := transactionStore.List(r.Context(), fromID, limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"transactions": transactions})
	}
}

func transactionHandler(transactionStore core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trace := chi.URLParam(r, "trace")

		transaction, err := transactionStore.FindByTraceID(r.Context(), trace)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if transaction.ID == 0 {
			render.NotFoundRequest(w, errors.New("transaction not found"))
			return
		}

		render.JSON(w, transaction)
	}
}
