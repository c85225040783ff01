package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/render"

	"github.com/go-chi/chi"
)

func accountHandler(accountService core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := chi.URLParam(r, "account")

		summary, err := accountService.Summary(r.Context(), account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, summary)
	}
}
