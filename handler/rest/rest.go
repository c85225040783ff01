package rest

import (
	"errors"
	"net/http"

	"anchor/core"
	"anchor/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	registry *core.AssetRegistry,
	accountService core.IAccountService,
	oracleService core.IOracleService,
	transactionStore core.ITransactionStore,
	engineService core.IEngineService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/accounts/{account}", accountHandler(accountService))
	router.Get("/assets", assetsHandler(registry, oracleService))
	router.Get("/health-factor", healthFactorHandler())
	router.Get("/convert", convertHandler(accountService))
	router.Get("/transactions", transactionsHandler(transactionStore))
	router.Get("/transactions/{trace}", transactionHandler(transactionStore))

	router.Post("/deposit", depositHandler(engineService))
	router.Post("/redeem", redeemHandler(engineService))
	router.Post("/mint", mintHandler(engineService))
	router.Post("/burn", burnHandler(engineService))
	router.Post("/deposit-and-mint", depositAndMintHandler(engineService))
	router.Post("/redeem-and-burn", redeemAndBurnHandler(engineService))
	router.Post("/liquidate", liquidateHandler(engineService))

	return router
}
