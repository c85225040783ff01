package cmd

import (
	"sync"

	"anchor/worker"
	"anchor/worker/priceoracle"
	"anchor/worker/sentinel"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "anchor job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		registry := provideAssetRegistry()
		positionStore := providePositionStore(database)
		debtStore := provideDebtStore(database)
		priceStore := providePriceStore(database)
		propertyStore := providePropertyStore(database)

		oracleService := provideOracleService(registry, priceStore)
		accountService := provideAccountService(registry, positionStore, debtStore, oracleService)

		workers := []worker.Worker{
			priceoracle.New(registry, priceStore, oracleService, propertyStore),
			sentinel.New(debtStore, accountService),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				_ = worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
