package priceoracle

import (
	"context"
	"strconv"
	"time"

	"anchor/core"
	"anchor/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"golang.org/x/sync/errgroup"
)

const checkpointKey = "price_oracle_checkpoint"

// Worker price oracle worker: pulls fresh tickers for every registered
// asset and persists them for the oracle adapter to read.
type Worker struct {
	worker.TickWorker
	Registry      *core.AssetRegistry
	PriceStore    core.IPriceStore
	OracleService core.IOracleService
	PropertyStore property.Store
}

// New new price oracle worker
func New(registry *core.AssetRegistry, priceStore core.IPriceStore, oracleService core.IOracleService, propertyStore property.Store) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Delay:    5 * time.Minute,
			ErrDelay: time.Minute,
		},
		Registry:      registry,
		PriceStore:    priceStore,
		OracleService: oracleService,
		PropertyStore: propertyStore,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "priceoracle")
	ctx = logger.WithContext(ctx, log)

	now := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for _, asset := range w.Registry.All() {
		asset := asset
		g.Go(func() error {
			ticker, err := w.OracleService.PullPriceTicker(ctx, asset.OracleID, now)
			if err != nil {
				log.WithError(err).Errorln("pull price ticker", asset.Symbol)
				return err
			}

			if !ticker.Price.IsPositive() {
				log.Errorln("invalid ticker price:", asset.Symbol, ":", ticker.Price)
				return nil
			}

			observedAt := ticker.UpdatedAt
			if observedAt.IsZero() {
				observedAt = now
			}

			return w.PriceStore.Save(ctx, &core.Price{
				AssetID:    asset.AssetID,
				Price:      ticker.Price,
				ObservedAt: observedAt,
			})
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.PropertyStore.Save(ctx, checkpointKey, strconv.FormatInt(now.Unix(), 10))
}
