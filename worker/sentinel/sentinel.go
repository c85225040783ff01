package sentinel

import (
	"context"
	"time"

	"anchor/core"
	"anchor/worker"

	"github.com/fox-one/pkg/logger"
)

// Worker liquidation sentinel: scans every indebted account and flags the
// ones below the minimum health factor so keepers can act on them.
type Worker struct {
	worker.TickWorker
	DebtStore      core.IDebtStore
	AccountService core.IAccountService
}

// New new sentinel worker
func New(debtStore core.IDebtStore, accountService core.IAccountService) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Delay:    time.Minute,
			ErrDelay: time.Minute,
		},
		DebtStore:      debtStore,
		AccountService: accountService,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "sentinel")
	ctx = logger.WithContext(ctx, log)

	debts, err := w.DebtStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("debts.All")
		return err
	}

	var flagged int
	for _, debt := range debts {
		if !debt.Principal.IsPositive() {
			continue
		}

		factor, err := w.AccountService.HealthFactor(ctx, debt.Account)
		if err != nil {
			// a stale oracle blocks judgement on every account alike
			log.WithError(err).Errorln("health factor", debt.Account)
			return err
		}

		if !factor.Safe() {
			flagged++
			log.WithField("account", debt.Account).
				WithField("health_factor", factor.String()).
				Warnln("account liquidatable")
		}
	}

	if flagged > 0 {
		log.Infof("%d of %d indebted accounts below minimum health factor", flagged, len(debts))
	}

	return nil
}
