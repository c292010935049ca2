package jobs

import (
	"context"
	"sync"
	"time"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultIntegritySpec runs the integrity check every five minutes.
const DefaultIntegritySpec = "0 */5 * * * *"

const integrityRunTimeout = 30 * time.Second

// MismatchFinder finds open orders whose stored total drifted from their lines.
type MismatchFinder interface {
	Handle(ctx context.Context, query queries.GetOrderTotalMismatchesQuery) ([]queries.OrderTotalMismatchView, error)
}

// OrderTotalIntegrityJob periodically recomputes the totals of open orders
// and logs every order whose stored total differs. It never writes.
type OrderTotalIntegrityJob struct {
	finder MismatchFinder
	spec   string
	cron   *cron.Cron
	logger *zap.Logger

	mu      sync.Mutex
	started bool
}

// NewOrderTotalIntegrityJob creates the job. An empty spec means DefaultIntegritySpec.
func NewOrderTotalIntegrityJob(finder MismatchFinder, spec string, logger *zap.Logger) *OrderTotalIntegrityJob {
	if spec == "" {
		spec = DefaultIntegritySpec
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderTotalIntegrityJob{
		finder: finder,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With(zap.String("component", "order_total_integrity_job")),
	}
}

// Start schedules the job. It fails on a malformed cron expression.
func (j *OrderTotalIntegrityJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.started {
		return nil
	}

	_, err := j.cron.AddFunc(j.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), integrityRunTimeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.started = true
	j.logger.Info("order total integrity job started", zap.String("spec", j.spec))
	return nil
}

// Run performs one check and returns the number of mismatches found.
func (j *OrderTotalIntegrityJob) Run(ctx context.Context) int {
	mismatches, err := j.finder.Handle(ctx, queries.NewGetOrderTotalMismatchesQuery())
	if err != nil {
		j.logger.Error("order total integrity check failed", zap.Error(err))
		return 0
	}

	for _, m := range mismatches {
		j.logger.Warn("order total does not match its items",
			zap.String("orderId", m.OrderID.String()),
			zap.String("status", m.Status),
			zap.String("storedTotal", m.Stored.StringFixed(2)),
			zap.String("computedTotal", m.Recomputed.StringFixed(2)),
		)
	}

	return len(mismatches)
}

// Stop unschedules the job and waits for a running check to finish.
func (j *OrderTotalIntegrityJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.started {
		return
	}

	<-j.cron.Stop().Done()
	j.started = false
	j.logger.Info("order total integrity job stopped")
}
