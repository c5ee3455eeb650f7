package statement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cargomoz/backoffice/internal/domain"
)

type generator interface {
	Generate(ctx context.Context, req Request) (*domain.Statement, error)
}

// BatchResult is the outcome of one client's statement in a batch run.
type BatchResult struct {
	ClientID  uuid.UUID
	Statement *domain.Statement
	Err       error
}

// BatchRunner generates statements for many clients in parallel. Statements
// for different clients are fully independent, so the only bound is the
// worker limit, sized to the database connection budget.
type BatchRunner struct {
	svc     generator
	workers int
}

func NewBatchRunner(svc generator, workers int) *BatchRunner {
	if workers < 1 {
		workers = 1
	}
	return &BatchRunner{svc: svc, workers: workers}
}

// Run generates one statement per client. A failing client is reported in its
// BatchResult without aborting the rest of the batch.
func (r *BatchRunner) Run(ctx context.Context, clientIDs []uuid.UUID, periodStart, periodEnd time.Time) []BatchResult {
	results := make([]BatchResult, len(clientIDs))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, id := range clientIDs {
		g.Go(func() error {
			stmt, err := r.svc.Generate(ctx, Request{
				ClientID:    id,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
			})
			results[i] = BatchResult{ClientID: id, Statement: stmt, Err: err}
			return nil
		})
	}
	g.Wait()

	return results
}
