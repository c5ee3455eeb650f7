package statement

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/cargomoz/backoffice/internal/domain"
)

// Ledger is the Builder's output: the balance carried into the period and the
// ordered entries with running balances applied.
type Ledger struct {
	OpeningBalance decimal.Decimal
	Entries        []domain.LedgerEntry
}

// Builder merges all document sources into a single chronological ledger.
type Builder struct {
	sources []DocumentSource
}

func NewBuilder(sources ...DocumentSource) *Builder {
	return &Builder{sources: sources}
}

// Build computes the opening balance from every finalized document dated
// strictly before periodStart, then the ordered running-balance entries for
// [periodStart, periodEnd]. Both passes are bounded by the same asOf cutoff;
// the per-source queries run concurrently but the result is fully determined
// by the sort rule, never by completion order.
func (b *Builder) Build(ctx context.Context, clientID uuid.UUID, currency domain.Currency, periodStart, periodEnd, asOf time.Time) (*Ledger, error) {
	periodStart = domain.DateOf(periodStart)
	periodEnd = domain.DateOf(periodEnd)
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("Build: %w", domain.ErrInvalidDateRange)
	}

	historyEnd := periodStart.AddDate(0, 0, -1)

	history := make([][]domain.LedgerEntry, len(b.sources))
	period := make([][]domain.LedgerEntry, len(b.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range b.sources {
		g.Go(func() error {
			entries, err := src.Fetch(gctx, clientID, time.Time{}, historyEnd, asOf)
			if err != nil {
				return fmt.Errorf("fetch %s history: %w", src.Kind(), errors.Join(domain.ErrSourceUnavailable, err))
			}
			history[i] = entries
			return nil
		})
		g.Go(func() error {
			entries, err := src.Fetch(gctx, clientID, periodStart, periodEnd, asOf)
			if err != nil {
				return fmt.Errorf("fetch %s period: %w", src.Kind(), errors.Join(domain.ErrSourceUnavailable, err))
			}
			period[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	opening := decimal.Zero
	for _, batch := range history {
		for _, e := range batch {
			if e.Currency != currency {
				return nil, fmt.Errorf("Build: %s %s is %s, statement is %s: %w",
					e.Kind, e.DocumentNumber, e.Currency, currency, domain.ErrCurrencyMismatch)
			}
			opening = opening.Add(e.Amount())
		}
	}

	var entries []domain.LedgerEntry
	for _, batch := range period {
		for _, e := range batch {
			if e.Currency != currency {
				return nil, fmt.Errorf("Build: %s %s is %s, statement is %s: %w",
					e.Kind, e.DocumentNumber, e.Currency, currency, domain.ErrCurrencyMismatch)
			}
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Less(entries[j]) })

	running := opening
	for i := range entries {
		running = running.Add(entries[i].Amount())
		entries[i].RunningBalance = running
	}

	return &Ledger{OpeningBalance: opening, Entries: entries}, nil
}
