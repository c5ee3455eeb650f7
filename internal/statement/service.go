package statement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cargomoz/backoffice/internal/clock"
	"github.com/cargomoz/backoffice/internal/domain"
	"github.com/cargomoz/backoffice/internal/logging"
	"github.com/cargomoz/backoffice/internal/metrics"
)

type clientGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

// Request describes one statement to generate. Currency is an optional
// assertion: when set, it must match the client's currency.
type Request struct {
	ClientID    uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	Currency    domain.Currency
}

// Service assembles client metadata, ledger and summary into a Statement.
// It is stateless per invocation; concurrent calls share nothing mutable.
type Service struct {
	clients    clientGetter
	builder    *Builder
	summarizer *Summarizer
	clock      clock.Clock
}

func NewService(clients clientGetter, builder *Builder, summarizer *Summarizer, clk clock.Clock) *Service {
	return &Service{
		clients:    clients,
		builder:    builder,
		summarizer: summarizer,
		clock:      clk,
	}
}

// Generate builds the statement for the requested period. Any failure aborts
// the whole computation; a partial statement is never returned.
func (s *Service) Generate(ctx context.Context, req Request) (*domain.Statement, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveStatementGenerate(result, time.Since(start))
	}()

	if err := validateRequest(req); err != nil {
		result = metrics.ResultError
		return nil, fmt.Errorf("Generate: %w", err)
	}

	// One cutoff for every query. A document created between the history
	// and period fetches must not appear in one and not the other.
	asOf := s.clock.Now().UTC()

	client, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		result = metrics.ResultError
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("Generate: %w", domain.ErrClientNotFound)
		}
		return nil, fmt.Errorf("Generate: %w", err)
	}

	if req.Currency != "" && req.Currency != client.Currency {
		result = metrics.ResultError
		return nil, fmt.Errorf("Generate: requested %s, client account is %s: %w",
			req.Currency, client.Currency, domain.ErrCurrencyMismatch)
	}

	led, err := s.builder.Build(ctx, client.ID, client.Currency, req.PeriodStart, req.PeriodEnd, asOf)
	if err != nil {
		result = metrics.ResultError
		return nil, fmt.Errorf("Generate: %w", err)
	}

	summary, final, err := s.summarizer.Summarize(ctx, client.ID, led, asOf)
	if err != nil {
		result = metrics.ResultError
		if errors.Is(err, domain.ErrInvariantViolation) {
			logging.FromContext(ctx).Error("statement invariant violated",
				"client_id", client.ID,
				"period_start", req.PeriodStart,
				"period_end", req.PeriodEnd,
				"error", err,
			)
		}
		return nil, fmt.Errorf("Generate: %w", err)
	}

	stmt := &domain.Statement{
		Client:         client.Info(),
		PeriodStart:    domain.DateOf(req.PeriodStart),
		PeriodEnd:      domain.DateOf(req.PeriodEnd),
		OpeningBalance: led.OpeningBalance,
		FinalBalance:   final,
		Entries:        led.Entries,
		Summary:        summary,
		GeneratedAt:    asOf,
	}

	logging.FromContext(ctx).Info("statement generated",
		"client_id", client.ID,
		"period_start", stmt.PeriodStart.Format(time.DateOnly),
		"period_end", stmt.PeriodEnd.Format(time.DateOnly),
		"entries", len(stmt.Entries),
		"final_balance", stmt.FinalBalance,
	)

	return stmt, nil
}

func validateRequest(req Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("validateRequest: client id required: %w", domain.ErrInvalidRequest)
	}
	if req.PeriodStart.IsZero() || req.PeriodEnd.IsZero() {
		return fmt.Errorf("validateRequest: period bounds required: %w", domain.ErrInvalidRequest)
	}
	if domain.DateOf(req.PeriodEnd).Before(domain.DateOf(req.PeriodStart)) {
		return fmt.Errorf("validateRequest: %w", domain.ErrInvalidDateRange)
	}
	if req.Currency != "" && !req.Currency.IsValid() {
		return fmt.Errorf("validateRequest: %q: %w", req.Currency, domain.ErrInvalidCurrency)
	}
	return nil
}
