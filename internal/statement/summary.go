package statement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cargomoz/backoffice/internal/domain"
)

type unpaidInvoiceLister interface {
	ListUnpaid(ctx context.Context, clientID uuid.UUID, asOf time.Time) ([]domain.Invoice, error)
}

// Summarizer computes period totals and the live pending-invoices snapshot.
type Summarizer struct {
	invoices unpaidInvoiceLister
}

func NewSummarizer(invoices unpaidInvoiceLister) *Summarizer {
	return &Summarizer{invoices: invoices}
}

// Summarize returns the statement summary and the final balance. The final
// balance must reconcile with the last running balance; a mismatch is a
// data-integrity bug and is reported, never corrected.
func (s *Summarizer) Summarize(ctx context.Context, clientID uuid.UUID, led *Ledger, asOf time.Time) (domain.StatementSummary, decimal.Decimal, error) {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, e := range led.Entries {
		totalDebits = totalDebits.Add(e.Debit)
		totalCredits = totalCredits.Add(e.Credit)
	}

	final := led.OpeningBalance.Add(totalDebits).Sub(totalCredits)
	if n := len(led.Entries); n > 0 && !final.Equal(led.Entries[n-1].RunningBalance) {
		return domain.StatementSummary{}, decimal.Zero,
			fmt.Errorf("Summarize: final balance %s does not match running balance %s: %w",
				final, led.Entries[n-1].RunningBalance, domain.ErrInvariantViolation)
	}

	unpaid, err := s.invoices.ListUnpaid(ctx, clientID, asOf)
	if err != nil {
		return domain.StatementSummary{}, decimal.Zero,
			fmt.Errorf("Summarize: list unpaid invoices: %w", errors.Join(domain.ErrSourceUnavailable, err))
	}
	pending := decimal.Zero
	for i := range unpaid {
		pending = pending.Add(unpaid[i].Outstanding())
	}

	summary := domain.StatementSummary{
		TotalDebits:           totalDebits,
		TotalCredits:          totalCredits,
		PendingInvoicesAmount: pending,
	}
	return summary, final, nil
}
