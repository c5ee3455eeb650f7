package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one normalized statement transaction. Exactly one of
// Debit/Credit is positive; the other is zero.
type LedgerEntry struct {
	Date           time.Time
	Kind           DocumentKind
	DocumentNumber string
	Description    string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	Currency       Currency
	RunningBalance decimal.Decimal
}

// Amount is the entry's signed effect on the balance (debit minus credit).
func (e LedgerEntry) Amount() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

// Less orders entries by calendar date, then by document kind priority,
// then by document number. Same-day ordering must be stable across runs.
func (e LedgerEntry) Less(o LedgerEntry) bool {
	if !e.Date.Equal(o.Date) {
		return e.Date.Before(o.Date)
	}
	if e.Kind != o.Kind {
		return e.Kind.SortPriority() < o.Kind.SortPriority()
	}
	return e.DocumentNumber < o.DocumentNumber
}

// DateOf truncates a timestamp to its UTC calendar date. Ledger ordering
// ignores the time-of-day component.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
