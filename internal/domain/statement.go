package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementSummary aggregates the period entries plus the live
// pending-invoices snapshot. PendingInvoicesAmount is independent of the
// requested period: it is what the client owes on open invoices right now.
type StatementSummary struct {
	TotalDebits           decimal.Decimal
	TotalCredits          decimal.Decimal
	PendingInvoicesAmount decimal.Decimal
}

// Statement is a client account statement for a date range. It is a derived,
// reproducible projection over the client's finalized documents; it is never
// mutated or persisted.
type Statement struct {
	Client         ClientInfo
	PeriodStart    time.Time
	PeriodEnd      time.Time
	OpeningBalance decimal.Decimal
	FinalBalance   decimal.Decimal
	Entries        []LedgerEntry
	Summary        StatementSummary
	GeneratedAt    time.Time
}
