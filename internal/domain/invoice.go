package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusIssued        InvoiceStatus = "issued"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// InvoiceFinalizedStatuses are the statuses that affect the client ledger.
// Drafts and cancelled invoices never reach a statement.
var InvoiceFinalizedStatuses = []InvoiceStatus{
	InvoiceStatusIssued,
	InvoiceStatusPartiallyPaid,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
}

// InvoiceUnpaidStatuses feed the pending-invoices advisory on statements.
var InvoiceUnpaidStatuses = []InvoiceStatus{
	InvoiceStatusIssued,
	InvoiceStatusPartiallyPaid,
	InvoiceStatusOverdue,
}

type Invoice struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	Number      string
	Description string
	Total       decimal.Decimal
	AmountPaid  decimal.Decimal
	Currency    Currency
	Status      InvoiceStatus
	IssueDate   time.Time
	DueDate     *time.Time
	CreatedAt   time.Time
}

// Outstanding is the unpaid remainder of the invoice total.
func (i *Invoice) Outstanding() decimal.Decimal {
	return i.Total.Sub(i.AmountPaid)
}
