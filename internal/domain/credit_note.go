package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditNoteStatus string

const (
	CreditNoteStatusDraft     CreditNoteStatus = "draft"
	CreditNoteStatusConfirmed CreditNoteStatus = "confirmed"
	CreditNoteStatusVoid      CreditNoteStatus = "void"
)

var CreditNoteFinalizedStatuses = []CreditNoteStatus{CreditNoteStatusConfirmed}

type CreditNote struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	InvoiceID   *uuid.UUID
	Number      string
	Description string
	Total       decimal.Decimal
	Currency    Currency
	Status      CreditNoteStatus
	IssueDate   time.Time
	CreatedAt   time.Time
}
