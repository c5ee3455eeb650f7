package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DebitNoteStatus string

const (
	DebitNoteStatusDraft     DebitNoteStatus = "draft"
	DebitNoteStatusIssued    DebitNoteStatus = "issued"
	DebitNoteStatusCancelled DebitNoteStatus = "cancelled"
)

var DebitNoteFinalizedStatuses = []DebitNoteStatus{DebitNoteStatusIssued}

type DebitNote struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	InvoiceID   *uuid.UUID
	Number      string
	Description string
	Total       decimal.Decimal
	Currency    Currency
	Status      DebitNoteStatus
	IssueDate   time.Time
	CreatedAt   time.Time
}
