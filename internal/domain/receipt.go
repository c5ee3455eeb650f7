package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReceiptStatus string

const (
	ReceiptStatusPending   ReceiptStatus = "pending"
	ReceiptStatusConfirmed ReceiptStatus = "confirmed"
	ReceiptStatusVoided    ReceiptStatus = "voided"
)

var ReceiptFinalizedStatuses = []ReceiptStatus{ReceiptStatusConfirmed}

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
)

type Receipt struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	InvoiceID   *uuid.UUID
	Number      string
	Description string
	Amount      decimal.Decimal
	Currency    Currency
	Method      PaymentMethod
	Status      ReceiptStatus
	ReceiptDate time.Time
	CreatedAt   time.Time
}
