package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cargomoz/backoffice/internal/domain"
)

func SeedClient(t *testing.T, db *sql.DB, name, email string, currency domain.Currency) *domain.Client {
	t.Helper()

	c := &domain.Client{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     "+258 84 000 0000",
		Currency:  currency,
		Status:    domain.ClientStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO clients (id, name, email, phone, currency, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Email, c.Phone, c.Currency, c.Status, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed client %s: %v", name, err)
	}
	return c
}

func SeedInvoice(t *testing.T, db *sql.DB, clientID uuid.UUID, number string, total decimal.Decimal, currency domain.Currency, status domain.InvoiceStatus, issueDate time.Time) *domain.Invoice {
	t.Helper()

	inv := &domain.Invoice{
		ID:          uuid.New(),
		ClientID:    clientID,
		Number:      number,
		Description: "Freight services " + number,
		Total:       total,
		AmountPaid:  decimal.Zero,
		Currency:    currency,
		Status:      status,
		IssueDate:   issueDate,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO invoices (id, client_id, number, description, total, amount_paid, currency, status, issue_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		inv.ID, inv.ClientID, inv.Number, inv.Description, inv.Total, inv.AmountPaid,
		inv.Currency, inv.Status, inv.IssueDate, inv.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed invoice %s: %v", number, err)
	}
	return inv
}

func SeedDebitNote(t *testing.T, db *sql.DB, clientID uuid.UUID, number string, total decimal.Decimal, currency domain.Currency, status domain.DebitNoteStatus, issueDate time.Time) *domain.DebitNote {
	t.Helper()

	n := &domain.DebitNote{
		ID:          uuid.New(),
		ClientID:    clientID,
		Number:      number,
		Description: "Additional charges " + number,
		Total:       total,
		Currency:    currency,
		Status:      status,
		IssueDate:   issueDate,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO debit_notes (id, client_id, number, description, total, currency, status, issue_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		n.ID, n.ClientID, n.Number, n.Description, n.Total, n.Currency, n.Status, n.IssueDate, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed debit note %s: %v", number, err)
	}
	return n
}

func SeedReceipt(t *testing.T, db *sql.DB, clientID uuid.UUID, number string, amount decimal.Decimal, currency domain.Currency, status domain.ReceiptStatus, receiptDate time.Time) *domain.Receipt {
	t.Helper()

	rec := &domain.Receipt{
		ID:          uuid.New(),
		ClientID:    clientID,
		Number:      number,
		Description: "Payment received " + number,
		Amount:      amount,
		Currency:    currency,
		Method:      domain.PaymentMethodBankTransfer,
		Status:      status,
		ReceiptDate: receiptDate,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO receipts (id, client_id, number, description, amount, currency, method, status, receipt_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.ClientID, rec.Number, rec.Description, rec.Amount, rec.Currency,
		rec.Method, rec.Status, rec.ReceiptDate, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed receipt %s: %v", number, err)
	}
	return rec
}

func SeedCreditNote(t *testing.T, db *sql.DB, clientID uuid.UUID, number string, total decimal.Decimal, currency domain.Currency, status domain.CreditNoteStatus, issueDate time.Time) *domain.CreditNote {
	t.Helper()

	n := &domain.CreditNote{
		ID:          uuid.New(),
		ClientID:    clientID,
		Number:      number,
		Description: "Credit adjustment " + number,
		Total:       total,
		Currency:    currency,
		Status:      status,
		IssueDate:   issueDate,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO credit_notes (id, client_id, number, description, total, currency, status, issue_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		n.ID, n.ClientID, n.Number, n.Description, n.Total, n.Currency, n.Status, n.IssueDate, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed credit note %s: %v", number, err)
	}
	return n
}

// MarkInvoicePaid records a payment against a seeded invoice.
func MarkInvoicePaid(t *testing.T, db *sql.DB, invoiceID uuid.UUID, amountPaid decimal.Decimal, status domain.InvoiceStatus) {
	t.Helper()

	_, err := db.Exec(
		`UPDATE invoices SET amount_paid = $1, status = $2 WHERE id = $3`,
		amountPaid, status, invoiceID,
	)
	if err != nil {
		t.Fatalf("mark invoice %s paid: %v", invoiceID, err)
	}
}
