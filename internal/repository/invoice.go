package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cargomoz/backoffice/internal/domain"
)

const invoiceColumns = `id, client_id, number, description, total, amount_paid,
	currency, status, issue_date, due_date, created_at`

type InvoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// ListFinalized returns ledger-affecting invoices dated within [from, to],
// restricted to rows created no later than asOf. The asOf bound keeps the
// opening-balance query and the period query consistent with each other.
func (r *InvoiceRepository) ListFinalized(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		WHERE client_id = $1
		  AND issue_date >= $2 AND issue_date <= $3
		  AND created_at <= $4
		  AND status = ANY($5)
		ORDER BY issue_date, number`,
		clientID, from, to, asOf, pq.Array(invoiceStatusStrings(domain.InvoiceFinalizedStatuses)),
	)
	if err != nil {
		return nil, fmt.Errorf("ListFinalized: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("ListFinalized: scan: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFinalized: rows: %w", err)
	}
	return invoices, nil
}

// ListUnpaid returns every invoice with an outstanding balance as of the
// snapshot instant, regardless of issue date. It backs the pending-invoices
// advisory on statements, not the period totals.
func (r *InvoiceRepository) ListUnpaid(ctx context.Context, clientID uuid.UUID, asOf time.Time) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		WHERE client_id = $1
		  AND created_at <= $2
		  AND status = ANY($3)
		ORDER BY issue_date, number`,
		clientID, asOf, pq.Array(invoiceStatusStrings(domain.InvoiceUnpaidStatuses)),
	)
	if err != nil {
		return nil, fmt.Errorf("ListUnpaid: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUnpaid: scan: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUnpaid: rows: %w", err)
	}
	return invoices, nil
}

func invoiceStatusStrings(statuses []domain.InvoiceStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func scanInvoice(s scanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := s.Scan(
		&inv.ID, &inv.ClientID, &inv.Number, &inv.Description,
		&inv.Total, &inv.AmountPaid,
		&inv.Currency, &inv.Status, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
