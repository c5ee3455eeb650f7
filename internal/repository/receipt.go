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

const receiptColumns = `id, client_id, invoice_id, number, description, amount,
	currency, method, status, receipt_date, created_at`

type ReceiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

// ListFinalized returns confirmed receipts dated within [from, to], restricted
// to rows created no later than asOf.
func (r *ReceiptRepository) ListFinalized(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.Receipt, error) {
	statuses := make([]string, len(domain.ReceiptFinalizedStatuses))
	for i, s := range domain.ReceiptFinalizedStatuses {
		statuses[i] = string(s)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+receiptColumns+` FROM receipts
		WHERE client_id = $1
		  AND receipt_date >= $2 AND receipt_date <= $3
		  AND created_at <= $4
		  AND status = ANY($5)
		ORDER BY receipt_date, number`,
		clientID, from, to, asOf, pq.Array(statuses),
	)
	if err != nil {
		return nil, fmt.Errorf("ListFinalized: %w", err)
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("ListFinalized: scan: %w", err)
		}
		receipts = append(receipts, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFinalized: rows: %w", err)
	}
	return receipts, nil
}

func scanReceipt(s scanner) (*domain.Receipt, error) {
	var rec domain.Receipt
	err := s.Scan(
		&rec.ID, &rec.ClientID, &rec.InvoiceID, &rec.Number, &rec.Description, &rec.Amount,
		&rec.Currency, &rec.Method, &rec.Status, &rec.ReceiptDate, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
