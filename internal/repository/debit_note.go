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

const debitNoteColumns = `id, client_id, invoice_id, number, description, total,
	currency, status, issue_date, created_at`

type DebitNoteRepository struct {
	db *sql.DB
}

func NewDebitNoteRepository(db *sql.DB) *DebitNoteRepository {
	return &DebitNoteRepository{db: db}
}

// ListFinalized returns issued debit notes dated within [from, to], restricted
// to rows created no later than asOf.
func (r *DebitNoteRepository) ListFinalized(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.DebitNote, error) {
	statuses := make([]string, len(domain.DebitNoteFinalizedStatuses))
	for i, s := range domain.DebitNoteFinalizedStatuses {
		statuses[i] = string(s)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+debitNoteColumns+` FROM debit_notes
		WHERE client_id = $1
		  AND issue_date >= $2 AND issue_date <= $3
		  AND created_at <= $4
		  AND status = ANY($5)
		ORDER BY issue_date, number`,
		clientID, from, to, asOf, pq.Array(statuses),
	)
	if err != nil {
		return nil, fmt.Errorf("ListFinalized: %w", err)
	}
	defer rows.Close()

	var notes []domain.DebitNote
	for rows.Next() {
		n, err := scanDebitNote(rows)
		if err != nil {
			return nil, fmt.Errorf("ListFinalized: scan: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFinalized: rows: %w", err)
	}
	return notes, nil
}

func scanDebitNote(s scanner) (*domain.DebitNote, error) {
	var n domain.DebitNote
	err := s.Scan(
		&n.ID, &n.ClientID, &n.InvoiceID, &n.Number, &n.Description, &n.Total,
		&n.Currency, &n.Status, &n.IssueDate, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
