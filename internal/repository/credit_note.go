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

const creditNoteColumns = `id, client_id, invoice_id, number, description, total,
	currency, status, issue_date, created_at`

type CreditNoteRepository struct {
	db *sql.DB
}

func NewCreditNoteRepository(db *sql.DB) *CreditNoteRepository {
	return &CreditNoteRepository{db: db}
}

// ListFinalized returns confirmed credit notes dated within [from, to],
// restricted to rows created no later than asOf.
func (r *CreditNoteRepository) ListFinalized(ctx context.Context, clientID uuid.UUID, from, to time.Time, asOf time.Time) ([]domain.CreditNote, error) {
	statuses := make([]string, len(domain.CreditNoteFinalizedStatuses))
	for i, s := range domain.CreditNoteFinalizedStatuses {
		statuses[i] = string(s)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+creditNoteColumns+` FROM credit_notes
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

	var notes []domain.CreditNote
	for rows.Next() {
		n, err := scanCreditNote(rows)
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

func scanCreditNote(s scanner) (*domain.CreditNote, error) {
	var n domain.CreditNote
	err := s.Scan(
		&n.ID, &n.ClientID, &n.InvoiceID, &n.Number, &n.Description, &n.Total,
		&n.Currency, &n.Status, &n.IssueDate, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
