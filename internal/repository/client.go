package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cargomoz/backoffice/internal/domain"
)

const clientColumns = `id, name, email, phone, nuit, address, currency, status, created_at`

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id,
	)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return c, nil
}

// ListActiveIDs feeds batch statement runs (month-end generation).
func (r *ClientRepository) ListActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM clients WHERE status = $1 ORDER BY created_at`,
		domain.ClientStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("ListActiveIDs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListActiveIDs: scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListActiveIDs: rows: %w", err)
	}
	return ids, nil
}

func scanClient(s scanner) (*domain.Client, error) {
	var c domain.Client
	err := s.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.NUIT, &c.Address,
		&c.Currency, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
