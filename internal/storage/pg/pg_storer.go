package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/polish-calc/internal/domain"
	"github.com/DjordjeVuckovic/polish-calc/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, fmt.Errorf("connection pool is required")
	}
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) Save(ctx context.Context, c domain.Conversion) (uuid.UUID, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO conversions (id, input, infix, postfix, strict, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(ctx, cmd, c.ID, c.Input, c.Infix, c.Postfix, c.Strict, c.CreatedAt).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert conversion: %w", err)
	}

	return id, nil
}

func (s *Storer) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	query := `
		SELECT id, input, infix, postfix, strict, created_at
		FROM conversions
		WHERE id = $1
	`
	var c domain.Conversion
	err := s.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Input, &c.Infix, &c.Postfix, &c.Strict, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}

	return &c, nil
}

func (s *Storer) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	query := `
		SELECT id, input, infix, postfix, strict, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, storage.NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	conversions := make([]domain.Conversion, 0)
	for rows.Next() {
		var c domain.Conversion
		if err := rows.Scan(&c.ID, &c.Input, &c.Infix, &c.Postfix, &c.Strict, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		conversions = append(conversions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return conversions, nil
}
