package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/polish-calc/internal/domain"
	"github.com/google/uuid"
)

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 20

var ErrNotFound = errors.New("conversion not found")

// Storer persists the conversion history. List returns the newest conversions first.
type Storer interface {
	Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error)
	List(ctx context.Context, limit int) ([]domain.Conversion, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
