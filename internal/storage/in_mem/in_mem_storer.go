package in_mem

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/polish-calc/internal/domain"
	"github.com/DjordjeVuckovic/polish-calc/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Conversion
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Conversion),
	}
}

func (s *InMemStorer) Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error) {
	if conversion.ID == uuid.Nil {
		conversion.ID = uuid.New()
	}
	if conversion.CreatedAt.IsZero() {
		conversion.CreatedAt = time.Now().UTC()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[conversion.ID] = conversion

	slog.Debug("Saved conversion to in-memory storage", "id", conversion.ID, "input", conversion.Input)
	return conversion.ID, nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *InMemStorer) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	s.storageLock.RLock()
	all := make([]domain.Conversion, 0, len(s.storage))
	for _, c := range s.storage {
		all = append(all, c)
	}
	s.storageLock.RUnlock()

	// Same order as the pg and es backends: created_at DESC, id DESC.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return bytes.Compare(all[i].ID[:], all[j].ID[:]) > 0
	})

	limit = storage.NormalizeLimit(limit)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
