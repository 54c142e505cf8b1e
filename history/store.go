package history

import (
	"context"
	"fmt"
	"time"

	"github.com/foresight-io/foresight/model"
	c "github.com/patrickmn/go-cache"
)

type StorageError struct {
	Message string
}

func (e StorageError) Error() string {
	return fmt.Sprintf("history storage error: %s", e.Message)
}

// Store is the injected durability capability for prediction history. The
// engine itself stays storage agnostic; attaching a store is the caller's
// choice.
type Store interface {
	Put(ctx context.Context, entry model.PredictionHistoryEntry) error
	Get(ctx context.Context, id string) (*model.PredictionHistoryEntry, error)
}

type inMemStore struct {
	cache *c.Cache
}

func NewInMemStore() Store {
	return &inMemStore{
		cache: c.New(c.NoExpiration, 10*time.Minute),
	}
}

func (s *inMemStore) Put(ctx context.Context, entry model.PredictionHistoryEntry) error {
	s.cache.Set(entry.Id, entry, c.NoExpiration)
	return nil
}

func (s *inMemStore) Get(ctx context.Context, id string) (*model.PredictionHistoryEntry, error) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, StorageError{Message: fmt.Sprintf("entry %s not found", id)}
	}
	entry := v.(model.PredictionHistoryEntry)
	return &entry, nil
}
