package localcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
)

const keyPrefix = "collections:"

// Store keeps whole collections as JSON blobs in Redis, mirroring the
// shapes the persistence gateway serves. It satisfies
// gateway.CollectionStore so repositories can read from it directly
// when the gateway is down.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func collectionKey(name string) string {
	return keyPrefix + name
}

// GetCollection loads a cached collection into out. A collection that
// was never cached reports apperrors.ErrNotFound.
func (s *Store) GetCollection(ctx context.Context, name string, out interface{}) error {
	raw, err := s.rdb.Get(ctx, collectionKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("collection %q not cached: %w", name, apperrors.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("reading cached collection %q: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding cached collection %q: %w", name, err)
	}
	return nil
}

// ReplaceCollection overwrites the cached blob for a collection. No
// TTL is set; the sync job keeps entries fresh.
func (s *Store) ReplaceCollection(ctx context.Context, name string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding collection %q for cache: %w", name, err)
	}
	if err := s.rdb.Set(ctx, collectionKey(name), raw, 0).Err(); err != nil {
		return fmt.Errorf("writing cached collection %q: %w", name, err)
	}
	return nil
}
