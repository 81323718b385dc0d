package localcache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/repositories/gateway"
)

// FallbackStore serves collections from the gateway and falls back to
// the Redis cache when the gateway is unreachable. Successful gateway
// reads and writes are mirrored into the cache so the fallback copy
// stays close to the canonical one; during an outage both reads and
// writes run against the cache alone.
type FallbackStore struct {
	primary gateway.CollectionStore
	cache   *Store
	logger  *slog.Logger
}

func NewFallbackStore(primary gateway.CollectionStore, cache *Store, logger *slog.Logger) *FallbackStore {
	return &FallbackStore{primary: primary, cache: cache, logger: logger}
}

func (f *FallbackStore) GetCollection(ctx context.Context, name string, out interface{}) error {
	err := f.primary.GetCollection(ctx, name, out)
	if err == nil {
		f.mirror(ctx, name, out)
		return nil
	}
	if !errors.Is(err, apperrors.ErrGatewayUnavailable) {
		return err
	}
	f.logger.WarnContext(ctx, "gateway unavailable, serving collection from cache",
		"collection", name, "error", err)
	if cacheErr := f.cache.GetCollection(ctx, name, out); cacheErr != nil {
		if errors.Is(cacheErr, apperrors.ErrNotFound) {
			// Nothing cached yet, the original outage is the real failure.
			return err
		}
		return cacheErr
	}
	return nil
}

// ReplaceCollection writes through the gateway and mirrors the result
// into the cache. When the gateway is unreachable the write lands in
// the cache alone so the application keeps working offline; the next
// sync against a recovered gateway may overwrite it (the store has no
// concurrency token, offline writes lose that race).
func (f *FallbackStore) ReplaceCollection(ctx context.Context, name string, data interface{}) error {
	err := f.primary.ReplaceCollection(ctx, name, data)
	if err == nil {
		f.mirror(ctx, name, data)
		return nil
	}
	if !errors.Is(err, apperrors.ErrGatewayUnavailable) {
		return err
	}
	f.logger.WarnContext(ctx, "gateway unavailable, persisting collection to cache only",
		"collection", name, "error", err)
	if cacheErr := f.cache.ReplaceCollection(ctx, name, data); cacheErr != nil {
		// Neither store took the write, the original outage is the
		// real failure.
		return err
	}
	return nil
}

func (f *FallbackStore) mirror(ctx context.Context, name string, data interface{}) {
	if err := f.cache.ReplaceCollection(ctx, name, data); err != nil {
		f.logger.WarnContext(ctx, "failed to mirror collection into cache",
			"collection", name, "error", err)
	}
}
