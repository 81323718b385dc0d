package localcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ProLedger/project_ledger_app/internal/repositories/gateway"
)

const syncTimeout = 30 * time.Second

// Syncer periodically pulls every collection from the gateway into the
// cache so the fallback copy is usable even for collections nobody has
// read since startup.
type Syncer struct {
	primary gateway.CollectionStore
	cache   *Store
	logger  *slog.Logger
	cron    *cron.Cron
}

func NewSyncer(primary gateway.CollectionStore, cache *Store, logger *slog.Logger) *Syncer {
	return &Syncer{
		primary: primary,
		cache:   cache,
		logger:  logger,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start schedules the refresh job and runs one refresh immediately so
// the cache is warm before the first gateway outage.
func (s *Syncer) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refreshAll); err != nil {
		return err
	}
	s.cron.Start()
	go s.refreshAll()
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish.
func (s *Syncer) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Syncer) refreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	start := time.Now()
	refreshed := 0
	for _, name := range gateway.CollectionNames {
		if err := s.refreshOne(ctx, name); err != nil {
			s.logger.WarnContext(ctx, "cache sync skipped collection",
				"collection", name, "error", err)
			continue
		}
		refreshed++
	}
	s.logger.InfoContext(ctx, "cache sync finished",
		"refreshed", refreshed,
		"total", len(gateway.CollectionNames),
		"duration", time.Since(start))
}

func (s *Syncer) refreshOne(ctx context.Context, name string) error {
	var blob json.RawMessage
	if err := s.primary.GetCollection(ctx, name, &blob); err != nil {
		return err
	}
	return s.cache.ReplaceCollection(ctx, name, blob)
}
