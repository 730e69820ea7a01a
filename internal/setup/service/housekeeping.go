package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/werewolf/internal/setup/store"
)

// HousekeepingService periodically evicts idle in-memory setups and purges
// devices whose tokens can no longer be valid.
type HousekeepingService struct {
	Store     store.Store
	Registry  *SetupRegistry
	Logger    *slog.Logger
	Interval  time.Duration
	IdleTTL   time.Duration
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service.
// If interval is 0 or negative, defaults to 10 minutes.
func NewHousekeepingService(
	store store.Store,
	registry *SetupRegistry,
	logger *slog.Logger,
	interval, idleTTL, retention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &HousekeepingService{
		Store:     store,
		Registry:  registry,
		Logger:    logger,
		Interval:  interval,
		IdleTTL:   idleTTL,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup runs one pass. Each step is independent; a failure in one does
// not stop the others.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	now := time.Now()

	if s.Registry != nil && s.IdleTTL > 0 {
		evicted := s.Registry.EvictIdle(now.Add(-s.IdleTTL))
		s.Logger.Debug("evicted idle setups", "count", evicted, "remaining", s.Registry.Len())
	}

	if s.Retention > 0 {
		removed, err := s.Store.Devices().DeleteDevicesNotSeenSince(ctx, now.Add(-s.Retention))
		if err != nil {
			s.Logger.Error("failed to purge stale devices", "error", err)
		} else if removed > 0 {
			s.Logger.Info("purged stale devices", "count", removed)
		}
	}
}
