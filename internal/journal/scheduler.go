package journal

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionSource lists the users with a live session, so the sweep only
// touches accounts that can authenticate against the hosted store.
type SessionSource interface {
	ActiveSessionUIDs(ctx context.Context) ([]string, error)
}

// SyncScheduler re-runs the local-to-remote reconciliation on a
// schedule, picking up entries written locally while the hosted store
// was unreachable.
type SyncScheduler struct {
	service  *Service
	sessions SessionSource
	manager  *cron.Cron
	logger   *zap.SugaredLogger
}

// NewSyncScheduler creates the background sync sweep.
func NewSyncScheduler(service *Service, sessions SessionSource, logger *zap.SugaredLogger) *SyncScheduler {
	return &SyncScheduler{
		service:  service,
		sessions: sessions,
		manager:  cron.New(cron.WithLocation(time.UTC)),
		logger:   logger,
	}
}

// Start registers the sweep on the given cron schedule and starts it.
func (s *SyncScheduler) Start(schedule string) error {
	if _, err := s.manager.AddFunc(schedule, s.sweep); err != nil {
		return err
	}
	s.manager.Start()
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *SyncScheduler) Stop() {
	ctx := s.manager.Stop()
	<-ctx.Done()
}

func (s *SyncScheduler) sweep() {
	ctx := context.Background()

	uids, err := s.sessions.ActiveSessionUIDs(ctx)
	if err != nil {
		s.logger.Errorw("sync sweep: failed to list active sessions", "error", err)
		return
	}

	for _, uid := range uids {
		count, err := s.service.SyncLocalEntries(ctx, uid)
		if err != nil {
			s.logger.Warnw("sync sweep: reconcile failed", "user_id", uid, "error", err)
			continue
		}
		if count > 0 {
			s.logger.Infow("sync sweep: reconciled local entries", "user_id", uid, "count", count)
		}
	}
}
