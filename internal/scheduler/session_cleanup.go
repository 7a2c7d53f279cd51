package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/internal/config"
	"github.com/luciobotteri/refezionify-web/internal/usecases/browsing"
	"github.com/sirupsen/logrus"
)

type SessionCleanupConfig struct {
	CronSchedule string
	Enabled      bool
	TTL          time.Duration
}

type SessionCleanupService struct {
	scheduler *gocron.Scheduler
	sessions  browsing.SessionStore
	clock     clockwork.Clock
	config    SessionCleanupConfig

	runMutex     sync.Mutex
	lastRunAt    time.Time
	lastRemoved  int
	totalRemoved int
}

func NewSessionCleanupService(sessions browsing.SessionStore, clock clockwork.Clock, cfg *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: cfg.Sessions.CleanupCron,
		Enabled:      cfg.Sessions.CleanupEnabled,
		TTL:          cfg.Sessions.TTL,
	}

	loc := cfg.Calendar.Location
	if loc == nil {
		loc = time.Local
	}

	return &SessionCleanupService{
		scheduler: gocron.NewScheduler(loc),
		sessions:  sessions,
		clock:     clock,
		config:    cleanupConfig,
	}
}

func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de sessões desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Cleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// Cleanup remove as sessões ociosas há mais do que o TTL configurado
func (s *SessionCleanupService) Cleanup() int {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	removed := 0
	if s.config.TTL > 0 {
		removed = s.sessions.Sweep(s.config.TTL)
	}

	s.lastRunAt = s.clock.Now()
	s.lastRemoved = removed
	s.totalRemoved += removed

	return removed
}

// TriggerManualSync executa a limpeza imediatamente
func (s *SessionCleanupService) TriggerManualSync() {
	logrus.Info("Iniciando limpeza manual de sessões")
	go s.Cleanup()
}

func (s *SessionCleanupService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"cleanup_enabled": s.config.Enabled,
		"cleanup_cron":    s.config.CronSchedule,
		"session_ttl":     s.config.TTL.String(),
		"active_sessions": s.sessions.Len(),
		"last_run_at":     s.lastRunAt,
		"last_removed":    s.lastRemoved,
		"total_removed":   s.totalRemoved,
	}
}
