// Package scheduler contém os serviços agendados: sincronização do menu com o Comune e limpeza de sessões
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/comune"
	"github.com/luciobotteri/refezionify-web/infrastructure/repository"
	"github.com/luciobotteri/refezionify-web/internal/config"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/luciobotteri/refezionify-web/pkg/utils"
	"github.com/sirupsen/logrus"
)

type MenuSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	StartYear    int
	Location     *time.Location
}

// MenuSyncResult resume uma execução: meses gravados, meses com falha e dias gravados
type MenuSyncResult struct {
	Months int      `json:"months"`
	Failed []string `json:"failed"`
	Days   int      `json:"days"`
}

type MenuSyncService struct {
	scheduler *gocron.Scheduler
	scraper   comune.MenuScraper
	documents repository.DocumentRepository
	clock     clockwork.Clock
	metrics   *observability.Metrics
	config    MenuSyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *MenuSyncResult
}

func NewMenuSyncService(
	scraper comune.MenuScraper,
	documents repository.DocumentRepository,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	cfg *config.Config,
) *MenuSyncService {
	syncConfig := MenuSyncConfig{
		CronSchedule: cfg.MenuSync.CronSchedule, // Default: segunda-feira às 6h
		SyncEnabled:  cfg.MenuSync.Enabled,      // Default: desabilitado
		StartYear:    cfg.Calendar.SchoolYearStart,
		Location:     cfg.Calendar.Location,
	}
	if syncConfig.Location == nil {
		syncConfig.Location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de sincronização do menu carregada")

	return &MenuSyncService{
		scheduler: gocron.NewScheduler(syncConfig.Location),
		scraper:   scraper,
		documents: documents,
		clock:     clock,
		metrics:   metrics,
		config:    syncConfig,
	}
}

func (s *MenuSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização do menu desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização do menu")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncMenus(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização do menu")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do menu: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização do menu")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncMenus baixa todos os meses do ano letivo e grava cada mês no documento de menu.
// Um mês com falha não interrompe os demais.
func (s *MenuSyncService) SyncMenus(ctx context.Context) (*MenuSyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização do menu já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.clock.Now()
	s.syncMutex.Unlock()

	result := &MenuSyncResult{Failed: []string{}}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.clock.Now()
		s.lastResult = result
		s.syncMutex.Unlock()
	}()

	now := utils.NowIn(s.clock, s.config.Location)
	startYear := s.config.StartYear
	if startYear <= 0 {
		startYear = domain.SchoolYearStart(now)
	}

	logrus.WithField("start_year", startYear).Info("Iniciando sincronização do menu com o Comune")

	var firstErr error
	for _, sel := range domain.Cycle(startYear) {
		logger := logrus.WithField("month", sel.Key())

		days, err := s.scraper.FetchMonth(ctx, sel.Month)
		if err != nil {
			logger.WithError(err).Error("MenuSyncService: erro ao baixar menu do Comune")
			result.Failed = append(result.Failed, sel.Key())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if len(days) == 0 {
			logger.Info("MenuSyncService: mês sem dias publicados")
			continue
		}

		if err := s.documents.SaveMenuMonth(ctx, sel.Key(), days); err != nil {
			logger.WithError(err).Error("MenuSyncService: erro ao gravar mês no documento de menu")
			result.Failed = append(result.Failed, sel.Key())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		result.Months++
		result.Days += len(days)
	}

	s.metrics.MenuSyncDays.Set(float64(result.Days))

	switch {
	case len(result.Failed) == 0:
		s.metrics.MenuSyncRuns.WithLabelValues("success").Inc()
	case result.Months > 0:
		s.metrics.MenuSyncRuns.WithLabelValues("partial").Inc()
	default:
		s.metrics.MenuSyncRuns.WithLabelValues("error").Inc()
		return result, fmt.Errorf("nenhum mês sincronizado: %w", firstErr)
	}

	logrus.WithFields(logrus.Fields{
		"months": result.Months,
		"days":   result.Days,
		"failed": len(result.Failed),
	}).Info("Sincronização do menu concluída")

	return result, nil
}

// TriggerManualSync inicia manualmente uma sincronização do menu
func (s *MenuSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do menu já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do menu")
	go func() {
		if _, err := s.SyncMenus(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do menu")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *MenuSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
