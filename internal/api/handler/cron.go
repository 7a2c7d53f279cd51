package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/luciobotteri/refezionify-web/internal/scheduler"
	"github.com/luciobotteri/refezionify-web/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMenuSync       = "menu-sync"
	CronJobTypeSessionCleanup = "session-cleanup"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MenuSyncService       *scheduler.MenuSyncService
	SessionCleanupService *scheduler.SessionCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// A execução continua depois da resposta
		ctx := context.WithoutCancel(r.Context())

		switch cronType {
		case CronJobTypeMenuSync:
			if services.MenuSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do menu não disponível", nil)
				return
			}
			services.MenuSyncService.TriggerManualSync(ctx)

		case CronJobTypeSessionCleanup:
			if services.SessionCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de sessões não disponível", nil)
				return
			}
			services.SessionCleanupService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MenuSyncService != nil {
				services.MenuSyncService.TriggerManualSync(ctx)
			}
			if services.SessionCleanupService != nil {
				services.SessionCleanupService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: menu-sync, session-cleanup, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MenuSyncService != nil {
			status[CronJobTypeMenuSync] = services.MenuSyncService.GetStatus()
		}
		if services.SessionCleanupService != nil {
			status[CronJobTypeSessionCleanup] = services.SessionCleanupService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
