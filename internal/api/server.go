package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/luciobotteri/refezionify-web/internal/api/handler"
	"github.com/luciobotteri/refezionify-web/internal/api/handler/router"
	"github.com/luciobotteri/refezionify-web/internal/config"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/luciobotteri/refezionify-web/internal/usecases/browsing"
	"github.com/luciobotteri/refezionify-web/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	months handler.MonthDeps,
	sessions browsing.SessionStore,
	cronServices handler.CronJobServices,
	metrics *observability.Metrics,
) (*Server, error) {
	rt := NewRouter(config, months, sessions, cronServices)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(metrics),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewRouter monta todas as rotas da aplicação
func NewRouter(
	config *config.Config,
	months handler.MonthDeps,
	sessions browsing.SessionStore,
	cronServices handler.CronJobServices,
) http.Handler {
	return router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Page(config.Server.BasePath, months)...),
		router.WithRoutes(handler.Months(months)...),
		router.WithRoutes(handler.Weather(months)...),
		router.WithRoutes(handler.Sessions(sessions, config.Weather.ViewGrace)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
