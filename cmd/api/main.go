package main

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/comune"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/comune/comuneclient"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/openmeteo"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/openmeteo/openmeteoclient"
	"github.com/luciobotteri/refezionify-web/infrastructure/repository"
	"github.com/luciobotteri/refezionify-web/internal/api"
	"github.com/luciobotteri/refezionify-web/internal/api/handler"
	"github.com/luciobotteri/refezionify-web/internal/config"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/luciobotteri/refezionify-web/internal/scheduler"
	"github.com/luciobotteri/refezionify-web/internal/usecases/browsing"
	"github.com/luciobotteri/refezionify-web/internal/usecases/exporting"
	"github.com/luciobotteri/refezionify-web/internal/usecases/menuing"
	"github.com/luciobotteri/refezionify-web/internal/usecases/rendering"
	"github.com/luciobotteri/refezionify-web/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	documents := repository.NewDocumentRepository(cfg)

	weatherClient := openmeteoclient.NewClient(cfg)
	weatherIntegrator := openmeteo.New(cfg, weatherClient, clock, metrics)

	comuneClient := comuneclient.NewClient(cfg)
	comuneScraper := comune.New(comuneClient)

	renderer := rendering.NewRenderer(cfg.Calendar.Location)
	menuService := menuing.NewService(documents, weatherIntegrator, metrics)

	controllerConfig := menuing.ControllerConfig{
		Location:     cfg.Calendar.Location,
		FetchTimeout: cfg.Data.FetchTimeout,
	}
	controllers := func(ctx context.Context) *menuing.Controller {
		return menuing.NewController(ctx, menuService, renderer, clock, metrics, controllerConfig)
	}

	sessions := browsing.NewStore(ctx, controllers, clock, metrics, browsing.StoreConfig{
		Location:  cfg.Calendar.Location,
		StartYear: cfg.Calendar.SchoolYearStart,
	})

	exporter := exporting.NewExporter(menuService, renderer, clock, cfg.Calendar.Location)

	menuSyncService := scheduler.NewMenuSyncService(comuneScraper, documents, clock, metrics, cfg)
	sessionCleanupService := scheduler.NewSessionCleanupService(sessions, clock, cfg)

	// Inicia os agendadores em background
	if err := menuSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do menu")
	} else {
		logrus.Info("Agendador de sincronização do menu iniciado com sucesso")
	}

	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	months := handler.MonthDeps{
		Documents:     documents,
		Weather:       weatherIntegrator,
		Renderer:      renderer,
		Controllers:   controllers,
		Exporter:      exporter,
		Clock:         clock,
		Location:      cfg.Calendar.Location,
		StartYear:     cfg.Calendar.SchoolYearStart,
		MenuFile:      cfg.Data.MenuFile,
		NutritionFile: cfg.Data.NutritionFile,
		WeatherGrace:  cfg.Weather.ViewGrace,
	}

	server, err := api.New(
		cfg,
		months,
		sessions,
		handler.CronJobServices{
			MenuSyncService:       menuSyncService,
			SessionCleanupService: sessionCleanupService,
		},
		metrics,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
