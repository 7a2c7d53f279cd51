package menuing

import (
	"context"
	"sync"

	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/openmeteo"
	"github.com/luciobotteri/refezionify-web/infrastructure/repository"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/luciobotteri/refezionify-web/pkg/log"
)

// MonthData é o resultado da carga de um mês. Found é false quando o documento
// de menu não tem a chave do mês ou não pôde ser lido.
type MonthData struct {
	Bucket    map[string]string
	Found     bool
	Nutrition domain.NutritionDocument
}

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Service interface {
	LoadMonth(ctx context.Context, sel domain.MonthSelection) MonthData
	LoadWeather(ctx context.Context) *domain.WeatherSample
}

type MenuService struct {
	documents repository.DocumentRepository
	weather   openmeteo.WeatherIntegrator
	metrics   *observability.Metrics
}

func NewService(documents repository.DocumentRepository, weather openmeteo.WeatherIntegrator, metrics *observability.Metrics) Service {
	return &MenuService{
		documents: documents,
		weather:   weather,
		metrics:   metrics,
	}
}

// LoadMonth lê os dois documentos em paralelo. A falha de um não afeta o outro.
func (s *MenuService) LoadMonth(ctx context.Context, sel domain.MonthSelection) MonthData {
	logger := log.ForContext(ctx).WithField("month", sel.Key())

	var (
		wg        sync.WaitGroup
		menu      domain.MenuDocument
		nutrition domain.NutritionDocument
	)

	wg.Add(2)
	go func() {
		defer wg.Done()

		doc, err := s.documents.GetMenuDocument(ctx)
		if err != nil {
			s.metrics.DocumentFetches.WithLabelValues(string(repository.DocumentMenu), "error").Inc()
			logger.WithField("document", repository.DocumentMenu).WithError(err).Warn("menuing: falha ao carregar o menu")
			return
		}
		s.metrics.DocumentFetches.WithLabelValues(string(repository.DocumentMenu), "success").Inc()
		menu = doc
	}()

	go func() {
		defer wg.Done()

		doc, err := s.documents.GetNutritionDocument(ctx)
		if err != nil {
			s.metrics.DocumentFetches.WithLabelValues(string(repository.DocumentNutrition), "error").Inc()
			logger.WithField("document", repository.DocumentNutrition).WithError(err).Warn("menuing: falha ao carregar a avaliação nutricional")
			return
		}
		s.metrics.DocumentFetches.WithLabelValues(string(repository.DocumentNutrition), "success").Inc()
		nutrition = doc
	}()

	wg.Wait()

	data := MonthData{Nutrition: nutrition}
	if data.Nutrition == nil {
		data.Nutrition = domain.NutritionDocument{}
	}
	if menu != nil {
		data.Bucket, data.Found = menu.Bucket(sel)
	}

	return data
}

func (s *MenuService) LoadWeather(ctx context.Context) *domain.WeatherSample {
	sample, err := s.weather.CurrentWeather(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("menuing: tempo indisponível")
		return nil
	}
	return sample
}
