package openmeteo

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/openmeteo/openmeteoclient"
	"github.com/luciobotteri/refezionify-web/internal/config"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type WeatherIntegrator interface {
	CurrentWeather(ctx context.Context) (*domain.WeatherSample, error)
}

type OpenMeteoService struct {
	Client    openmeteoclient.Client
	latitude  float64
	longitude float64
	ttl       time.Duration
	clock     clockwork.Clock
	metrics   *observability.Metrics

	mu        sync.Mutex
	cached    *domain.WeatherSample
	fetchedAt time.Time
}

// New cria o integrador. Com WEATHER_CACHE_TTL zero toda chamada vai à API.
func New(cfg *config.Config, client openmeteoclient.Client, clock clockwork.Clock, metrics *observability.Metrics) WeatherIntegrator {
	return &OpenMeteoService{
		Client:    client,
		latitude:  cfg.Weather.Latitude,
		longitude: cfg.Weather.Longitude,
		ttl:       cfg.Weather.CacheTTL,
		clock:     clock,
		metrics:   metrics,
	}
}

func (s *OpenMeteoService) CurrentWeather(ctx context.Context) (*domain.WeatherSample, error) {
	if sample, ok := s.fromCache(); ok {
		s.metrics.WeatherCache.WithLabelValues("hit").Inc()
		return sample, nil
	}
	s.metrics.WeatherCache.WithLabelValues("miss").Inc()

	resp, err := s.Client.GetCurrentWeather(ctx, openmeteoclient.CurrentWeatherParams{
		Latitude:  s.latitude,
		Longitude: s.longitude,
	})
	if err != nil {
		s.metrics.WeatherFetches.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, "erro ao consultar Open-Meteo")
	}

	if resp.CurrentWeather == nil || resp.CurrentWeather.WeatherCode == nil {
		s.metrics.WeatherFetches.WithLabelValues("error").Inc()
		return nil, errors.Wrap(domain.ErrWeatherUnavailable, "resposta sem current_weather")
	}
	if resp.CurrentWeather.Temperature == nil {
		s.metrics.WeatherFetches.WithLabelValues("error").Inc()
		return nil, errors.Wrap(domain.ErrWeatherUnavailable, "resposta sem temperatura")
	}
	s.metrics.WeatherFetches.WithLabelValues("success").Inc()

	sample := &domain.WeatherSample{
		Temperature: *resp.CurrentWeather.Temperature,
		Code:        *resp.CurrentWeather.WeatherCode,
		ObservedAt:  s.clock.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"temperature": sample.Temperature,
		"code":        sample.Code,
	}).Debug("openmeteo: tempo atual obtido")

	s.store(sample)

	out := *sample
	return &out, nil
}

func (s *OpenMeteoService) fromCache() (*domain.WeatherSample, bool) {
	if s.ttl <= 0 {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil || s.clock.Since(s.fetchedAt) >= s.ttl {
		return nil, false
	}

	out := *s.cached
	return &out, true
}

func (s *OpenMeteoService) store(sample *domain.WeatherSample) {
	if s.ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = sample
	s.fetchedAt = s.clock.Now()
}
