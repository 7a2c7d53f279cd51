package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/openmeteo/openmeteoclient"
	"github.com/luciobotteri/refezionify-web/internal/config"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc, ttl time.Duration) (WeatherIntegrator, *clockwork.FakeClock) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Weather: config.Weather{
		URL:       srv.URL + "/v1/forecast",
		Latitude:  40.8519,
		Longitude: 14.2389,
		Timeout:   time.Second,
		CacheTTL:  ttl,
	}}

	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC))
	return New(cfg, openmeteoclient.NewClient(cfg), clock, observability.NewMetricsForTesting()), clock
}

func TestCurrentWeather_Success(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "40.8519", r.URL.Query().Get("latitude"))
		assert.Equal(t, "14.2389", r.URL.Query().Get("longitude"))
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))

		w.Write([]byte(`{"latitude":40.85,"longitude":14.25,"current_weather":{"temperature":18.4,"windspeed":7.2,"weathercode":3,"time":"2025-04-07T10:00"}}`))
	}, 0)

	sample, err := svc.CurrentWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 18.4, sample.Temperature)
	assert.Equal(t, 3, sample.Code)
	assert.Equal(t, domain.ConditionCloudy, sample.Condition())
}

func TestCurrentWeather_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "status de erro",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "json inválido",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"current_weather":`))
			},
		},
		{
			name: "sem current_weather",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"latitude":40.85}`))
			},
		},
		{
			name: "sem weathercode",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"current_weather":{"temperature":12}}`))
			},
		},
		{
			name: "sem temperatura",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"current_weather":{"weathercode":3,"windspeed":7.2}}`))
			},
		},
		{
			name: "temperatura nula",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"current_weather":{"temperature":null,"weathercode":3}}`))
			},
		},
		{
			name: "temperatura não numérica",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"current_weather":{"temperature":"18","weathercode":3}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, tt.handler, 0)

			sample, err := svc.CurrentWeather(context.Background())
			assert.Error(t, err)
			assert.Nil(t, sample)
		})
	}
}

func TestCurrentWeather_Cache(t *testing.T) {
	var calls int32
	svc, clock := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"current_weather":{"temperature":20,"weathercode":0}}`))
	}, 10*time.Minute)

	ctx := context.Background()

	_, err := svc.CurrentWeather(ctx)
	require.NoError(t, err)
	_, err = svc.CurrentWeather(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "segunda chamada vem do cache")

	clock.Advance(11 * time.Minute)

	_, err = svc.CurrentWeather(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "cache expirado")
}

func TestCurrentWeather_ErrorsAreNotCached(t *testing.T) {
	var calls int32
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"current_weather":{"temperature":20,"weathercode":0}}`))
	}, 10*time.Minute)

	_, err := svc.CurrentWeather(context.Background())
	require.Error(t, err)

	sample, err := svc.CurrentWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20.0, sample.Temperature)
}
