package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "refezionify"

// Metrics reúne os contadores, histogramas e gauges do serviço
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: method, status
	HTTPDuration *prometheus.HistogramVec // labels: method

	// Documentos estáticos
	DocumentFetches *prometheus.CounterVec // labels: document={menu,nutrition}, outcome={success,error}

	// Tempo
	WeatherFetches *prometheus.CounterVec // labels: outcome={success,error}
	WeatherCache   *prometheus.CounterVec // labels: result={hit,miss}

	// Carregamento da página
	StaleResponses prometheus.Counter
	ViewLoads      *prometheus.CounterVec // labels: status={empty,populated}
	ActiveSessions prometheus.Gauge

	// Sincronização com o Comune
	MenuSyncRuns *prometheus.CounterVec // labels: outcome={success,partial,error}
	MenuSyncDays prometheus.Gauge
}

// NewMetrics cria e registra as métricas no registry padrão do Prometheus
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.DocumentFetches,
		m.WeatherFetches,
		m.WeatherCache,
		m.StaleResponses,
		m.ViewLoads,
		m.ActiveSessions,
		m.MenuSyncRuns,
		m.MenuSyncDays,
	)

	return m
}

// NewMetricsForTesting cria métricas sem registrá-las, evitando o pânico de
// "already registered" quando vários testes as criam.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method"}),
		DocumentFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_fetches_total",
			Help:      "Static document reads by document and outcome.",
		}, []string{"document", "outcome"}),
		WeatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_fetches_total",
			Help:      "Weather API requests by outcome.",
		}, []string{"outcome"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by result.",
		}, []string{"result"}),
		StaleResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_total",
			Help:      "Month loads discarded because a newer selection was made.",
		}),
		ViewLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_loads_total",
			Help:      "Completed month loads by resulting status.",
		}, []string{"status"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Navigation sessions currently held in memory.",
		}),
		MenuSyncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_sync_runs_total",
			Help:      "Comune menu sync runs by outcome.",
		}, []string{"outcome"}),
		MenuSyncDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "menu_sync_days",
			Help:      "Days written by the last menu sync run.",
		}),
	}
}

// ObserveRequest registra uma requisição HTTP concluída
func (m *Metrics) ObserveRequest(method string, statusCode int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	m.HTTPDuration.WithLabelValues(method).Observe(duration.Seconds())
}
