package openmeteoclient

import (
	"context"
	"net/http"
	"time"

	"github.com/luciobotteri/refezionify-web/internal/config"
)

type Client interface {
	GetCurrentWeather(ctx context.Context, params CurrentWeatherParams) (CurrentWeatherResponse, error)
}

type OpenMeteoClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Weather.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &OpenMeteoClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Weather.URL,
	}
}
