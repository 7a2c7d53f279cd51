package openmeteoclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CurrentWeatherParams struct {
	Latitude  float64
	Longitude float64
}

type CurrentWeather struct {
	Temperature   *float64 `json:"temperature"`
	WindSpeed     float64  `json:"windspeed"`
	WindDirection float64  `json:"winddirection"`
	WeatherCode   *int     `json:"weathercode"`
	IsDay         int      `json:"is_day"`
	Time          string   `json:"time"`
}

type CurrentWeatherResponse struct {
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	Timezone       string          `json:"timezone"`
	CurrentWeather *CurrentWeather `json:"current_weather"`
}

func (c *OpenMeteoClient) GetCurrentWeather(ctx context.Context, params CurrentWeatherParams) (CurrentWeatherResponse, error) {
	var response CurrentWeatherResponse

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return response, errors.Wrap(err, "erro ao analisar a URL base")
	}

	query := endpoint.Query()
	query.Set("latitude", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	query.Set("current_weather", "true")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
