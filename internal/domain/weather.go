package domain

import (
	"strconv"
	"time"
)

// WeatherSample é a leitura atual do tempo: temperatura em °C e código WMO
type WeatherSample struct {
	Temperature float64   `json:"temperature"`
	Code        int       `json:"code"`
	ObservedAt  time.Time `json:"observed_at"`
}

// Condition agrupa os códigos WMO nas quatro faixas exibidas na página
type Condition string

const (
	ConditionClear  Condition = "clear"
	ConditionCloudy Condition = "cloudy"
	ConditionRain   Condition = "rain"
	ConditionStorm  Condition = "storm"
)

func (w WeatherSample) Condition() Condition {
	switch {
	case w.Code < 3:
		return ConditionClear
	case w.Code < 6:
		return ConditionCloudy
	case w.Code < 9:
		return ConditionRain
	default:
		return ConditionStorm
	}
}

func (w WeatherSample) Emoji() string {
	switch w.Condition() {
	case ConditionClear:
		return "☀️"
	case ConditionCloudy:
		return "🌥️"
	case ConditionRain:
		return "🌧️"
	default:
		return "🌩️"
	}
}

// Label devolve o texto exibido no card de hoje, por exemplo "18.4°C ☀️"
func (w WeatherSample) Label() string {
	return strconv.FormatFloat(w.Temperature, 'f', -1, 64) + "°C " + w.Emoji()
}
