package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.AutomaticEnv()
}

func TestDecode_Defaults(t *testing.T) {
	setupViper(t)

	cfg, err := decode()
	require.NoError(t, err)

	assert.Equal(t, "/refezionify-web/", cfg.Server.BasePath)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "menu-data.json", cfg.Data.MenuFile)
	assert.Equal(t, "more-data.json", cfg.Data.NutritionFile)
	assert.Equal(t, 10*time.Second, cfg.Data.FetchTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.Weather.ViewGrace)
	assert.InDelta(t, 40.8519, cfg.Weather.Latitude, 0.0001)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.TTL)
	assert.True(t, cfg.Sessions.CleanupEnabled)
	assert.False(t, cfg.MenuSync.Enabled)
	require.NotNil(t, cfg.Calendar.Location)
	assert.Equal(t, "Europe/Rome", cfg.Calendar.Location.String())
}

func TestDecode_Environment(t *testing.T) {
	setupViper(t)
	t.Setenv("BASE_PATH", "/")
	t.Setenv("SCHOOL_YEAR_START", "2024")
	t.Setenv("WEATHER_TIMEOUT", "2s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := decode()
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.Server.BasePath)
	assert.Equal(t, 2024, cfg.Calendar.SchoolYearStart)
	assert.Equal(t, 2*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "fuso horário desconhecido", env: map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{name: "base path sem barra final", env: map[string]string{"BASE_PATH": "/refezionify-web"}},
		{name: "base path relativo", env: map[string]string{"BASE_PATH": "refezionify-web/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupViper(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := decode()
			assert.Error(t, err)
		})
	}
}
