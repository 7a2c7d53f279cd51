package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Data     Data     `mapstructure:",squash"`
	Calendar Calendar `mapstructure:",squash"`
	Weather  Weather  `mapstructure:",squash"`
	Comune   Comune   `mapstructure:",squash"`
	MenuSync MenuSync `mapstructure:",squash"`
	Sessions Sessions `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	BasePath       string   `mapstructure:"base_path"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Data indica de onde vêm os documentos estáticos. DataBaseURL tem prioridade sobre DataDir.
type Data struct {
	DataDir       string        `mapstructure:"data_dir"`
	DataBaseURL   string        `mapstructure:"data_base_url"`
	MenuFile      string        `mapstructure:"menu_file"`
	NutritionFile string        `mapstructure:"nutrition_file"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
}

type Calendar struct {
	Timezone        string         `mapstructure:"timezone"`
	SchoolYearStart int            `mapstructure:"school_year_start"` // 0 = derivado do relógio
	Location        *time.Location `mapstructure:"-"`
}

type Weather struct {
	URL       string        `mapstructure:"weather_url"`
	Latitude  float64       `mapstructure:"weather_latitude"`
	Longitude float64       `mapstructure:"weather_longitude"`
	Timeout   time.Duration `mapstructure:"weather_timeout"`
	CacheTTL  time.Duration `mapstructure:"weather_cache_ttl"`
	ViewGrace time.Duration `mapstructure:"weather_view_grace"` // espera máxima pelo tempo depois do menu pronto
}

type Comune struct {
	URL     string        `mapstructure:"comune_url"`
	Timeout time.Duration `mapstructure:"comune_timeout"`
}

type MenuSync struct {
	CronSchedule string `mapstructure:"menu_sync_cron"`
	Enabled      bool   `mapstructure:"menu_sync_enabled"`
}

type Sessions struct {
	TTL            time.Duration `mapstructure:"session_ttl"`
	CleanupCron    string        `mapstructure:"session_cleanup_cron"`
	CleanupEnabled bool          `mapstructure:"session_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("BASE_PATH", "/refezionify-web/")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("DATA_DIR", "public")
	viper.SetDefault("DATA_BASE_URL", "")
	viper.SetDefault("MENU_FILE", "menu-data.json")
	viper.SetDefault("NUTRITION_FILE", "more-data.json")
	viper.SetDefault("FETCH_TIMEOUT", "10s")

	viper.SetDefault("TIMEZONE", "Europe/Rome")
	viper.SetDefault("SCHOOL_YEAR_START", 0)

	// Napoli
	viper.SetDefault("WEATHER_URL", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("WEATHER_LATITUDE", 40.8519)
	viper.SetDefault("WEATHER_LONGITUDE", 14.2389)
	viper.SetDefault("WEATHER_TIMEOUT", "5s")
	viper.SetDefault("WEATHER_CACHE_TTL", "10m")
	viper.SetDefault("WEATHER_VIEW_GRACE", "300ms")

	viper.SetDefault("COMUNE_URL", "https://www.comune.napoli.it")
	viper.SetDefault("COMUNE_TIMEOUT", "30s")

	viper.SetDefault("MENU_SYNC_CRON", "0 6 * * 1") // Toda segunda-feira às 6h
	viper.SetDefault("MENU_SYNC_ENABLED", false)

	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SESSION_CLEANUP_CRON", "*/5 * * * *")
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	return decode()
}

func decode() (*Config, error) {
	config := &Config{}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return errors.Wrapf(err, "fuso horário inválido: %s", c.Calendar.Timezone)
	}
	c.Calendar.Location = loc

	if !strings.HasPrefix(c.Server.BasePath, "/") || !strings.HasSuffix(c.Server.BasePath, "/") {
		return errors.Errorf("BASE_PATH deve começar e terminar com '/': %q", c.Server.BasePath)
	}

	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.AllowedOrigins = origins

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
