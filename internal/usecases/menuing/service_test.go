package menuing

import (
	"context"
	"errors"
	"testing"

	omocks "github.com/luciobotteri/refezionify-web/infrastructure/integrator/openmeteo/mocks"
	"github.com/luciobotteri/refezionify-web/infrastructure/repository/mocks"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMenuService_LoadMonth(t *testing.T) {
	april := domain.MonthSelection{Month: 4, StartYear: 2024}
	menu := domain.MenuDocument{"2025-04": {"7": "pasta, pollo"}}
	nutrition := domain.NutritionDocument{"2025-04-07": {Analysis: "ok"}}

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockDocumentRepository)
		validate func(t *testing.T, data MonthData, metrics *observability.Metrics)
	}{
		{
			name: "ambos os documentos",
			setup: func(repo *mocks.MockDocumentRepository) {
				repo.EXPECT().GetMenuDocument(gomock.Any()).Return(menu, nil)
				repo.EXPECT().GetNutritionDocument(gomock.Any()).Return(nutrition, nil)
			},
			validate: func(t *testing.T, data MonthData, metrics *observability.Metrics) {
				assert.True(t, data.Found)
				assert.Equal(t, "pasta, pollo", data.Bucket["7"])
				assert.Equal(t, nutrition, data.Nutrition)
				assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentFetches.WithLabelValues("menu", "success")))
			},
		},
		{
			name: "nutrição falha, menu continua",
			setup: func(repo *mocks.MockDocumentRepository) {
				repo.EXPECT().GetMenuDocument(gomock.Any()).Return(menu, nil)
				repo.EXPECT().GetNutritionDocument(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, data MonthData, metrics *observability.Metrics) {
				assert.True(t, data.Found)
				assert.NotNil(t, data.Nutrition)
				assert.Empty(t, data.Nutrition)
				assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentFetches.WithLabelValues("nutrition", "error")))
			},
		},
		{
			name: "menu falha, nutrição continua",
			setup: func(repo *mocks.MockDocumentRepository) {
				repo.EXPECT().GetMenuDocument(gomock.Any()).Return(nil, domain.ErrDocumentNotFound)
				repo.EXPECT().GetNutritionDocument(gomock.Any()).Return(nutrition, nil)
			},
			validate: func(t *testing.T, data MonthData, metrics *observability.Metrics) {
				assert.False(t, data.Found)
				assert.Equal(t, nutrition, data.Nutrition)
				assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentFetches.WithLabelValues("menu", "error")))
			},
		},
		{
			name: "mês não publicado",
			setup: func(repo *mocks.MockDocumentRepository) {
				repo.EXPECT().GetMenuDocument(gomock.Any()).Return(domain.MenuDocument{"2025-03": {}}, nil)
				repo.EXPECT().GetNutritionDocument(gomock.Any()).Return(domain.NutritionDocument{}, nil)
			},
			validate: func(t *testing.T, data MonthData, _ *observability.Metrics) {
				assert.False(t, data.Found)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDocumentRepository(ctrl)
			weather := omocks.NewMockWeatherIntegrator(ctrl)
			metrics := observability.NewMetricsForTesting()

			tt.setup(repo)

			svc := NewService(repo, weather, metrics)
			tt.validate(t, svc.LoadMonth(context.Background(), april), metrics)
		})
	}
}

func TestMenuService_LoadWeather(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	weather := omocks.NewMockWeatherIntegrator(ctrl)

	svc := NewService(repo, weather, observability.NewMetricsForTesting())

	weather.EXPECT().CurrentWeather(gomock.Any()).Return(&domain.WeatherSample{Temperature: 21, Code: 1}, nil)
	sample := svc.LoadWeather(context.Background())
	if assert.NotNil(t, sample) {
		assert.Equal(t, 21.0, sample.Temperature)
	}

	weather.EXPECT().CurrentWeather(gomock.Any()).Return(nil, domain.ErrWeatherUnavailable)
	assert.Nil(t, svc.LoadWeather(context.Background()))
}
