package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/julienschmidt/httprouter"
	"github.com/luciobotteri/refezionify-web/infrastructure/integrator/openmeteo"
	"github.com/luciobotteri/refezionify-web/infrastructure/repository"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/usecases/browsing"
	"github.com/luciobotteri/refezionify-web/internal/usecases/exporting"
	"github.com/luciobotteri/refezionify-web/internal/usecases/rendering"
	"github.com/luciobotteri/refezionify-web/pkg/apiErrors"
	"github.com/luciobotteri/refezionify-web/pkg/log"
	"github.com/luciobotteri/refezionify-web/pkg/utils"
)

// MonthDeps reúne o que as rotas de página e de meses precisam
type MonthDeps struct {
	Documents     repository.DocumentRepository
	Weather       openmeteo.WeatherIntegrator
	Renderer      rendering.Renderer
	Controllers   browsing.ControllerFactory
	Exporter      exporting.Exporter
	Clock         clockwork.Clock
	Location      *time.Location
	StartYear     int
	MenuFile      string
	NutritionFile string
	WeatherGrace  time.Duration
}

type MonthSummary struct {
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Key       string `json:"key"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
	Current   bool   `json:"current"`
}

func (d MonthDeps) now() time.Time {
	return utils.NowIn(d.Clock, d.Location)
}

func (d MonthDeps) schoolYearStart() int {
	if d.StartYear > 0 {
		return d.StartYear
	}
	return domain.SchoolYearStart(d.now())
}

func (d MonthDeps) initialSelection() domain.MonthSelection {
	return domain.InitialSelection(d.now(), d.StartYear)
}

// selectionFromParam lê o parâmetro :month da rota
func (d MonthDeps) selectionFromParam(r *http.Request) (domain.MonthSelection, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("month")

	month, err := utils.ParseMonth(raw)
	if err != nil {
		return domain.MonthSelection{}, domain.NewMenuError(domain.ErrInvalidMonth, domain.ErrCodeInvalidMonth, raw)
	}

	return domain.NewMonthSelection(month, d.schoolYearStart())
}

// settledView carrega a seleção num controller descartável. O menu é esperado;
// o tempo só entra se chegar dentro de WeatherGrace.
func (d MonthDeps) settledView(ctx context.Context, sel domain.MonthSelection) (domain.ViewState, error) {
	controller := d.Controllers(ctx)
	defer controller.Close()

	controller.Start(sel)
	return controller.Settle(ctx, d.WeatherGrace)
}

func ListMonths(deps MonthDeps) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, err := deps.Documents.GetMenuDocument(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("handler: documento de menu indisponível")
		}

		now := deps.now()
		months := make([]MonthSummary, 0, len(domain.AcademicMonths))
		for _, sel := range domain.Cycle(deps.schoolYearStart()) {
			_, published := doc.Bucket(sel)
			months = append(months, MonthSummary{
				Month:     sel.Month,
				Year:      sel.Year(),
				Key:       sel.Key(),
				Title:     deps.Renderer.Title(sel),
				Published: published,
				Current:   sel.Compare(now) == domain.Current,
			})
		}

		writeJSON(w, http.StatusOK, months)
	})
}

func GetMonthView(deps MonthDeps) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sel, err := deps.selectionFromParam(r)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInvalidMonth)
			return
		}

		state, err := deps.settledView(r.Context(), sel)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Tempo esgotado ao carregar o mês", nil)
			return
		}

		writeJSON(w, http.StatusOK, state)
	})
}

func ExportMonth(deps MonthDeps) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sel, err := deps.selectionFromParam(r)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInvalidMonth)
			return
		}

		w.Header().Set("Content-Type", exporting.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporting.FileName(sel)))

		if err := deps.Exporter.ExportMonth(r.Context(), sel, w); err != nil {
			w.Header().Del("Content-Disposition")
			log.ForContext(r.Context()).WithError(err).WithField("month", sel.Key()).Warn("handler: falha na exportação")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}
	})
}

func GetWeather(weather openmeteo.WeatherIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sample, err := weather.CurrentWeather(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("handler: tempo indisponível")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Serviço de tempo indisponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"temperature": sample.Temperature,
			"code":        sample.Code,
			"condition":   sample.Condition(),
			"emoji":       sample.Emoji(),
			"label":       sample.Label(),
			"observed_at": sample.ObservedAt,
		})
	})
}
