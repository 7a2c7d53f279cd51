package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/luciobotteri/refezionify-web/infrastructure/repository"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/usecases/rendering"
	"github.com/luciobotteri/refezionify-web/pkg/apiErrors"
	"github.com/luciobotteri/refezionify-web/pkg/log"
	"github.com/luciobotteri/refezionify-web/pkg/utils"
)

//go:embed templates/page.html.tmpl
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/page.html.tmpl"))

type pageData struct {
	BasePath         string
	State            domain.ViewState
	Previous         int
	Next             int
	NutritionHeading string
}

// PageHandler renderiza o mês pedido em ?month=N; um valor inválido cai no mês inicial
func PageHandler(basePath string, deps MonthDeps) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sel := deps.initialSelection()
		if raw := r.URL.Query().Get("month"); raw != "" {
			if month, err := utils.ParseMonth(raw); err == nil {
				if requested, err := domain.NewMonthSelection(month, sel.StartYear); err == nil {
					sel = requested
				}
			}
		}

		state, err := deps.settledView(r.Context(), sel)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("month", sel.Key()).Warn("handler: página servida ainda carregando")
		}

		data := pageData{
			BasePath:         basePath,
			State:            state,
			Previous:         sel.Advance(domain.Backward).Month,
			Next:             sel.Advance(domain.Forward).Month,
			NutritionHeading: rendering.NutritionHeading,
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, data); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao renderizar página")
			writeInternalError(w, "Erro ao renderizar página")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	})
}

// DocumentHandler devolve o documento estático como publicado
func DocumentHandler(documents repository.DocumentRepository, name repository.DocumentName) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := documents.ReadRaw(r.Context(), name)
		if err != nil {
			if errors.Is(err, domain.ErrDocumentNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDocumentNotFound, "Documento não encontrado", string(name))
				return
			}
			log.ForContext(r.Context()).WithError(err).WithField("document", name).Error("handler: erro ao ler documento")
			apiErrors.WriteError(w, apiErrors.ErrStorage, "Erro ao ler documento", string(name))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(data)
	})
}
