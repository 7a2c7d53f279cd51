package exporting

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/usecases/menuing"
	"github.com/luciobotteri/refezionify-web/internal/usecases/rendering"
	"github.com/luciobotteri/refezionify-web/pkg/log"
	"github.com/luciobotteri/refezionify-web/pkg/utils"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []interface{}{"Giorno", "Data", "Menù", "Analisi", "Consiglio"}

type Exporter interface {
	ExportMonth(ctx context.Context, sel domain.MonthSelection, w io.Writer) error
}

type XLSXExporter struct {
	service  menuing.Service
	renderer rendering.Renderer
	clock    clockwork.Clock
	location *time.Location
}

func NewExporter(service menuing.Service, renderer rendering.Renderer, clock clockwork.Clock, loc *time.Location) Exporter {
	return &XLSXExporter{
		service:  service,
		renderer: renderer,
		clock:    clock,
		location: loc,
	}
}

// ExportMonth grava uma planilha com um dia por linha. Um mês sem menu publicado
// devolve ErrDocumentNotFound.
func (e *XLSXExporter) ExportMonth(ctx context.Context, sel domain.MonthSelection, w io.Writer) error {
	data := e.service.LoadMonth(ctx, sel)
	if !data.Found {
		return domain.NewMenuError(domain.ErrDocumentNotFound, domain.ErrCodeDocumentNotFound, sel.Key())
	}

	cards := e.renderer.Cards(sel, data.Bucket, data.Nutrition, utils.NowIn(e.clock, e.location))

	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(sel)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "erro ao renomear planilha")
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return errors.Wrap(err, "erro ao criar stream da planilha")
	}

	if err := sw.SetRow("A1", header); err != nil {
		return errors.Wrap(err, "erro ao gravar cabeçalho")
	}

	for i, card := range cards {
		analysis, advice := "", ""
		if card.Nutrition != nil {
			analysis, advice = card.Nutrition.Analysis, card.Nutrition.Advice
		}

		row := []interface{}{
			card.Day,
			strings.TrimSuffix(card.Heading, rendering.TodaySuffix),
			strings.Join(card.Items, "\n"),
			analysis,
			advice,
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return errors.Wrapf(err, "erro ao gravar linha %d", i+2)
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "erro ao finalizar planilha")
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "erro ao escrever planilha")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"month": sel.Key(),
		"days":  len(cards),
	}).Info("exporting: planilha gerada")

	return nil
}

// SheetName é o nome da aba, por exemplo "2025-04"
func SheetName(sel domain.MonthSelection) string {
	return sel.Key()
}

// FileName é o nome sugerido para download
func FileName(sel domain.MonthSelection) string {
	return "menu-" + sel.Key() + ".xlsx"
}
