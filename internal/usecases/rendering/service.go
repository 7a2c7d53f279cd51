package rendering

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goodsign/monday"
	"github.com/luciobotteri/refezionify-web/internal/domain"
)

const (
	TodaySuffix      = " (Oggi!)"
	NutritionHeading = "Valutazione nutrizionale"
	titlePrefix      = "Menù di "
)

var itemSeparators = regexp.MustCompile(`[,;\n]`)

// Renderer transforma o bucket de um mês nos cards exibidos na página
type Renderer interface {
	Cards(sel domain.MonthSelection, bucket map[string]string, nutrition domain.NutritionDocument, now time.Time) []domain.DayCard
	Title(sel domain.MonthSelection) string
}

type CardRenderer struct {
	location *time.Location
}

func NewRenderer(loc *time.Location) Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &CardRenderer{location: loc}
}

func (r *CardRenderer) Title(sel domain.MonthSelection) string {
	return FormatTitle(sel, r.location)
}

// Cards devolve um card por dia válido, em ordem numérica. O card de hoje recebe
// o sufixo no título; a nutrição só entra quando houver conteúdo.
func (r *CardRenderer) Cards(sel domain.MonthSelection, bucket map[string]string, nutrition domain.NutritionDocument, now time.Time) []domain.DayCard {
	days := domain.Days(sel, bucket)
	cards := make([]domain.DayCard, 0, len(days))

	now = now.In(r.location)
	for _, d := range days {
		date := time.Date(sel.Year(), time.Month(sel.Month), d.Day, 12, 0, 0, 0, r.location)
		isToday := sameDay(date, now)

		heading := FormatHeading(date)
		if isToday {
			heading += TodaySuffix
		}

		card := domain.DayCard{
			Day:     d.Day,
			Key:     d.Key,
			Anchor:  domain.Anchor(d.Day),
			Heading: heading,
			IsToday: isToday,
			Items:   SplitItems(d.Text),
		}

		if entry, ok := nutrition.Lookup(d.Key); ok {
			card.Nutrition = &entry
		}

		cards = append(cards, card)
	}

	return cards
}

// SplitItems separa o texto do menu em pratos, sem itens vazios
func SplitItems(text string) []string {
	parts := itemSeparators.Split(text, -1)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, capitalize(p))
	}
	return items
}

// FormatHeading formata a data como "Lunedì 7 aprile"
func FormatHeading(t time.Time) string {
	return capitalize(monday.Format(t, "Monday 2 January", monday.LocaleItIT))
}

// FormatTitle devolve "Menù di aprile 2025"
func FormatTitle(sel domain.MonthSelection, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return titlePrefix + monday.Format(sel.FirstDay(loc), "January 2006", monday.LocaleItIT)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
