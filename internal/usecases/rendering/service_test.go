package rendering

import (
	"strings"
	"testing"
	"time"

	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitItems(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "vírgula e ponto e vírgula", text: "pasta, pollo; insalata", want: []string{"Pasta", "Pollo", "Insalata"}},
		{name: "quebra de linha", text: "riso\nmela", want: []string{"Riso", "Mela"}},
		{name: "itens vazios", text: " , ;\n pane ,", want: []string{"Pane"}},
		{name: "primeira letra acentuata", text: "èrbe", want: []string{"Èrbe"}},
		{name: "texto vazio", text: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitItems(tt.text))
		})
	}
}

func TestFormatHeading(t *testing.T) {
	date := time.Date(2025, time.April, 7, 12, 0, 0, 0, time.UTC)

	heading := FormatHeading(date)
	assert.Equal(t, "lunedì 7 aprile", strings.ToLower(heading))
	assert.Equal(t, "L", heading[:1])
}

func TestFormatTitle(t *testing.T) {
	sel := domain.MonthSelection{Month: 4, StartYear: 2024}
	assert.Equal(t, "menù di aprile 2025", strings.ToLower(FormatTitle(sel, time.UTC)))
}

func TestCards(t *testing.T) {
	r := NewRenderer(time.UTC)
	sel := domain.MonthSelection{Month: 4, StartYear: 2024}
	now := time.Date(2025, time.April, 7, 9, 0, 0, 0, time.UTC)

	bucket := map[string]string{
		"8":   "risotto",
		"7":   "pasta, pollo",
		"abc": "ignorato",
		"31":  "fuori mese",
	}
	nutrition := domain.NutritionDocument{
		"2025-04-07": {Analysis: "Equilibrato"},
		"2025-04-08": {},
	}

	cards := r.Cards(sel, bucket, nutrition, now)
	require.Len(t, cards, 2)

	today := cards[0]
	assert.Equal(t, 7, today.Day)
	assert.True(t, today.IsToday)
	assert.Equal(t, "day-7", today.Anchor)
	assert.True(t, strings.HasSuffix(today.Heading, TodaySuffix))
	assert.Equal(t, []string{"Pasta", "Pollo"}, today.Items)
	require.NotNil(t, today.Nutrition)
	assert.Equal(t, "Equilibrato", today.Nutrition.Analysis)

	other := cards[1]
	assert.False(t, other.IsToday)
	assert.False(t, strings.HasSuffix(other.Heading, TodaySuffix))
	assert.Nil(t, other.Nutrition, "avaliação vazia não gera bloco")
}
