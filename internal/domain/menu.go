package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MenuDocument é o conteúdo de menu-data.json: "YYYY-MM" -> dia -> texto do menu
type MenuDocument map[string]map[string]string

// MonthMenu é o cardápio de um dia já resolvido
type MonthMenu struct {
	Day  int
	Key  string
	Text string
}

// Bucket devolve o mapa de dias do mês selecionado. ok é false se o mês não foi publicado.
func (d MenuDocument) Bucket(sel MonthSelection) (map[string]string, bool) {
	bucket, ok := d[sel.Key()]
	return bucket, ok
}

// Days converte o mapa de dias em uma lista ordenada pelo número do dia.
// Chaves inválidas são ignoradas. Se o mesmo dia aparecer mais de uma vez
// ("7" e "07"), prevalece a forma sem zero à esquerda.
func Days(sel MonthSelection, bucket map[string]string) []MonthMenu {
	year, month := sel.Year(), sel.Month

	byDay := make(map[int]MonthMenu, len(bucket))
	for rawDay, text := range bucket {
		day, err := ParseDay(year, month, rawDay)
		if err != nil {
			continue
		}

		canonical := strconv.Itoa(day) == strings.TrimSpace(rawDay)
		if _, seen := byDay[day]; seen && !canonical {
			continue
		}

		byDay[day] = MonthMenu{
			Day:  day,
			Key:  fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			Text: text,
		}
	}

	days := make([]MonthMenu, 0, len(byDay))
	for _, m := range byDay {
		days = append(days, m)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Day < days[j].Day
	})

	return days
}
