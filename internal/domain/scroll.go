package domain

import (
	"fmt"
	"time"
)

// HeaderOffset é a altura do cabeçalho fixo da página, em pixels
const HeaderOffset = 80

type ScrollTarget struct {
	Day     int    `json:"day"`
	Anchor  string `json:"anchor"`
	Offset  int    `json:"offset"`
	IsToday bool   `json:"is_today"`
}

// Anchor é o id do elemento HTML do card de um dia
func Anchor(day int) string {
	return fmt.Sprintf("day-%d", day)
}

// ScrollTargetFor escolhe o card a ser exibido após o carregamento: o de hoje,
// senão o primeiro dia futuro com menu. Só vale para o mês real corrente.
func ScrollTargetFor(sel MonthSelection, days []int, now time.Time) *ScrollTarget {
	if sel.Compare(now) != Current {
		return nil
	}

	today := now.Day()
	next := 0
	for _, d := range days {
		if d == today {
			return &ScrollTarget{Day: d, Anchor: Anchor(d), Offset: HeaderOffset, IsToday: true}
		}
		if d > today && (next == 0 || d < next) {
			next = d
		}
	}

	if next == 0 {
		return nil
	}

	return &ScrollTarget{Day: next, Anchor: Anchor(next), Offset: HeaderOffset}
}
