package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayKey monta a chave "YYYY-MM-DD" usada no documento de nutrição.
// O dia pode vir com ou sem zero à esquerda.
func DayKey(year, month int, day string) (string, error) {
	d, err := ParseDay(year, month, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, d), nil
}

// ParseDay converte a chave de dia do documento de menu em número,
// validando-a contra o calendário do mês.
func ParseDay(year, month int, day string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return 0, NewMenuError(ErrInvalidDay, "", day)
	}

	if d < 1 || d > daysIn(year, month) {
		return 0, NewMenuError(ErrInvalidDay, "", day)
	}

	return d, nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
