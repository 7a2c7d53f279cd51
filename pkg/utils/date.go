package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// ParseMonth converte o parâmetro "month" (1-12, com ou sem zero à esquerda)
func ParseMonth(s string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if m < 1 || m > 12 {
		return 0, strconv.ErrRange
	}
	return m, nil
}

// NowIn devolve o horário atual do relógio no fuso informado
func NowIn(clock clockwork.Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return clock.Now().In(loc)
}
