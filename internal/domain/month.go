package domain

import (
	"fmt"
	"strings"
	"time"
)

// AcademicMonths é o ciclo do ano letivo, de setembro a junho.
var AcademicMonths = []int{9, 10, 11, 12, 1, 2, 3, 4, 5, 6}

// Direction é o sentido de navegação entre meses
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// ParseDirection aceita "next"/"forward" e "prev"/"previous"/"backward"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next", "forward":
		return Forward, nil
	case "prev", "previous", "backward":
		return Backward, nil
	default:
		return 0, NewMenuError(ErrInvalidDirection, ErrCodeInvalidDirection, s)
	}
}

func (d Direction) String() string {
	if d == Backward {
		return "prev"
	}
	return "next"
}

// MonthSelection é um mês do ciclo letivo junto com o ano de início do ano letivo.
// O valor zero não é válido; use NewMonthSelection ou InitialSelection.
type MonthSelection struct {
	Month     int `json:"month"`
	StartYear int `json:"start_year"`
}

// Relation indica a posição de uma seleção em relação ao mês corrente real
type Relation int

const (
	Past Relation = iota - 1
	Current
	Future
)

func NewMonthSelection(month, startYear int) (MonthSelection, error) {
	if indexOf(month) < 0 {
		return MonthSelection{}, NewMenuError(ErrInvalidMonth, ErrCodeInvalidMonth, fmt.Sprintf("mese %d", month))
	}
	return MonthSelection{Month: month, StartYear: startYear}, nil
}

// SchoolYearStart devolve o ano em que começou o ano letivo que contém t
func SchoolYearStart(t time.Time) int {
	if t.Month() >= time.September {
		return t.Year()
	}
	return t.Year() - 1
}

// InitialSelection devolve o mês real corrente. Julho e agosto ficam em junho,
// o último mês do ano letivo que acabou de terminar. startYear > 0 substitui o
// ano derivado do relógio.
func InitialSelection(now time.Time, startYear int) MonthSelection {
	if startYear <= 0 {
		startYear = SchoolYearStart(now)
	}

	month := int(now.Month())
	if month == int(time.July) || month == int(time.August) {
		month = int(time.June)
	}

	return MonthSelection{Month: month, StartYear: startYear}
}

// Year deriva o ano civil: setembro a dezembro no ano de início, o resto no seguinte
func (s MonthSelection) Year() int {
	if s.Month > 8 {
		return s.StartYear
	}
	return s.StartYear + 1
}

// Key é a chave do documento de menu, "YYYY-MM"
func (s MonthSelection) Key() string {
	return MonthKey(s.Year(), s.Month)
}

// Advance move um passo no ciclo. Nas extremidades devolve a mesma seleção.
func (s MonthSelection) Advance(direction Direction) MonthSelection {
	idx := indexOf(s.Month)
	if idx < 0 {
		return s
	}

	next := idx + int(direction)
	if next < 0 || next >= len(AcademicMonths) {
		return s
	}

	return MonthSelection{Month: AcademicMonths[next], StartYear: s.StartYear}
}

func (s MonthSelection) IsFirst() bool {
	return indexOf(s.Month) == 0
}

func (s MonthSelection) IsLast() bool {
	return indexOf(s.Month) == len(AcademicMonths)-1
}

// FirstDay é o primeiro dia do mês selecionado no fuso informado
func (s MonthSelection) FirstDay(loc *time.Location) time.Time {
	return time.Date(s.Year(), time.Month(s.Month), 1, 0, 0, 0, 0, loc)
}

// Compare compara a seleção com o mês civil de now
func (s MonthSelection) Compare(now time.Time) Relation {
	selected := s.Year()*12 + s.Month
	current := now.Year()*12 + int(now.Month())

	switch {
	case selected < current:
		return Past
	case selected > current:
		return Future
	default:
		return Current
	}
}

// Cycle devolve as dez seleções do ano letivo, em ordem
func Cycle(startYear int) []MonthSelection {
	selections := make([]MonthSelection, 0, len(AcademicMonths))
	for _, m := range AcademicMonths {
		selections = append(selections, MonthSelection{Month: m, StartYear: startYear})
	}
	return selections
}

func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func indexOf(month int) int {
	for i, m := range AcademicMonths {
		if m == month {
			return i
		}
	}
	return -1
}
