package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthSelection_Year(t *testing.T) {
	tests := []struct {
		month    int
		expected int
	}{
		{month: 9, expected: 2024},
		{month: 12, expected: 2024},
		{month: 1, expected: 2025},
		{month: 6, expected: 2025},
	}

	for _, tt := range tests {
		sel, err := NewMonthSelection(tt.month, 2024)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, sel.Year(), "mês %d", tt.month)
	}
}

func TestMonthSelection_Key(t *testing.T) {
	sel, err := NewMonthSelection(4, 2024)
	require.NoError(t, err)
	assert.Equal(t, "2025-04", sel.Key())

	sel, err = NewMonthSelection(10, 2024)
	require.NoError(t, err)
	assert.Equal(t, "2024-10", sel.Key())
}

func TestNewMonthSelection_OutsideCycle(t *testing.T) {
	for _, m := range []int{0, 7, 8, 13, -1} {
		_, err := NewMonthSelection(m, 2024)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMonth))

		var menuErr *MenuError
		require.True(t, errors.As(err, &menuErr))
		assert.Equal(t, ErrCodeInvalidMonth, menuErr.Code)
	}
}

func TestMonthSelection_AdvanceRoundTrip(t *testing.T) {
	for _, m := range AcademicMonths {
		sel := MonthSelection{Month: m, StartYear: 2024}

		forward := sel.Advance(Forward)
		if sel.IsLast() {
			assert.Equal(t, sel, forward, "deve ser no-op no último mês")
		} else {
			assert.Equal(t, sel, forward.Advance(Backward), "ida e volta a partir de %d", m)
		}

		backward := sel.Advance(Backward)
		if sel.IsFirst() {
			assert.Equal(t, sel, backward, "deve ser no-op no primeiro mês")
		} else {
			assert.Equal(t, sel, backward.Advance(Forward), "volta e ida a partir de %d", m)
		}
	}
}

func TestMonthSelection_AdvanceCrossesYear(t *testing.T) {
	dec := MonthSelection{Month: 12, StartYear: 2024}

	jan := dec.Advance(Forward)
	assert.Equal(t, 1, jan.Month)
	assert.Equal(t, 2025, jan.Year())
	assert.Equal(t, "2025-01", jan.Key())
}

func TestMonthSelection_Bounds(t *testing.T) {
	sep := MonthSelection{Month: 9, StartYear: 2024}
	jun := MonthSelection{Month: 6, StartYear: 2024}

	assert.True(t, sep.IsFirst())
	assert.False(t, sep.IsLast())
	assert.True(t, jun.IsLast())
	assert.Equal(t, jun, jun.Advance(Forward))
	assert.Equal(t, sep, sep.Advance(Backward))
}

func TestInitialSelection(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		override  int
		month     int
		startYear int
	}{
		{name: "outubro", now: time.Date(2024, 10, 3, 9, 0, 0, 0, time.UTC), month: 10, startYear: 2024},
		{name: "abril", now: time.Date(2025, 4, 7, 9, 0, 0, 0, time.UTC), month: 4, startYear: 2024},
		{name: "julho vira junho", now: time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC), month: 6, startYear: 2024},
		{name: "agosto vira junho", now: time.Date(2025, 8, 31, 9, 0, 0, 0, time.UTC), month: 6, startYear: 2024},
		{name: "ano configurado", now: time.Date(2025, 4, 7, 9, 0, 0, 0, time.UTC), override: 2030, month: 4, startYear: 2030},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := InitialSelection(tt.now, tt.override)
			assert.Equal(t, tt.month, sel.Month)
			assert.Equal(t, tt.startYear, sel.StartYear)
		})
	}
}

func TestMonthSelection_Compare(t *testing.T) {
	now := time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, Current, MonthSelection{Month: 4, StartYear: 2024}.Compare(now))
	assert.Equal(t, Past, MonthSelection{Month: 3, StartYear: 2024}.Compare(now))
	assert.Equal(t, Past, MonthSelection{Month: 12, StartYear: 2024}.Compare(now))
	assert.Equal(t, Future, MonthSelection{Month: 5, StartYear: 2024}.Compare(now))
	assert.Equal(t, Future, MonthSelection{Month: 9, StartYear: 2025}.Compare(now))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("next")
	require.NoError(t, err)
	assert.Equal(t, Forward, d)

	d, err = ParseDirection(" PREV ")
	require.NoError(t, err)
	assert.Equal(t, Backward, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestCycle(t *testing.T) {
	cycle := Cycle(2024)
	require.Len(t, cycle, len(AcademicMonths))
	assert.Equal(t, "2024-09", cycle[0].Key())
	assert.Equal(t, "2025-06", cycle[len(cycle)-1].Key())
}
