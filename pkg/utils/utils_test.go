package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("04")
	require.NoError(t, err)
	assert.Equal(t, 4, m)

	m, err = ParseMonth("12")
	require.NoError(t, err)
	assert.Equal(t, 12, m)

	for _, invalid := range []string{"", "abc", "0", "13", "-1"} {
		_, err := ParseMonth(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestNowIn(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 6, 23, 30, 0, 0, time.UTC))
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	now := NowIn(clock, rome)
	assert.Equal(t, 7, now.Day(), "em Roma já é o dia seguinte")
}

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)
	b, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)

	short, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, short, 6)
}
