package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AbsoluteDate(t *testing.T) {
	p := NewParser()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2024, 11, 1, 9, 0, 0, 0, loc)

	got, err := p.Parse("2024-12-20", now, loc)
	require.NoError(t, err)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 20, got.Day())
	assert.Equal(t, loc, got.Location())
}

func TestParse_NaturalLanguage(t *testing.T) {
	p := NewParser()
	now := time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)

	got, err := p.Parse("tomorrow", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Day())
	assert.Equal(t, time.November, got.Month())
}

func TestParse_Unparseable(t *testing.T) {
	p := NewParser()
	now := time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)

	_, err := p.Parse("not a date at all zzz", now, time.UTC)
	assert.ErrorIs(t, err, ErrUnparseable)

	_, err = p.Parse("   ", now, time.UTC)
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = LoadLocation("Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())

	_, err = LoadLocation("Not/AZone")
	assert.Error(t, err)
}
