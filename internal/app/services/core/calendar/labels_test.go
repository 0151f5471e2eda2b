package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabeler_Polish(t *testing.T) {
	labeler, err := NewLabeler("pl")
	require.NoError(t, err)

	moment := time.Date(2024, time.June, 12, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "12.06 (środa) 09:05", labeler.FullDate(moment))
	assert.Equal(t, "16.06 (niedziela)", labeler.Day(moment.AddDate(0, 0, 4)))
}

func TestLabeler_English(t *testing.T) {
	labeler, err := NewLabeler("en")
	require.NoError(t, err)

	assert.Equal(t, "Monday", labeler.Weekday(time.Monday))
}

func TestLabeler_InvalidLocale(t *testing.T) {
	_, err := NewLabeler("not a locale!")
	assert.Error(t, err)
}

func TestLabeler_NilFallsBackToEnglish(t *testing.T) {
	var labeler *Labeler
	assert.Equal(t, "Friday", labeler.Weekday(time.Friday))
}
