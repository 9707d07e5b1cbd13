// ABOUTME: Tests for chart series building and PNG rendering.
// ABOUTME: Covers ordering, the no-chart cases, and data URI output.
package chart_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/internal/chart"
	"liftlog/internal/models"
)

func entry(id int64, exercise string, weight float64, date string) *models.WorkoutEntry {
	return &models.WorkoutEntry{ID: id, Exercise: exercise, Weight: weight, Date: date}
}

func TestBuildSeriesOrdersByDate(t *testing.T) {
	entries := []*models.WorkoutEntry{
		entry(2, "Squat", 105, "2024-01-10"),
		entry(1, "Squat", 100, "2024-01-01"),
		entry(3, "Bench Press", 80, "2024-01-05"),
	}

	points, err := chart.BuildSeries(entries, "Squat")
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, 100.0, points[0].Weight)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), points[1].Date)
	assert.Equal(t, 105.0, points[1].Weight)
}

func TestBuildSeriesNoChart(t *testing.T) {
	entries := []*models.WorkoutEntry{entry(1, "Squat", 100, "2024-01-01")}

	// No exercise selected.
	points, err := chart.BuildSeries(entries, "")
	require.NoError(t, err)
	assert.Nil(t, points)

	// The "All" sentinel means no selection either.
	points, err = chart.BuildSeries(entries, "All")
	require.NoError(t, err)
	assert.Nil(t, points)

	// No matching entries.
	points, err = chart.BuildSeries(entries, "Bench Press")
	require.NoError(t, err)
	assert.Nil(t, points)
}

func TestBuildSeriesBadDate(t *testing.T) {
	entries := []*models.WorkoutEntry{entry(1, "Squat", 100, "not-a-date")}

	_, err := chart.BuildSeries(entries, "Squat")
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	points := []chart.Point{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Weight: 100},
		{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Weight: 105},
	}

	png, err := chart.RenderPNG(points, "Squat")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestRenderPNGSinglePoint(t *testing.T) {
	points := []chart.Point{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Weight: 100},
	}

	png, err := chart.RenderPNG(points, "Squat")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestDataURI(t *testing.T) {
	entries := []*models.WorkoutEntry{
		entry(1, "Squat", 100, "2024-01-01"),
		entry(2, "Squat", 105, "2024-01-10"),
	}

	uri, err := chart.DataURI(entries, "Squat")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	uri, err = chart.DataURI(entries, "")
	require.NoError(t, err)
	assert.Empty(t, uri, "no selection yields no chart, not an error")
}
