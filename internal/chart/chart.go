// ABOUTME: Chart series builder for exercise weight over time.
// ABOUTME: Renders a PNG line plot and wraps it as an embeddable data URI.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"liftlog/internal/models"
	"liftlog/internal/storage"
)

// Point is one (date, weight) sample for the selected exercise.
type Point struct {
	Date   time.Time
	Weight float64
}

// BuildSeries projects entries of the selected exercise onto date-ordered
// (date, weight) pairs. Returns nil when no exercise is selected or when
// no entries match; both mean "no chart", not an error.
func BuildSeries(entries []*models.WorkoutEntry, exercise string) ([]Point, error) {
	if exercise == "" || exercise == storage.AllExercises {
		return nil, nil
	}

	var points []Point
	for _, e := range entries {
		if e.Exercise != exercise {
			continue
		}
		d, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q of entry %d: %w", e.Date, e.ID, err)
		}
		points = append(points, Point{Date: d, Weight: e.Weight})
	}
	if len(points) == 0 {
		return nil, nil
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

// RenderPNG draws the series as a single line plot with markers and
// returns the encoded PNG bytes.
func RenderPNG(points []Point, exercise string) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to render")
	}

	xs := make([]time.Time, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.Date)
		ys = append(ys, p.Weight)
	}
	// go-chart cannot render a zero-width x range; pad a lone sample out
	// by one day at the same weight.
	if len(xs) == 1 {
		xs = append(xs, xs[0].AddDate(0, 0, 1))
		ys = append(ys, ys[0])
	}

	series := chart.TimeSeries{
		Name:    exercise,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			DotColor:    chart.ColorBlue,
			DotWidth:    4,
		},
	}

	ch := chart.Chart{
		Title: fmt.Sprintf("%s progress", exercise),
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  chart.XAxis{Name: "Date"},
		YAxis:  chart.YAxis{Name: "Weight"},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI builds the series and renders it as a self-contained PNG data
// URI. Returns "" with a nil error when there is nothing to chart.
func DataURI(entries []*models.WorkoutEntry, exercise string) (string, error) {
	points, err := BuildSeries(entries, exercise)
	if err != nil {
		return "", err
	}
	if len(points) == 0 {
		return "", nil
	}

	png, err := RenderPNG(points, exercise)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
