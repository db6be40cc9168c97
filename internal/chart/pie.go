package chart

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// Pie renders a PNG pie chart of the given parallel labels and values to w.
// Slices with a non-positive total are skipped: a pie cannot represent them,
// and amounts carry any sign. When nothing remains to draw, a single neutral
// slice is rendered so the endpoint always produces a valid image.
func Pie(w io.Writer, title string, labels []string, values []float64) error {
	sliceValues := make([]chart.Value, 0, len(labels))
	for i, label := range labels {
		if values[i] <= 0 {
			continue
		}
		sliceValues = append(sliceValues, chart.Value{
			Label: label,
			Value: values[i],
		})
	}
	if len(sliceValues) == 0 {
		sliceValues = append(sliceValues, chart.Value{Label: "no expenses", Value: 1})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  600,
		Height: 600,
		Values: sliceValues,
	}
	return pie.Render(chart.PNG, w)
}
