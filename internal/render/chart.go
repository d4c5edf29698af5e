package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/analyzer"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
)

// ChartOptions sizes the bar chart.
type ChartOptions struct {
	Width  int
	Height int
}

// BarChart draws entries as a PNG bar chart: one bar per token, bar height
// is the count.
func BarChart(w io.Writer, entries []analyzer.Entry, opts ChartOptions) error {
	if len(entries) == 0 {
		return apperrors.ErrEmptyCorpus
	}
	f, err := loadFont()
	if err != nil {
		return apperrors.Newf(apperrors.ErrRender, "loading font: %v", err)
	}

	bars := make([]chart.Value, 0, len(entries))
	maxCount := 0
	for _, e := range entries {
		bars = append(bars, chart.Value{Label: e.Token, Value: float64(e.Count)})
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	graph := chart.BarChart{
		Title:  fmt.Sprintf("Top %d Words", len(entries)),
		Font:   f,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth:   barWidth(opts.Width, len(entries)),
		BarSpacing: 10,
		YAxis: chart.YAxis{
			Name:           "Frequency",
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
			ValueFormatter: intFormatter,
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return apperrors.Newf(apperrors.ErrRender, "bar chart: %v", err)
	}
	return nil
}

func barWidth(width, n int) int {
	bw := width/n - 20
	switch {
	case bw < 8:
		return 8
	case bw > 120:
		return 120
	default:
		return bw
	}
}

func intFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
