package report

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cracklab/internal/fatigue"
)

const plotHeight = 14

// GrowthPlot renders the crack-size trace as an ascii chart, columns
// spaced evenly in accumulated cycles.
func GrowthPlot(history []fatigue.GrowthSample, width int) string {
	if len(history) < 2 {
		return "not enough growth samples to plot"
	}
	if width < 10 {
		width = 10
	}

	series := resample(history, width, func(s fatigue.GrowthSample) float64 { return s.A })
	graph := asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(fmt.Sprintf("crack size (mm) over %.4g cycles", history[len(history)-1].Cycles)),
	)
	return graph
}

// IntensityPlot renders the stress-intensity trace.
func IntensityPlot(history []fatigue.GrowthSample, width int) string {
	if len(history) < 2 {
		return "not enough growth samples to plot"
	}
	if width < 10 {
		width = 10
	}

	series := resample(history, width, func(s fatigue.GrowthSample) float64 { return s.K })
	return asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Caption("ΔK (MPa·√m) over growth"),
	)
}

// resample picks width points evenly spaced in cycles, so the plot's x
// axis tracks life consumed rather than step index.
func resample(history []fatigue.GrowthSample, width int, value func(fatigue.GrowthSample) float64) []float64 {
	total := history[len(history)-1].Cycles
	series := make([]float64, 0, width)

	idx := 0
	for i := 0; i < width; i++ {
		target := total * float64(i) / float64(width-1)
		for idx < len(history)-1 && history[idx+1].Cycles <= target {
			idx++
		}
		series = append(series, value(history[idx]))
	}
	return series
}
