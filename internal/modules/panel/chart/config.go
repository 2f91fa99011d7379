// Package chart builds and renders the precipitation line chart.
package chart

import (
	"fmt"

	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

const (
	Unit        = "mm/hr"
	MaxTicks    = 6
	MaxRotation = 0
	Tension     = 0.4
)

// Config is everything a surface needs to draw one chart.
type Config struct {
	Labels      []string
	Values      []float64
	Theme       Theme
	ShowLegend  bool
	MaxTicks    int
	MaxRotation int
	BeginAtZero bool
	Tension     float64
}

// BuildConfig maps a series onto equal-length label and value slices, keeping input order.
func BuildConfig(series []types.ChartPoint, theme Theme) Config {
	labels := make([]string, len(series))
	values := make([]float64, len(series))
	for i, p := range series {
		labels[i] = p.Time
		values[i] = p.Precipitation
	}
	return Config{
		Labels:      labels,
		Values:      values,
		Theme:       theme,
		ShowLegend:  false,
		MaxTicks:    MaxTicks,
		MaxRotation: MaxRotation,
		BeginAtZero: true,
		Tension:     Tension,
	}
}

// Points returns the number of data points in cfg.
func (c Config) Points() int {
	return len(c.Values)
}

// FormatTooltip renders a y value the way the tooltip shows it.
func FormatTooltip(v float64) string {
	return fmt.Sprintf("%.2f %s", v, Unit)
}

// FormatYTick renders a y axis tick label.
func FormatYTick(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// VisibleTicks returns the indices of the x labels that survive auto-skipping
// n labels down to at most limit.
func VisibleTicks(n, limit int) []int {
	if n <= 0 {
		return nil
	}
	step := 1
	if limit > 0 && n > limit {
		step = (n + limit - 1) / limit
	}
	out := make([]int, 0, n/step+1)
	for i := 0; i < n; i += step {
		out = append(out, i)
	}
	return out
}
