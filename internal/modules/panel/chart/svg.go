package chart

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"math"
)

// Drawing area in SVG user units.
const (
	svgWidth     = 600
	svgHeight    = 200
	marginLeft   = 40
	marginRight  = 10
	marginTop    = 10
	marginBottom = 24
	yIntervals   = 4
	gradientID   = "precipitation-gradient"
)

// yScale rounds outward, so the axis can gain up to two intervals.
const maxYIntervals = yIntervals + 2

type point struct{ x, y float64 }

// DrawSVG renders cfg as a standalone inline SVG element.
func DrawSVG(cfg Config) ([]byte, error) {
	if len(cfg.Labels) != len(cfg.Values) {
		return nil, errors.New("chart labels and values differ in length")
	}
	for _, v := range cfg.Values {
		if !isFinite(v) {
			return nil, fmt.Errorf("chart value %v is not finite", v)
		}
	}

	plotW := float64(svgWidth - marginLeft - marginRight)
	plotH := float64(svgHeight - marginTop - marginBottom)
	baseline := float64(marginTop) + plotH

	yMin, yMax, step, err := yScale(cfg.Values, cfg.BeginAtZero)
	if err != nil {
		return nil, err
	}
	scaleY := func(v float64) float64 {
		return baseline - (v-yMin)/(yMax-yMin)*plotH
	}

	pts := make([]point, len(cfg.Values))
	for i, v := range cfg.Values {
		x := float64(marginLeft) + plotW/2
		if len(cfg.Values) > 1 {
			x = float64(marginLeft) + float64(i)*plotW/float64(len(cfg.Values)-1)
		}
		pts[i] = point{x: x, y: scaleY(v)}
	}

	th := cfg.Theme
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" class="precipitation-chart" viewBox="0 0 %d %d" preserveAspectRatio="none" role="img" aria-label="Precipitation">`, svgWidth, svgHeight)
	fmt.Fprintf(&b, `<style>.pt{fill:transparent}.pt:hover{fill:%s;stroke:#fff;stroke-width:2}</style>`, html.EscapeString(th.Line))
	fmt.Fprintf(&b, `<defs><linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`, gradientID)
	fmt.Fprintf(&b, `<stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/>`, html.EscapeString(th.GradientTop), html.EscapeString(th.GradientBottom))
	b.WriteString(`</linearGradient></defs>`)

	// y grid and tick labels
	intervals := min(int(math.Round((yMax-yMin)/step)), maxYIntervals)
	for i := 0; i <= intervals; i++ {
		v := yMin + float64(i)*step
		y := scaleY(v)
		fmt.Fprintf(&b, `<line class="grid" x1="%d" y1="%.2f" x2="%d" y2="%.2f" stroke="%s"/>`,
			marginLeft, y, svgWidth-marginRight, y, html.EscapeString(th.Grid))
		fmt.Fprintf(&b, `<text class="y-tick" x="%d" y="%.2f" text-anchor="end" dominant-baseline="middle" font-size="12" fill="%s">%s</text>`,
			marginLeft-6, y, html.EscapeString(th.Tick), FormatYTick(v))
	}

	// x tick labels, never rotated
	for _, i := range VisibleTicks(len(cfg.Labels), cfg.MaxTicks) {
		fmt.Fprintf(&b, `<text class="x-tick" x="%.2f" y="%d" text-anchor="middle" font-size="12" fill="%s">%s</text>`,
			pts[i].x, svgHeight-6, html.EscapeString(th.Tick), html.EscapeString(cfg.Labels[i]))
	}

	if len(pts) > 0 {
		line := linePath(pts, cfg.Tension, float64(marginTop), baseline)
		fmt.Fprintf(&b, `<path class="area" d="%s L %.2f %.2f L %.2f %.2f Z" fill="url(#%s)" stroke="none"/>`,
			line, pts[len(pts)-1].x, baseline, pts[0].x, baseline, gradientID)
		fmt.Fprintf(&b, `<path class="line" d="%s" fill="none" stroke="%s" stroke-width="2"/>`, line, html.EscapeString(th.Line))
		for i, p := range pts {
			fmt.Fprintf(&b, `<circle class="pt" cx="%.2f" cy="%.2f" r="4"><title>%s: %s</title></circle>`,
				p.x, p.y, html.EscapeString(cfg.Labels[i]), FormatTooltip(cfg.Values[i]))
		}
	}

	if cfg.ShowLegend {
		fmt.Fprintf(&b, `<text class="legend" x="%d" y="%d" font-size="12" fill="%s">Precipitation</text>`,
			marginLeft, marginTop+12, html.EscapeString(th.Tick))
	}

	b.WriteString(`</svg>`)
	return b.Bytes(), nil
}

// yScale picks a rounded axis range covering values. It fails when the range
// cannot be represented, e.g. values near the float64 limits.
func yScale(values []float64, beginAtZero bool) (lo, hi, step float64, err error) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(values) == 0 {
		lo, hi = 0, 0
	}
	if beginAtZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi-lo <= 0 {
		hi = lo + 1
	}

	span := hi - lo
	if math.IsInf(span, 0) {
		return 0, 0, 0, fmt.Errorf("chart range [%g, %g] is too wide to draw", lo, hi)
	}

	step = niceStep(span / yIntervals)
	lo = math.Floor(lo/step) * step
	hi = math.Ceil(hi/step) * step
	if !isFinite(lo) || !isFinite(hi) || !isFinite(hi-lo) || !isFinite(step) || step <= 0 {
		return 0, 0, 0, fmt.Errorf("chart range [%g, %g] is too wide to draw", lo, hi)
	}
	return lo, hi, step, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch n := raw / mag; {
	case n <= 1:
		return mag
	case n <= 2:
		return 2 * mag
	case n <= 2.5:
		return 2.5 * mag
	case n <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// linePath draws a cubic spline through pts. Control points are clamped to
// [top, bottom] so the curve never leaves the plot area.
func linePath(pts []point, tension, top, bottom float64) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "M %.2f %.2f", pts[0].x, pts[0].y)
	clamp := func(y float64) float64 { return math.Max(top, math.Min(bottom, y)) }

	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]

		c1 := point{x: p1.x + (p2.x-p0.x)*tension/2, y: clamp(p1.y + (p2.y-p0.y)*tension/2)}
		c2 := point{x: p2.x - (p3.x-p1.x)*tension/2, y: clamp(p2.y - (p3.y-p1.y)*tension/2)}
		fmt.Fprintf(&b, " C %.2f %.2f %.2f %.2f %.2f %.2f", c1.x, c1.y, c2.x, c2.y, p2.x, p2.y)
	}
	return b.String()
}
