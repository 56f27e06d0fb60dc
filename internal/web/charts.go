package web

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

// ScatterSpec describes one scatter visualization of the synthetic dataset.
// X and Y select the plotted fields; Color grades each point along a third
// dimension.
type ScatterSpec struct {
	Title      string
	XLabel     string
	YLabel     string
	ColorLabel string
	X          func(models.LoadingSample) float64
	Y          func(models.LoadingSample) float64
	Color      func(models.LoadingSample) float64
}

// DashboardCharts returns the three standard scatter specs: amplitude,
// frequency and duration against bone formation rate.
func DashboardCharts() []ScatterSpec {
	return []ScatterSpec{
		{
			Title:      "Effect of strain amplitude on predicted bone formation rate",
			XLabel:     "Strain amplitude (µε)",
			YLabel:     "Bone formation rate (arb. units)",
			ColorLabel: "Frequency (Hz)",
			X:          func(s models.LoadingSample) float64 { return s.StrainAmplitude },
			Y:          func(s models.LoadingSample) float64 { return s.BFR },
			Color:      func(s models.LoadingSample) float64 { return s.FrequencyHz },
		},
		{
			Title:      "Effect of loading frequency on predicted bone formation rate",
			XLabel:     "Frequency (Hz)",
			YLabel:     "Bone formation rate (arb. units)",
			ColorLabel: "Strain amplitude (µε)",
			X:          func(s models.LoadingSample) float64 { return s.FrequencyHz },
			Y:          func(s models.LoadingSample) float64 { return s.BFR },
			Color:      func(s models.LoadingSample) float64 { return s.StrainAmplitude },
		},
		{
			Title:      "Effect of duration on predicted bone formation rate",
			XLabel:     "Duration (weeks)",
			YLabel:     "Bone formation rate (arb. units)",
			ColorLabel: "Strain amplitude (µε)",
			X:          func(s models.LoadingSample) float64 { return s.DurationWeeks },
			Y:          func(s models.LoadingSample) float64 { return s.BFR },
			Color:      func(s models.LoadingSample) float64 { return s.StrainAmplitude },
		},
	}
}

const (
	svgWidth     = 680
	svgHeight    = 420
	marginLeft   = 64
	marginTop    = 48
	marginRight  = 24
	marginBottom = 56
	tickCount    = 5
)

// ScatterSVG renders a scatter plot of the samples as a self-contained
// inline SVG. No scripting or external assets are involved, so the markup
// works identically in the live page and in the exported artifact.
func ScatterSVG(samples []models.LoadingSample, spec ScatterSpec) template.HTML {
	plotW := float64(svgWidth - marginLeft - marginRight)
	plotH := float64(svgHeight - marginTop - marginBottom)

	xMin, xMax := valueRange(samples, spec.X)
	yMin, yMax := valueRange(samples, spec.Y)
	cMin, cMax := valueRange(samples, spec.Color)

	scaleX := func(v float64) float64 {
		return marginLeft + (v-xMin)/(xMax-xMin)*plotW
	}
	scaleY := func(v float64) float64 {
		return marginTop + plotH - (v-yMin)/(yMax-yMin)*plotH
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-label=%q>`,
		svgWidth, svgHeight, spec.Title)

	// Title and axis labels
	fmt.Fprintf(&b, `<text x="%d" y="24" text-anchor="middle" font-size="14" font-weight="bold">%s</text>`,
		svgWidth/2, template.HTMLEscapeString(spec.Title))
	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="12">%s</text>`,
		svgWidth/2, svgHeight-12, template.HTMLEscapeString(spec.XLabel))
	fmt.Fprintf(&b, `<text x="16" y="%d" text-anchor="middle" font-size="12" transform="rotate(-90 16 %d)">%s</text>`,
		svgHeight/2, svgHeight/2, template.HTMLEscapeString(spec.YLabel))

	// Axes
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#444" stroke-width="1"/>`,
		marginLeft, svgHeight-marginBottom, svgWidth-marginRight, svgHeight-marginBottom)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#444" stroke-width="1"/>`,
		marginLeft, marginTop, marginLeft, svgHeight-marginBottom)

	// Ticks
	for i := 0; i <= tickCount; i++ {
		t := float64(i) / tickCount
		xv := xMin + t*(xMax-xMin)
		x := scaleX(xv)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="#444"/>`,
			x, svgHeight-marginBottom, x, svgHeight-marginBottom+5)
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="middle" font-size="10">%s</text>`,
			x, svgHeight-marginBottom+18, formatTick(xv))

		yv := yMin + t*(yMax-yMin)
		y := scaleY(yv)
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#444"/>`,
			marginLeft-5, y, marginLeft, y)
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" text-anchor="end" font-size="10">%s</text>`,
			marginLeft-8, y+3, formatTick(yv))
	}

	// Points, color-graded along the third dimension
	for _, s := range samples {
		t := 0.5
		if cMax > cMin {
			t = (spec.Color(s) - cMin) / (cMax - cMin)
		}
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="3.5" fill="%s" fill-opacity="0.75"/>`,
			scaleX(spec.X(s)), scaleY(spec.Y(s)), gradeColor(t))
	}

	// Color legend
	fmt.Fprintf(&b, `<text x="%d" y="40" text-anchor="end" font-size="10">%s: %s – %s</text>`,
		svgWidth-marginRight, template.HTMLEscapeString(spec.ColorLabel), formatTick(cMin), formatTick(cMax))

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// valueRange returns the min and max of a field across the samples, widened
// to a unit interval when the samples are degenerate so scaling stays finite.
func valueRange(samples []models.LoadingSample, field func(models.LoadingSample) float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		v := field(s)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(samples) == 0 {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

// gradeColor interpolates from blue to red across t in [0, 1].
func gradeColor(t float64) string {
	t = math.Max(0, math.Min(1, t))
	lerp := func(a, b int) int { return a + int(math.Round(t*float64(b-a))) }
	return fmt.Sprintf("#%02x%02x%02x", lerp(0x1f, 0xd6), lerp(0x77, 0x27), lerp(0xb4, 0x28))
}

func formatTick(v float64) string {
	if math.Abs(v) >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
