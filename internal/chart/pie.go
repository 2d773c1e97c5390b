// Package chart lays out the dashboard charts and renders them as inline SVG.
// Layout is pure geometry so it can be tested without a browser; every data
// change produces a complete new layout.
package chart

import "math"

const (
	pieMargin       = 20
	pieLabelRadius  = 0.7
	legendX         = 10
	legendTextX     = 30
	legendTop       = 20
	legendRowHeight = 25
	legendSwatch    = 15
)

// Size is a fixed canvas size in user units.
type Size struct {
	W float64
	H float64
}

// Slice is one pie category.
type Slice struct {
	Label string
	Value float64
	Color string
}

// Wedge is the laid-out arc for a non-zero slice. Angles are radians in
// screen coordinates (y grows downward), so -π/2 points up.
type Wedge struct {
	Slice  Slice
	Start  float64
	End    float64
	LabelX float64
	LabelY float64
}

// Sweep is the angular extent of the wedge.
func (w Wedge) Sweep() float64 { return w.End - w.Start }

// LegendEntry is one swatch + caption row.
type LegendEntry struct {
	Label string
	Value float64
	Color string
	X     float64
	Y     float64
}

// Pie is a complete pie chart layout.
type Pie struct {
	Size   Size
	CX     float64
	CY     float64
	Radius float64
	Total  float64
	Wedges []Wedge
	Legend []LegendEntry
}

// LayoutPie computes wedges for the slices in input order, starting at the
// top and sweeping clockwise. Zero (and negative) values get no wedge but
// still appear in the legend. A zero total yields no wedges.
func LayoutPie(size Size, slices []Slice) Pie {
	p := Pie{
		Size:   size,
		CX:     size.W / 2,
		CY:     size.H / 2,
		Radius: math.Max(math.Min(size.W, size.H)/2-pieMargin, 0),
		Legend: make([]LegendEntry, 0, len(slices)),
	}

	last := -1
	for i, s := range slices {
		if s.Value > 0 {
			p.Total += s.Value
			last = i
		}
	}

	start := -math.Pi / 2
	running := start
	for i, s := range slices {
		p.Legend = append(p.Legend, LegendEntry{
			Label: s.Label,
			Value: s.Value,
			Color: s.Color,
			X:     legendX,
			Y:     legendTop + float64(i)*legendRowHeight,
		})
		if s.Value <= 0 || p.Total == 0 {
			continue
		}

		end := running + 2*math.Pi*s.Value/p.Total
		if i == last {
			// Close the circle exactly.
			end = start + 2*math.Pi
		}
		mid := running + (end-running)/2
		p.Wedges = append(p.Wedges, Wedge{
			Slice:  s,
			Start:  running,
			End:    end,
			LabelX: p.CX + math.Cos(mid)*p.Radius*pieLabelRadius,
			LabelY: p.CY + math.Sin(mid)*p.Radius*pieLabelRadius,
		})
		running = end
	}
	return p
}
