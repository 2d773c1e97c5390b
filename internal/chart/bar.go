package chart

import (
	"math"
	"strconv"
)

const (
	barPadding      = 40
	barTicks        = 5
	barLegendOffset = 150
)

// Series is one set of values plotted against the shared categories.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// value returns the i-th value, 0 when the series is short.
func (s Series) value(i int) float64 {
	if i < len(s.Values) && s.Values[i] > 0 {
		return s.Values[i]
	}
	return 0
}

// Bar is a single laid-out rectangle anchored at the baseline.
type Bar struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Value  float64
	Color  string
}

// BarGroup holds the adjacent bars of one category.
type BarGroup struct {
	Label  string
	LabelX float64
	Bars   []Bar
}

// Tick is a Y-axis label position.
type Tick struct {
	Y     float64
	Label string
}

// BarChart is a complete grouped bar chart layout.
type BarChart struct {
	Size       Size
	Padding    float64
	PlotWidth  float64
	PlotHeight float64
	Baseline   float64
	BarWidth   float64
	Max        float64
	Groups     []BarGroup
	Ticks      []Tick
	Legend     []LegendEntry
}

// LayoutBars lays out adjacent bars per category. With k series over n
// categories the bar width is plotWidth/(n·(k+1)+1): each group is k bars
// wide with one bar width of spacing. Heights are value/max of the plot
// height; a max of zero gives every bar zero height.
func LayoutBars(size Size, categories []string, series ...Series) BarChart {
	c := BarChart{
		Size:       size,
		Padding:    barPadding,
		PlotWidth:  math.Max(size.W-2*barPadding, 0),
		PlotHeight: math.Max(size.H-2*barPadding, 0),
	}
	c.Baseline = size.H - barPadding

	for _, s := range series {
		for i := range categories {
			c.Max = math.Max(c.Max, s.value(i))
		}
	}

	k := len(series)
	n := len(categories)
	if n > 0 && k > 0 {
		c.BarWidth = c.PlotWidth / float64(n*(k+1)+1)
	}

	for i, label := range categories {
		x := c.Padding + c.BarWidth + float64(i*(k+1))*c.BarWidth
		g := BarGroup{
			Label:  label,
			LabelX: x + float64(k)*c.BarWidth/2,
			Bars:   make([]Bar, 0, k),
		}
		for j, s := range series {
			v := s.value(i)
			h := 0.0
			if c.Max > 0 {
				h = v / c.Max * c.PlotHeight
			}
			g.Bars = append(g.Bars, Bar{
				X:      x + float64(j)*c.BarWidth,
				Y:      c.Baseline - h,
				Width:  c.BarWidth,
				Height: h,
				Value:  v,
				Color:  s.Color,
			})
		}
		c.Groups = append(c.Groups, g)
	}

	for t := 0; t <= barTicks; t++ {
		frac := float64(t) / barTicks
		c.Ticks = append(c.Ticks, Tick{
			Y:     c.Baseline - frac*c.PlotHeight,
			Label: strconv.FormatFloat(math.Round(c.Max*frac), 'f', 0, 64),
		})
	}

	for j, s := range series {
		c.Legend = append(c.Legend, LegendEntry{
			Label: s.Name,
			Color: s.Color,
			X:     size.W - barLegendOffset,
			Y:     legendTop + float64(j)*legendRowHeight,
		})
	}
	return c
}
