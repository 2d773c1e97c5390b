package chart

import (
	"html/template"
	"math"
	"strconv"
	"strings"
)

const fullCircleEpsilon = 1e-9

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// count formats a slice or bar value; counts are integral in practice.
func count(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return num(v)
}

func openSVG(b *strings.Builder, size Size, label string) {
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" class="chart" role="img" viewBox="0 0 `)
	b.WriteString(num(size.W) + " " + num(size.H))
	b.WriteString(`" width="` + num(size.W) + `" height="` + num(size.H) + `" aria-label="`)
	b.WriteString(template.HTMLEscapeString(label))
	b.WriteString(`">`)
}

func writeLegend(b *strings.Builder, entries []LegendEntry, withValue bool) {
	for _, e := range entries {
		b.WriteString(`<rect class="legend-swatch" x="` + num(e.X) + `" y="` + num(e.Y) +
			`" width="` + num(legendSwatch) + `" height="` + num(legendSwatch) +
			`" fill="` + template.HTMLEscapeString(e.Color) + `"/>`)
		caption := e.Label
		if withValue {
			caption += ": " + count(e.Value)
		}
		b.WriteString(`<text class="legend-label" x="` + num(e.X+legendTextX-legendX) + `" y="` + num(e.Y+12) +
			`" text-anchor="start">` + template.HTMLEscapeString(caption) + `</text>`)
	}
}

// wedgePath returns the SVG path data for a wedge.
func wedgePath(p Pie, w Wedge) string {
	x1 := p.CX + math.Cos(w.Start)*p.Radius
	y1 := p.CY + math.Sin(w.Start)*p.Radius
	x2 := p.CX + math.Cos(w.End)*p.Radius
	y2 := p.CY + math.Sin(w.End)*p.Radius
	large := "0"
	if w.Sweep() > math.Pi {
		large = "1"
	}
	return "M" + num(p.CX) + " " + num(p.CY) +
		" L" + num(x1) + " " + num(y1) +
		" A" + num(p.Radius) + " " + num(p.Radius) + " 0 " + large + " 1 " + num(x2) + " " + num(y2) +
		" Z"
}

// RenderPieSVG renders a pie layout. All text is escaped.
func RenderPieSVG(p Pie, title string) template.HTML {
	var b strings.Builder
	openSVG(&b, p.Size, title)
	for _, w := range p.Wedges {
		fill := template.HTMLEscapeString(w.Slice.Color)
		if w.Sweep() >= 2*math.Pi-fullCircleEpsilon {
			b.WriteString(`<circle class="wedge" cx="` + num(p.CX) + `" cy="` + num(p.CY) +
				`" r="` + num(p.Radius) + `" fill="` + fill + `"/>`)
		} else {
			b.WriteString(`<path class="wedge" d="` + wedgePath(p, w) + `" fill="` + fill + `"/>`)
		}
		b.WriteString(`<text class="wedge-label" x="` + num(w.LabelX) + `" y="` + num(w.LabelY) +
			`" text-anchor="middle" dominant-baseline="middle" fill="#fff">` +
			template.HTMLEscapeString(w.Slice.Label+": "+count(w.Slice.Value)) + `</text>`)
	}
	writeLegend(&b, p.Legend, true)
	b.WriteString(`</svg>`)
	// #nosec G203 - built from numeric coordinates and escaped text only.
	return template.HTML(b.String())
}

// RenderBarSVG renders a grouped bar layout. All text is escaped.
func RenderBarSVG(c BarChart, title string) template.HTML {
	var b strings.Builder
	openSVG(&b, c.Size, title)

	left := num(c.Padding)
	right := num(c.Size.W - c.Padding)
	b.WriteString(`<path class="axis" d="M` + left + " " + num(c.Padding) +
		" L" + left + " " + num(c.Baseline) + " L" + right + " " + num(c.Baseline) +
		`" stroke="#333" fill="none"/>`)

	for _, t := range c.Ticks {
		y := num(t.Y)
		b.WriteString(`<line class="tick" x1="` + num(c.Padding-5) + `" y1="` + y +
			`" x2="` + left + `" y2="` + y + `" stroke="#333"/>`)
		b.WriteString(`<text class="tick-label" x="` + num(c.Padding-10) + `" y="` + y +
			`" text-anchor="end" dominant-baseline="middle">` + template.HTMLEscapeString(t.Label) + `</text>`)
	}

	for _, g := range c.Groups {
		for _, bar := range g.Bars {
			b.WriteString(`<rect class="bar" x="` + num(bar.X) + `" y="` + num(bar.Y) +
				`" width="` + num(bar.Width) + `" height="` + num(bar.Height) +
				`" fill="` + template.HTMLEscapeString(bar.Color) + `"><title>` +
				template.HTMLEscapeString(g.Label+": "+count(bar.Value)) + `</title></rect>`)
		}
		b.WriteString(`<text class="category-label" x="` + num(g.LabelX) + `" y="` + num(c.Baseline+5) +
			`" text-anchor="middle" dominant-baseline="hanging">` + template.HTMLEscapeString(g.Label) + `</text>`)
	}

	writeLegend(&b, c.Legend, false)
	b.WriteString(`</svg>`)
	// #nosec G203 - built from numeric coordinates and escaped text only.
	return template.HTML(b.String())
}
