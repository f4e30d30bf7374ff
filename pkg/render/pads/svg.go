package pads

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/padforge/stretchpad/pkg/pad"
)

// Default connector id affixes; a connector element id is
// "<prefix><id><suffix>", e.g. "connector0pad".
const (
	DefaultConnectorPrefix = "connector"
	DefaultConnectorSuffix = "pad"
)

// copperColor is the Fritzing PCB-view copper fill.
const copperColor = "#F7BD13"

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	prefix string
	suffix string
	guides bool
}

// WithConnectorPrefix overrides the connector id prefix (default "connector").
func WithConnectorPrefix(p string) SVGOption { return func(r *svgRenderer) { r.prefix = p } }

// WithConnectorSuffix overrides the connector id suffix (default "pad").
func WithConnectorSuffix(s string) SVGOption { return func(r *svgRenderer) { r.suffix = s } }

// WithoutGuides suppresses the guide ring around each drill hole.
func WithoutGuides() SVGOption { return func(r *svgRenderer) { r.guides = false } }

// RenderSVG renders the footprint as a Fritzing PCB-view SVG document.
// The document width and height are the canvas unit dimensions, the viewBox
// spans the pixel (mil) dimensions, and each connector pad is one group
// inside the copper1/copper0 layer pair, stepped along the row by the
// solver's base offset vector.
func RenderSVG(fp *pad.Footprint, opts ...SVGOption) []byte {
	r := svgRenderer{
		prefix: DefaultConnectorPrefix,
		suffix: DefaultConnectorSuffix,
		guides: true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	c, d := fp.Constraints, fp.Canvas

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.2" baseProfile="tiny" width="%s%s" height="%s%s" viewBox="0 0 %s %s">`+"\n",
		num(d.UnitWidth), d.Units, num(d.UnitHeight), d.Units, num(d.PxWidth), num(d.PxHeight))

	fmt.Fprintf(&buf, `  <g id="copper1" transform="translate(%s,%s)">`+"\n",
		num(d.Copper1TranslateX), num(d.Copper1TranslateY))
	buf.WriteString(`    <g id="copper0">` + "\n")

	for i := 0; i < c.RowPins; i++ {
		r.renderConnector(&buf, fp, c.FirstConnector+i, i)
	}

	buf.WriteString("    </g>\n  </g>\n</svg>\n")

	return buf.Bytes()
}

// renderConnector writes one connector pad group: the capsule path, and the
// guide ring when the footprint has a drill hole.
func (r *svgRenderer) renderConnector(buf *bytes.Buffer, fp *pad.Footprint, id, step int) {
	g, d := fp.Geometry, fp.Canvas

	fmt.Fprintf(buf, `      <g id="%s%d%s" transform="translate(%s,%s)">`+"\n",
		r.prefix, id, r.suffix,
		num(float64(step)*g.BaseX), num(float64(step)*g.BaseY))

	fmt.Fprintf(buf, `        <path transform="translate(%s,%s)" fill="%s" fill-rule="evenodd" d="%s"/>`+"\n",
		num(d.PadTranslateX), num(d.PadTranslateY), copperColor, padPath(g))

	if r.guides && g.HoleRadius > 0 {
		fmt.Fprintf(buf, `        <circle cx="0" cy="0" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
			num(g.CircleRadius), copperColor, num(d.CopperStroke))
	}

	buf.WriteString("      </g>\n")
}

// padPath builds the capsule outline with the drill hole cut out as an
// opposite-winding subpath. The path starts where the pad translation puts
// it, so the surrounding group origin is the hole center.
func padPath(g pad.Geometry) string {
	side := g.FullLength - g.FullWidth

	var b bytes.Buffer
	b.WriteString("M 0,0")
	fmt.Fprintf(&b, " a %s,%s 0 0 %d %s,%s",
		num(g.HalfWidth), num(g.HalfWidth), g.OuterSweep, num(g.Outer0DX), num(g.Outer0DY))
	fmt.Fprintf(&b, " %s %s", g.LineDirection, num(side))
	fmt.Fprintf(&b, " a %s,%s 0 0 %d %s,%s",
		num(g.HalfWidth), num(g.HalfWidth), g.OuterSweep, num(g.Outer1DX), num(g.Outer1DY))
	b.WriteString(" z")

	if g.HoleRadius > 0 {
		fmt.Fprintf(&b, " m %s,%s", num(g.MoveDX), num(g.MoveDY))
		fmt.Fprintf(&b, " a %s,%s 0 0 %d %s,%s",
			num(g.HoleRadius), num(g.HoleRadius), g.InnerSweep, num(g.Inner0DX), num(g.Inner0DY))
		fmt.Fprintf(&b, " a %s,%s 0 0 %d %s,%s",
			num(g.HoleRadius), num(g.HoleRadius), g.InnerSweep, num(g.Inner1DX), num(g.Inner1DY))
		b.WriteString(" z")
	}

	return b.String()
}

// num formats a normalized value without decorative fractional digits.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
