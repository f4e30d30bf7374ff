// Package pads provides output format renderers for solved pad footprints.
//
// # Overview
//
// A sink transforms a computed [pad.Footprint] into a final output format.
// This package provides renderers for:
//
//   - SVG: Fritzing PCB-view footprint markup
//   - JSON: flat export of every computed pad and drawing field
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces the footprint document: drawing dimensions in inches,
// a viewBox in mils, nested copper1/copper0 layer groups, and one connector
// group per pin. Each pad is a capsule outline traced with the solver's arc
// endpoint offsets and sweep selectors, with the drill hole cut out as an
// even-odd subpath and a guide ring marking the rounded ends. A pad-only
// footprint (hole diameter zero) omits the drill subpath and the ring.
//
// Basic usage:
//
//	svg := pads.RenderSVG(fp,
//	    pads.WithConnectorPrefix("connector"),
//	)
//
// Connector elements are identified as "<prefix><id><suffix>" with defaults
// "connector" and "pad"; ids count up from the footprint's first connector.
//
// # JSON Output
//
// [RenderJSON] exports the pad-level and drawing-level field mappings plus
// the connector list, enabling external tooling to consume the solved
// geometry without re-deriving it.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the footprint by first generating SVG,
// then converting via [render.ToPDF] and [render.ToPNG]. These require
// librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [pad.Footprint]: github.com/padforge/stretchpad/pkg/pad.Footprint
// [render.ToPDF]: github.com/padforge/stretchpad/pkg/render.ToPDF
// [render.ToPNG]: github.com/padforge/stretchpad/pkg/render.ToPNG
package pads
