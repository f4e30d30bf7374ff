// Package render provides output rendering for computed pad footprints.
//
// # Overview
//
// This package contains the rendering pipeline that transforms a solved
// [pad.Footprint] into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Pad footprint sinks (in the [pads] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := pads.RenderSVG(fp)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Footprint Sinks
//
// The [pads] subpackage renders a footprint as a Fritzing PCB-view SVG,
// as a flat JSON export of all computed fields, or as PDF/PNG via the
// conversion functions above.
//
// [pad.Footprint]: github.com/padforge/stretchpad/pkg/pad.Footprint
// [pads]: github.com/padforge/stretchpad/pkg/render/pads
package render
