package pads

import (
	"encoding/json"
	"fmt"

	"github.com/padforge/stretchpad/pkg/pad"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	prefix string
	suffix string
}

// WithJSONConnectorPrefix overrides the connector id prefix in the export.
func WithJSONConnectorPrefix(p string) JSONOption { return func(r *jsonRenderer) { r.prefix = p } }

// WithJSONConnectorSuffix overrides the connector id suffix in the export.
func WithJSONConnectorSuffix(s string) JSONOption { return func(r *jsonRenderer) { r.suffix = s } }

type jsonOutput struct {
	Pad        jsonPad         `json:"pad"`
	Drawing    jsonDrawing     `json:"drawing"`
	Connectors []jsonConnector `json:"connectors"`
}

// jsonPad is the flat pad-level field mapping handed to renderers.
type jsonPad struct {
	HoleRadius    float64 `json:"hole_radius"`
	FullWidth     float64 `json:"full_width"`
	HalfWidth     float64 `json:"half_width"`
	FullLength    float64 `json:"full_length"`
	CircleRadius  float64 `json:"circle_radius"`
	PadOffset     float64 `json:"pad_offset"`
	PinSpacing    float64 `json:"pin_spacing"`
	BaseX         float64 `json:"base_x"`
	BaseY         float64 `json:"base_y"`
	Outer0DX      float64 `json:"outer0_dx"`
	Outer0DY      float64 `json:"outer0_dy"`
	Outer1DX      float64 `json:"outer1_dx"`
	Outer1DY      float64 `json:"outer1_dy"`
	OuterSweep    int     `json:"outer_sweep"`
	InnerSweep    int     `json:"inner_sweep"`
	LineDirection string  `json:"line_direction"`
	MoveDX        float64 `json:"move_dx"`
	MoveDY        float64 `json:"move_dy"`
	Inner0DX      float64 `json:"inner0_dx"`
	Inner0DY      float64 `json:"inner0_dy"`
	Inner1DX      float64 `json:"inner1_dx"`
	Inner1DY      float64 `json:"inner1_dy"`
	UAxis         string  `json:"u_dimension"`
	VAxis         string  `json:"v_dimension"`
}

// jsonDrawing is the flat drawing-level field mapping.
type jsonDrawing struct {
	Units             string  `json:"units"`
	PxWidth           float64 `json:"px_width"`
	PxHeight          float64 `json:"px_height"`
	UnitWidth         float64 `json:"unit_width"`
	UnitHeight        float64 `json:"unit_height"`
	CopperStroke      float64 `json:"copper_stroke"`
	Copper1TranslateX float64 `json:"copper1_translate_x"`
	Copper1TranslateY float64 `json:"copper1_translate_y"`
	PadTranslateX     float64 `json:"pad_translate_x"`
	PadTranslateY     float64 `json:"pad_translate_y"`
}

type jsonConnector struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
}

// RenderJSON exports the solved footprint as indented JSON: the pad-level
// and drawing-level field mappings plus one entry per connector in the row.
func RenderJSON(fp *pad.Footprint, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{prefix: DefaultConnectorPrefix, suffix: DefaultConnectorSuffix}
	for _, opt := range opts {
		opt(&r)
	}

	c, g, d := fp.Constraints, fp.Geometry, fp.Canvas
	out := jsonOutput{
		Pad: jsonPad{
			HoleRadius:    g.HoleRadius,
			FullWidth:     g.FullWidth,
			HalfWidth:     g.HalfWidth,
			FullLength:    g.FullLength,
			CircleRadius:  g.CircleRadius,
			PadOffset:     g.PadOffset,
			PinSpacing:    g.PinSpacing,
			BaseX:         g.BaseX,
			BaseY:         g.BaseY,
			Outer0DX:      g.Outer0DX,
			Outer0DY:      g.Outer0DY,
			Outer1DX:      g.Outer1DX,
			Outer1DY:      g.Outer1DY,
			OuterSweep:    g.OuterSweep,
			InnerSweep:    g.InnerSweep,
			LineDirection: g.LineDirection,
			MoveDX:        g.MoveDX,
			MoveDY:        g.MoveDY,
			Inner0DX:      g.Inner0DX,
			Inner0DY:      g.Inner0DY,
			Inner1DX:      g.Inner1DX,
			Inner1DY:      g.Inner1DY,
			UAxis:         fp.Frame.UAxis,
			VAxis:         fp.Frame.VAxis,
		},
		Drawing: jsonDrawing{
			Units:             d.Units,
			PxWidth:           d.PxWidth,
			PxHeight:          d.PxHeight,
			UnitWidth:         d.UnitWidth,
			UnitHeight:        d.UnitHeight,
			CopperStroke:      d.CopperStroke,
			Copper1TranslateX: d.Copper1TranslateX,
			Copper1TranslateY: d.Copper1TranslateY,
			PadTranslateX:     d.PadTranslateX,
			PadTranslateY:     d.PadTranslateY,
		},
		Connectors: make([]jsonConnector, c.RowPins),
	}

	for i := 0; i < c.RowPins; i++ {
		out.Connectors[i] = jsonConnector{
			Index: i,
			ID:    fmt.Sprintf("%s%d%s", r.prefix, c.FirstConnector+i, r.suffix),
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
