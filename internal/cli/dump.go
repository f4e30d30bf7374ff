package cli

import (
	"github.com/charmbracelet/log"

	"github.com/padforge/stretchpad/pkg/pad"
)

// The dump helpers print solver state for the debug bit-set. They write
// through the logger unconditionally so the output appears regardless of the
// verbosity level.

// dumpConstraints prints the resolved input constraints.
func dumpConstraints(logger *log.Logger, c pad.Constraints) {
	logger.Print("constraints",
		"hole_diameter", c.HoleDiameter,
		"pad_min", c.PadMin,
		"pad_max", c.PadMax,
		"pad_position", c.PadPosition,
		"hole_padding", c.HolePadding,
		"first_connector", c.FirstConnector,
		"row_pins", c.RowPins,
		"pad_spacing", c.PadSpacing,
		"keepout", c.Keepout,
		"debug", int(c.Debug),
	)
}

// dumpGeometry prints the derived pad geometry.
func dumpGeometry(logger *log.Logger, g pad.Geometry) {
	logger.Print("pad",
		"hole_radius", g.HoleRadius,
		"full_width", g.FullWidth,
		"half_width", g.HalfWidth,
		"full_length", g.FullLength,
		"circle_radius", g.CircleRadius,
		"pad_offset", g.PadOffset,
		"pin_spacing", g.PinSpacing,
		"base_x", g.BaseX,
		"base_y", g.BaseY,
		"outer0_dx", g.Outer0DX,
		"outer0_dy", g.Outer0DY,
		"outer1_dx", g.Outer1DX,
		"outer1_dy", g.Outer1DY,
		"line_direction", g.LineDirection,
		"outer_sweep", g.OuterSweep,
		"inner_sweep", g.InnerSweep,
		"move_dx", g.MoveDX,
		"move_dy", g.MoveDY,
		"inner0_dx", g.Inner0DX,
		"inner0_dy", g.Inner0DY,
		"inner1_dx", g.Inner1DX,
		"inner1_dy", g.Inner1DY,
	)
}

// dumpCanvas prints the derived drawing dimensions.
func dumpCanvas(logger *log.Logger, d pad.Canvas) {
	logger.Print("drawing",
		"units", d.Units,
		"px_width", d.PxWidth,
		"px_height", d.PxHeight,
		"unit_width", d.UnitWidth,
		"unit_height", d.UnitHeight,
		"copper_stroke", d.CopperStroke,
		"copper1_translate_x", d.Copper1TranslateX,
		"copper1_translate_y", d.Copper1TranslateY,
		"pad_translate_x", d.PadTranslateX,
		"pad_translate_y", d.PadTranslateY,
	)
}
