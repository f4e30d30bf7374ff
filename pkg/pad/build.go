package pad

// Footprint bundles everything derived from one constraint set: the frame,
// the representative pad geometry, and the drawing canvas. All four fields
// are built fresh per invocation and never mutate afterwards.
type Footprint struct {
	Constraints Constraints
	Frame       Frame
	Geometry    Geometry
	Canvas      Canvas
}

// Build runs the full solver pipeline: validate the constraints, fix the
// orientation frame, then derive the pad geometry and the drawing canvas.
// On validation failure it returns the validation error and no footprint —
// there is no partial output.
func Build(c Constraints) (*Footprint, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	f := FrameFor(c.PadPosition)
	g := BuildGeometry(c, f)
	return &Footprint{
		Constraints: c,
		Frame:       f,
		Geometry:    g,
		Canvas:      BuildCanvas(c, g, f),
	}, nil
}
