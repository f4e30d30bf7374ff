package pad

// Geometry describes one representative pad. The row replicates it at integer
// multiples of the base offset vector along the row axis; no per-pin state
// exists. All coordinate pairs are already rotated into screen (x, y) space
// via the orientation frame, and every value is normalized.
type Geometry struct {
	HoleRadius   float64 // drilled hole radius
	FullWidth    float64 // pad short cross-section (pad minimum)
	HalfWidth    float64 // half the short cross-section
	FullLength   float64 // pad long cross-section (pad maximum)
	CircleRadius float64 // guide circle centered on the hole, marking the rounded ends
	PadOffset    float64 // hole displacement from the pad center along the long axis

	PinSpacing   float64 // center-to-center distance between adjacent pads
	BaseX, BaseY float64 // row-step vector between consecutive connectors

	// Outer capsule outline: the two rounded-end arc endpoint offsets and
	// the straight-segment direction ("h" or "v") between them.
	Outer0DX, Outer0DY float64
	Outer1DX, Outer1DY float64
	LineDirection      string

	// Arc sweep selectors (0/1), fixed by the frame so the outline winds
	// consistently in every layout.
	OuterSweep int
	InnerSweep int

	// Drill hole subpath: start-point offset relative to the outline start,
	// then the two half-circle arc endpoint offsets.
	MoveDX, MoveDY     float64
	Inner0DX, Inner0DY float64
	Inner1DX, Inner1DY float64
}

// padOffset derives the hole's displacement from the pad's geometric center
// along the long axis. Centered positions split the stretch evenly; bottom
// and right keep the hole at the row-trailing end plus padding; top and left
// mirror that toward the row-leading end.
func padOffset(c Constraints) float64 {
	switch c.PadPosition {
	case PosHorizontal, PosVertical:
		return Normalize((c.PadMax - c.PadMin) / 2)
	case PosBottom, PosRight:
		return Normalize(c.HolePadding)
	default: // PosTop, PosLeft
		return Normalize(c.PadMax - c.PadMin - c.HolePadding)
	}
}

// BuildGeometry computes the representative pad geometry from validated
// constraints and the orientation frame. It assumes [Validate] has passed;
// no error conditions remain at this stage.
func BuildGeometry(c Constraints, f Frame) Geometry {
	g := Geometry{
		HoleRadius:   Normalize(c.HoleDiameter / 2),
		FullWidth:    Normalize(c.PadMin),
		HalfWidth:    Normalize(c.PadMin / 2),
		FullLength:   Normalize(c.PadMax),
		CircleRadius: Normalize((c.PadMin + c.HoleDiameter) / 4),
		PadOffset:    padOffset(c),
		PinSpacing:   Normalize(c.PadSpacing),
	}

	g.BaseX, g.BaseY = f.ToXY(c.PadSpacing, 0)
	g.Outer0DX, g.Outer0DY = f.ToXY(c.PadMin, 0)
	g.Outer1DX, g.Outer1DY = f.ToXY(-c.PadMin, 0)

	// The unit u-vector, rotated into the frame, doubles as the pair of
	// sweep selectors and picks the straight-segment direction: a
	// horizontal row stretches its pads vertically and vice versa.
	sx, sy := f.ToXY(1, 0)
	g.OuterSweep, g.InnerSweep = int(sx), int(sy)
	g.LineDirection = "h"
	if f.Horizontal() {
		g.LineDirection = "v"
	}

	g.MoveDX, g.MoveDY = f.ToXY((c.PadMin-c.HoleDiameter)/2, g.PadOffset)
	g.Inner0DX, g.Inner0DY = f.ToXY(c.HoleDiameter, 0)
	g.Inner1DX, g.Inner1DY = f.ToXY(-c.HoleDiameter, 0)

	return g
}
