package pad

// Frame maps abstract (u, v) row coordinates to concrete (x, y) screen
// coordinates for one pad layout. The two factors are mutually exclusive 0/1
// values usable either as multipliers or as booleans:
//
//	x = HorizontalFactor·u + VerticalFactor·v
//	y = HorizontalFactor·v + VerticalFactor·u
//
// A Frame is a lookup result, not mutable state: [FrameFor] always returns
// the same frame for the same position.
type Frame struct {
	HorizontalFactor int    // 1 when the pin row runs left-to-right
	VerticalFactor   int    // 1 when the pin row runs top-to-bottom
	UAxis            string // screen axis the along-row u axis maps to ("x" or "y")
	VAxis            string // screen axis the across-row v axis maps to ("y" or "x")
}

// FrameFor returns the orientation frame for a pad position. Positions
// horizontal, bottom and top lay the row out left-to-right; vertical, left
// and right lay it out top-to-bottom.
func FrameFor(pos Position) Frame {
	switch pos {
	case PosHorizontal, PosBottom, PosTop:
		return Frame{HorizontalFactor: 1, VerticalFactor: 0, UAxis: "x", VAxis: "y"}
	default:
		return Frame{HorizontalFactor: 0, VerticalFactor: 1, UAxis: "y", VAxis: "x"}
	}
}

// Horizontal reports whether the pin row runs left-to-right.
func (f Frame) Horizontal() bool { return f.HorizontalFactor != 0 }

// ToXY rotates a (u, v) pair into screen coordinates. Both results are
// normalized.
func (f Frame) ToXY(u, v float64) (x, y float64) {
	h, vf := float64(f.HorizontalFactor), float64(f.VerticalFactor)
	return Normalize(h*u + vf*v), Normalize(h*v + vf*u)
}

// ToUV is the inverse of [ToXY]: it recovers the (u, v) pair from screen
// coordinates using the same factors.
func (f Frame) ToUV(x, y float64) (u, v float64) {
	h, vf := float64(f.HorizontalFactor), float64(f.VerticalFactor)
	return Normalize(h*x + vf*y), Normalize(h*y + vf*x)
}
