package pad

// Position selects one of the six supported pad layouts. The top/bottom
// positions bias the hole toward one end of a horizontally-arrayed row,
// left/right do the same for a vertically-arrayed row, and
// horizontal/vertical center the hole and orient the row accordingly.
type Position string

// Supported pad positions.
const (
	PosTop        Position = "top"        // most of pad above the hole, horizontal row
	PosBottom     Position = "bottom"     // most of pad below the hole, horizontal row
	PosLeft       Position = "left"       // most of pad left of the hole, vertical row
	PosRight      Position = "right"      // most of pad right of the hole, vertical row
	PosHorizontal Position = "horizontal" // centered pad, horizontal row
	PosVertical   Position = "vertical"   // centered pad, vertical row
)

// Positions lists every supported pad position in display order.
var Positions = []Position{PosTop, PosBottom, PosLeft, PosRight, PosHorizontal, PosVertical}

// Valid reports whether p is one of the six supported positions.
func (p Position) Valid() bool {
	switch p {
	case PosTop, PosBottom, PosLeft, PosRight, PosHorizontal, PosVertical:
		return true
	}
	return false
}

// Centered reports whether the hole sits at the pad's geometric center.
func (p Position) Centered() bool {
	return p == PosHorizontal || p == PosVertical
}

// DebugFlags is a bit-set of diagnostic toggles. The flags are purely
// observational: they control dumps and the fine-scale unit ratio, and must
// never change computed geometry.
type DebugFlags int

const (
	// DebugShowParams dumps the base constraint values.
	DebugShowParams DebugFlags = 0x1
	// DebugShowPad dumps the computed pad geometry.
	DebugShowPad DebugFlags = 0x2
	// DebugShowDrawing dumps the computed drawing canvas.
	DebugShowDrawing DebugFlags = 0x4
	// DebugFineScale uses a 100x finer unit scale (10 instead of 1000).
	// Pixel dimensions and geometry are unaffected; only the unit/pixel
	// ratio changes.
	DebugFineScale DebugFlags = 0x8
	// DebugCollectProblems switches validation from fail-fast to
	// collect-all reporting.
	DebugCollectProblems DebugFlags = 0x1000
)

// Has reports whether flag is set.
func (d DebugFlags) Has(flag DebugFlags) bool { return d&flag != 0 }

// Constraints is the immutable input to the solver: the physical parameters
// of one pad row. All size values are in mils. Single-field range checks
// (positivity, non-negativity) are the input layer's responsibility; the
// cross-field invariants are checked by [Validate].
type Constraints struct {
	HoleDiameter   float64    // drilled hole diameter; 0 means pad-only, no drill
	PadMin         float64    // narrowest pad cross-section (> 0)
	PadMax         float64    // longest pad dimension (>= PadMin)
	PadPosition    Position   // hole placement and row orientation
	HolePadding    float64    // extra hole offset for non-centered positions (>= 0)
	FirstConnector int        // id of the first (lowest) connector pad (>= 0)
	RowPins        int        // number of pads in the row (>= 0)
	PadSpacing     float64    // center-to-center distance between adjacent pads (> 0)
	Keepout        float64    // minimum copper-to-copper clearance (> 0)
	Debug          DebugFlags // diagnostic toggles; never alter geometry
}
