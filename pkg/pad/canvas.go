package pad

// Unit and scale constants for the generated drawing.
const (
	UnitsInches = "in"

	// milFactor converts mils to inches (1000 mils per inch).
	milFactor = 1000
	// fineScaleFactor replaces milFactor under [DebugFineScale], making the
	// unit dimensions 100 times larger without touching pixel dimensions.
	fineScaleFactor = 10
)

// Canvas describes the overall drawing extents and the layer translations
// that place the first pad's hole center at the coordinate origin.
type Canvas struct {
	Units        string  // physical unit name for the drawing dimensions
	PxWidth      float64 // drawing width in pixels (mils)
	PxHeight     float64 // drawing height in pixels (mils)
	UnitWidth    float64 // drawing width in physical units
	UnitHeight   float64 // drawing height in physical units
	CopperStroke float64 // stroke width filling the ring between hole and pad edge

	Copper1TranslateX float64 // copper layer translation
	Copper1TranslateY float64
	PadTranslateX     float64 // pad outline translation
	PadTranslateY     float64
}

// BuildCanvas computes the drawing extents for the whole row from validated
// constraints, the representative pad geometry, and the orientation frame.
// The row spans pad minimum plus one spacing per additional pin along the
// row axis, and pad maximum across it.
func BuildCanvas(c Constraints, g Geometry, f Frame) Canvas {
	d := Canvas{
		Units:        UnitsInches,
		CopperStroke: Normalize((c.PadMin - c.HoleDiameter) / 2),
	}

	d.PxWidth, d.PxHeight = f.ToXY(c.PadMin+float64(c.RowPins-1)*c.PadSpacing, c.PadMax)

	scale := float64(milFactor)
	if c.Debug.Has(DebugFineScale) {
		scale = fineScaleFactor
	}
	d.UnitWidth = Normalize(d.PxWidth / scale)
	d.UnitHeight = Normalize(d.PxHeight / scale)

	d.Copper1TranslateX, d.Copper1TranslateY = f.ToXY(g.HalfWidth, g.HalfWidth+g.PadOffset)
	d.PadTranslateX, d.PadTranslateY = f.ToXY(-g.HalfWidth, -g.PadOffset)

	return d
}
