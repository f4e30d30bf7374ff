package pad

import "testing"

func TestBuildGeometryCenteredHorizontal(t *testing.T) {
	// Scenario: hole=38, min=45, max=90, horizontal row.
	c := validConstraints()
	g := BuildGeometry(c, FrameFor(c.PadPosition))

	if g.HoleRadius != 19 {
		t.Errorf("HoleRadius = %v, want 19", g.HoleRadius)
	}
	if g.FullWidth != 45 || g.HalfWidth != 22.5 || g.FullLength != 90 {
		t.Errorf("widths = (%v, %v, %v), want (45, 22.5, 90)", g.FullWidth, g.HalfWidth, g.FullLength)
	}
	if g.CircleRadius != 20.75 {
		t.Errorf("CircleRadius = %v, want 20.75", g.CircleRadius)
	}
	// (90-45)/2 is genuinely fractional and must stay 22.5.
	if g.PadOffset != 22.5 {
		t.Errorf("PadOffset = %v, want 22.5", g.PadOffset)
	}
	if g.BaseX != 100 || g.BaseY != 0 {
		t.Errorf("base vector = (%v, %v), want (100, 0)", g.BaseX, g.BaseY)
	}
	if g.Outer0DX != 45 || g.Outer0DY != 0 {
		t.Errorf("outer0 = (%v, %v), want (45, 0)", g.Outer0DX, g.Outer0DY)
	}
	if g.Outer1DX != -45 || g.Outer1DY != 0 {
		t.Errorf("outer1 = (%v, %v), want (-45, 0)", g.Outer1DX, g.Outer1DY)
	}
	if g.OuterSweep != 1 || g.InnerSweep != 0 {
		t.Errorf("sweeps = (%d, %d), want (1, 0)", g.OuterSweep, g.InnerSweep)
	}
	if g.LineDirection != "v" {
		t.Errorf("LineDirection = %q, want \"v\"", g.LineDirection)
	}
	if g.MoveDX != 3.5 || g.MoveDY != 22.5 {
		t.Errorf("move = (%v, %v), want (3.5, 22.5)", g.MoveDX, g.MoveDY)
	}
	if g.Inner0DX != 38 || g.Inner0DY != 0 {
		t.Errorf("inner0 = (%v, %v), want (38, 0)", g.Inner0DX, g.Inner0DY)
	}
	if g.Inner1DX != -38 || g.Inner1DY != 0 {
		t.Errorf("inner1 = (%v, %v), want (-38, 0)", g.Inner1DX, g.Inner1DY)
	}
}

func TestBuildGeometryVerticalSwapsAxes(t *testing.T) {
	c := validConstraints()
	c.PadPosition = PosVertical
	g := BuildGeometry(c, FrameFor(c.PadPosition))

	if g.BaseX != 0 || g.BaseY != 100 {
		t.Errorf("base vector = (%v, %v), want (0, 100)", g.BaseX, g.BaseY)
	}
	if g.Outer0DX != 0 || g.Outer0DY != 45 {
		t.Errorf("outer0 = (%v, %v), want (0, 45)", g.Outer0DX, g.Outer0DY)
	}
	if g.OuterSweep != 0 || g.InnerSweep != 1 {
		t.Errorf("sweeps = (%d, %d), want (0, 1)", g.OuterSweep, g.InnerSweep)
	}
	if g.LineDirection != "h" {
		t.Errorf("LineDirection = %q, want \"h\"", g.LineDirection)
	}
	if g.MoveDX != 22.5 || g.MoveDY != 3.5 {
		t.Errorf("move = (%v, %v), want (22.5, 3.5)", g.MoveDX, g.MoveDY)
	}
}

func TestPadOffsetByPosition(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		padding float64
		want    float64
	}{
		{"centered horizontal", PosHorizontal, 0, 22.5},
		{"centered vertical", PosVertical, 0, 22.5},
		{"bottom keeps padding", PosBottom, 10, 10},
		{"right keeps padding", PosRight, 10, 10},
		{"top mirrors padding", PosTop, 10, 35},
		{"left mirrors padding", PosLeft, 10, 35},
		{"bottom zero padding", PosBottom, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConstraints()
			c.PadPosition = tt.pos
			c.HolePadding = tt.padding
			g := BuildGeometry(c, FrameFor(tt.pos))
			if g.PadOffset != tt.want {
				t.Errorf("PadOffset = %v, want %v", g.PadOffset, tt.want)
			}
			if g.PadOffset < 0 {
				t.Errorf("PadOffset = %v, want non-negative", g.PadOffset)
			}
		})
	}
}

func TestBuildGeometryPadOnly(t *testing.T) {
	c := validConstraints()
	c.HoleDiameter = 0
	g := BuildGeometry(c, FrameFor(c.PadPosition))

	if g.HoleRadius != 0 {
		t.Errorf("HoleRadius = %v, want 0", g.HoleRadius)
	}
	if g.CircleRadius != 11.25 {
		t.Errorf("CircleRadius = %v, want 11.25", g.CircleRadius)
	}
	if g.Inner0DX != 0 || g.Inner0DY != 0 {
		t.Errorf("inner0 = (%v, %v), want (0, 0)", g.Inner0DX, g.Inner0DY)
	}
}

// Debug flags are observational: geometry must be identical with and
// without them.
func TestBuildGeometryIgnoresDebugFlags(t *testing.T) {
	c := validConstraints()
	plain := BuildGeometry(c, FrameFor(c.PadPosition))

	c.Debug = DebugShowParams | DebugShowPad | DebugShowDrawing | DebugFineScale
	flagged := BuildGeometry(c, FrameFor(c.PadPosition))

	if plain != flagged {
		t.Errorf("geometry changed under debug flags:\nplain:   %+v\nflagged: %+v", plain, flagged)
	}
}

func TestBuildPipeline(t *testing.T) {
	fp, err := Build(validConstraints())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if fp.Geometry.PadOffset != 22.5 {
		t.Errorf("PadOffset = %v, want 22.5", fp.Geometry.PadOffset)
	}
	if fp.Canvas.PxWidth != 245 {
		t.Errorf("PxWidth = %v, want 245", fp.Canvas.PxWidth)
	}
}

func TestBuildRejectsInvalid(t *testing.T) {
	c := validConstraints()
	c.PadSpacing = 50

	fp, err := Build(c)
	if err == nil {
		t.Fatal("Build() error = nil, want validation failure")
	}
	if fp != nil {
		t.Errorf("Build() returned partial output %+v on failure", fp)
	}
}
