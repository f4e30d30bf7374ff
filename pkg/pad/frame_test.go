package pad

import "testing"

func TestFrameFor(t *testing.T) {
	tests := []struct {
		pos        Position
		horizontal int
		vertical   int
		uAxis      string
		vAxis      string
	}{
		{PosHorizontal, 1, 0, "x", "y"},
		{PosBottom, 1, 0, "x", "y"},
		{PosTop, 1, 0, "x", "y"},
		{PosVertical, 0, 1, "y", "x"},
		{PosLeft, 0, 1, "y", "x"},
		{PosRight, 0, 1, "y", "x"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			f := FrameFor(tt.pos)
			if f.HorizontalFactor != tt.horizontal || f.VerticalFactor != tt.vertical {
				t.Errorf("FrameFor(%s) factors = (%d, %d), want (%d, %d)",
					tt.pos, f.HorizontalFactor, f.VerticalFactor, tt.horizontal, tt.vertical)
			}
			if f.UAxis != tt.uAxis || f.VAxis != tt.vAxis {
				t.Errorf("FrameFor(%s) axes = (%s, %s), want (%s, %s)",
					tt.pos, f.UAxis, f.VAxis, tt.uAxis, tt.vAxis)
			}
		})
	}
}

// The factors must always be a mutually exclusive 0/1 pair.
func TestFrameFactorsExclusive(t *testing.T) {
	for _, pos := range Positions {
		f := FrameFor(pos)
		if f.HorizontalFactor+f.VerticalFactor != 1 {
			t.Errorf("FrameFor(%s) factor sum = %d, want 1", pos, f.HorizontalFactor+f.VerticalFactor)
		}
		if f.HorizontalFactor*f.VerticalFactor != 0 {
			t.Errorf("FrameFor(%s) factors not mutually exclusive", pos)
		}
	}
}

func TestFrameToXY(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		u, v   float64
		wantX  float64
		wantY  float64
	}{
		{"horizontal passes u to x", PosHorizontal, 100, 0, 100, 0},
		{"horizontal passes v to y", PosHorizontal, 0, 45, 0, 45},
		{"vertical swaps u to y", PosVertical, 100, 0, 0, 100},
		{"vertical swaps v to x", PosVertical, 0, 45, 45, 0},
		{"left swaps both", PosLeft, 3, 7, 7, 3},
		{"bottom keeps both", PosBottom, 3, 7, 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := FrameFor(tt.pos).ToXY(tt.u, tt.v)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ToXY(%v, %v) = (%v, %v), want (%v, %v)",
					tt.u, tt.v, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// ToUV must invert ToXY exactly for both orientation classes.
func TestFrameRoundTrip(t *testing.T) {
	pairs := [][2]float64{{0, 0}, {100, 0}, {0, 45}, {22.5, -45}, {-1, 1}}

	for _, pos := range Positions {
		f := FrameFor(pos)
		for _, p := range pairs {
			x, y := f.ToXY(p[0], p[1])
			u, v := f.ToUV(x, y)
			if u != p[0] || v != p[1] {
				t.Errorf("%s: ToUV(ToXY(%v, %v)) = (%v, %v), want original pair",
					pos, p[0], p[1], u, v)
			}
		}
	}
}
