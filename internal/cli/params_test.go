package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	apperr "github.com/padforge/stretchpad/pkg/errors"
)

func writeParams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pad.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParams(t *testing.T) {
	path := writeParams(t, `
diameter = 32
minimum = 40
maximum = 80
position = "top"
padding = 5
row-pins = 8
`)

	p, err := loadParams(path)
	if err != nil {
		t.Fatalf("loadParams() error = %v", err)
	}

	if p.Diameter == nil || *p.Diameter != 32 {
		t.Errorf("Diameter = %v, want 32", p.Diameter)
	}
	if p.Position == nil || *p.Position != "top" {
		t.Errorf("Position = %v, want top", p.Position)
	}
	if p.RowPins == nil || *p.RowPins != 8 {
		t.Errorf("RowPins = %v, want 8", p.RowPins)
	}
	if p.Keepout != nil {
		t.Errorf("Keepout = %v, want nil for an absent key", p.Keepout)
	}
}

func TestLoadParamsMissingFile(t *testing.T) {
	_, err := loadParams(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("code = %v, want %v", apperr.GetCode(err), apperr.ErrCodeInvalidInput)
	}
}

func TestLoadParamsBadTOML(t *testing.T) {
	path := writeParams(t, `diameter = "not a number`)
	_, err := loadParams(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("code = %v, want %v", apperr.GetCode(err), apperr.ErrCodeInvalidInput)
	}
}

func TestParamsApplyRespectsExplicitFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var opts constraintOpts
	addConstraintFlags(cmd, &opts)
	if err := cmd.ParseFlags([]string{"--minimum", "50"}); err != nil {
		t.Fatal(err)
	}

	d, m, pos := 32, 40, "top"
	p := &paramsFile{Diameter: &d, Minimum: &m, Position: &pos}
	p.apply(cmd, &opts)

	if opts.holeDiameter != 32 {
		t.Errorf("holeDiameter = %d, want 32 from the file", opts.holeDiameter)
	}
	if opts.padMin != 50 {
		t.Errorf("padMin = %d, want 50 from the explicit flag", opts.padMin)
	}
	if opts.position != "top" {
		t.Errorf("position = %q, want top from the file", opts.position)
	}
	if opts.padMax != defaultPadMax {
		t.Errorf("padMax = %d, want the flag default %d", opts.padMax, defaultPadMax)
	}
}

func TestGenerateWithParamsFile(t *testing.T) {
	params := writeParams(t, `
position = "vertical"
row-pins = 2
`)
	out := filepath.Join(t.TempDir(), "pad.svg")

	root := newRootCmd()
	root.SetArgs([]string{"generate", "--params", params, "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	// Vertical pads step down the row: translate(0,100).
	if !strings.Contains(svg, "translate(0,100)") {
		t.Errorf("expected a vertical row step in the SVG, got:\n%s", svg)
	}
}
