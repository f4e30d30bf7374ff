package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	apperr "github.com/padforge/stretchpad/pkg/errors"
	"github.com/padforge/stretchpad/pkg/pad"
	"github.com/padforge/stretchpad/pkg/render/pads"
)

// Defaults for the constraint flags, carried from the classic footprint
// parameters: a 38 mil drill in a 45x90 mil pad on a 100 mil grid.
const (
	defaultHoleDiameter = 38
	defaultPadMin       = 45
	defaultPadMax       = 90
	defaultPadSpacing   = 100
	defaultKeepout      = 10
)

// constraintOpts holds the command-line flags shared by generate and inspect.
// All size values are integers in mils; the solver treats them as
// dimensionless real numbers.
type constraintOpts struct {
	holeDiameter   int    // connector hole diameter
	padMin         int    // narrowest pad cross-section
	padMax         int    // longest pad dimension
	position       string // one of the six pad layouts
	holePadding    int    // extra hole offset for biased positions
	firstConnector int    // id of the first connector pad
	rowPins        int    // number of pins in the row
	padSpacing     int    // center-to-center pad distance
	keepout        int    // minimum copper clearance
	debug          int    // diagnostic bit-set
	params         string // optional TOML parameter file
}

// generateOpts holds the flags specific to the generate command.
type generateOpts struct {
	constraintOpts
	output string  // output file path (stdout if empty)
	format string  // output format: svg, json, pdf, png
	prefix string  // connector id prefix
	suffix string  // connector id suffix
	scale  float64 // PNG zoom scale
}

// addConstraintFlags registers the shared constraint flags on cmd.
func addConstraintFlags(cmd *cobra.Command, o *constraintOpts) {
	cmd.Flags().IntVarP(&o.holeDiameter, "diameter", "d", defaultHoleDiameter, "connector hole diameter in mils (0 for a pad without drill)")
	cmd.Flags().IntVarP(&o.padMin, "minimum", "w", defaultPadMin, "narrowest dimension of a pad (must be > diameter)")
	cmd.Flags().IntVarP(&o.padMax, "maximum", "l", defaultPadMax, "longest dimension of a pad (must be >= minimum)")
	cmd.Flags().StringVarP(&o.position, "position", "P", string(pad.PosHorizontal), "position of the pad relative to the hole: top, bottom, left, right, horizontal, vertical")
	cmd.Flags().IntVarP(&o.holePadding, "padding", "p", 0, "extra hole offset for positions other than horizontal or vertical")
	cmd.Flags().IntVarP(&o.firstConnector, "first-connector", "f", 0, "id of the first (lowest) connector pad")
	cmd.Flags().IntVarP(&o.rowPins, "row-pins", "r", 1, "number of pins in a single row")
	cmd.Flags().IntVarP(&o.padSpacing, "pad-spacing", "s", defaultPadSpacing, "center to center distance between adjacent pads")
	cmd.Flags().IntVarP(&o.keepout, "keepout", "k", defaultKeepout, "minimum separation distance between traces")
	cmd.Flags().IntVarP(&o.debug, "debug", "D", 0, "debug bit-set: 0x1 params, 0x2 pad, 0x4 drawing, 0x8 fine scale, 0x1000 collect problems")
	cmd.Flags().StringVar(&o.params, "params", "", "TOML parameter file; explicit flags override file values")
}

// newGenerateCmd creates the generate command, the main entry point of the
// tool: it solves the pad constraints and writes the footprint file.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{scale: 2.0}

	cmd := &cobra.Command{
		Use:   "generate [output-file]",
		Short: "Generate a stretched pad footprint file",
		Long: `Generate solves the pad geometry from the given constraints and writes the
footprint in the requested format. With no output file the result goes to
stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.output = args[0]
			}
			c, err := resolveConstraints(cmd, &opts.constraintOpts)
			if err != nil {
				return err
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), c, &opts)
		},
	}

	addConstraintFlags(cmd, &opts.constraintOpts)
	cmd.Flags().StringVarP(&opts.format, "format", "F", "svg", "output format: svg, json, pdf, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if omitted)")
	cmd.Flags().StringVar(&opts.prefix, "connector-prefix", pads.DefaultConnectorPrefix, "connector element id prefix")
	cmd.Flags().StringVar(&opts.suffix, "connector-suffix", pads.DefaultConnectorSuffix, "connector element id suffix")
	cmd.Flags().Float64Var(&opts.scale, "png-scale", 2.0, "zoom scale for PNG output")

	return cmd
}

// resolveConstraints merges the parameter file (if any) with the flags,
// range-checks every single field, and assembles the solver input. Flags the
// user set explicitly always win over file values.
func resolveConstraints(cmd *cobra.Command, o *constraintOpts) (pad.Constraints, error) {
	if o.params != "" {
		p, err := loadParams(o.params)
		if err != nil {
			return pad.Constraints{}, err
		}
		p.apply(cmd, o)
	}

	checks := []struct {
		name    string
		value   int
		natural bool // > 0 rather than >= 0
	}{
		{"diameter", o.holeDiameter, false},
		{"minimum", o.padMin, true},
		{"maximum", o.padMax, true},
		{"padding", o.holePadding, false},
		{"first-connector", o.firstConnector, false},
		{"row-pins", o.rowPins, false},
		{"pad-spacing", o.padSpacing, true},
		{"keepout", o.keepout, true},
		{"debug", o.debug, false},
	}
	for _, c := range checks {
		if c.natural && c.value <= 0 {
			return pad.Constraints{}, apperr.New(apperr.ErrCodeInvalidInput,
				"invalid positive int value for --%s: %d", c.name, c.value)
		}
		if !c.natural && c.value < 0 {
			return pad.Constraints{}, apperr.New(apperr.ErrCodeInvalidInput,
				"invalid non-negative int value for --%s: %d", c.name, c.value)
		}
	}

	pos := pad.Position(o.position)
	if !pos.Valid() {
		return pad.Constraints{}, apperr.New(apperr.ErrCodeInvalidPosition,
			"invalid position: %s (must be top, bottom, left, right, horizontal, or vertical)", o.position)
	}

	return pad.Constraints{
		HoleDiameter:   float64(o.holeDiameter),
		PadMin:         float64(o.padMin),
		PadMax:         float64(o.padMax),
		PadPosition:    pos,
		HolePadding:    float64(o.holePadding),
		FirstConnector: o.firstConnector,
		RowPins:        o.rowPins,
		PadSpacing:     float64(o.padSpacing),
		Keepout:        float64(o.keepout),
		Debug:          pad.DebugFlags(o.debug),
	}, nil
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "json": true, "pdf": true, "png": true}

// validateFormat checks that the requested format is valid.
func validateFormat(f string) error {
	if !validFormats[f] {
		return apperr.New(apperr.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'svg', 'json', 'pdf', or 'png')", f)
	}
	return nil
}

// runGenerate solves the footprint and writes it in the requested format.
func runGenerate(ctx context.Context, c pad.Constraints, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	if c.Debug.Has(pad.DebugShowParams) {
		dumpConstraints(logger, c)
	}

	fp, err := pad.Build(c)
	if err != nil {
		reportBuildError(err)
		return err
	}

	if c.Debug.Has(pad.DebugShowPad) {
		dumpGeometry(logger, fp.Geometry)
	}
	if c.Debug.Has(pad.DebugShowDrawing) {
		dumpCanvas(logger, fp.Canvas)
	}

	svgOpts := []pads.SVGOption{
		pads.WithConnectorPrefix(opts.prefix),
		pads.WithConnectorSuffix(opts.suffix),
	}

	prog := newProgress(logger)

	var data []byte
	switch opts.format {
	case "svg":
		logger.Debugf("Rendering footprint SVG (%d pins)", c.RowPins)
		data = pads.RenderSVG(fp, svgOpts...)
	case "json":
		logger.Debug("Rendering footprint JSON")
		data, err = pads.RenderJSON(fp,
			pads.WithJSONConnectorPrefix(opts.prefix),
			pads.WithJSONConnectorSuffix(opts.suffix))
	case "pdf":
		logger.Debug("Rendering footprint PDF")
		data, err = pads.RenderPDF(fp, pads.WithPDFSVGOptions(svgOpts...))
	case "png":
		logger.Debugf("Rendering footprint PNG at %gx", opts.scale)
		data, err = pads.RenderPNG(fp,
			pads.WithPNGSVGOptions(svgOpts...),
			pads.WithScale(opts.scale))
	}
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	if opts.output != "" {
		prog.done(fmt.Sprintf("Generated %s", opts.output))
	}
	return nil
}

// reportBuildError presents validation failures: one line per broken rule in
// collect-all mode, and a distinct notice for the unsupported circular-only
// configuration.
func reportBuildError(err error) {
	var ve *pad.ValidationError
	if errors.As(err, &ve) {
		for _, p := range ve.Problems {
			printError("%s", p.Message)
		}
	}
	if apperr.Is(err, apperr.ErrCodeUnsupportedFootprint) {
		printWarning("%s", apperr.UserMessage(err))
	} else if ve == nil {
		printError("%s", apperr.UserMessage(err))
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
