package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	apperr "github.com/padforge/stretchpad/pkg/errors"
)

// paramsFile mirrors the constraint flags for TOML parameter files. Every key
// is optional: absent keys keep the flag default, and flags set explicitly on
// the command line override file values.
//
//	diameter = 38
//	minimum = 45
//	maximum = 90
//	position = "top"
//	padding = 5
//	row-pins = 8
type paramsFile struct {
	Diameter       *int    `toml:"diameter"`
	Minimum        *int    `toml:"minimum"`
	Maximum        *int    `toml:"maximum"`
	Position       *string `toml:"position"`
	Padding        *int    `toml:"padding"`
	FirstConnector *int    `toml:"first-connector"`
	RowPins        *int    `toml:"row-pins"`
	PadSpacing     *int    `toml:"pad-spacing"`
	Keepout        *int    `toml:"keepout"`
	Debug          *int    `toml:"debug"`
}

// loadParams reads and parses a TOML parameter file.
func loadParams(path string) (*paramsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "reading parameter file %s", path)
	}
	var p paramsFile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "parsing parameter file %s", path)
	}
	return &p, nil
}

// apply copies file values into the options for every flag the user did not
// set explicitly on the command line.
func (p *paramsFile) apply(cmd *cobra.Command, o *constraintOpts) {
	setInt := func(flag string, dst *int, src *int) {
		if src != nil && !cmd.Flags().Changed(flag) {
			*dst = *src
		}
	}
	setInt("diameter", &o.holeDiameter, p.Diameter)
	setInt("minimum", &o.padMin, p.Minimum)
	setInt("maximum", &o.padMax, p.Maximum)
	setInt("padding", &o.holePadding, p.Padding)
	setInt("first-connector", &o.firstConnector, p.FirstConnector)
	setInt("row-pins", &o.rowPins, p.RowPins)
	setInt("pad-spacing", &o.padSpacing, p.PadSpacing)
	setInt("keepout", &o.keepout, p.Keepout)
	setInt("debug", &o.debug, p.Debug)
	if p.Position != nil && !cmd.Flags().Changed("position") {
		o.position = *p.Position
	}
}
