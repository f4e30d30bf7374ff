package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
)

// ToPDF converts SVG bytes to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG at the given zoom scale.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', -1, 64))
}

// convert pipes svg through rsvg-convert and returns the converted bytes.
func convert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	args := append([]string{"--format", format}, extraArgs...)

	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, lookErr := exec.LookPath("rsvg-convert"); lookErr != nil {
			return nil, fmt.Errorf("rsvg-convert not found (install librsvg): %w", err)
		}
		return nil, fmt.Errorf("rsvg-convert %s: %w: %s", format, err, stderr.String())
	}
	return out.Bytes(), nil
}
