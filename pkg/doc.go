// Package pkg provides the core libraries for stretchpad footprint generation.
//
// # Overview
//
// Stretchpad computes the geometry of stretched (capsule-shaped) through-hole
// connector pads and renders them as Fritzing PCB-view footprints. The pkg
// directory is organized into three main areas:
//
//  1. [pad] - Domain logic (constraint validation, geometry derivation)
//  2. [render] - Output formats (SVG, JSON, PDF, PNG)
//  3. [errors] - Structured error codes shared by the CLI and the solver
//
// # Architecture
//
// The typical data flow through stretchpad:
//
//	Physical constraints (hole, pad sizes, position, row)
//	         ↓
//	    [pad] package (validate + solve geometry)
//	         ↓
//	    [render/pads] package (serialize the footprint)
//	         ↓
//	    SVG/JSON/PDF/PNG output
//
// # Quick Start
//
// Solve a footprint and render it to SVG:
//
//	import (
//	    "github.com/padforge/stretchpad/pkg/pad"
//	    "github.com/padforge/stretchpad/pkg/render/pads"
//	)
//
//	// 1. Describe the pad row
//	c := pad.Constraints{
//	    HoleDiameter: 38,
//	    PadMin:       45,
//	    PadMax:       90,
//	    PadPosition:  pad.PosHorizontal,
//	    RowPins:      3,
//	    PadSpacing:   100,
//	    Keepout:      10,
//	}
//
//	// 2. Validate and solve
//	fp, err := pad.Build(c)
//
//	// 3. Render to SVG
//	svg := pads.RenderSVG(fp)
//
// # Main Packages
//
// [pad] - The geometry solver. Validates the interdependent constraint rules,
// derives the orientation frame for the six pad positions, and computes every
// drawing value (arc vectors, hole offset, canvas dimensions).
//
// [render/pads] - Footprint serialization. SVG is the primary format; JSON
// exposes the raw solved values, and PDF/PNG are produced by converting the
// SVG with rsvg-convert.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// [errors] - Structured errors with machine-readable codes, shared across the
// solver and the CLI.
//
// [buildinfo] - Build metadata injected at link time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/pad/...       # Solver only
//
// [pad]: https://pkg.go.dev/github.com/padforge/stretchpad/pkg/pad
// [render]: https://pkg.go.dev/github.com/padforge/stretchpad/pkg/render
// [render/pads]: https://pkg.go.dev/github.com/padforge/stretchpad/pkg/render/pads
// [errors]: https://pkg.go.dev/github.com/padforge/stretchpad/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/padforge/stretchpad/pkg/buildinfo
package pkg
