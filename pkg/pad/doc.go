// Package pad computes the geometry of a row of stretched through-hole
// connector pads for a PCB footprint.
//
// # Overview
//
// A "stretched" pad is an elongated, capsule-shaped copper pad — think
// stretched limousine: a circular pad cut in half with an extension inserted —
// with a round drilled hole somewhere along its length. This package turns a
// small set of physical constraints (hole size, pad cross-sections, hole
// position, spacing, keepout) into a validated, orientation-independent set of
// coordinates, arc sweep selectors, and canvas dimensions ready for a
// rendering sink.
//
// # Pipeline
//
// Processing is strictly linear and produces no partial output:
//
//	Validate → FrameFor → BuildGeometry → BuildCanvas
//
// [Build] runs the whole pipeline:
//
//	fp, err := pad.Build(constraints)
//	if err != nil {
//	    // validation failed; no geometry was produced
//	}
//	svg := pads.RenderSVG(fp)
//
// # Orientation
//
// All geometric formulas are written once in abstract (u, v) coordinates:
// u runs along the pin row, v across it. A [Frame] derived from the pad
// position rotates (u, v) pairs into concrete (x, y) screen coordinates, so
// one formula set serves all six supported layouts. See [FrameFor].
//
// # Units
//
// All size inputs are in mils (1/1000 inch) by convention; the solver treats
// them as dimensionless real numbers. Derived values pass through [Normalize]
// so integral results never carry decorative fractional digits.
//
// # Validation
//
// [Validate] checks the cross-field invariants in a fixed order. By default
// the first violation aborts evaluation; with the [DebugCollectProblems] bit
// set, every invariant is evaluated and all violations are reported together
// as a [ValidationError]. A circular-only footprint (pad minimum equal to pad
// maximum) is a capability gap rather than a bad input: it is reported with
// code UNSUPPORTED_FOOTPRINT and terminates processing in either mode.
package pad
