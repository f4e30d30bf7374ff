package pad

import (
	"fmt"
	"strings"

	apperr "github.com/padforge/stretchpad/pkg/errors"
)

// ValidationError reports the cross-field constraint violations found in
// collect-all mode. Each entry is one broken rule with the concrete values
// involved; Problems never contains the unsupported-configuration signal.
type ValidationError struct {
	Problems []*apperr.Error
}

// Error implements the error interface. One line per violation.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Message
	}
	return fmt.Sprintf("%d constraint violation(s):\n%s", len(e.Problems), strings.Join(msgs, "\n"))
}

// Count returns the number of violations.
func (e *ValidationError) Count() int { return len(e.Problems) }

// Validate checks the interdependent constraint rules in a fixed order:
//
//  1. pad minimum must exceed the hole diameter
//  2. pad maximum must not be less than pad minimum
//  3. pad spacing must be at least pad minimum plus keepout
//  4. a circular pad (min == max) must use a centered position
//  5. centered positions take no hole padding
//  6. otherwise, hole padding must stay below (max − min)/2
//  7. a circular-only footprint (min == max) is unsupported
//
// By default the first violation aborts evaluation and is returned as an
// *errors.Error with code INVALID_CONSTRAINT. With [DebugCollectProblems]
// set on c, rules 1–6 are all evaluated and the violations returned together
// as a *ValidationError.
//
// Rule 7 is not a constraint violation but a capability gap: it is reported
// with code UNSUPPORTED_FOOTPRINT and terminates evaluation in either mode.
// In collect-all mode any violations found before it are attached as its
// cause so the caller can still surface them.
//
// Validate never repairs an invalid configuration. A nil return means all
// rules hold and geometry derivation may proceed.
func Validate(c Constraints) error {
	collect := c.Debug.Has(DebugCollectProblems)
	var problems []*apperr.Error

	report := func(format string, args ...any) *apperr.Error {
		return apperr.New(apperr.ErrCodeInvalidConstraint, format, args...)
	}

	check := func(e *apperr.Error) error {
		if !collect {
			return e
		}
		problems = append(problems, e)
		return nil
	}

	if c.PadMin <= c.HoleDiameter {
		if err := check(report("pad minimum (%v) must be larger than the hole diameter (%v)",
			Normalize(c.PadMin), Normalize(c.HoleDiameter))); err != nil {
			return err
		}
	}
	if c.PadMax < c.PadMin {
		if err := check(report("pad maximum (%v) can not be less than the pad minimum (%v):"+
			" use identical values to get a circular pad",
			Normalize(c.PadMax), Normalize(c.PadMin))); err != nil {
			return err
		}
	}
	if c.PadSpacing < c.PadMin+c.Keepout {
		if err := check(report("pad spacing (%v) must be at least pad minimum (%v) plus keepout (%v)"+
			" to prevent design rules check conflicts",
			Normalize(c.PadSpacing), Normalize(c.PadMin), Normalize(c.Keepout))); err != nil {
			return err
		}
	}
	if c.PadMin == c.PadMax && !c.PadPosition.Centered() {
		if err := check(report("pad position (%s) must be `horizontal` or `vertical` for a circular pad",
			c.PadPosition)); err != nil {
			return err
		}
	}
	if c.PadPosition.Centered() {
		if c.HolePadding != 0 {
			if err := check(report("hole padding can not be applied when the pad is centred")); err != nil {
				return err
			}
		}
	} else {
		// The maximum padding would (almost) move the pad from the end
		// position back to centred over the hole.
		offsetLimit := Normalize((c.PadMax - c.PadMin) / 2)
		if c.HolePadding >= offsetLimit {
			if err := check(report("with the specified minimum (%v) and maximum (%v), the"+
				" hole padding (%v) must be less than %v",
				Normalize(c.PadMin), Normalize(c.PadMax), Normalize(c.HolePadding),
				offsetLimit)); err != nil {
				return err
			}
		}
	}

	if c.PadMin == c.PadMax {
		unsupported := apperr.New(apperr.ErrCodeUnsupportedFootprint,
			"creating only circular pads is not supported")
		if len(problems) > 0 {
			unsupported.Cause = &ValidationError{Problems: problems}
		}
		return unsupported
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
