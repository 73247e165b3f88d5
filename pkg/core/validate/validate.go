// Package validate rejects structurally or numerically unsound scale
// definitions before they reach tick generation or UI consumption.
//
// Each check produces a distinct error code from pkg/errors, and validation
// of a composite assembly aggregates every per-scale error into one report
// instead of stopping at the first failure.
package validate

import (
	"math"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// roundTripSamples is how many points across the domain the round-trip
// check evaluates.
const roundTripSamples = 9

// roundTripTolerance is deliberately generous: it catches broken inverse
// formulas, not conditioning noise.
const roundTripTolerance = 1e-3

// Scale checks one definition and returns every failed check. A nil or
// empty result means the definition is sound.
func Scale(def *scale.Definition) []*errors.Error {
	var errs []*errors.Error

	finiteRange := true
	if !isFinite(def.BeginValue) || !isFinite(def.EndValue) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidRange,
			"scale %q has non-finite range [%g, %g]", def.Name, def.BeginValue, def.EndValue))
		finiteRange = false
	}
	if def.BeginValue == def.EndValue {
		errs = append(errs, errors.New(errors.ErrCodeInvalidRange,
			"scale %q begin equals end: %g", def.Name, def.BeginValue))
		finiteRange = false
	}

	if len(def.Subsections) == 0 {
		errs = append(errs, errors.New(errors.ErrCodeEmptySubsections,
			"scale %q has no subsections", def.Name))
	}
	for i := 1; i < len(def.Subsections); i++ {
		for j := 0; j < i; j++ {
			if def.Subsections[i].StartValue == def.Subsections[j].StartValue {
				errs = append(errs, errors.New(errors.ErrCodeOverlappingSubsections,
					"scale %q subsections %d and %d share start value %g",
					def.Name, j, i, def.Subsections[i].StartValue))
			}
		}
	}

	if def.Layout.Extent() <= 0 || !isFinite(def.Layout.Extent()) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidLayout,
			"scale %q has non-positive physical extent", def.Name))
	}

	if finiteRange {
		errs = append(errs, checkTransform(def)...)
	}
	return errs
}

// checkTransform samples the domain, flagging non-finite coordinates and
// round-trip drift beyond the generous tolerance.
func checkTransform(def *scale.Definition) []*errors.Error {
	var errs []*errors.Error

	for _, v := range domainSamples(def) {
		c := def.Func.Transform(v)
		if !isFinite(c) {
			errs = append(errs, errors.New(errors.ErrCodeInvalidFunction,
				"scale %q transform of %g is not finite", def.Name, v))
			continue
		}
		rt := def.Func.InverseTransform(c)
		if math.Abs(rt-v) > roundTripTolerance*math.Max(1, math.Abs(v)) {
			errs = append(errs, errors.New(errors.ErrCodeRoundTrip,
				"scale %q round trip of %g drifted to %g", def.Name, v, rt))
		}
	}
	return errs
}

// domainSamples spreads sample points across the declared range,
// geometrically for wide positive ranges and linearly otherwise.
func domainSamples(def *scale.Definition) []float64 {
	lo, hi := def.BeginValue, def.EndValue
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]float64, 0, roundTripSamples)
	if lo > 0 && hi/lo > 100 {
		ratio := math.Pow(hi/lo, 1/float64(roundTripSamples-1))
		v := lo
		for i := 0; i < roundTripSamples; i++ {
			out = append(out, v)
			v *= ratio
		}
		out[roundTripSamples-1] = hi
		return out
	}
	step := (hi - lo) / float64(roundTripSamples-1)
	for i := 0; i < roundTripSamples; i++ {
		out = append(out, lo+float64(i)*step)
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// RoleScale tags a definition with the structural role it plays in a
// multi-scale assembly ("front top stator", "slide", ...).
type RoleScale struct {
	Role string
	Def  *scale.Definition
}

// Issue is one validation failure inside an assembly, tagged with where it
// came from.
type Issue struct {
	Role  string
	Scale string
	Err   *errors.Error
}

// Assembly validates every scale of a composite assembly and aggregates all
// failures into one report rather than stopping at the first.
func Assembly(scales []RoleScale) []Issue {
	var issues []Issue
	for _, rs := range scales {
		for _, err := range Scale(rs.Def) {
			issues = append(issues, Issue{Role: rs.Role, Scale: rs.Def.Name, Err: err})
		}
	}
	return issues
}
