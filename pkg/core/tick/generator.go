package tick

import (
	"fmt"
	"math"
	"sort"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/calc"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// Algorithm selects the tick generation strategy.
type Algorithm int

// Available strategies.
const (
	AlgorithmLegacy Algorithm = iota
	AlgorithmModulo
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmLegacy:
		return "legacy"
	case AlgorithmModulo:
		return "modulo"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "legacy":
		return AlgorithmLegacy, nil
	case "modulo", "":
		return AlgorithmModulo, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownAlgorithm, "unknown tick algorithm %q", s)
}

const (
	// DefaultMinSeparation is the minimum normalized distance between two
	// consecutively emitted ticks in the modulo strategy's final pass.
	DefaultMinSeparation = 1e-6

	// minMultiplier is the floor for the recommended precision multiplier.
	minMultiplier = 100

	// maxWalkSteps bounds the legacy strategy's per-level iteration so a
	// pathologically tiny interval cannot cause non-termination.
	maxWalkSteps = 100000

	// positionEpsilon is the tolerance for treating two normalized positions
	// as the same tick.
	positionEpsilon = 1e-9
)

// Options configures one generation call. The zero value selects the legacy
// strategy with a recommended precision multiplier and the default minimum
// separation; set Algorithm explicitly rather than relying on any ambient
// default.
type Options struct {
	Algorithm Algorithm

	// PrecisionMultiplier is the integer scaling factor for the modulo
	// strategy. Zero means "recommend one from the finest interval".
	PrecisionMultiplier int

	// MinSeparation is the normalized minimum distance between consecutive
	// ticks in the modulo strategy. Zero means DefaultMinSeparation.
	MinSeparation float64
}

// Generate produces the fully-populated, duplicate-free, position-sorted
// tick sequence for def. Degenerate definitions (no subsections, all-zero
// intervals) yield zero ticks, not an error; generation assumes a
// pre-validated definition.
func Generate(def *scale.Definition, opts Options) scale.Generated {
	var ticks []scale.Tick
	switch opts.Algorithm {
	case AlgorithmModulo:
		mult := opts.PrecisionMultiplier
		if mult <= 0 {
			mult = RecommendedMultiplier(def)
		}
		ticks = moduloTicks(def, mult)
		ticks = sortTicks(def, ticks)
		minSep := opts.MinSeparation
		if minSep <= 0 {
			minSep = DefaultMinSeparation
		}
		ticks = enforceMinSeparation(ticks, minSep)
	default:
		ticks = legacyTicks(def)
		ticks = sortTicks(def, ticks)
	}

	ticks = mergeConstants(def, ticks)
	if def.Layout.IsCircular() {
		ticks = applyAngles(def, ticks)
	}
	return scale.Generated{Definition: def, Ticks: ticks}
}

// RecommendedMultiplier inspects the finest non-zero interval across all
// subsections and returns the smallest power of ten that makes it an
// integer when scaled, clamped to a sane minimum of 100.
func RecommendedMultiplier(def *scale.Definition) int {
	finest := 0.0
	for _, sub := range def.Subsections {
		if f := sub.FinestInterval(); f > 0 && (finest == 0 || f < finest) {
			finest = f
		}
	}
	if finest <= 0 {
		return minMultiplier
	}
	mult := 1
	for !isIntegral(finest*float64(mult)) && mult < 1e9 {
		mult *= 10
	}
	if mult < minMultiplier {
		return minMultiplier
	}
	return mult
}

func isIntegral(x float64) bool {
	return math.Abs(x-math.Round(x)) <= 1e-9*math.Max(1, math.Abs(x))
}

// sortTicks orders ticks by ascending normalized position and collapses
// coincident positions, retaining the coarser hierarchy style.
func sortTicks(def *scale.Definition, ticks []scale.Tick) []scale.Tick {
	sort.SliceStable(ticks, func(a, b int) bool {
		if ticks[a].Position != ticks[b].Position {
			return ticks[a].Position < ticks[b].Position
		}
		return ticks[a].Style < ticks[b].Style
	})

	out := ticks[:0]
	for _, t := range ticks {
		if len(out) > 0 && math.Abs(t.Position-out[len(out)-1].Position) <= positionEpsilon {
			// Coincident with the previous tick; the sort put the coarser
			// style first, so keep what we have but adopt a label if the
			// kept tick lacks one.
			if out[len(out)-1].Label == "" && t.Label != "" {
				out[len(out)-1].Label = t.Label
			}
			continue
		}
		out = append(out, t)
	}
	return out
}

// enforceMinSeparation drops any tick closer than minSep to the previously
// kept one. The input must already be position-sorted.
func enforceMinSeparation(ticks []scale.Tick, minSep float64) []scale.Tick {
	out := ticks[:0]
	for _, t := range ticks {
		if len(out) > 0 && t.Position-out[len(out)-1].Position < minSep {
			continue
		}
		out = append(out, t)
	}
	return out
}

// fullCycle reports whether a circular scale's domain spans a complete
// number of transform cycles, i.e. the end value's position coincides with
// the begin value's position modulo the circle.
func fullCycle(def *scale.Definition) bool {
	span := def.Func.Transform(def.EndValue) - def.Func.Transform(def.BeginValue)
	whole := math.Round(span)
	return whole != 0 && math.Abs(span-whole) <= 1e-9
}

// applyAngles fills the angular coordinate for circular layouts and, when
// the domain spans a complete cycle, suppresses the tick that would land on
// the 0°/360° seam so only the begin-value tick at 0° survives. Partial
// arcs keep their end tick.
func applyAngles(def *scale.Definition, ticks []scale.Tick) []scale.Tick {
	wrap := fullCycle(def)
	out := ticks[:0]
	for _, t := range ticks {
		if wrap && math.Abs(t.Position-1) <= positionEpsilon {
			continue
		}
		t.Angle = t.Position * 360
		out = append(out, t)
	}
	return out
}

// mergeConstants inserts the definition's named constants as labeled ticks.
// A constant that coincides with a generated tick takes over that tick's
// label and style rather than duplicating the position.
func mergeConstants(def *scale.Definition, ticks []scale.Tick) []scale.Tick {
	for _, c := range def.Constants {
		if !calc.InDomain(def, c.Value) {
			continue
		}
		pos := calc.PositionOf(def, c.Value)
		idx := sort.Search(len(ticks), func(i int) bool { return ticks[i].Position >= pos-positionEpsilon })
		if idx < len(ticks) && math.Abs(ticks[idx].Position-pos) <= positionEpsilon {
			ticks[idx].Label = c.Name
			ticks[idx].Style = c.Style
			continue
		}
		t := scale.Tick{Value: c.Value, Position: pos, Style: c.Style, Label: c.Name}
		ticks = append(ticks, scale.Tick{})
		copy(ticks[idx+1:], ticks[idx:])
		ticks[idx] = t
	}
	return ticks
}
