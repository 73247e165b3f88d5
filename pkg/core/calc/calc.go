// Package calc is the bidirectional bridge between a scale's value domain
// and normalized position space, and, for circular layouts, angular space.
//
// All functions are pure and stateless: they compose the scale's transform
// with a linear remap from [transform(begin), transform(end)] to [0,1].
// Inverted scales (begin greater than end) come out right because the remap
// carries the sign of the transform span instead of assuming an increasing
// transform.
package calc

import (
	"fmt"
	"math"
	"sort"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
)

// PositionOf returns the normalized position in [0,1] of value on the scale.
// Values outside the scale's range extrapolate beyond [0,1].
func PositionOf(def *scale.Definition, value float64) float64 {
	tb := def.Func.Transform(def.BeginValue)
	te := def.Func.Transform(def.EndValue)
	return (def.Func.Transform(value) - tb) / (te - tb)
}

// ValueAt returns the scale value at a normalized position. It is the exact
// inverse of [PositionOf].
func ValueAt(def *scale.Definition, position float64) float64 {
	tb := def.Func.Transform(def.BeginValue)
	te := def.Func.Transform(def.EndValue)
	return def.Func.InverseTransform(tb + position*(te-tb))
}

// AngleOf returns the angular position of value in degrees [0,360).
// Calling it on a linear layout is a programmer error and panics.
func AngleOf(def *scale.Definition, value float64) float64 {
	mustBeCircular(def, "AngleOf")
	deg := PositionOf(def, value) * 360
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// ValueAtAngle returns the scale value at an angular position in degrees.
// Calling it on a linear layout is a programmer error and panics.
func ValueAtAngle(def *scale.Definition, degrees float64) float64 {
	mustBeCircular(def, "ValueAtAngle")
	return ValueAt(def, degrees/360)
}

func mustBeCircular(def *scale.Definition, op string) {
	if !def.Layout.IsCircular() {
		panic(fmt.Sprintf("calc: %s called on linear scale %q", op, def.Name))
	}
}

// InDomain reports whether value lies within the scale's declared range,
// ordering begin and end correctly for inverted scales.
func InDomain(def *scale.Definition, value float64) bool {
	lo, hi := def.BeginValue, def.EndValue
	if lo > hi {
		lo, hi = hi, lo
	}
	return value >= lo && value <= hi
}

// MajorTickValues returns the values that carry a label at the coarsest
// configured hierarchy level, ordered by position along the scale. It is
// used by interpolation and formatting consumers, not by tick generation.
func MajorTickValues(def *scale.Definition) []float64 {
	var values []float64
	for i, sub := range def.Subsections {
		interval := sub.TickIntervals[0]
		if interval <= 0 || !sub.Labeled(scale.StyleMajor) {
			continue
		}
		start, end := sub.StartValue, def.SubsectionEnd(i)
		lo, hi := start, end
		if lo > hi {
			lo, hi = hi, lo
		}
		// Walk the coarsest lattice; the last subsection includes the end
		// value itself.
		last := i == len(def.Subsections)-1
		for step := 0; ; step++ {
			v := start + float64(step)*interval*sign(end-start)
			if v < lo-interval*1e-9 || v > hi+interval*1e-9 {
				break
			}
			if !last && nearlyEqual(v, end, interval*1e-9) {
				break
			}
			values = append(values, v)
		}
	}
	sort.Slice(values, func(a, b int) bool {
		return PositionOf(def, values[a]) < PositionOf(def, values[b])
	})
	return values
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func nearlyEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
