package tick

import (
	"math"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/calc"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
)

// legacyTicks implements the interval-walking strategy: for each subsection
// and each hierarchy level, walk from the subsection's start toward its end
// stepping by the level's interval, emitting one tick per step. Finer levels
// that land on a value a coarser level already emitted are filtered by a
// tolerance check.
//
// The walk accumulates floating-point drift, so this strategy can admit
// near-duplicate ticks the modulo strategy never produces. That count
// discrepancy is a known, tracked property, not a bug to fix here.
func legacyTicks(def *scale.Definition) []scale.Tick {
	var ticks []scale.Tick
	var emitted []float64 // values already claimed by a coarser level

	for i, sub := range def.Subsections {
		start := sub.StartValue
		end := def.SubsectionEnd(i)
		dir := 1.0
		if end < start {
			dir = -1
		}
		span := math.Abs(end - start)

		for lvl := 0; lvl < scale.LevelCount; lvl++ {
			interval := sub.TickIntervals[lvl]
			if interval <= 0 {
				continue // absent level
			}
			tol := interval * 1e-6
			// Only earlier walks can claim a value; the current walk never
			// revisits its own steps.
			prior := emitted[:len(emitted):len(emitted)]
			for step := 0; step <= maxWalkSteps; step++ {
				v := start + float64(step)*interval*dir
				if math.Abs(v-start) > span+tol {
					break
				}
				if alreadyPresent(prior, v, tol) {
					continue
				}
				style := scale.TickStyle(lvl)
				t := scale.Tick{
					Value:    v,
					Position: calc.PositionOf(def, v),
					Style:    style,
				}
				if sub.Labeled(style) {
					t.Label = def.FormatterFor(sub)(v)
				}
				ticks = append(ticks, t)
				emitted = append(emitted, v)
			}
		}
	}
	return ticks
}

// alreadyPresent reports whether a value within tol of v was already
// emitted. Linear scan; tick counts stay in the low thousands.
func alreadyPresent(emitted []float64, v, tol float64) bool {
	for _, e := range emitted {
		if math.Abs(e-v) <= tol {
			return true
		}
	}
	return false
}
