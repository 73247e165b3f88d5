package tick

import (
	"math"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/calc"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
)

// moduloTicks implements the precision-multiplier strategy. All candidate
// positions become integers once values are scaled by mult and rounded, so
// hierarchy assignment reduces to divisibility tests and each position
// belongs to exactly one level.
func moduloTicks(def *scale.Definition, mult int) []scale.Tick {
	var ticks []scale.Tick
	m := float64(mult)

	for i, sub := range def.Subsections {
		intervals := scaledIntervals(sub, m)
		step := intervalGCD(intervals)
		if step == 0 {
			// Every level absent; a valid configuration that yields nothing.
			continue
		}

		start := sub.StartValue
		end := def.SubsectionEnd(i)
		last := i == len(def.Subsections)-1

		lo := int64(math.Round(math.Min(start, end) * m))
		hi := int64(math.Round(math.Max(start, end) * m))
		scaledEnd := int64(math.Round(end * m))

		// Candidate positions are the multiples of the interval gcd inside
		// the subsection's scaled range; anything else is divisible by no
		// configured level.
		first := ceilMultiple(lo, step)
		for p := first; p <= hi; p += step {
			if !last && p == scaledEnd {
				// The boundary belongs to the next subsection.
				continue
			}
			level, ok := classify(p, intervals)
			if !ok {
				continue
			}
			value := float64(p) / m
			t := scale.Tick{
				Value:    value,
				Position: calc.PositionOf(def, value),
				Style:    level,
			}
			if sub.Labeled(level) {
				t.Label = def.FormatterFor(sub)(value)
			}
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// scaledIntervals converts a subsection's intervals to the integer grid.
// Null (zero) levels stay zero and are skipped during classification.
func scaledIntervals(sub scale.Subsection, m float64) [scale.LevelCount]int64 {
	var out [scale.LevelCount]int64
	for lvl, iv := range sub.TickIntervals {
		if iv > 0 {
			out[lvl] = int64(math.Round(iv * m))
		}
	}
	return out
}

// classify returns the hierarchy level of a scaled position: the first
// (coarsest) level whose interval divides it evenly wins, skipping null
// levels entirely.
func classify(p int64, intervals [scale.LevelCount]int64) (scale.TickStyle, bool) {
	for lvl, iv := range intervals {
		if iv <= 0 {
			continue
		}
		if mod(p, iv) == 0 {
			return scale.TickStyle(lvl), true
		}
	}
	return 0, false
}

// mod is a remainder that is non-negative for negative positions, so scales
// crossing zero classify symmetrically.
func mod(p, iv int64) int64 {
	r := p % iv
	if r < 0 {
		r += iv
	}
	return r
}

// intervalGCD returns the greatest common divisor of the non-zero scaled
// intervals, or zero when every level is absent. Every emittable position is
// a multiple of it, which bounds the iteration count independent of how
// fine the intervals are.
func intervalGCD(intervals [scale.LevelCount]int64) int64 {
	var g int64
	for _, iv := range intervals {
		if iv <= 0 {
			continue
		}
		g = gcd(g, iv)
	}
	return g
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ceilMultiple returns the smallest multiple of step that is >= v.
func ceilMultiple(v, step int64) int64 {
	q := v / step
	if q*step < v {
		q++
	}
	return q * step
}
