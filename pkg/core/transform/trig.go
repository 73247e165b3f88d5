package transform

import "math"

// Trigonometric transforms take scale values in degrees. The classic slide
// rule folds a decimal multiplier into the logarithm argument so the scale
// lines up with the C/D scales: S is log10(10·sin θ), ST is log10(100·tan θ)
// for the small-angle region where sin and tan coincide.
//
// Domains per kind:
//
//	sin          [5.74°, 90°]     log10(10·sin θ)
//	cos          [0.5°, 84.26°]   log10(10·cos θ), strictly decreasing
//	tan          [5.71°, 45°]     log10(10·tan θ)
//	tan-large    [45°, 84.29°]    log10(tan θ)
//	cot          [45°, 84.29°]    1 − log10(tan θ), strictly decreasing
//	sin-tan      [0.573°, 5.73°]  log10(100·tan θ)
//	pythagorean  [0.1, 0.995]     log10(10·√(1−v²)), strictly decreasing
//
// Out-of-domain input follows the elementary functions: sin and cos stay
// finite, the logarithm of a non-positive argument yields NaN or −Inf, and
// the Pythagorean square root of a negative yields NaN. Callers validate.

func trigTransform(k Kind, v float64) float64 {
	rad := v * math.Pi / 180
	switch k {
	case KindSin:
		return math.Log10(10 * math.Sin(rad))
	case KindCos:
		return math.Log10(10 * math.Cos(rad))
	case KindTan:
		return math.Log10(10 * math.Tan(rad))
	case KindTanLarge:
		return math.Log10(math.Tan(rad))
	case KindCot:
		return 1 - math.Log10(math.Tan(rad))
	case KindSinTan:
		return math.Log10(100 * math.Tan(rad))
	case KindPythagorean:
		// Value is a plain ratio, not an angle.
		return math.Log10(10 * math.Sqrt(1-v*v))
	}
	panic("transform: not a trigonometric kind")
}

func trigInverse(k Kind, c float64) float64 {
	toDeg := 180 / math.Pi
	switch k {
	case KindSin:
		return math.Asin(math.Pow(10, c-1)) * toDeg
	case KindCos:
		return math.Acos(math.Pow(10, c-1)) * toDeg
	case KindTan:
		return math.Atan(math.Pow(10, c-1)) * toDeg
	case KindTanLarge:
		return math.Atan(math.Pow(10, c)) * toDeg
	case KindCot:
		return math.Atan(math.Pow(10, 1-c)) * toDeg
	case KindSinTan:
		return math.Atan(math.Pow(10, c-2)) * toDeg
	case KindPythagorean:
		s := math.Pow(10, c-1)
		return math.Sqrt(1 - s*s)
	}
	panic("transform: not a trigonometric kind")
}
