package transform

import "math"

// Hyperbolic transforms mirror the trigonometric layout: a decimal
// multiplier inside the logarithm lines the scale up against C/D.
//
//	sinh1        [0.1, 0.8813]    log10(10·sinh v)
//	sinh2        [0.8814, 3]      log10(sinh v)
//	tanh         [0.1, 3]         log10(10·tanh v)
//	cosh         [0.1, 3]         log10(cosh v)
//	hyperbolic1  [1.005, √2]      log10(10·√(v²−1))
//	hyperbolic2  [√2, 10.05]      log10(√(v²−1))
//
// The hyperbolic1/hyperbolic2 pair covers √(v²−1) in two ranges the same way
// sinh splits across sinh1/sinh2.

func hyperbolicTransform(k Kind, v float64) float64 {
	switch k {
	case KindSinh1:
		return math.Log10(10 * math.Sinh(v))
	case KindSinh2:
		return math.Log10(math.Sinh(v))
	case KindTanh:
		return math.Log10(10 * math.Tanh(v))
	case KindCosh:
		return math.Log10(math.Cosh(v))
	case KindHyperbolic1:
		return math.Log10(10 * math.Sqrt(v*v-1))
	case KindHyperbolic2:
		return math.Log10(math.Sqrt(v*v - 1))
	}
	panic("transform: not a hyperbolic kind")
}

func hyperbolicInverse(k Kind, c float64) float64 {
	switch k {
	case KindSinh1:
		return math.Asinh(math.Pow(10, c-1))
	case KindSinh2:
		return math.Asinh(math.Pow(10, c))
	case KindTanh:
		return math.Atanh(math.Pow(10, c-1))
	case KindCosh:
		return math.Acosh(math.Pow(10, c))
	case KindHyperbolic1:
		s := math.Pow(10, c-1)
		return math.Sqrt(1 + s*s)
	case KindHyperbolic2:
		s := math.Pow(10, c)
		return math.Sqrt(1 + s*s)
	}
	panic("transform: not a hyperbolic kind")
}
