package transform

import "math"

// Log-log transforms nest a logarithm inside a logarithm, which is what lets
// a single physical scale cover values from 1.001 up to e^10 ≈ 22026 (or
// down to e^−10 for the reciprocal set). Each LLn segment shifts the inner
// logarithm by a power of ten:
//
//	ll3   [e, e^10]          log10(ln v)
//	ll2   [e^0.1, e]         log10(10·ln v)
//	ll1   [e^0.01, e^0.1]    log10(100·ln v)
//	ll0   [e^0.001, e^0.01]  log10(1000·ln v)
//
// The reciprocal segments ll00–ll03 cover values below one with −ln v in
// place of ln v; they are strictly decreasing. Conditioning is worst near
// v = 1 where ln v vanishes, hence the 1e-6 round-trip tolerance instead of
// the 1e-9 the plain logarithmic kinds hold.

// llScale returns the decimal multiplier applied to the inner logarithm.
func llScale(k Kind) float64 {
	switch k {
	case KindLL3, KindLL03:
		return 1
	case KindLL2, KindLL02:
		return 10
	case KindLL1, KindLL01:
		return 100
	case KindLL0, KindLL00:
		return 1000
	}
	panic("transform: not a log-log kind")
}

func logLogTransform(k Kind, v float64) float64 {
	switch k {
	case KindLL0, KindLL1, KindLL2, KindLL3:
		return math.Log10(llScale(k) * math.Log(v))
	case KindLL00, KindLL01, KindLL02, KindLL03:
		return math.Log10(llScale(k) * -math.Log(v))
	}
	panic("transform: not a log-log kind")
}

func logLogInverse(k Kind, c float64) float64 {
	switch k {
	case KindLL0, KindLL1, KindLL2, KindLL3:
		return math.Exp(math.Pow(10, c) / llScale(k))
	case KindLL00, KindLL01, KindLL02, KindLL03:
		return math.Exp(-math.Pow(10, c) / llScale(k))
	}
	panic("transform: not a log-log kind")
}
