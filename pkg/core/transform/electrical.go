package transform

import "math"

// Electrical-engineering transforms are closed-form formulas combining the
// logarithmic primitives with fixed physical constants. The reactance,
// resonance, and wavelength kinds honor the cycle count so one physical
// scale can sweep many decades of frequency (a 12-cycle reactance scale
// spans 1e-12 through 1e9 fine).
//
//	inductive-reactance    log10(2π·v)/N        v = f·L product
//	capacitive-reactance   log10(π·v/2)/N       v = f·C product
//	resonance              −log10(2π·√v)/N      v = L·C product, decreasing
//	impedance              log10(v)/2           two decades per cycle
//	admittance             −log10(v)/2          reciprocal reading, decreasing
//	reflection-coefficient (v−Z0)/(v+Z0)        Z0 = 50 Ω, not logarithmic
//	swr                    log10((v−1)/(v+1))   v > 1
//	decibel                v/100                linear in dB over [0,100]
//	power-ratio            log10(v)/10          one bel per tenth
//	neper                  ln(v)/10
//	wavelength             log10(c/v)/N         c = speed of light, decreasing

func electricalTransform(k Kind, cycles, v float64) float64 {
	switch k {
	case KindInductiveReactance:
		return math.Log10(2*math.Pi*v) / cycles
	case KindCapacitiveReactance:
		return math.Log10(0.5*math.Pi*v) / cycles
	case KindResonance:
		return -math.Log10(2*math.Pi*math.Sqrt(v)) / cycles
	case KindImpedance:
		return math.Log10(v) / 2
	case KindAdmittance:
		return -math.Log10(v) / 2
	case KindReflectionCoefficient:
		return (v - ReferenceImpedance) / (v + ReferenceImpedance)
	case KindSWR:
		return math.Log10((v - 1) / (v + 1))
	case KindDecibel:
		return v / 100
	case KindPowerRatio:
		return math.Log10(v) / 10
	case KindNeper:
		return math.Log(v) / 10
	case KindWavelength:
		return math.Log10(SpeedOfLight/v) / cycles
	}
	panic("transform: not an electrical kind")
}

func electricalInverse(k Kind, cycles, c float64) float64 {
	switch k {
	case KindInductiveReactance:
		return math.Pow(10, cycles*c) / (2 * math.Pi)
	case KindCapacitiveReactance:
		return math.Pow(10, cycles*c) / (0.5 * math.Pi)
	case KindResonance:
		r := math.Pow(10, -cycles*c) / (2 * math.Pi)
		return r * r
	case KindImpedance:
		return math.Pow(10, 2*c)
	case KindAdmittance:
		return math.Pow(10, -2*c)
	case KindReflectionCoefficient:
		return ReferenceImpedance * (1 + c) / (1 - c)
	case KindSWR:
		r := math.Pow(10, c)
		return (1 + r) / (1 - r)
	case KindDecibel:
		return c * 100
	case KindPowerRatio:
		return math.Pow(10, 10*c)
	case KindNeper:
		return math.Exp(10 * c)
	case KindWavelength:
		return SpeedOfLight / math.Pow(10, cycles*c)
	}
	panic("transform: not an electrical kind")
}
