package transform

import (
	"fmt"
	"math"
)

// Kind identifies one member of the transform family. The set is closed:
// every switch over Kind in this package handles all members, so adding a
// kind without teaching each site about it fails loudly in tests.
type Kind int

// Transform family members, grouped by family.
const (
	// Linear family
	KindLinear Kind = iota
	KindDegree
	KindPercent

	// Pure logarithmic family
	KindLog
	KindLogInverted
	KindLogNegative
	KindLogFolded
	KindLogFoldedInverted
	KindLogTwoCycle
	KindLogTwoCycleInverted
	KindLogThreeCycle
	KindLogThreeCycleInverted
	KindLogNCycle
	KindLogNCycleInverted

	// Power/root family
	KindSquareRootLow
	KindSquareRootHigh
	KindCubeRootLow
	KindCubeRootMid
	KindCubeRootHigh

	// Trigonometric family (degrees in, decimal multiplier in the log argument)
	KindSin
	KindCos
	KindTan
	KindTanLarge
	KindCot
	KindSinTan
	KindPythagorean

	// Hyperbolic family
	KindSinh1
	KindSinh2
	KindTanh
	KindCosh
	KindHyperbolic1
	KindHyperbolic2

	// Log-log family
	KindLL0
	KindLL1
	KindLL2
	KindLL3
	KindLL00
	KindLL01
	KindLL02
	KindLL03

	// Electrical-engineering family
	KindInductiveReactance
	KindCapacitiveReactance
	KindResonance
	KindImpedance
	KindAdmittance
	KindReflectionCoefficient
	KindSWR
	KindDecibel
	KindPowerRatio
	KindNeper
	KindWavelength

	kindCount // sentinel, keep last
)

// Physical constants used by the electrical-engineering formulas.
const (
	// ReferenceImpedance is the characteristic impedance for reflection
	// coefficient calculations, in ohms.
	ReferenceImpedance = 50.0

	// SpeedOfLight in meters per second, for wavelength scales.
	SpeedOfLight = 2.99792458e8
)

// kindInfo carries the static per-kind facts: the canonical name, whether
// the transform is strictly decreasing, the nominal value domain, and the
// round-trip tolerance (relative) the kind is verified against.
type kindInfo struct {
	name     string
	inverted bool
	lo, hi   float64
	tol      float64
}

var kindTable = [kindCount]kindInfo{
	KindLinear:  {name: "linear", lo: 0, hi: 1, tol: 1e-12},
	KindDegree:  {name: "degree", lo: 0, hi: 360, tol: 1e-12},
	KindPercent: {name: "percent", lo: 0, hi: 100, tol: 1e-12},

	KindLog:                   {name: "log", lo: 1, hi: 10, tol: 1e-9},
	KindLogInverted:           {name: "log-inverted", inverted: true, lo: 1, hi: 10, tol: 1e-9},
	KindLogNegative:           {name: "log-negative", inverted: true, lo: 1, hi: 10, tol: 1e-9},
	KindLogFolded:             {name: "log-folded", lo: math.Pi, hi: 10 * math.Pi, tol: 1e-9},
	KindLogFoldedInverted:     {name: "log-folded-inverted", inverted: true, lo: math.Pi, hi: 10 * math.Pi, tol: 1e-9},
	KindLogTwoCycle:           {name: "log-two-cycle", lo: 1, hi: 100, tol: 1e-9},
	KindLogTwoCycleInverted:   {name: "log-two-cycle-inverted", inverted: true, lo: 1, hi: 100, tol: 1e-9},
	KindLogThreeCycle:         {name: "log-three-cycle", lo: 1, hi: 1000, tol: 1e-9},
	KindLogThreeCycleInverted: {name: "log-three-cycle-inverted", inverted: true, lo: 1, hi: 1000, tol: 1e-9},
	KindLogNCycle:             {name: "log-n-cycle", lo: 1, hi: 1e6, tol: 1e-9},
	KindLogNCycleInverted:     {name: "log-n-cycle-inverted", inverted: true, lo: 1, hi: 1e6, tol: 1e-9},

	KindSquareRootLow:  {name: "square-root-low", lo: 1, hi: 3.1622776601683795, tol: 1e-9},
	KindSquareRootHigh: {name: "square-root-high", lo: 3.1622776601683795, hi: 10, tol: 1e-9},
	KindCubeRootLow:    {name: "cube-root-low", lo: 1, hi: 2.154434690031884, tol: 1e-9},
	KindCubeRootMid:    {name: "cube-root-mid", lo: 2.154434690031884, hi: 4.641588833612779, tol: 1e-9},
	KindCubeRootHigh:   {name: "cube-root-high", lo: 4.641588833612779, hi: 10, tol: 1e-9},

	KindSin:         {name: "sin", lo: 5.74, hi: 90, tol: 1e-9},
	KindCos:         {name: "cos", inverted: true, lo: 0.5, hi: 84.26, tol: 1e-9},
	KindTan:         {name: "tan", lo: 5.71, hi: 45, tol: 1e-9},
	KindTanLarge:    {name: "tan-large", lo: 45, hi: 84.29, tol: 1e-9},
	KindCot:         {name: "cot", inverted: true, lo: 45, hi: 84.29, tol: 1e-9},
	KindSinTan:      {name: "sin-tan", lo: 0.573, hi: 5.73, tol: 1e-9},
	KindPythagorean: {name: "pythagorean", inverted: true, lo: 0.1, hi: 0.995, tol: 1e-9},

	KindSinh1:       {name: "sinh1", lo: 0.1, hi: 0.8813, tol: 1e-9},
	KindSinh2:       {name: "sinh2", lo: 0.8814, hi: 3, tol: 1e-9},
	KindTanh:        {name: "tanh", lo: 0.1, hi: 3, tol: 1e-9},
	KindCosh:        {name: "cosh", lo: 0.1, hi: 3, tol: 1e-9},
	KindHyperbolic1: {name: "hyperbolic1", lo: 1.005, hi: 1.4142, tol: 1e-9},
	KindHyperbolic2: {name: "hyperbolic2", lo: 1.4143, hi: 10.05, tol: 1e-9},

	KindLL0:  {name: "ll0", lo: 1.0010005, hi: 1.0100502, tol: 1e-6},
	KindLL1:  {name: "ll1", lo: 1.0100502, hi: 1.1051709, tol: 1e-6},
	KindLL2:  {name: "ll2", lo: 1.1051709, hi: math.E, tol: 1e-6},
	KindLL3:  {name: "ll3", lo: math.E, hi: 22026.465794806718, tol: 1e-6},
	KindLL00: {name: "ll00", inverted: true, lo: 0.9900498, hi: 0.9990005, tol: 1e-6},
	KindLL01: {name: "ll01", inverted: true, lo: 0.9048374, hi: 0.9900498, tol: 1e-6},
	KindLL02: {name: "ll02", inverted: true, lo: 0.3678794, hi: 0.9048374, tol: 1e-6},
	KindLL03: {name: "ll03", inverted: true, lo: 4.5399929e-05, hi: 0.3678794, tol: 1e-6},

	KindInductiveReactance:    {name: "inductive-reactance", lo: 1e-12, hi: 1e9, tol: 1e-3},
	KindCapacitiveReactance:   {name: "capacitive-reactance", lo: 1e-12, hi: 1e9, tol: 1e-3},
	KindResonance:             {name: "resonance", inverted: true, lo: 1e-12, hi: 1, tol: 1e-3},
	KindImpedance:             {name: "impedance", lo: 1, hi: 100, tol: 1e-9},
	KindAdmittance:            {name: "admittance", inverted: true, lo: 1, hi: 100, tol: 1e-9},
	KindReflectionCoefficient: {name: "reflection-coefficient", lo: 1, hi: 2500, tol: 1e-9},
	KindSWR:                   {name: "swr", lo: 1.01, hi: 100, tol: 1e-9},
	KindDecibel:               {name: "decibel", lo: 0, hi: 100, tol: 1e-12},
	KindPowerRatio:            {name: "power-ratio", lo: 1, hi: 1e10, tol: 1e-9},
	KindNeper:                 {name: "neper", lo: 1, hi: 22026, tol: 1e-9},
	KindWavelength:            {name: "wavelength", inverted: true, lo: 1, hi: 1e9, tol: 1e-3},
}

// String returns the canonical kind name (e.g. "log-two-cycle").
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTable[k].name
}

// Inverted reports whether the transform is strictly decreasing over its
// domain: larger values map to smaller coordinates.
func (k Kind) Inverted() bool {
	if k < 0 || k >= kindCount {
		return false
	}
	return kindTable[k].inverted
}

// Domain returns the nominal value domain of the kind. Values outside it may
// still produce finite coordinates, but the round-trip contract only holds
// inside.
func (k Kind) Domain() (lo, hi float64) {
	if k < 0 || k >= kindCount {
		return 0, 0
	}
	return kindTable[k].lo, kindTable[k].hi
}

// Tolerance returns the relative round-trip tolerance the kind is verified
// against.
func (k Kind) Tolerance() float64 {
	if k < 0 || k >= kindCount {
		return 0
	}
	return kindTable[k].tol
}

// MarshalText implements encoding.TextMarshaler, so Kind serializes as its
// canonical name in JSON, TOML, and BSON documents.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= kindCount {
		return nil, fmt.Errorf("unknown transform kind %d", int(k))
	}
	return []byte(kindTable[k].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a canonical kind name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if kindTable[k].name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown transform kind %q", name)
}

// Kinds returns every member of the family in declaration order.
// Useful for exhaustive property tests and catalog construction.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Func is a concrete transform: a Kind plus the parameters that kind needs.
// The zero Cycles is treated as one cycle, so Func{Kind: KindLog} is usable
// as-is.
//
// Func values are immutable and safe for concurrent use.
type Func struct {
	Kind   Kind `json:"kind" bson:"kind" toml:"kind"`
	Cycles int  `json:"cycles,omitempty" bson:"cycles,omitempty" toml:"cycles,omitempty"`
}

// cycles returns the effective cycle count, never below one.
func (f Func) cycles() float64 {
	if f.Cycles < 1 {
		return 1
	}
	return float64(f.Cycles)
}

// String renders the Func for logs and error messages, e.g. "log-n-cycle/6".
func (f Func) String() string {
	if f.Cycles > 1 {
		return fmt.Sprintf("%s/%d", f.Kind, f.Cycles)
	}
	return f.Kind.String()
}

// Transform maps a scale value to its transform coordinate.
//
// The dispatch is exhaustive over Kind; the default arm is unreachable for
// any Kind produced by this package.
func (f Func) Transform(v float64) float64 {
	switch f.Kind {
	case KindLinear:
		return v
	case KindDegree:
		return v / 360
	case KindPercent:
		return v / 100

	case KindLog:
		return math.Log10(v)
	case KindLogInverted:
		return 1 - math.Log10(v)
	case KindLogNegative:
		return -math.Log10(v)
	case KindLogFolded:
		return math.Log10(v / math.Pi)
	case KindLogFoldedInverted:
		return -math.Log10(v / math.Pi)
	case KindLogTwoCycle:
		return math.Log10(v) / 2
	case KindLogTwoCycleInverted:
		return 1 - math.Log10(v)/2
	case KindLogThreeCycle:
		return math.Log10(v) / 3
	case KindLogThreeCycleInverted:
		return 1 - math.Log10(v)/3
	case KindLogNCycle:
		return math.Log10(v) / f.cycles()
	case KindLogNCycleInverted:
		return 1 - math.Log10(v)/f.cycles()

	case KindSquareRootLow:
		return 2 * math.Log10(v)
	case KindSquareRootHigh:
		return 2*math.Log10(v) - 1
	case KindCubeRootLow:
		return 3 * math.Log10(v)
	case KindCubeRootMid:
		return 3*math.Log10(v) - 1
	case KindCubeRootHigh:
		return 3*math.Log10(v) - 2

	case KindSin, KindCos, KindTan, KindTanLarge, KindCot, KindSinTan, KindPythagorean:
		return trigTransform(f.Kind, v)

	case KindSinh1, KindSinh2, KindTanh, KindCosh, KindHyperbolic1, KindHyperbolic2:
		return hyperbolicTransform(f.Kind, v)

	case KindLL0, KindLL1, KindLL2, KindLL3, KindLL00, KindLL01, KindLL02, KindLL03:
		return logLogTransform(f.Kind, v)

	case KindInductiveReactance, KindCapacitiveReactance, KindResonance,
		KindImpedance, KindAdmittance, KindReflectionCoefficient,
		KindSWR, KindDecibel, KindPowerRatio, KindNeper, KindWavelength:
		return electricalTransform(f.Kind, f.cycles(), v)
	}
	panic(fmt.Sprintf("transform: unhandled kind %d", int(f.Kind)))
}

// InverseTransform maps a transform coordinate back to the scale value.
// It is the exact algebraic inverse of [Func.Transform].
func (f Func) InverseTransform(c float64) float64 {
	switch f.Kind {
	case KindLinear:
		return c
	case KindDegree:
		return c * 360
	case KindPercent:
		return c * 100

	case KindLog:
		return math.Pow(10, c)
	case KindLogInverted:
		return math.Pow(10, 1-c)
	case KindLogNegative:
		return math.Pow(10, -c)
	case KindLogFolded:
		return math.Pi * math.Pow(10, c)
	case KindLogFoldedInverted:
		return math.Pi * math.Pow(10, -c)
	case KindLogTwoCycle:
		return math.Pow(10, 2*c)
	case KindLogTwoCycleInverted:
		return math.Pow(10, 2*(1-c))
	case KindLogThreeCycle:
		return math.Pow(10, 3*c)
	case KindLogThreeCycleInverted:
		return math.Pow(10, 3*(1-c))
	case KindLogNCycle:
		return math.Pow(10, f.cycles()*c)
	case KindLogNCycleInverted:
		return math.Pow(10, f.cycles()*(1-c))

	case KindSquareRootLow:
		return math.Pow(10, c/2)
	case KindSquareRootHigh:
		return math.Pow(10, (c+1)/2)
	case KindCubeRootLow:
		return math.Pow(10, c/3)
	case KindCubeRootMid:
		return math.Pow(10, (c+1)/3)
	case KindCubeRootHigh:
		return math.Pow(10, (c+2)/3)

	case KindSin, KindCos, KindTan, KindTanLarge, KindCot, KindSinTan, KindPythagorean:
		return trigInverse(f.Kind, c)

	case KindSinh1, KindSinh2, KindTanh, KindCosh, KindHyperbolic1, KindHyperbolic2:
		return hyperbolicInverse(f.Kind, c)

	case KindLL0, KindLL1, KindLL2, KindLL3, KindLL00, KindLL01, KindLL02, KindLL03:
		return logLogInverse(f.Kind, c)

	case KindInductiveReactance, KindCapacitiveReactance, KindResonance,
		KindImpedance, KindAdmittance, KindReflectionCoefficient,
		KindSWR, KindDecibel, KindPowerRatio, KindNeper, KindWavelength:
		return electricalInverse(f.Kind, f.cycles(), c)
	}
	panic(fmt.Sprintf("transform: unhandled kind %d", int(f.Kind)))
}
