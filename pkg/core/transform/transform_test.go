package transform

import (
	"math"
	"testing"
)

// samplePoints returns sample values spanning a kind's nominal domain,
// geometrically spaced when the domain is positive and wide, linearly
// otherwise.
func samplePoints(lo, hi float64, n int) []float64 {
	out := make([]float64, 0, n)
	if lo > 0 && hi/lo > 100 {
		ratio := math.Pow(hi/lo, 1/float64(n-1))
		v := lo
		for i := 0; i < n; i++ {
			out = append(out, v)
			v *= ratio
		}
		out[n-1] = hi
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, lo+float64(i)*step)
	}
	return out
}

// funcsUnderTest instantiates one Func per kind, with a representative cycle
// count for the parameterized kinds.
func funcsUnderTest() []Func {
	var out []Func
	for _, k := range Kinds() {
		f := Func{Kind: k}
		switch k {
		case KindLogNCycle, KindLogNCycleInverted:
			f.Cycles = 6
		case KindInductiveReactance, KindCapacitiveReactance, KindWavelength:
			f.Cycles = 12
		case KindResonance:
			f.Cycles = 24
		}
		out = append(out, f)
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	for _, f := range funcsUnderTest() {
		f := f
		t.Run(f.String(), func(t *testing.T) {
			lo, hi := f.Kind.Domain()
			tol := f.Kind.Tolerance()
			for _, v := range samplePoints(lo, hi, 17) {
				c := f.Transform(v)
				if math.IsNaN(c) || math.IsInf(c, 0) {
					t.Fatalf("Transform(%g) = %g, want finite", v, c)
				}
				rt := f.InverseTransform(c)
				if diff := math.Abs(rt - v); diff > tol*math.Max(1, math.Abs(v)) {
					t.Errorf("round trip of %g drifted by %g (got %g, tol %g)", v, diff, rt, tol)
				}
			}
		})
	}
}

func TestDecadeSpacing(t *testing.T) {
	// For an N-cycle transform a decade of value occupies exactly 1/N of the
	// transform coordinate.
	tests := []struct {
		fn     Func
		v      float64
		cycles float64
	}{
		{Func{Kind: KindLogNCycle, Cycles: 6}, 1.0, 6},
		{Func{Kind: KindLogNCycle, Cycles: 6}, 37.2, 6},
		{Func{Kind: KindLogNCycle, Cycles: 12}, 512, 12},
		{Func{Kind: KindInductiveReactance, Cycles: 12}, 100, 12},
		{Func{Kind: KindCapacitiveReactance, Cycles: 12}, 4.7e-9, 12},
		{Func{Kind: KindWavelength, Cycles: 9}, 1e6, -9}, // decreasing
		{Func{Kind: KindLogTwoCycle}, 3, 2},
		{Func{Kind: KindLogThreeCycle}, 3, 3},
	}
	for _, tt := range tests {
		got := tt.fn.Transform(10*tt.v) - tt.fn.Transform(tt.v)
		want := 1 / tt.cycles
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("%s: decade span at %g = %g, want %g", tt.fn, tt.v, got, want)
		}
	}
}

func TestInversionMonotonicity(t *testing.T) {
	for _, f := range funcsUnderTest() {
		f := f
		t.Run(f.String(), func(t *testing.T) {
			lo, hi := f.Kind.Domain()
			pts := samplePoints(lo, hi, 9)
			for i := 1; i < len(pts); i++ {
				c1 := f.Transform(pts[i-1])
				c2 := f.Transform(pts[i])
				if f.Kind.Inverted() {
					if c1 <= c2 {
						t.Fatalf("inverted kind not strictly decreasing: f(%g)=%g, f(%g)=%g",
							pts[i-1], c1, pts[i], c2)
					}
				} else if c1 >= c2 {
					t.Fatalf("kind not strictly increasing: f(%g)=%g, f(%g)=%g",
						pts[i-1], c1, pts[i], c2)
				}
			}
		})
	}
}

func TestCapacitiveReactanceTwelveCycle(t *testing.T) {
	// A 12-cycle capacitive frequency scale evaluated at fC = 100.
	f := Func{Kind: KindCapacitiveReactance, Cycles: 12}
	got := f.Transform(100.0)
	want := math.Log10(0.5*math.Pi*100.0) / 12
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("Transform(100) = %g, want %g", got, want)
	}
}

func TestImpedanceTwoDecadeCycle(t *testing.T) {
	// The impedance scale repeats every two decades, so 1 and 100 sit one
	// full cycle apart.
	f := Func{Kind: KindImpedance}
	diff := f.Transform(100.0) - f.Transform(1.0)
	if math.Abs(diff-1.0) > 0.01 {
		t.Errorf("Transform(100)-Transform(1) = %g, want 1.0", diff)
	}
}

func TestOutOfDomainIsNonFinite(t *testing.T) {
	// Logarithm of zero is undefined; the transform is allowed to return a
	// non-finite coordinate and the validator rejects the configuration.
	f := Func{Kind: KindLog}
	if c := f.Transform(0); !math.IsInf(c, -1) {
		t.Errorf("Transform(0) = %g, want -Inf", c)
	}
	if c := f.Transform(-1); !math.IsNaN(c) {
		t.Errorf("Transform(-1) = %g, want NaN", c)
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%v: MarshalText: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("%s: UnmarshalText: %v", text, err)
		}
		if back != k {
			t.Errorf("kind %v round-tripped to %v", k, back)
		}
	}

	if _, err := ParseKind("no-such-kind"); err == nil {
		t.Error("ParseKind accepted an unknown name")
	}
}

func TestExtremeMagnitudes(t *testing.T) {
	// The reactance scales must stay numerically stable from picofarad
	// products up to gigahertz.
	f := Func{Kind: KindCapacitiveReactance, Cycles: 24}
	for _, v := range []float64{1e-12, 1e-6, 1, 1e6, 1e9} {
		c := f.Transform(v)
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Fatalf("Transform(%g) = %g, want finite", v, c)
		}
		rt := f.InverseTransform(c)
		if math.Abs(rt-v) > 1e-3*v {
			t.Errorf("round trip of %g drifted to %g", v, rt)
		}
	}
}
