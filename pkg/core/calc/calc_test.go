package calc

import (
	"math"
	"testing"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/transform"
)

func logScale(t *testing.T, layout scale.Layout) *scale.Definition {
	t.Helper()
	def := &scale.Definition{
		Name:       "C",
		Func:       transform.Func{Kind: transform.KindLog},
		BeginValue: 1,
		EndValue:   10,
		Layout:     layout,
		Subsections: []scale.Subsection{{
			StartValue:    1,
			TickIntervals: [scale.LevelCount]float64{1, 0.5, 0.1, 0.02},
			LabelLevels:   []scale.TickStyle{scale.StyleMajor},
		}},
	}
	return def
}

func TestPositionOf(t *testing.T) {
	def := logScale(t, scale.Linear(250))

	tests := []struct {
		value float64
		want  float64
	}{
		{1, 0},
		{10, 1},
		{math.Sqrt(10), 0.5},
		{2, math.Log10(2)},
	}
	for _, tt := range tests {
		if got := PositionOf(def, tt.value); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("PositionOf(%g) = %g, want %g", tt.value, got, tt.want)
		}
	}
}

func TestValueAtRoundTrip(t *testing.T) {
	def := logScale(t, scale.Linear(250))
	for _, v := range []float64{1, 1.5, 2, math.Pi, 5, 9.99, 10} {
		pos := PositionOf(def, v)
		if back := ValueAt(def, pos); math.Abs(back-v) > 1e-9 {
			t.Errorf("ValueAt(PositionOf(%g)) = %g", v, back)
		}
	}
}

func TestInvertedScale(t *testing.T) {
	// A scale declared backward: begin 10, end 1. Position must remap with
	// the correct sign, not assume an increasing transform.
	def := logScale(t, scale.Linear(250))
	def.BeginValue, def.EndValue = 10, 1

	if got := PositionOf(def, 10); math.Abs(got) > 1e-12 {
		t.Errorf("PositionOf(10) = %g, want 0", got)
	}
	if got := PositionOf(def, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("PositionOf(1) = %g, want 1", got)
	}
	if got := PositionOf(def, 2); got < 0.5 {
		t.Errorf("PositionOf(2) = %g, want in upper half", got)
	}
	if back := ValueAt(def, PositionOf(def, 3)); math.Abs(back-3) > 1e-9 {
		t.Errorf("round trip through inverted scale = %g, want 3", back)
	}
}

func TestAngleOf(t *testing.T) {
	def := logScale(t, scale.Circular(100))

	if got := AngleOf(def, 1); math.Abs(got) > 1e-9 {
		t.Errorf("AngleOf(1) = %g, want 0", got)
	}
	// End of a full-circle scale wraps to 0 degrees.
	if got := AngleOf(def, 10); math.Abs(got) > 1e-9 {
		t.Errorf("AngleOf(10) = %g, want 0 (wrapped)", got)
	}
	want := math.Log10(2) * 360
	if got := AngleOf(def, 2); math.Abs(got-want) > 1e-9 {
		t.Errorf("AngleOf(2) = %g, want %g", got, want)
	}

	if back := ValueAtAngle(def, want); math.Abs(back-2) > 1e-9 {
		t.Errorf("ValueAtAngle(%g) = %g, want 2", want, back)
	}
}

func TestAngleOfLinearPanics(t *testing.T) {
	def := logScale(t, scale.Linear(250))
	defer func() {
		if recover() == nil {
			t.Error("AngleOf on a linear layout did not panic")
		}
	}()
	AngleOf(def, 2)
}

func TestInDomain(t *testing.T) {
	def := logScale(t, scale.Linear(250))
	if !InDomain(def, 5) || !InDomain(def, 1) || !InDomain(def, 10) {
		t.Error("in-range values reported out of domain")
	}
	if InDomain(def, 0.5) || InDomain(def, 11) {
		t.Error("out-of-range values reported in domain")
	}

	def.BeginValue, def.EndValue = 10, 1
	if !InDomain(def, 5) {
		t.Error("inverted scale rejects in-range value")
	}
}

func TestMajorTickValues(t *testing.T) {
	def := logScale(t, scale.Linear(250))
	got := MajorTickValues(def)
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if len(got) != len(want) {
		t.Fatalf("MajorTickValues() = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("MajorTickValues()[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestMajorTickValuesMultipleSubsections(t *testing.T) {
	def := logScale(t, scale.Linear(250))
	def.Subsections = []scale.Subsection{
		{StartValue: 1, TickIntervals: [scale.LevelCount]float64{1, 0.5, 0.1, 0.02}, LabelLevels: []scale.TickStyle{scale.StyleMajor}},
		{StartValue: 5, TickIntervals: [scale.LevelCount]float64{1, 0.5, 0.1, 0.05}, LabelLevels: []scale.TickStyle{scale.StyleMajor}},
	}
	got := MajorTickValues(def)
	// First subsection covers [1,5), second [5,10].
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if len(got) != len(want) {
		t.Fatalf("MajorTickValues() = %v, want %v", got, want)
	}
}
