package tick

import (
	"math"
	"reflect"
	"testing"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/transform"
)

func linearUnitScale() *scale.Definition {
	return &scale.Definition{
		Name:       "L",
		Func:       transform.Func{Kind: transform.KindLinear},
		BeginValue: 0,
		EndValue:   1,
		Layout:     scale.Linear(250),
		Subsections: []scale.Subsection{{
			StartValue:    0,
			TickIntervals: [scale.LevelCount]float64{0.1, 0.05, 0.01, 0.002},
			LabelLevels:   []scale.TickStyle{scale.StyleMajor},
		}},
	}
}

func logCScale(layout scale.Layout) *scale.Definition {
	return &scale.Definition{
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
}

func findTick(ticks []scale.Tick, value float64) (scale.Tick, bool) {
	for _, t := range ticks {
		if math.Abs(t.Value-value) <= 1e-9 {
			return t, true
		}
	}
	return scale.Tick{}, false
}

func TestModuloLinearScaleHalfTick(t *testing.T) {
	g := Generate(linearUnitScale(), Options{Algorithm: AlgorithmModulo})

	tk, ok := findTick(g.Ticks, 0.5)
	if !ok {
		t.Fatal("no tick at 0.5")
	}
	if tk.Style != scale.StyleMajor {
		t.Errorf("tick at 0.5 has style %v, want major", tk.Style)
	}
	if tk.Label != "0.5" {
		t.Errorf("tick at 0.5 has label %q, want \"0.5\"", tk.Label)
	}
	if tk.Value != 0.5 {
		t.Errorf("tick value = %v, want exactly 0.5", tk.Value)
	}
}

func TestModuloNullLevelSkipped(t *testing.T) {
	// With intervals [1, 0.5, 0, 0.02] the null third level must never claim
	// a position: 1.5 classifies as medium via 0.5, and 1.02 as tiny via
	// 0.02, skipping level 2 entirely.
	def := &scale.Definition{
		Name:       "partial",
		Func:       transform.Func{Kind: transform.KindLinear},
		BeginValue: 1,
		EndValue:   2,
		Layout:     scale.Linear(250),
		Subsections: []scale.Subsection{{
			StartValue:    1,
			TickIntervals: [scale.LevelCount]float64{1.0, 0.5, 0, 0.02},
		}},
	}
	g := Generate(def, Options{Algorithm: AlgorithmModulo})

	medium, ok := findTick(g.Ticks, 1.5)
	if !ok {
		t.Fatal("no tick at 1.5")
	}
	if medium.Style != scale.StyleMedium {
		t.Errorf("tick at 1.5 has style %v, want medium", medium.Style)
	}

	tiny, ok := findTick(g.Ticks, 1.02)
	if !ok {
		t.Fatal("no tick at 1.02")
	}
	if tiny.Style != scale.StyleTiny {
		t.Errorf("tick at 1.02 has style %v, want tiny", tiny.Style)
	}

	for _, tk := range g.Ticks {
		if tk.Style == scale.StyleMinor {
			t.Errorf("null level claimed position %g", tk.Value)
		}
	}
}

func TestModuloHierarchyPartition(t *testing.T) {
	// Every emitted tick belongs to the coarsest level that divides its
	// scaled position, and positions are strictly increasing.
	def := logCScale(scale.Linear(250))
	g := Generate(def, Options{Algorithm: AlgorithmModulo})

	if len(g.Ticks) == 0 {
		t.Fatal("no ticks generated")
	}
	mult := RecommendedMultiplier(def)
	for i, tk := range g.Ticks {
		if i > 0 && tk.Position <= g.Ticks[i-1].Position {
			t.Fatalf("positions not strictly increasing at %d: %g then %g",
				i, g.Ticks[i-1].Position, tk.Position)
		}
		p := int64(math.Round(tk.Value * float64(mult)))
		want := scale.TickStyle(-1)
		for lvl, iv := range def.Subsections[0].TickIntervals {
			if iv <= 0 {
				continue
			}
			if p%int64(math.Round(iv*float64(mult))) == 0 {
				want = scale.TickStyle(lvl)
				break
			}
		}
		if tk.Style != want {
			t.Errorf("tick %g has style %v, want %v", tk.Value, tk.Style, want)
		}
	}
}

func TestModuloNoDuplicates(t *testing.T) {
	g := Generate(logCScale(scale.Linear(250)), Options{Algorithm: AlgorithmModulo})
	grid := make(map[int64]bool)
	for _, tk := range g.Ticks {
		cell := int64(math.Round(tk.Position / DefaultMinSeparation))
		if grid[cell] {
			t.Fatalf("two ticks in min-separation cell %d (pos %g)", cell, tk.Position)
		}
		grid[cell] = true
	}
}

func TestRecommendedMultiplier(t *testing.T) {
	tests := []struct {
		finest float64
		want   int
	}{
		{0.02, 100},  // 0.02·100 = 2
		{0.002, 1000},
		{0.5, 100},   // clamped to the minimum
		{1, 100},     // clamped
		{0.25, 100},
	}
	for _, tt := range tests {
		def := &scale.Definition{
			BeginValue: 0, EndValue: 1,
			Subsections: []scale.Subsection{{
				TickIntervals: [scale.LevelCount]float64{tt.finest, 0, 0, 0},
			}},
		}
		if got := RecommendedMultiplier(def); got != tt.want {
			t.Errorf("RecommendedMultiplier(finest=%g) = %d, want %d", tt.finest, got, tt.want)
		}
	}
}

func TestAllNullIntervalsYieldNoTicks(t *testing.T) {
	def := linearUnitScale()
	def.Subsections[0].TickIntervals = [scale.LevelCount]float64{}

	for _, alg := range []Algorithm{AlgorithmLegacy, AlgorithmModulo} {
		g := Generate(def, Options{Algorithm: alg})
		if len(g.Ticks) != 0 {
			t.Errorf("%s: got %d ticks for all-null intervals, want 0", alg, len(g.Ticks))
		}
	}
}

func TestCircularFullCycleWrap(t *testing.T) {
	// A log scale over a full decade on a circular layout wraps: the begin
	// tick at 0° survives, the end tick at the seam does not.
	g := Generate(logCScale(scale.Circular(100)), Options{Algorithm: AlgorithmModulo})

	if _, ok := findTick(g.Ticks, 10); ok {
		t.Error("wrap-point tick at end value 10 not suppressed")
	}
	begin, ok := findTick(g.Ticks, 1)
	if !ok {
		t.Fatal("no tick at begin value 1")
	}
	if begin.Angle != 0 {
		t.Errorf("begin tick angle = %g, want 0", begin.Angle)
	}
}

func TestCircularPartialArcKeepsEndTick(t *testing.T) {
	def := logCScale(scale.Circular(100))
	def.EndValue = 5 // 0.699 of a cycle: a partial arc

	g := Generate(def, Options{Algorithm: AlgorithmModulo})
	if _, ok := findTick(g.Ticks, 5); !ok {
		t.Error("partial arc dropped its end tick")
	}
}

func TestLegacyModuloDivergence(t *testing.T) {
	// An interval that does not divide the subsection's offset from the
	// integer grid: legacy walks 1.0, 1.3, 1.6, 1.9 while modulo claims the
	// absolute-grid multiples 1.2, 1.5, 1.8. The divergence is intentional
	// and both outputs are correct against their own contract.
	def := &scale.Definition{
		Name:       "diverge",
		Func:       transform.Func{Kind: transform.KindLinear},
		BeginValue: 1,
		EndValue:   2,
		Layout:     scale.Linear(250),
		Subsections: []scale.Subsection{{
			StartValue:    1,
			TickIntervals: [scale.LevelCount]float64{0.3, 0, 0, 0},
		}},
	}

	legacy := Generate(def, Options{Algorithm: AlgorithmLegacy})
	modulo := Generate(def, Options{Algorithm: AlgorithmModulo})

	if _, ok := findTick(legacy.Ticks, 1.3); !ok {
		t.Error("legacy missing walked tick at 1.3")
	}
	if _, ok := findTick(modulo.Ticks, 1.2); !ok {
		t.Error("modulo missing grid tick at 1.2")
	}
	if _, ok := findTick(modulo.Ticks, 1.3); ok {
		t.Error("modulo emitted off-grid tick at 1.3")
	}
	if len(legacy.Ticks) == len(modulo.Ticks) {
		t.Errorf("expected diverging tick counts, both = %d", len(legacy.Ticks))
	}
}

func TestLegacyTerminatesOnTinyInterval(t *testing.T) {
	def := linearUnitScale()
	def.Subsections[0].TickIntervals = [scale.LevelCount]float64{1e-18, 0, 0, 0}

	// Must return: the walk is capped by the step ceiling regardless of how
	// small the interval is. The test relies on the suite timeout to catch a
	// regression into non-termination.
	g := Generate(def, Options{Algorithm: AlgorithmLegacy})
	if len(g.Ticks) > maxWalkSteps+1 {
		t.Errorf("legacy emitted %d ticks, want bounded by step ceiling", len(g.Ticks))
	}
}

func TestGenerateIdempotent(t *testing.T) {
	def := logCScale(scale.Linear(250))
	a := Generate(def, Options{Algorithm: AlgorithmModulo})
	b := Generate(def, Options{Algorithm: AlgorithmModulo})
	if !reflect.DeepEqual(a.Ticks, b.Ticks) {
		t.Error("regeneration is not bit-identical")
	}
}

func TestConstantsMarked(t *testing.T) {
	def := logCScale(scale.Linear(250))
	def.Constants = []scale.Constant{{Name: "π", Value: math.Pi, Style: scale.StyleMajor}}

	g := Generate(def, Options{Algorithm: AlgorithmModulo})
	tk, ok := findTick(g.Ticks, math.Pi)
	if !ok {
		t.Fatal("constant π not marked")
	}
	if tk.Label != "π" {
		t.Errorf("constant label = %q, want π", tk.Label)
	}
}

func TestParseAlgorithm(t *testing.T) {
	if a, err := ParseAlgorithm("legacy"); err != nil || a != AlgorithmLegacy {
		t.Errorf("ParseAlgorithm(legacy) = %v, %v", a, err)
	}
	if a, err := ParseAlgorithm("modulo"); err != nil || a != AlgorithmModulo {
		t.Errorf("ParseAlgorithm(modulo) = %v, %v", a, err)
	}
	if _, err := ParseAlgorithm("nope"); err == nil {
		t.Error("ParseAlgorithm accepted an unknown name")
	}
}
