package scale

import (
	"math"
	"testing"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/transform"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

func TestTickStyle(t *testing.T) {
	tests := []struct {
		style  TickStyle
		name   string
		length float64
	}{
		{StyleMajor, "major", 1.0},
		{StyleMedium, "medium", 0.75},
		{StyleMinor, "minor", 0.5},
		{StyleTiny, "tiny", 0.25},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.style.RelativeLength(); got != tt.length {
			t.Errorf("RelativeLength(%s) = %g, want %g", tt.name, got, tt.length)
		}
	}
}

func TestDefaultFormatter(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.0, "2"},
		{0.5, "0.5"},
		{3.14, "3.14"},
		{100, "100"},
	}
	for _, tt := range tests {
		if got := DefaultFormatter(tt.in); got != tt.want {
			t.Errorf("DefaultFormatter(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayoutExtent(t *testing.T) {
	lin := Linear(250)
	if lin.IsCircular() {
		t.Error("Linear layout reports circular")
	}
	if lin.Extent() != 250 {
		t.Errorf("Extent() = %g, want 250", lin.Extent())
	}

	circ := Circular(100)
	if !circ.IsCircular() {
		t.Error("Circular layout reports linear")
	}
	if circ.Radius() != 50 {
		t.Errorf("Radius() = %g, want 50", circ.Radius())
	}
	if got := circ.Extent(); math.Abs(got-math.Pi*100) > 1e-12 {
		t.Errorf("Extent() = %g, want %g", got, math.Pi*100)
	}
}

func TestSubsectionFinestInterval(t *testing.T) {
	tests := []struct {
		intervals [LevelCount]float64
		want      float64
	}{
		{[LevelCount]float64{1, 0.5, 0.1, 0.02}, 0.02},
		{[LevelCount]float64{1, 0.5, 0, 0.02}, 0.02}, // null level skipped
		{[LevelCount]float64{1, 0, 0, 0}, 1},
		{[LevelCount]float64{}, 0},
	}
	for _, tt := range tests {
		sub := Subsection{TickIntervals: tt.intervals}
		if got := sub.FinestInterval(); got != tt.want {
			t.Errorf("FinestInterval(%v) = %g, want %g", tt.intervals, got, tt.want)
		}
	}
}

func TestSubsectionEnd(t *testing.T) {
	def := Definition{
		BeginValue: 1,
		EndValue:   10,
		Subsections: []Subsection{
			{StartValue: 1},
			{StartValue: 2},
			{StartValue: 5},
		},
	}
	if got := def.SubsectionEnd(0); got != 2 {
		t.Errorf("SubsectionEnd(0) = %g, want 2", got)
	}
	if got := def.SubsectionEnd(2); got != 10 {
		t.Errorf("SubsectionEnd(2) = %g, want 10", got)
	}
}

func TestBuilder(t *testing.T) {
	def, err := NewBuilder("C").
		WithFunc(transform.Func{Kind: transform.KindLog}).
		WithRange(1, 10).
		WithLength(250).
		WithSubsections(Subsection{
			StartValue:    1,
			TickIntervals: [LevelCount]float64{1, 0.5, 0.1, 0.02},
			LabelLevels:   []TickStyle{StyleMajor},
		}).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if def.Name != "C" || def.BeginValue != 1 || def.EndValue != 10 {
		t.Errorf("unexpected definition: %+v", def)
	}
}

func TestBuilderMissingFunc(t *testing.T) {
	_, err := NewBuilder("broken").WithRange(1, 10).WithLength(250).Build()
	if !errors.Is(err, errors.ErrCodeIncompleteDefinition) {
		t.Errorf("Build() error = %v, want INCOMPLETE_DEFINITION", err)
	}
}

func TestBuilderMissingLength(t *testing.T) {
	_, err := NewBuilder("broken").
		WithFunc(transform.Func{Kind: transform.KindLog}).
		WithRange(1, 10).
		Build()
	if !errors.Is(err, errors.ErrCodeIncompleteDefinition) {
		t.Errorf("Build() error = %v, want INCOMPLETE_DEFINITION", err)
	}
}

func TestFormatterPrecedence(t *testing.T) {
	scaleFmt := func(v float64) string { return "scale" }
	subFmt := func(v float64) string { return "sub" }

	def := Definition{Formatter: scaleFmt}
	if got := def.FormatterFor(Subsection{})(1); got != "scale" {
		t.Errorf("scale formatter not used, got %q", got)
	}
	if got := def.FormatterFor(Subsection{Formatter: subFmt})(1); got != "sub" {
		t.Errorf("subsection formatter not used, got %q", got)
	}

	var plain Definition
	if got := plain.FormatterFor(Subsection{})(2.0); got != "2" {
		t.Errorf("default formatter not used, got %q", got)
	}
}
