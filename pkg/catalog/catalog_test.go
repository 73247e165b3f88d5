package catalog

import (
	"testing"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/validate"
)

func TestLookupCaseInsensitive(t *testing.T) {
	for _, name := range []string{"C", "c", " c ", "LL3", "ll3", "Gamma"} {
		if _, ok := Lookup(name, 250); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("no-such-scale", 250); ok {
		t.Error("Lookup accepted an unknown name")
	}
}

func TestAliases(t *testing.T) {
	direct, ok := Lookup("ci", 250)
	if !ok {
		t.Fatal("Lookup(ci) failed")
	}
	aliased, ok := Lookup("c-inverted", 250)
	if !ok {
		t.Fatal("Lookup(c-inverted) failed")
	}
	if direct.Name != aliased.Name || direct.Func != aliased.Func {
		t.Errorf("alias resolved to a different scale: %q vs %q", direct.Name, aliased.Name)
	}

	for alias, canonical := range Aliases() {
		if _, ok := presets[canonical]; !ok {
			t.Errorf("alias %q points at missing preset %q", alias, canonical)
		}
	}
}

func TestLookupCircular(t *testing.T) {
	def, ok := LookupCircular("d", 100)
	if !ok {
		t.Fatal("LookupCircular(d) failed")
	}
	if !def.Layout.IsCircular() {
		t.Error("circular lookup produced linear layout")
	}
	if def.Layout.Radius() != 50 {
		t.Errorf("Radius() = %g, want 50", def.Layout.Radius())
	}
}

func TestEveryPresetValidates(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			def, ok := Lookup(name, 250)
			if !ok {
				t.Fatalf("Lookup(%q) failed", name)
			}
			if errs := validate.Scale(def); len(errs) != 0 {
				t.Errorf("preset %q fails validation: %v", name, errs)
			}
		})
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) < 30 {
		t.Errorf("catalog has %d presets, expected a full standard set", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestLookupReturnsFreshDefinitions(t *testing.T) {
	a, _ := Lookup("c", 250)
	b, _ := Lookup("c", 250)
	a.Subsections[0].TickIntervals[0] = 99
	if b.Subsections[0].TickIntervals[0] == 99 {
		t.Error("Lookup shares mutable subsection state between calls")
	}
	a.Subsections[0].LabelLevels[0] = scale.StyleTiny
	if b.Subsections[0].LabelLevels[0] == scale.StyleTiny {
		t.Error("Lookup shares label level state between calls")
	}
	a.Constants[0].Value = 0
	if b.Constants[0].Value == 0 {
		t.Error("Lookup shares constant state between calls")
	}
}
