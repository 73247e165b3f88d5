// Package catalog is the library of standard scale presets, keyed by
// case-insensitive identifiers with documented aliases.
//
// The catalog only promises the lookup contract (name and length in, scale
// definition out); consumers needing custom scales build their own
// definitions with scale.NewBuilder.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
)

// builder constructs a preset definition for a given physical layout.
type builder func(layout scale.Layout) *scale.Definition

// aliases maps alternate identifiers to canonical preset names.
var aliases = map[string]string{
	"c-inverted":  "ci",
	"c-folded":    "cf",
	"sin":         "s",
	"tan":         "t",
	"tan2":        "t2",
	"sin-tan":     "st",
	"srt":         "st",
	"sq1":         "r1",
	"sq2":         "r2",
	"w1":          "r1",
	"w2":          "r2",
	"lin":         "l",
	"lambda":      "wl",
	"wavelength":  "wl",
	"reflection":  "gamma",
	"vswr":        "swr",
	"reactance-l": "xl",
	"reactance-c": "xc",
	"resonance":   "fr",
	"impedance":   "z",
	"admittance":  "y",
}

// presets maps canonical names to their builders. Populated in presets.go.
var presets = map[string]builder{}

func register(name string, b builder) {
	presets[name] = b
}

// Lookup resolves a scale name (case-insensitive, aliases honored) to a
// definition with a linear layout of the given length in points. The second
// return is false when the catalog has no such scale.
func Lookup(name string, length float64) (*scale.Definition, bool) {
	return LookupLayout(name, scale.Linear(length))
}

// LookupCircular resolves a scale name to a definition with a circular
// layout of the given diameter in points.
func LookupCircular(name string, diameter float64) (*scale.Definition, bool) {
	return LookupLayout(name, scale.Circular(diameter))
}

// LookupLayout resolves a scale name onto an explicit layout.
func LookupLayout(name string, layout scale.Layout) (*scale.Definition, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	b, ok := presets[key]
	if !ok {
		return nil, false
	}
	return b(layout), true
}

// Names returns every canonical preset name, sorted.
func Names() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// sub is shorthand for building a subsection with major labels.
func sub(start, major, medium, minor, tiny float64) scale.Subsection {
	return scale.Subsection{
		StartValue:    start,
		TickIntervals: [scale.LevelCount]float64{major, medium, minor, tiny},
		LabelLevels:   []scale.TickStyle{scale.StyleMajor},
	}
}

// piConstants are marked on the core logarithmic scales.
var piConstants = []scale.Constant{
	{Name: "π", Value: math.Pi, Style: scale.StyleMedium},
	{Name: "e", Value: math.E, Style: scale.StyleMedium},
}
