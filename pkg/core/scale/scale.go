package scale

import (
	"fmt"
	"math"
	"strconv"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/transform"
)

// LevelCount is the number of tick hierarchy levels a subsection configures,
// from coarsest (major) to finest (tiny).
const LevelCount = 4

// TickStyle is the visual rank of a tick mark. Lower values are coarser.
type TickStyle int

// Hierarchy levels in coarsest-to-finest order.
const (
	StyleMajor TickStyle = iota
	StyleMedium
	StyleMinor
	StyleTiny
)

var styleNames = [LevelCount]string{"major", "medium", "minor", "tiny"}

// relativeLengths is the rendered length of each style relative to a major
// tick.
var relativeLengths = [LevelCount]float64{1.0, 0.75, 0.5, 0.25}

// String returns the style name ("major", "medium", "minor", "tiny").
func (s TickStyle) String() string {
	if s < 0 || int(s) >= LevelCount {
		return "unknown"
	}
	return styleNames[s]
}

// RelativeLength returns the rendered tick length relative to a major tick.
func (s TickStyle) RelativeLength() float64 {
	if s < 0 || int(s) >= LevelCount {
		return 0
	}
	return relativeLengths[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s TickStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TickStyle) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range styleNames {
		if n == name {
			*s = TickStyle(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tick style %q", name)
}

// Formatter renders a scale value as its tick label. Formatters are injected
// per scale or per subsection; there is no global formatting state.
type Formatter func(value float64) string

// DefaultFormatter renders values with trailing zeros trimmed, so 2.0 reads
// "2" and 0.5 reads "0.5".
func DefaultFormatter(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TickDirection says which way ticks grow from the scale's reference edge.
type TickDirection int

// Tick directions.
const (
	DirectionDown TickDirection = iota // away from the reference edge
	DirectionUp                        // toward the reference edge
)

// LayoutKind distinguishes linear from circular scale layouts.
type LayoutKind int

// Layout kinds.
const (
	LayoutLinear LayoutKind = iota
	LayoutCircular
)

// Layout is the physical coordinate system of a scale: a straight run of a
// given length, or a circle of a given diameter. Both share the normalized
// position abstraction; circular layouts additionally expose an angular
// coordinate.
type Layout struct {
	Kind     LayoutKind `json:"kind" bson:"kind"`
	Length   float64    `json:"length,omitempty" bson:"length,omitempty"`     // linear extent in points
	Diameter float64    `json:"diameter,omitempty" bson:"diameter,omitempty"` // circular diameter in points
}

// Linear returns a linear layout of the given length in points.
func Linear(length float64) Layout {
	return Layout{Kind: LayoutLinear, Length: length}
}

// Circular returns a circular layout of the given diameter in points.
func Circular(diameter float64) Layout {
	return Layout{Kind: LayoutCircular, Diameter: diameter}
}

// IsCircular reports whether the layout is circular.
func (l Layout) IsCircular() bool { return l.Kind == LayoutCircular }

// Radius returns the circle radius; zero for linear layouts.
func (l Layout) Radius() float64 { return l.Diameter / 2 }

// Extent returns the physical length a normalized position spans: the length
// for linear layouts, the circumference for circular ones.
func (l Layout) Extent() float64 {
	if l.IsCircular() {
		return math.Pi * l.Diameter
	}
	return l.Length
}

// Subsection configures the tick lattice over a sub-range of the scale's
// domain. The range starts at StartValue and extends to the next
// subsection's start, or the scale's end for the last subsection.
//
// TickIntervals runs coarsest to finest. A zero interval means that
// hierarchy level is absent for this subsection and must generate no ticks.
type Subsection struct {
	StartValue    float64             `json:"startValue" bson:"startValue"`
	TickIntervals [LevelCount]float64 `json:"tickIntervals" bson:"tickIntervals"`
	LabelLevels   []TickStyle         `json:"labelLevels,omitempty" bson:"labelLevels,omitempty"`
	Formatter     Formatter           `json:"-" bson:"-"` // overrides the scale-level formatter
}

// Labeled reports whether ticks at the given style receive a text label.
func (s Subsection) Labeled(style TickStyle) bool {
	for _, l := range s.LabelLevels {
		if l == style {
			return true
		}
	}
	return false
}

// FinestInterval returns the smallest non-zero tick interval, or zero when
// every level is absent.
func (s Subsection) FinestInterval() float64 {
	finest := 0.0
	for _, iv := range s.TickIntervals {
		if iv > 0 && (finest == 0 || iv < finest) {
			finest = iv
		}
	}
	return finest
}

// Constant is a named physical value marked on the scale regardless of the
// regular tick lattice (π, e, and the like).
type Constant struct {
	Name  string    `json:"name" bson:"name"`
	Value float64   `json:"value" bson:"value"`
	Style TickStyle `json:"style" bson:"style"`
}

// Definition is the declarative description of one scale. BeginValue may
// exceed EndValue to express a scale that reads backward.
type Definition struct {
	Name        string         `json:"name" bson:"name"`
	Func        transform.Func `json:"func" bson:"func"`
	BeginValue  float64        `json:"beginValue" bson:"beginValue"`
	EndValue    float64        `json:"endValue" bson:"endValue"`
	Layout      Layout         `json:"layout" bson:"layout"`
	Direction   TickDirection  `json:"direction,omitempty" bson:"direction,omitempty"`
	Subsections []Subsection   `json:"subsections" bson:"subsections"`
	Formatter   Formatter      `json:"-" bson:"-"` // optional; DefaultFormatter when nil
	LabelColor  string         `json:"labelColor,omitempty" bson:"labelColor,omitempty"`
	Constants   []Constant     `json:"constants,omitempty" bson:"constants,omitempty"`
}

// FormatterFor returns the effective formatter for a subsection: the
// subsection's own, else the scale's, else [DefaultFormatter].
func (d *Definition) FormatterFor(sub Subsection) Formatter {
	if sub.Formatter != nil {
		return sub.Formatter
	}
	if d.Formatter != nil {
		return d.Formatter
	}
	return DefaultFormatter
}

// SubsectionEnd returns the value where subsection i stops generating ticks:
// the next subsection's start, or the scale's end value for the last one.
func (d *Definition) SubsectionEnd(i int) float64 {
	if i+1 < len(d.Subsections) {
		return d.Subsections[i+1].StartValue
	}
	return d.EndValue
}

// Tick is one generated tick mark. Position is normalized to [0,1]; Angle is
// only meaningful for circular layouts.
type Tick struct {
	Value    float64   `json:"value" bson:"value"`
	Position float64   `json:"position" bson:"position"`
	Angle    float64   `json:"angle,omitempty" bson:"angle,omitempty"`
	Style    TickStyle `json:"style" bson:"style"`
	Label    string    `json:"label,omitempty" bson:"label,omitempty"`
}

// Generated is the owning aggregate for one generation run: the definition
// plus its full, position-sorted tick sequence. Regeneration with the same
// definition and algorithm yields a bit-identical tick set.
type Generated struct {
	Definition *Definition
	Ticks      []Tick
}
