package scale

import (
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/transform"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// Builder assembles a Definition step by step. A builder needs at minimum a
// name, a transform, a value range, and a layout before Build succeeds.
//
// Builders are single-use and not safe for concurrent mutation; the built
// Definition is immutable and safe to share.
type Builder struct {
	def      Definition
	hasFunc  bool
	hasRange bool
}

// NewBuilder starts a builder for a scale with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{def: Definition{Name: name}}
}

// WithFunc sets the transform function.
func (b *Builder) WithFunc(f transform.Func) *Builder {
	b.def.Func = f
	b.hasFunc = true
	return b
}

// WithRange sets the begin and end values. Begin greater than end expresses
// a scale that reads backward.
func (b *Builder) WithRange(begin, end float64) *Builder {
	b.def.BeginValue = begin
	b.def.EndValue = end
	b.hasRange = true
	return b
}

// WithLength sets a linear layout of the given length in points.
func (b *Builder) WithLength(length float64) *Builder {
	b.def.Layout = Linear(length)
	return b
}

// WithCircular sets a circular layout of the given diameter in points.
func (b *Builder) WithCircular(diameter float64) *Builder {
	b.def.Layout = Circular(diameter)
	return b
}

// WithDirection sets the tick direction.
func (b *Builder) WithDirection(d TickDirection) *Builder {
	b.def.Direction = d
	return b
}

// WithSubsections replaces the subsection list.
func (b *Builder) WithSubsections(subs ...Subsection) *Builder {
	b.def.Subsections = subs
	return b
}

// WithFormatter sets the scale-level label formatter.
func (b *Builder) WithFormatter(f Formatter) *Builder {
	b.def.Formatter = f
	return b
}

// WithLabelColor sets the label color.
func (b *Builder) WithLabelColor(color string) *Builder {
	b.def.LabelColor = color
	return b
}

// WithConstants appends named constants to mark on the scale.
func (b *Builder) WithConstants(consts ...Constant) *Builder {
	b.def.Constants = append(b.def.Constants, consts...)
	return b
}

// Build finalizes the definition. Finalizing without a transform, range, or
// layout is a misconfiguration and returns an INCOMPLETE_DEFINITION error.
func (b *Builder) Build() (*Definition, error) {
	if !b.hasFunc {
		return nil, errors.New(errors.ErrCodeIncompleteDefinition, "scale %q has no transform function", b.def.Name)
	}
	if !b.hasRange {
		return nil, errors.New(errors.ErrCodeIncompleteDefinition, "scale %q has no value range", b.def.Name)
	}
	if b.def.Layout.Extent() <= 0 {
		return nil, errors.New(errors.ErrCodeIncompleteDefinition, "scale %q has no physical length", b.def.Name)
	}
	def := b.def
	return &def, nil
}
