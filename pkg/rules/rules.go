// Package rules parses the compact bracketed notation describing a complete
// slide rule: which scales sit on which stator or slide, on which side.
//
// The notation lists three bracket groups per face, top stator first, then
// slide, then bottom stator, with comma-separated scale names inside each
// group. A pipe separates the front face from the optional back face:
//
//	[L, K, A] [B, CI, C] [D, DI] | [S, T] [ST, C] [D]
//
// Scale names resolve through pkg/catalog, so every catalog alias works
// inside a rule string.
package rules

import (
	"strings"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/catalog"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/validate"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// groupsPerFace is the fixed structure of a face: top stator, slide,
// bottom stator.
const groupsPerFace = 3

// Face is one side of a rule.
type Face struct {
	TopStator    []*scale.Definition `json:"topStator" bson:"top_stator"`
	Slide        []*scale.Definition `json:"slide" bson:"slide"`
	BottomStator []*scale.Definition `json:"bottomStator" bson:"bottom_stator"`
}

// empty reports whether no scale was assigned anywhere on the face.
func (f Face) empty() bool {
	return len(f.TopStator) == 0 && len(f.Slide) == 0 && len(f.BottomStator) == 0
}

// Rule is a parsed assembly. Back is zero-valued for single-sided rules.
type Rule struct {
	Front Face `json:"front" bson:"front"`
	Back  Face `json:"back" bson:"back"`
}

// HasBack reports whether the rule defines a back face.
func (r *Rule) HasBack() bool {
	return !r.Back.empty()
}

// RoleScales flattens the rule into role-tagged definitions for validation
// and rendering, front to back, top to bottom.
func (r *Rule) RoleScales() []validate.RoleScale {
	var out []validate.RoleScale
	appendFace := func(face Face, side string) {
		for _, def := range face.TopStator {
			out = append(out, validate.RoleScale{Role: side + " top stator", Def: def})
		}
		for _, def := range face.Slide {
			out = append(out, validate.RoleScale{Role: side + " slide", Def: def})
		}
		for _, def := range face.BottomStator {
			out = append(out, validate.RoleScale{Role: side + " bottom stator", Def: def})
		}
	}
	appendFace(r.Front, "front")
	if r.HasBack() {
		appendFace(r.Back, "back")
	}
	return out
}

// String renders the rule back into its bracketed notation using the
// canonical scale names.
func (r *Rule) String() string {
	var b strings.Builder
	writeFace(&b, r.Front)
	if r.HasBack() {
		b.WriteString(" | ")
		writeFace(&b, r.Back)
	}
	return b.String()
}

func writeFace(b *strings.Builder, face Face) {
	for i, group := range [][]*scale.Definition{face.TopStator, face.Slide, face.BottomStator} {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j, def := range group {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(def.Name)
		}
		b.WriteByte(']')
	}
}

// Parse builds a Rule from the bracketed notation, resolving every scale
// name through the catalog at the given physical length in points. All
// resolution failures are reported, not just the first.
func Parse(input string, length float64) (*Rule, []*errors.Error) {
	return ParseLayout(input, scale.Linear(length))
}

// ParseLayout is Parse with an explicit layout, for circular rules.
func ParseLayout(input string, layout scale.Layout) (*Rule, []*errors.Error) {
	sides := strings.Split(input, "|")
	if len(sides) > 2 {
		return nil, []*errors.Error{errors.New(errors.ErrCodeInvalidRule,
			"rule has %d faces, at most 2 (front | back) allowed", len(sides))}
	}

	var (
		rule Rule
		errs []*errors.Error
	)
	front, ferrs := parseFace(sides[0], "front", layout)
	rule.Front = front
	errs = append(errs, ferrs...)
	if len(sides) == 2 {
		back, berrs := parseFace(sides[1], "back", layout)
		rule.Back = back
		errs = append(errs, berrs...)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &rule, nil
}

// parseFace splits one side into its three bracket groups and resolves the
// names inside each.
func parseFace(input, side string, layout scale.Layout) (Face, []*errors.Error) {
	groups, errs := splitGroups(input, side)
	if len(errs) > 0 {
		return Face{}, errs
	}

	var face Face
	roles := [groupsPerFace]string{"top stator", "slide", "bottom stator"}
	targets := [groupsPerFace]*[]*scale.Definition{&face.TopStator, &face.Slide, &face.BottomStator}
	for i, group := range groups {
		defs, gerrs := resolveGroup(group, side+" "+roles[i], layout)
		*targets[i] = defs
		errs = append(errs, gerrs...)
	}
	return face, errs
}

// splitGroups extracts the bracketed segments of one face, rejecting stray
// text, unbalanced brackets, and a wrong group count.
func splitGroups(input, side string) ([groupsPerFace]string, []*errors.Error) {
	var groups [groupsPerFace]string
	var errs []*errors.Error

	rest := input
	count := 0
	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			if strings.TrimSpace(rest) != "" {
				errs = append(errs, errors.New(errors.ErrCodeInvalidRule,
					"%s face has text outside brackets: %q", side, strings.TrimSpace(rest)))
			}
			break
		}
		if strings.TrimSpace(rest[:open]) != "" {
			errs = append(errs, errors.New(errors.ErrCodeInvalidRule,
				"%s face has text outside brackets: %q", side, strings.TrimSpace(rest[:open])))
		}
		end := strings.IndexByte(rest[open:], ']')
		if end < 0 {
			errs = append(errs, errors.New(errors.ErrCodeInvalidRule,
				"%s face has an unclosed bracket", side))
			return groups, errs
		}
		if count < groupsPerFace {
			groups[count] = rest[open+1 : open+end]
		}
		count++
		rest = rest[open+end+1:]
	}

	if count != groupsPerFace {
		errs = append(errs, errors.New(errors.ErrCodeInvalidRule,
			"%s face has %d bracket groups, want %d (top stator, slide, bottom stator)",
			side, count, groupsPerFace))
	}
	return groups, errs
}

// resolveGroup looks up each comma-separated name. Empty groups are legal;
// a bare slide or stator simply carries no scales.
func resolveGroup(group, role string, layout scale.Layout) ([]*scale.Definition, []*errors.Error) {
	var (
		defs []*scale.Definition
		errs []*errors.Error
	)
	for _, name := range strings.Split(group, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		def, ok := catalog.LookupLayout(name, layout)
		if !ok {
			errs = append(errs, errors.New(errors.ErrCodeUnknownScale,
				"%s: unknown scale %q", role, name))
			continue
		}
		defs = append(defs, def)
	}
	return defs, errs
}
