package render

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/rules"
)

// slideInset is how far the slide band is indented, marking the movable
// part of the rule.
const slideInset = 10

// FacePNG renders one face of a rule: the top stator scales, then the
// slide band, then the bottom stator, stacked top to bottom. All scales on
// a face share one physical length.
func FacePNG(face rules.Face, opts tick.Options, rOpts ...Option) ([]byte, error) {
	r := newRenderer(rOpts)

	groups := [][]*scale.Definition{face.TopStator, face.Slide, face.BottomStator}
	rows := 0
	length := 0.0
	for _, group := range groups {
		rows += len(group)
		for _, def := range group {
			if def.Layout.IsCircular() {
				return nil, errors.New(errors.ErrCodeInvalidLayout,
					"scale %q is circular; faces are rendered flat", def.Name)
			}
			if def.Layout.Length > length {
				length = def.Layout.Length
			}
		}
	}
	if rows == 0 || length <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "face has no renderable scales")
	}

	width := (length + 2*marginX + slideInset) * r.scale
	height := (float64(rows)*rowHeight + 2*marginY) * r.scale
	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	dc.SetColor(r.background)
	dc.Clear()
	dc.Scale(r.scale, r.scale)
	if err := r.setFace(dc); err != nil {
		return nil, err
	}

	y := float64(marginY)
	for gi, group := range groups {
		x := float64(marginX)
		if gi == 1 {
			x += slideInset
		}
		for _, def := range group {
			gen := tick.Generate(def, opts)
			r.drawLinearRow(dc, &gen, x, y+rowHeight/2, def.Layout.Length)
			y += rowHeight
		}
	}

	return encodePNG(dc)
}
