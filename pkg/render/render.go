// Package render rasterizes generated scales to PNG.
//
// A linear scale is drawn as a baseline with ticks hanging off it; a
// circular scale becomes a ring with radial ticks. Faces stack several
// scales into one image the way they sit on a physical slide rule.
package render

import (
	"bytes"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// Layout constants in pixels, before the resolution scale factor.
const (
	marginX        = 24
	marginY        = 20
	baseTickLength = 14
	labelGap       = 4
	rowHeight      = 52
	fontSize       = 9
)

// Option configures a renderer.
type Option func(*renderer)

type renderer struct {
	scale      float64
	background color.Color
	ink        color.Color
}

// WithScale sets the resolution multiplier (default 2 for crisp output).
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithBackground sets the background fill (default white).
func WithBackground(c color.Color) Option {
	return func(r *renderer) { r.background = c }
}

// WithInk sets the default tick and label color (default black). A scale's
// own LabelColor still wins for its labels.
func WithInk(c color.Color) Option {
	return func(r *renderer) { r.ink = c }
}

var (
	loadFontOnce sync.Once
	regularFont  *truetype.Font
	loadFontErr  error
)

// setFace installs the label font sized for the renderer's resolution.
// The context matrix scales positions but not glyphs, so the face itself
// carries the scale factor.
func (r renderer) setFace(dc *gg.Context) error {
	loadFontOnce.Do(func() {
		regularFont, loadFontErr = truetype.Parse(goregular.TTF)
	})
	if loadFontErr != nil {
		return errors.Wrap(errors.ErrCodeInternal, loadFontErr, "parse label font")
	}
	dc.SetFontFace(truetype.NewFace(regularFont, &truetype.Options{
		Size:    fontSize * r.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	return nil
}

func newRenderer(opts []Option) renderer {
	r := renderer{
		scale:      2,
		background: color.White,
		ink:        color.Black,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// PNG renders one generated scale, linear or circular, and returns the
// encoded image.
func PNG(gen *scale.Generated, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	if gen.Definition.Layout.IsCircular() {
		return r.circular(gen)
	}
	return r.linear(gen)
}

// linear draws a baseline with ticks below it and labels below the ticks.
func (r renderer) linear(gen *scale.Generated) ([]byte, error) {
	def := gen.Definition
	length := def.Layout.Length
	if length <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"scale %q has no physical length to render", def.Name)
	}

	width := (length + 2*marginX) * r.scale
	height := float64(rowHeight+2*marginY) * r.scale

	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	dc.SetColor(r.background)
	dc.Clear()
	dc.Scale(r.scale, r.scale)
	if err := r.setFace(dc); err != nil {
		return nil, err
	}

	r.drawLinearRow(dc, gen, marginX, marginY, length)

	return encodePNG(dc)
}

// drawLinearRow draws one scale row with its baseline at (x0, y0).
func (r renderer) drawLinearRow(dc *gg.Context, gen *scale.Generated, x0, y0, length float64) {
	def := gen.Definition

	dc.SetColor(r.ink)
	dc.SetLineWidth(1.2)
	dc.DrawLine(x0, y0, x0+length, y0)
	dc.Stroke()

	down := def.Direction != scale.DirectionUp
	labelColor := r.labelColor(def)

	dc.SetLineWidth(0.8)
	for _, tick := range gen.Ticks {
		x := x0 + tick.Position*length
		tickLen := baseTickLength * tick.Style.RelativeLength()

		y1 := y0 + tickLen
		if !down {
			y1 = y0 - tickLen
		}
		dc.SetColor(r.ink)
		dc.DrawLine(x, y0, x, y1)
		dc.Stroke()

		if tick.Label == "" {
			continue
		}
		dc.SetColor(labelColor)
		if down {
			dc.DrawStringAnchored(tick.Label, x, y1+labelGap, 0.5, 1)
		} else {
			dc.DrawStringAnchored(tick.Label, x, y1-labelGap, 0.5, 0)
		}
	}

	dc.SetColor(r.ink)
	dc.DrawStringAnchored(def.Name, x0-labelGap, y0, 1, 0.4)
}

// circular draws the scale as a ring, ticks pointing inward, labels just
// inside the ticks. Tick angles come from the generator.
func (r renderer) circular(gen *scale.Generated) ([]byte, error) {
	def := gen.Definition
	radius := def.Layout.Radius()
	if radius <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"scale %q has no diameter to render", def.Name)
	}

	side := (2*radius + 2*marginX + 2*baseTickLength) * r.scale
	dc := gg.NewContext(int(math.Ceil(side)), int(math.Ceil(side)))
	dc.SetColor(r.background)
	dc.Clear()
	dc.Scale(r.scale, r.scale)
	if err := r.setFace(dc); err != nil {
		return nil, err
	}

	cx := radius + marginX + baseTickLength
	cy := cx

	dc.SetColor(r.ink)
	dc.SetLineWidth(1.2)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	labelColor := r.labelColor(def)
	dc.SetLineWidth(0.8)
	for _, tick := range gen.Ticks {
		// Angle 0 points up; angles grow clockwise around the dial.
		theta := gg.Radians(tick.Angle - 90)
		tickLen := baseTickLength * tick.Style.RelativeLength()

		x1 := cx + radius*math.Cos(theta)
		y1 := cy + radius*math.Sin(theta)
		x2 := cx + (radius-tickLen)*math.Cos(theta)
		y2 := cy + (radius-tickLen)*math.Sin(theta)
		dc.SetColor(r.ink)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()

		if tick.Label == "" {
			continue
		}
		lx := cx + (radius-tickLen-labelGap-4)*math.Cos(theta)
		ly := cy + (radius-tickLen-labelGap-4)*math.Sin(theta)
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(tick.Label, lx, ly, 0.5, 0.5)
	}

	dc.SetColor(r.ink)
	dc.DrawStringAnchored(def.Name, cx, cy, 0.5, 0.5)

	return encodePNG(dc)
}

// labelColor honors the definition's CSS-style hex color when parseable.
func (r renderer) labelColor(def *scale.Definition) color.Color {
	if def.LabelColor == "" {
		return r.ink
	}
	if c, ok := parseHexColor(def.LabelColor); ok {
		return c
	}
	return r.ink
}

// parseHexColor handles #rgb and #rrggbb.
func parseHexColor(s string) (color.Color, bool) {
	if len(s) == 0 || s[0] != '#' {
		return nil, false
	}
	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	switch len(s) {
	case 4:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := hexVal(s[i+1])
			if !ok {
				return nil, false
			}
			out[i] = v*16 + v
		}
		return color.RGBA{out[0], out[1], out[2], 255}, true
	case 7:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexVal(s[2*i+1])
			lo, ok2 := hexVal(s[2*i+2])
			if !ok1 || !ok2 {
				return nil, false
			}
			out[i] = hi*16 + lo
		}
		return color.RGBA{out[0], out[1], out[2], 255}, true
	}
	return nil, false
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
