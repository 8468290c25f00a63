package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/DetectiveFierce/pause-menu/internal/domain/draw"
	"github.com/DetectiveFierce/pause-menu/internal/domain/geom"
)

// Rasterizer turns a primitive list into engine draw calls.
type Rasterizer struct {
	shaders  *Shaders
	measurer *FaceMeasurer
	textures map[string]*ebiten.Image
}

// NewRasterizer creates a rasterizer with compiled shaders.
func NewRasterizer(measurer *FaceMeasurer) (*Rasterizer, error) {
	shaders, err := NewShaders()
	if err != nil {
		return nil, err
	}
	return &Rasterizer{
		shaders:  shaders,
		measurer: measurer,
		textures: make(map[string]*ebiten.Image),
	}, nil
}

// RegisterTexture makes an image available to icon primitives by name.
func (r *Rasterizer) RegisterTexture(name string, img *ebiten.Image) {
	r.textures[name] = img
}

// Draw renders the list onto dst in order.
func (r *Rasterizer) Draw(dst *ebiten.Image, list *draw.List) {
	for _, p := range list.Primitives() {
		switch p.Kind {
		case draw.KindRoundedRect:
			r.drawRoundedRect(dst, p)
		case draw.KindIcon:
			r.drawIcon(dst, p)
		case draw.KindText:
			r.drawText(dst, p)
		}
	}
}

// drawRoundedRect fills a rectangle. Sharp rectangles skip the shader and
// go through the plain filled-rect path, which also keeps translucent
// overlays exact: no edge band touches their alpha.
func (r *Rasterizer) drawRoundedRect(dst *ebiten.Image, p draw.Primitive) {
	if p.Radius <= 0 {
		vector.DrawFilledRect(dst,
			float32(p.Rect.X), float32(p.Rect.Y),
			float32(p.Rect.W), float32(p.Rect.H),
			p.Color, false)
		return
	}

	w, h := int(p.Rect.W+0.5), int(p.Rect.H+0.5)
	if w <= 0 || h <= 0 {
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(p.Rect.X, p.Rect.Y)
	op.Uniforms = map[string]any{
		"Size":   []float32{float32(w), float32(h)},
		"Radius": float32(p.Radius),
	}
	op.ColorScale.ScaleWithColor(p.Color)
	dst.DrawRectShader(w, h, r.shaders.RoundedRect, op)
}

// drawIcon draws a registered texture scaled into the primitive's rect,
// clipped to a circle when requested. Unregistered textures fall back to
// a flat filled circle so a missing asset is visible, not invisible.
func (r *Rasterizer) drawIcon(dst *ebiten.Image, p draw.Primitive) {
	img, ok := r.textures[p.Texture]
	if !ok {
		log.Printf("render: texture %q not registered", p.Texture)
		cx := float32(p.Rect.X + p.Rect.W/2)
		cy := float32(p.Rect.Y + p.Rect.H/2)
		vector.DrawFilledCircle(dst, cx, cy, float32(p.Rect.W/2),
			color.RGBA{R: 100, G: 116, B: 139, A: 255}, true)
		return
	}

	bounds := img.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()
	if sw == 0 || sh == 0 {
		return
	}

	if !p.CircleMask {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Rect.W/float64(sw), p.Rect.H/float64(sh))
		op.GeoM.Translate(p.Rect.X, p.Rect.Y)
		dst.DrawImage(img, op)
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Scale(p.Rect.W/float64(sw), p.Rect.H/float64(sh))
	op.GeoM.Translate(p.Rect.X, p.Rect.Y)
	op.Images[0] = img
	op.Uniforms = map[string]any{
		"Edge": float32(geom.DefaultCircleEdge),
	}
	dst.DrawRectShader(sw, sh, r.shaders.CircleMask, op)
}

func (r *Rasterizer) drawText(dst *ebiten.Image, p draw.Primitive) {
	scale := p.FontSize / baseFontSize
	for i, line := range p.Lines {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(p.Rect.X, p.Rect.Y+float64(i)*p.LineHeight)
		op.ColorScale.ScaleWithColor(p.Color)
		text.Draw(dst, line, r.measurer.Face(), op)
	}
}
