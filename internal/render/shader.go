// Package render rasterizes draw primitives with Ebitengine. It owns the
// Kage shaders, the font face, and the texture registry; nothing outside
// this package touches the engine's drawing API.
package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// roundedRectSrc shades a solid rounded rectangle. The fragment evaluates
// the signed distance to the rectangle boundary and feathers coverage over
// a two-pixel band. Fully inside the band coverage is 1, outside 0.
const roundedRectSrc = `//kage:unit pixels

package main

var Size vec2
var Radius float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	half := Size * 0.5
	q := abs(srcPos-half) - half + vec2(Radius)
	d := length(max(q, 0)) + min(max(q.x, q.y), 0) - Radius
	alpha := 1 - smoothstep(-1, 1, d)
	return color * alpha
}
`

// circleMaskSrc clips a texture to the circle inscribed in its quad. The
// output alpha is min(texel alpha, mask alpha): the mask only lowers
// alpha, never raises it. Colors are premultiplied, so alpha is adjusted
// by scaling the whole texel.
const circleMaskSrc = `//kage:unit pixels

package main

var Edge float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := (srcPos - imageSrc0Origin()) / imageSrc0Size()
	c := imageSrc0At(srcPos)
	mask := smoothstep(0.5+Edge, 0.5-Edge, distance(uv, vec2(0.5)))
	factor := 1.0
	if c.a > 0 {
		factor = min(c.a, mask) / c.a
	}
	return c * factor * color
}
`

// Shaders holds the compiled Kage programs.
type Shaders struct {
	RoundedRect *ebiten.Shader
	CircleMask  *ebiten.Shader
}

// NewShaders compiles the shader programs.
func NewShaders() (*Shaders, error) {
	rr, err := ebiten.NewShader([]byte(roundedRectSrc))
	if err != nil {
		return nil, fmt.Errorf("failed to compile rounded rect shader: %w", err)
	}
	cm, err := ebiten.NewShader([]byte(circleMaskSrc))
	if err != nil {
		return nil, fmt.Errorf("failed to compile circle mask shader: %w", err)
	}
	return &Shaders{RoundedRect: rr, CircleMask: cm}, nil
}
