package components

import "gonum.org/v1/gonum/spatial/r2"

// Body holds the physical extent of a fish. Width and Height are the
// stage-scaled box dimensions; Scale is the stage size multiplier.
type Body struct {
	Width  float64 `inspect:"label,fmt:%.1f"`
	Height float64 `inspect:"label,fmt:%.1f"`
	Scale  float64 `inspect:"label,fmt:%.2f"`
}

// NewBody returns a body of the given base size scaled by scale.
func NewBody(baseW, baseH, scale float64) Body {
	return Body{Width: baseW * scale, Height: baseH * scale, Scale: scale}
}

// Box returns the axis-aligned box of the body centred at pos, grown by pad
// in each dimension (pad/2 on every side).
func (b Body) Box(pos Position, pad float64) r2.Box {
	half := r2.Vec{X: (b.Width + pad) / 2, Y: (b.Height + pad) / 2}
	c := pos.Vec()
	return r2.Box{Min: r2.Sub(c, half), Max: r2.Add(c, half)}
}
