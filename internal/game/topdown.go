package game

import "github.com/Faultbox/midgard-motor/pkg/math"

// Topdown maps world XZ to screen pixels, centred on a focus point. +X is
// right and +Z is up the screen.
type Topdown struct {
	Width, Height int
	Scale         float32 // pixels per unit
	Focus         math.Vec3
}

// ToScreen projects a world point.
func (v Topdown) ToScreen(p math.Vec3) (int32, int32) {
	x := float32(v.Width)/2 + (p.X-v.Focus.X)*v.Scale
	y := float32(v.Height)/2 - (p.Z-v.Focus.Z)*v.Scale
	return int32(x), int32(y)
}

// Rect projects the XZ footprint spanning lo to hi.
func (v Topdown) Rect(lo, hi math.Vec3) (x, y, w, h int32) {
	x0, y1 := v.ToScreen(lo)
	x1, y0 := v.ToScreen(hi)
	return x0, y0, x1 - x0, y1 - y0
}

// shade brightens by height so taller geometry stands out.
func shade(base uint8, height float32) uint8 {
	v := float32(base) + height*40
	return uint8(math.Clamp(v, 0, 255))
}
