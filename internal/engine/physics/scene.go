package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"

	"github.com/Faultbox/midgard-motor/pkg/math"
)

// Collider is a static axis-aligned box.
type Collider struct {
	Name    string
	Box     cube.BBox
	Layer   int
	Trigger bool
}

// Ramp is a solid wedge whose top surface rises from Min.Y at one edge of
// its footprint to Max.Y at the opposite edge.
type Ramp struct {
	Name  string
	Min   math.Vec3
	Max   math.Vec3
	Rise  cube.Face // horizontal face the surface climbs toward
	Layer int

	normal math.Vec3
	centre math.Vec3
}

// Scene is a static collision world of boxes and ramps. It implements Query.
type Scene struct {
	colliders []Collider
	ramps     []Ramp
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddBox adds a box spanning lo to hi.
func (s *Scene) AddBox(name string, lo, hi math.Vec3, layer int, trigger bool) {
	s.colliders = append(s.colliders, Collider{
		Name:    name,
		Box:     cube.Box(lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z),
		Layer:   layer,
		Trigger: trigger,
	})
}

// AddRamp adds a ramp. rise must be one of the four horizontal faces.
func (s *Scene) AddRamp(name string, lo, hi math.Vec3, rise cube.Face, layer int) error {
	dir, ok := horizontalFace(rise)
	if !ok {
		return fmt.Errorf("ramp %q: rise face %v is not horizontal", name, rise)
	}
	if hi.X <= lo.X || hi.Y <= lo.Y || hi.Z <= lo.Z {
		return fmt.Errorf("ramp %q: hi must exceed lo on every axis", name)
	}

	size := hi.Sub(lo)
	run := math32.Abs(size.Dot(dir))
	r := Ramp{
		Name:   name,
		Min:    lo,
		Max:    hi,
		Rise:   rise,
		Layer:  layer,
		normal: math.Up.Scale(run).Sub(dir.Scale(size.Y)).Normalize(),
		centre: lo.Add(size.Scale(0.5)),
	}
	s.ramps = append(s.ramps, r)
	return nil
}

// Colliders returns the scene boxes.
func (s *Scene) Colliders() []Collider {
	return s.colliders
}

// Ramps returns the scene ramps.
func (s *Scene) Ramps() []Ramp {
	return s.ramps
}

// SphereCast sweeps a sphere along dir and returns the nearest hit.
func (s *Scene) SphereCast(origin math.Vec3, radius float32, dir math.Vec3, maxDistance float32, mask LayerMask, triggers TriggerInteraction) (Hit, bool) {
	return s.cast(origin, radius, dir, maxDistance, mask, triggers)
}

// RayCast casts a ray along dir and returns the nearest hit.
func (s *Scene) RayCast(origin, dir math.Vec3, maxDistance float32, mask LayerMask, triggers TriggerInteraction) (Hit, bool) {
	return s.cast(origin, 0, dir, maxDistance, mask, triggers)
}

func (s *Scene) cast(origin math.Vec3, radius float32, dir math.Vec3, maxDistance float32, mask LayerMask, triggers TriggerInteraction) (Hit, bool) {
	dir = dir.Normalize()
	if dir.LengthSqr() == 0 || maxDistance < 0 {
		return Hit{}, false
	}
	end := origin.Add(dir.Scale(maxDistance))

	var best Hit
	found := false

	for i := range s.colliders {
		c := &s.colliders[i]
		if !mask.Has(c.Layer) || (c.Trigger && triggers == IgnoreTriggers) {
			continue
		}
		// Minkowski sum of the box and the sphere, approximated by a box.
		bb := c.Box.Grow(radius)
		if inside(bb, origin) {
			continue
		}
		res, ok := trace.BBoxIntercept(bb, origin.Mgl(), end.Mgl())
		if !ok {
			continue
		}
		centre := math.FromMgl(res.Position())
		dist := centre.Distance(origin)
		if found && dist >= best.Distance {
			continue
		}
		n := faceNormal(res.Face())
		best = Hit{
			Point:    centre.Sub(n.Scale(radius)),
			Normal:   n,
			Distance: dist,
			Collider: c.Name,
			Layer:    c.Layer,
			Trigger:  c.Trigger,
		}
		found = true
	}

	for i := range s.ramps {
		r := &s.ramps[i]
		if !mask.Has(r.Layer) {
			continue
		}
		hit, ok := r.cast(origin, radius, dir, maxDistance)
		if !ok || (found && hit.Distance >= best.Distance) {
			continue
		}
		best = hit
		found = true
	}

	return best, found
}

// cast intersects the ramp's top plane, offset by radius along its normal.
func (r *Ramp) cast(origin math.Vec3, radius float32, dir math.Vec3, maxDistance float32) (Hit, bool) {
	denom := r.normal.Dot(dir)
	if denom >= -math.Epsilon {
		return Hit{}, false // parallel or moving away
	}
	above := r.normal.Dot(origin.Sub(r.centre)) - radius
	if above < 0 {
		return Hit{}, false
	}
	t := -above / denom
	if t > maxDistance {
		return Hit{}, false
	}
	centre := origin.Add(dir.Scale(t))
	point := centre.Sub(r.normal.Scale(radius))
	if !r.covers(point) {
		return Hit{}, false
	}
	return Hit{
		Point:    point,
		Normal:   r.normal,
		Distance: t,
		Collider: r.Name,
		Layer:    r.Layer,
	}, true
}

// covers reports whether p lies over the ramp footprint.
func (r *Ramp) covers(p math.Vec3) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Z >= r.Min.Z && p.Z <= r.Max.Z
}

// maxHeightOver returns the highest surface point over the rectangle
// [x0,x1]x[z0,z1], or false if the rectangle misses the footprint.
func (r *Ramp) maxHeightOver(x0, z0, x1, z1 float32) (float32, bool) {
	if x1 < r.Min.X || x0 > r.Max.X || z1 < r.Min.Z || z0 > r.Max.Z {
		return 0, false
	}
	x0, x1 = math32.Max(x0, r.Min.X), math32.Min(x1, r.Max.X)
	z0, z1 = math32.Max(z0, r.Min.Z), math32.Min(z1, r.Max.Z)
	switch r.Rise {
	case cube.FaceEast:
		return r.HeightAt(x1, z0), true
	case cube.FaceWest:
		return r.HeightAt(x0, z0), true
	case cube.FaceSouth:
		return r.HeightAt(x0, z1), true
	default:
		return r.HeightAt(x0, z0), true
	}
}

// HeightAt returns the surface height over x, z.
func (r *Ramp) HeightAt(x, z float32) float32 {
	var t float32
	switch r.Rise {
	case cube.FaceEast:
		t = (x - r.Min.X) / (r.Max.X - r.Min.X)
	case cube.FaceWest:
		t = (r.Max.X - x) / (r.Max.X - r.Min.X)
	case cube.FaceSouth:
		t = (z - r.Min.Z) / (r.Max.Z - r.Min.Z)
	case cube.FaceNorth:
		t = (r.Max.Z - z) / (r.Max.Z - r.Min.Z)
	}
	return r.Min.Y + math.Clamp(t, 0, 1)*(r.Max.Y-r.Min.Y)
}

// Normal returns the unit normal of the ramp surface.
func (r *Ramp) Normal() math.Vec3 {
	return r.normal
}

func inside(bb cube.BBox, p math.Vec3) bool {
	lo, hi := bb.Min(), bb.Max()
	return p.X > lo[0] && p.X < hi[0] &&
		p.Y > lo[1] && p.Y < hi[1] &&
		p.Z > lo[2] && p.Z < hi[2]
}

func faceNormal(f cube.Face) math.Vec3 {
	switch f {
	case cube.FaceDown:
		return math.Down
	case cube.FaceUp:
		return math.Up
	case cube.FaceNorth:
		return math.Vec3{Z: -1}
	case cube.FaceSouth:
		return math.Vec3{Z: 1}
	case cube.FaceWest:
		return math.Vec3{X: -1}
	default:
		return math.Vec3{X: 1}
	}
}

func horizontalFace(f cube.Face) (math.Vec3, bool) {
	switch f {
	case cube.FaceNorth, cube.FaceSouth, cube.FaceWest, cube.FaceEast:
		return faceNormal(f), true
	}
	return math.Vec3{}, false
}
