package motor

// SurfaceProfile names a physics material set on the character body.
type SurfaceProfile int

const (
	SurfaceDefault SurfaceProfile = iota
	SurfaceJumping
)

func (p SurfaceProfile) String() string {
	switch p {
	case SurfaceDefault:
		return "default"
	case SurfaceJumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// SurfaceProfiler applies surface profiles to the body collider,
// e.g. swapping to a frictionless material while airborne.
type SurfaceProfiler interface {
	SetSurfaceProfile(SurfaceProfile)
}

func (m *Motor) setSurface(p SurfaceProfile) {
	if m.surface == nil || m.profile == p {
		return
	}
	m.profile = p
	m.surface.SetSurfaceProfile(p)
}
