package effects

import "github.com/Faultbox/materialfx/pkg/math"

// Scene creates the scene nodes effect instances attach their visuals to.
type Scene interface {
	CreateNode(position, direction math.Vec3) Node
}

// Node is a scene node owned by one effect instance.
type Node interface {
	// CreateBillboard attaches a single billboard using a private copy of
	// the asset's material. An unresolvable asset is a *fault.ResourceError.
	CreateBillboard(asset string, mode FaceCameraMode, size math.Vec2) (Billboard, error)
	// Remove detaches the node and releases everything attached to it.
	Remove()
}

// Billboard is a camera-facing quad with a tintable material.
type Billboard interface {
	Size() math.Vec2
	SetSize(size math.Vec2)
	Alpha() float32
	SetAlpha(alpha float32)
}
