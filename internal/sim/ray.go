package sim

import (
	gomath "math"

	"github.com/Faultbox/materialfx/pkg/math"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// Box returns the AABB centred on center with the given half extents.
func Box(center, half math.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Translate returns the box moved by offset.
func (b AABB) Translate(offset math.Vec3) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// ContainsXZ reports whether p lies over the box footprint.
func (b AABB) ContainsXZ(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

func axis(v math.Vec3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func axisNormal(i int, sign float32) math.Vec3 {
	switch i {
	case 0:
		return math.Vec3{X: sign}
	case 1:
		return math.Vec3{Y: sign}
	default:
		return math.Vec3{Z: sign}
	}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to the entry face and its outward normal. If the
// ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, normal math.Vec3, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)
	var enter, exit math.Vec3

	for i := 0; i < 3; i++ {
		o, d := axis(r.Origin, i), axis(r.Direction, i)
		lo, hi := axis(box.Min, i), axis(box.Max, i)

		if d == 0 {
			if o < lo || o > hi {
				return 0, math.Vec3{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		// Entering through the min face means the outward normal points down the axis
		n1, n2 := axisNormal(i, -1), axisNormal(i, 1)
		if t1 > t2 {
			t1, t2 = t2, t1
			n1, n2 = n2, n1
		}
		if t1 > tmin {
			tmin, enter = t1, n1
		}
		if t2 < tmax {
			tmax, exit = t2, n2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, math.Vec3{}, false
	}

	if tmin >= 0 {
		return tmin, enter, true
	}
	return tmax, exit, true
}
