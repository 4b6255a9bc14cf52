// Package mirror holds the math behind planar reflections: mirror planes,
// the reflection matrix about a plane, reflected views and oblique near-plane
// projections. Everything here is pure arithmetic on raylib matrix types and
// needs no graphics context.
package mirror

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane is the set of points p with Normal·p + Distance = 0.
type Plane struct {
	Normal   rl.Vector3
	Distance float32
}

// PlaneFromPoint builds the mirror plane through point facing normal, pushed
// back along the normal by offset. normal is expected to be unit length.
func PlaneFromPoint(normal, point rl.Vector3, offset float32) Plane {
	return Plane{
		Normal:   normal,
		Distance: -rl.Vector3DotProduct(normal, point) - offset,
	}
}

// PlaneFromVector unpacks (a, b, c, d) coefficients.
func PlaneFromVector(v rl.Vector4) Plane {
	return Plane{Normal: rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}, Distance: v.W}
}

// Vector packs the plane as (a, b, c, d).
func (p Plane) Vector() rl.Vector4 {
	return rl.Vector4{X: p.Normal.X, Y: p.Normal.Y, Z: p.Normal.Z, W: p.Distance}
}

// SignedDistance is positive on the side the normal points to. Only a true
// distance when the normal is unit length.
func (p Plane) SignedDistance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, point) + p.Distance
}

// Normalize scales the plane so its normal has unit length. A zero normal
// is returned unchanged.
func (p Plane) Normalize() Plane {
	length := math32.Sqrt(rl.Vector3DotProduct(p.Normal, p.Normal))
	if length == 0 {
		return p
	}
	return Plane{
		Normal:   rl.Vector3Scale(p.Normal, 1/length),
		Distance: p.Distance / length,
	}
}

// Sgn returns 1 for positive a, -1 for negative a and 0 for zero.
func Sgn(a float32) float32 {
	if a > 0 {
		return 1
	}
	if a < 0 {
		return -1
	}
	return 0
}
