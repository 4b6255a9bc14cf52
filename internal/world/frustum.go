package world

import (
	"planarmirror/internal/mirror"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling.
// Plane normals point inward.
type Frustum struct {
	planes [6]mirror.Plane // left, right, bottom, top, near, far
}

// ExtractFrustum extracts frustum planes from a view and projection matrix
// using the Gribb/Hartmann method. It works for mirrored views too, since
// the planes come straight from the clip-space inequalities.
func ExtractFrustum(view, proj rl.Matrix) Frustum {
	// Combine view and projection: VP = P * V
	vp := rl.MatrixMultiply(view, proj)

	var f Frustum

	// Left plane: row4 + row1
	f.planes[0] = mirror.Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M0, Y: vp.M7 + vp.M4, Z: vp.M11 + vp.M8},
		Distance: vp.M15 + vp.M12,
	}.Normalize()

	// Right plane: row4 - row1
	f.planes[1] = mirror.Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M0, Y: vp.M7 - vp.M4, Z: vp.M11 - vp.M8},
		Distance: vp.M15 - vp.M12,
	}.Normalize()

	// Bottom plane: row4 + row2
	f.planes[2] = mirror.Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M1, Y: vp.M7 + vp.M5, Z: vp.M11 + vp.M9},
		Distance: vp.M15 + vp.M13,
	}.Normalize()

	// Top plane: row4 - row2
	f.planes[3] = mirror.Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M1, Y: vp.M7 - vp.M5, Z: vp.M11 - vp.M9},
		Distance: vp.M15 - vp.M13,
	}.Normalize()

	// Near plane: row4 + row3
	f.planes[4] = mirror.Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M2, Y: vp.M7 + vp.M6, Z: vp.M11 + vp.M10},
		Distance: vp.M15 + vp.M14,
	}.Normalize()

	// Far plane: row4 - row3
	f.planes[5] = mirror.Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M2, Y: vp.M7 - vp.M6, Z: vp.M11 - vp.M10},
		Distance: vp.M15 - vp.M14,
	}.Normalize()

	return f
}

// Planes returns the six planes, inward facing.
func (f *Frustum) Planes() [6]mirror.Plane {
	return f.planes
}

// ContainsSphere tests if a sphere is inside or intersects the frustum.
// Returns true if the sphere should be rendered.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		// If sphere is completely behind any plane, it's outside
		if f.planes[i].SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := range f.planes {
		if f.planes[i].SignedDistance(point) < 0 {
			return false
		}
	}
	return true
}
