package mirror

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MakeProjectionOblique replaces the near plane of an OpenGL style
// projection with clip, a camera-space plane whose positive side is kept.
// The far plane is skewed so the frustum stays closed. If clip is parallel
// to the view direction the projection is returned unchanged.
func MakeProjectionOblique(proj rl.Matrix, clip rl.Vector4) rl.Matrix {
	// Clip-space corner opposite the plane, (sgn(a), sgn(b), 1, 1), taken
	// back to camera space through the inverse projection.
	q := rl.Vector4{
		X: (Sgn(clip.X) + proj.M8) / proj.M0,
		Y: (Sgn(clip.Y) + proj.M9) / proj.M5,
		Z: -1,
		W: (1 + proj.M10) / proj.M14,
	}

	dot := clip.X*q.X + clip.Y*q.Y + clip.Z*q.Z + clip.W*q.W
	if dot == 0 {
		return proj
	}
	scale := 2 / dot
	c := rl.Vector4{X: clip.X * scale, Y: clip.Y * scale, Z: clip.Z * scale, W: clip.W * scale}

	// Third row.
	proj.M2 = c.X
	proj.M6 = c.Y
	proj.M10 = c.Z + 1
	proj.M14 = c.W
	return proj
}

// CameraSpacePlane expresses the mirror plane through pos facing normal in
// the space of worldToCamera, offset along the normal. sideSign flips which
// side is kept (1 keeps the side the normal points to).
func CameraSpacePlane(worldToCamera rl.Matrix, pos, normal rl.Vector3, offset, sideSign float32) rl.Vector4 {
	offsetPos := rl.Vector3Add(pos, rl.Vector3Scale(normal, offset))
	cpos := rl.Vector3Transform(offsetPos, worldToCamera)
	cnormal := rl.Vector3Scale(rl.Vector3Normalize(transformDirection(normal, worldToCamera)), sideSign)
	return rl.Vector4{
		X: cnormal.X,
		Y: cnormal.Y,
		Z: cnormal.Z,
		W: -rl.Vector3DotProduct(cpos, cnormal),
	}
}

// transformDirection applies only the linear part of m.
func transformDirection(v rl.Vector3, m rl.Matrix) rl.Vector3 {
	return rl.Vector3{
		X: m.M0*v.X + m.M4*v.Y + m.M8*v.Z,
		Y: m.M1*v.X + m.M5*v.Y + m.M9*v.Z,
		Z: m.M2*v.X + m.M6*v.Y + m.M10*v.Z,
	}
}
