package mirror

import (
	"planarmirror/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ReflectionMatrix returns the affine matrix that mirrors points across p:
// I - 2nnᵀ in the upper 3x3 and -2dn as translation. p must have a unit
// normal. Fields follow raylib's layout, M12..M14 being the translation.
func ReflectionMatrix(p Plane) rl.Matrix {
	nx, ny, nz, d := p.Normal.X, p.Normal.Y, p.Normal.Z, p.Distance

	return rl.Matrix{
		M0: 1 - 2*nx*nx, M4: -2 * nx * ny, M8: -2 * nx * nz, M12: -2 * d * nx,
		M1: -2 * ny * nx, M5: 1 - 2*ny*ny, M9: -2 * ny * nz, M13: -2 * d * ny,
		M2: -2 * nz * nx, M6: -2 * nz * ny, M10: 1 - 2*nz*nz, M14: -2 * d * nz,
		M3: 0, M7: 0, M11: 0, M15: 1,
	}
}

// ReflectedView returns worldToCamera·reflection: the view of a camera that
// sees the world mirrored. raylib's MatrixMultiply(a, b) computes b·a.
func ReflectedView(worldToCamera, reflection rl.Matrix) rl.Matrix {
	return rl.MatrixMultiply(reflection, worldToCamera)
}

// ApplyEyeOffset shifts the view horizontally for one eye of a stereo pair:
// +separation for the left eye, -separation for the right. Mono views are
// returned unchanged.
func ApplyEyeOffset(view rl.Matrix, eye xr.Eye, separation float32) rl.Matrix {
	switch eye {
	case xr.EyeLeft:
		view.M12 += separation
	case xr.EyeRight:
		view.M12 -= separation
	}
	return view
}
