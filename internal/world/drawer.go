package world

import (
	"planarmirror/internal/components"
	"planarmirror/internal/engine"
	"planarmirror/internal/rendering"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneDrawer draws a scene for one view. Mesh renderers are filtered by the
// view's culling mask and frustum; mirrors by the mask alone.
type SceneDrawer struct {
	Scene  *engine.Scene
	Shader rl.Shader // lit shader for meshes, zero to draw unlit
	Light  *components.DirectionalLight

	// Culled counts meshes rejected by the frustum in the last Draw.
	Culled int

	viewPosLoc int32
	locLoaded  bool
}

func NewSceneDrawer(scene *engine.Scene) *SceneDrawer {
	return &SceneDrawer{Scene: scene}
}

// Visible returns what view should draw, in scene order.
func (d *SceneDrawer) Visible(view rendering.View) ([]*components.MeshRenderer, []*components.MirrorSurface, int) {
	if d.Scene == nil {
		return nil, nil, 0
	}
	frustum := ExtractFrustum(view.WorldToCamera, view.Projection)

	var meshes []*components.MeshRenderer
	var mirrors []*components.MirrorSurface
	culled := 0

	var walk func(g *engine.GameObject)
	walk = func(g *engine.GameObject) {
		if !g.Active || g.Hidden {
			return
		}
		if m := engine.GetComponent[*components.MeshRenderer](g); m != nil && rendering.InMask(view.CullingMask, m.Layer) {
			if frustum.ContainsSphere(g.WorldPosition(), m.BoundingRadius()) {
				meshes = append(meshes, m)
			} else {
				culled++
			}
		}
		if s := engine.GetComponent[*components.MirrorSurface](g); s != nil &&
			rendering.InMask(view.CullingMask, s.Layer) && view.Type != rendering.CameraReflection {
			mirrors = append(mirrors, s)
		}
		for _, child := range g.Children {
			walk(child)
		}
	}
	for _, g := range d.Scene.GameObjects {
		if g.Parent == nil {
			walk(g)
		}
	}
	return meshes, mirrors, culled
}

// Draw implements rendering.Drawer.
func (d *SceneDrawer) Draw(view rendering.View) {
	meshes, mirrors, culled := d.Visible(view)
	d.Culled = culled

	if d.Shader.ID != 0 {
		if !d.locLoaded {
			d.viewPosLoc = rl.GetShaderLocation(d.Shader, "viewPos")
			d.locLoaded = true
		}
		rl.SetShaderValue(d.Shader, d.viewPosLoc, []float32{view.Position.X, view.Position.Y, view.Position.Z}, rl.ShaderUniformVec3)
		if d.Light != nil {
			d.Light.Apply(d.Shader)
		}
		rl.BeginShaderMode(d.Shader)
	}
	for _, m := range meshes {
		m.Draw()
	}
	if d.Shader.ID != 0 {
		rl.EndShaderMode()
	}

	for _, s := range mirrors {
		s.Draw(view)
	}
}
