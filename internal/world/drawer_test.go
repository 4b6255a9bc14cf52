package world

import (
	"testing"

	"planarmirror/internal/components"
	"planarmirror/internal/engine"
	"planarmirror/internal/rendering"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func frontView(mask uint32) rendering.View {
	return rendering.View{
		Type:          rendering.CameraGame,
		WorldToCamera: lookAt(rl.Vector3{Z: 10}, rl.Vector3{}),
		Projection:    rl.MatrixPerspective(60*rl.Deg2rad, 1, 0.1, 100),
		CullingMask:   mask,
	}
}

func addMesh(scene *engine.Scene, name string, pos rl.Vector3, layer int) *components.MeshRenderer {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	m := components.NewMeshRenderer(components.MeshCube, rl.Red, rl.Vector3{X: 1, Y: 1, Z: 1})
	m.Layer = layer
	g.AddComponent(m)
	scene.AddGameObject(g)
	return m
}

func TestDrawerHonorsCullingMask(t *testing.T) {
	scene := engine.NewScene("test")
	def := addMesh(scene, "Default", rl.Vector3{}, rendering.LayerDefault)
	addMesh(scene, "OnMirrorLayer", rl.Vector3{X: 1}, rendering.LayerMirror)

	d := NewSceneDrawer(scene)
	meshes, _, _ := d.Visible(frontView(rendering.AllLayers &^ rendering.LayerMask(rendering.LayerMirror)))

	if len(meshes) != 1 || meshes[0] != def {
		t.Errorf("Expected only the default-layer mesh, got %d meshes", len(meshes))
	}
}

func TestDrawerCullsOutsideFrustum(t *testing.T) {
	scene := engine.NewScene("test")
	addMesh(scene, "Visible", rl.Vector3{}, rendering.LayerDefault)
	addMesh(scene, "Behind", rl.Vector3{Z: 30}, rendering.LayerDefault)

	d := NewSceneDrawer(scene)
	meshes, _, culled := d.Visible(frontView(rendering.AllLayers))

	if len(meshes) != 1 || culled != 1 {
		t.Errorf("Expected 1 visible and 1 culled, got %d and %d", len(meshes), culled)
	}
}

func TestDrawerSkipsHiddenAndInactive(t *testing.T) {
	scene := engine.NewScene("test")
	addMesh(scene, "Hidden", rl.Vector3{}, rendering.LayerDefault).GetGameObject().Hidden = true
	addMesh(scene, "Off", rl.Vector3{}, rendering.LayerDefault).GetGameObject().Active = false

	meshes, _, _ := NewSceneDrawer(scene).Visible(frontView(rendering.AllLayers))
	if len(meshes) != 0 {
		t.Errorf("Expected nothing visible, got %d", len(meshes))
	}
}

func TestDrawerWalksChildren(t *testing.T) {
	scene := engine.NewScene("test")
	parent := engine.NewGameObject("Parent")
	scene.AddGameObject(parent)
	child := addMesh(scene, "Child", rl.Vector3{X: 1}, rendering.LayerDefault)
	parent.AddChild(child.GetGameObject())

	meshes, _, _ := NewSceneDrawer(scene).Visible(frontView(rendering.AllLayers))
	if len(meshes) != 1 {
		t.Errorf("Expected the child drawn once, got %d", len(meshes))
	}

	parent.Active = false
	meshes, _, _ = NewSceneDrawer(scene).Visible(frontView(rendering.AllLayers))
	if len(meshes) != 0 {
		t.Errorf("Expected an inactive parent to hide the child, got %d", len(meshes))
	}
}

func TestDrawerKeepsMirrorsOutOfReflections(t *testing.T) {
	scene := engine.NewScene("test")
	g := engine.NewGameObject("Mirror")
	g.AddComponent(components.NewMirrorSurface(rl.Vector2{X: 4, Y: 4}))
	scene.AddGameObject(g)
	d := NewSceneDrawer(scene)

	_, mirrors, _ := d.Visible(frontView(rendering.AllLayers))
	if len(mirrors) != 1 {
		t.Errorf("Expected the mirror in the main view, got %d", len(mirrors))
	}

	view := frontView(rendering.AllLayers)
	view.Type = rendering.CameraReflection
	_, mirrors, _ = d.Visible(view)
	if len(mirrors) != 0 {
		t.Errorf("Expected no mirror in a reflection view, got %d", len(mirrors))
	}

	_, mirrors, _ = d.Visible(frontView(rendering.LayerMask(rendering.LayerDefault)))
	if len(mirrors) != 0 {
		t.Errorf("Expected the mask to drop the mirror layer, got %d", len(mirrors))
	}
}
