package world

import (
	"testing"

	"planarmirror/internal/components"
	"planarmirror/internal/engine"
	"planarmirror/internal/mirror"
	"planarmirror/internal/rendering"
	"planarmirror/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type nullDevice struct{ next uint32 }

func (d *nullDevice) LoadRenderTexture(width, height, depthBits int32, format rendering.TextureFormat) rl.RenderTexture2D {
	d.next++
	return rl.RenderTexture2D{ID: d.next}
}
func (d *nullDevice) UnloadRenderTexture(rl.RenderTexture2D) {}
func (d *nullDevice) BeginView(*rl.RenderTexture2D, rendering.View) {}
func (d *nullDevice) EndView(*rl.RenderTexture2D) {}
func (d *nullDevice) SetFrontFaceCulling(bool) {}

// reflectionOnlyScene has a camera and a mirror probe but nothing that needs
// a GL context to draw.
func reflectionOnlyScene() *engine.Scene {
	scene := engine.NewScene("probe")

	cam := engine.NewGameObject("Main Camera")
	cam.Transform.Position = rl.Vector3{Y: 2, Z: 5}
	c := components.NewCamera()
	c.IsMain = true
	c.Width, c.Height = 200, 100
	cam.AddComponent(c)
	scene.AddGameObject(cam)

	normal := engine.NewGameObject("MirrorNormal")
	normal.Transform.Rotation = rl.Vector3{X: -90}
	scene.AddGameObject(normal)

	probe := engine.NewGameObject("Probe")
	refl := components.NewPlanarReflection(nil)
	refl.Normal.Set(normal)
	probe.AddComponent(refl)
	scene.AddGameObject(probe)

	return scene
}

func TestSetSceneWiresPipeline(t *testing.T) {
	p := rendering.NewPipeline(&nullDevice{}, nil)
	w := New(p)
	w.SetScene(reflectionOnlyScene())

	if n := p.BeginCameraRendering.GetListenerCount(); n != 1 {
		t.Errorf("Expected the reflection to subscribe once, got %d", n)
	}
	cam := w.MainCamera()
	if cam == nil || cam.GetGameObject().Name != "Main Camera" {
		t.Fatal("Expected Main Camera to be the main camera")
	}
	if cam.XR != p.XR {
		t.Error("Expected cameras to share the pipeline's stereo settings")
	}
	if w.Drawer.Scene != w.Scene {
		t.Error("Expected the drawer to follow the scene")
	}
}

func TestRenderPublishesReflection(t *testing.T) {
	p := rendering.NewPipeline(&nullDevice{}, nil)
	w := New(p)
	w.SetScene(reflectionOnlyScene())

	w.Render()

	rt := p.GlobalTexture(components.LeftReflectionProperty)
	if rt == nil {
		t.Fatal("Expected a left reflection texture after rendering")
	}
	if rt.Width != 200 || rt.Height != 100 {
		t.Errorf("Expected 200x100, got %dx%d", rt.Width, rt.Height)
	}
	if len(w.Reflections()) != 1 {
		t.Errorf("Expected 1 reflection, got %d", len(w.Reflections()))
	}
}

func TestSetSceneUnloadsPrevious(t *testing.T) {
	p := rendering.NewPipeline(&nullDevice{}, nil)
	w := New(p)
	w.SetScene(reflectionOnlyScene())
	w.Render()

	w.SetScene(engine.NewScene("empty"))

	if n := p.BeginCameraRendering.GetListenerCount(); n != 0 {
		t.Errorf("Expected old listeners removed, got %d", n)
	}
	if p.Textures.InUse() != 0 {
		t.Errorf("Expected old textures released, got %d", p.Textures.InUse())
	}
	if w.MainCamera() != nil {
		t.Error("Expected no camera in an empty scene")
	}
}

func TestMainCameraFallsBackToFirst(t *testing.T) {
	w := New(rendering.NewPipeline(&nullDevice{}, nil))
	scene := engine.NewScene("cams")
	for _, name := range []string{"A", "B"} {
		g := engine.NewGameObject(name)
		g.AddComponent(components.NewCamera())
		scene.AddGameObject(g)
	}
	w.SetScene(scene)

	if cam := w.MainCamera(); cam == nil || cam.GetGameObject().Name != "A" {
		t.Error("Expected the first camera when none is marked main")
	}
}

func TestStereoEyeShiftFollowsInterpupillaryDistance(t *testing.T) {
	p := rendering.NewPipeline(&nullDevice{}, nil)
	p.XR = &xr.Settings{
		Enabled:                true,
		InterpupillaryDistance: 0.064,
		Projection:             [2]rl.Matrix{rl.MatrixIdentity(), rl.MatrixIdentity()},
	}
	w := New(p)
	w.SetScene(reflectionOnlyScene())

	cam := w.MainCamera()
	if cam.StereoSeparation != 0.032 {
		t.Fatalf("Expected half the IPD on the camera, got %f", cam.StereoSeparation)
	}

	w.Render()

	refl := w.Reflections()[0]
	normal := w.Scene.FindByName("MirrorNormal")
	mono := mirror.ReflectedView(cam.WorldToCameraMatrix(), mirror.ReflectionMatrix(refl.ReflectionPlane(normal)))

	left := refl.LeftCamera().WorldToCameraMatrix()
	right := refl.RightCamera().WorldToCameraMatrix()
	if d := left.M12 - mono.M12; d < 0.0639 || d > 0.0641 {
		t.Errorf("Expected left eye shifted by 0.064, got %f", d)
	}
	if d := right.M12 - mono.M12; d > -0.0639 || d < -0.0641 {
		t.Errorf("Expected right eye shifted by -0.064, got %f", d)
	}

	rt := p.GlobalTexture(components.RightReflectionProperty)
	if rt == nil || rt.Width != 100 || rt.Height != 100 {
		t.Errorf("Expected a 100x100 texture per eye, got %+v", rt)
	}
}

func TestSetSceneKeepsSeparationWithoutDevice(t *testing.T) {
	p := rendering.NewPipeline(&nullDevice{}, nil)
	w := New(p)
	scene := reflectionOnlyScene()
	cam := engine.GetComponent[*components.Camera](scene.FindByName("Main Camera"))
	cam.StereoSeparation = 0.03
	w.SetScene(scene)

	if cam.StereoSeparation != 0.03 {
		t.Errorf("Expected the scene's separation kept, got %f", cam.StereoSeparation)
	}
}
