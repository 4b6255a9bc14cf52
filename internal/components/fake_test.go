package components

import (
	"planarmirror/internal/engine"
	"planarmirror/internal/rendering"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeDevice hands out numbered targets without touching the GPU.
type fakeDevice struct {
	nextID   uint32
	loaded   map[uint32]bool
	cullings []bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{loaded: make(map[uint32]bool)}
}

func (d *fakeDevice) LoadRenderTexture(width, height, depthBits int32, format rendering.TextureFormat) rl.RenderTexture2D {
	d.nextID++
	d.loaded[d.nextID] = true
	return rl.RenderTexture2D{ID: d.nextID, Texture: rl.Texture2D{ID: d.nextID, Width: width, Height: height}}
}

func (d *fakeDevice) UnloadRenderTexture(target rl.RenderTexture2D) {
	delete(d.loaded, target.ID)
}

func (d *fakeDevice) BeginView(target *rl.RenderTexture2D, view rendering.View) {}

func (d *fakeDevice) EndView(target *rl.RenderTexture2D) {}

func (d *fakeDevice) SetFrontFaceCulling(front bool) {
	d.cullings = append(d.cullings, front)
}

// mirrorRig is a floor mirror at the origin facing +Y, watched by a camera
// at (0,2,5).
type mirrorRig struct {
	scene      *engine.Scene
	pipeline   *rendering.Pipeline
	device     *fakeDevice
	views      []rendering.View
	mirror     *engine.GameObject
	normal     *engine.GameObject
	reflection *PlanarReflection
	camera     *Camera
}

func newMirrorRig(withNormal bool) *mirrorRig {
	r := &mirrorRig{device: newFakeDevice()}
	r.pipeline = rendering.NewPipeline(r.device, rendering.DrawerFunc(func(v rendering.View) {
		r.views = append(r.views, v)
	}))
	r.scene = engine.NewScene("test")

	r.normal = engine.NewGameObject("MirrorNormal")
	r.normal.Transform.Rotation = rl.Vector3{X: -90}

	r.mirror = engine.NewGameObject("Mirror")
	r.reflection = NewPlanarReflection(r.pipeline)
	if withNormal {
		r.reflection.Normal.Set(r.normal)
		r.scene.AddGameObject(r.normal)
	}
	r.mirror.AddComponent(r.reflection)
	r.scene.AddGameObject(r.mirror)

	camObj := engine.NewGameObject("Main Camera")
	camObj.Transform.Position = rl.Vector3{X: 0, Y: 2, Z: 5}
	r.camera = NewCamera()
	r.camera.Width = 320
	r.camera.Height = 240
	r.camera.IsMain = true
	r.camera.XR = r.pipeline.XR
	camObj.AddComponent(r.camera)
	r.scene.AddGameObject(camObj)

	r.scene.Start()
	return r
}

func reflectionView() rendering.View {
	return rendering.View{Type: rendering.CameraReflection}
}
