package world

import (
	"log"
	"path/filepath"
	"planarmirror/internal/components"
	"planarmirror/internal/engine"
	"planarmirror/internal/rendering"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the loaded scene and hooks its components up to the render
// pipeline and shaders.
type World struct {
	Scene        *engine.Scene
	Pipeline     *rendering.Pipeline
	Drawer       *SceneDrawer
	LitShader    rl.Shader
	MirrorShader rl.Shader
	Light        *components.DirectionalLight
}

func New(pipeline *rendering.Pipeline) *World {
	w := &World{
		Scene:    engine.NewScene("Main"),
		Pipeline: pipeline,
	}
	w.Drawer = NewSceneDrawer(w.Scene)
	pipeline.SetDrawer(w.Drawer)
	return w
}

// LoadShaders loads lighting and mirror shaders from dir. Needs a window.
func (w *World) LoadShaders(dir string) {
	w.LitShader = rl.LoadShader(filepath.Join(dir, "lighting.vs"), filepath.Join(dir, "lighting.fs"))
	w.MirrorShader = rl.LoadShader(filepath.Join(dir, "mirror.vs"), filepath.Join(dir, "mirror.fs"))
	w.Drawer.Shader = w.LitShader
	w.attachShaders()
}

// LoadScene replaces the current scene with the one in path.
func (w *World) LoadScene(path string) error {
	sf, err := ReadSceneFile(path)
	if err != nil {
		return err
	}
	scene, err := BuildScene(sf)
	if err != nil {
		return err
	}
	w.SetScene(scene)
	log.Printf("Loaded scene %s: %d objects", scene.Name, len(scene.GameObjects))
	return nil
}

// SaveScene writes the current scene to path.
func (w *World) SaveScene(path string) error {
	return SaveScene(w.Scene, path)
}

// SetScene unloads the current scene, wires scene's components to the
// pipeline and starts it.
func (w *World) SetScene(scene *engine.Scene) {
	if w.Scene != nil {
		w.Scene.Unload()
	}
	w.Scene = scene
	w.Drawer.Scene = scene
	w.Light = nil

	for _, g := range scene.GameObjects {
		for _, c := range g.Components() {
			switch comp := c.(type) {
			case *components.PlanarReflection:
				comp.SetPipeline(w.Pipeline)
			case *components.MirrorSurface:
				comp.SetPipeline(w.Pipeline)
			case *components.Camera:
				comp.XR = w.Pipeline.XR
				if w.Pipeline.XR != nil && w.Pipeline.XR.InterpupillaryDistance > 0 {
					comp.StereoSeparation = w.Pipeline.XR.StereoSeparation()
				}
			case *components.DirectionalLight:
				if w.Light == nil {
					w.Light = comp
				}
			}
		}
	}
	w.Drawer.Light = w.Light
	w.attachShaders()

	scene.Start()
}

func (w *World) attachShaders() {
	if w.MirrorShader.ID == 0 || w.Scene == nil {
		return
	}
	for _, g := range w.Scene.GameObjects {
		if m := engine.GetComponent[*components.MirrorSurface](g); m != nil {
			m.SetShader(w.MirrorShader)
		}
	}
}

// MainCamera returns the first active camera marked IsMain, or the first
// active camera if none is.
func (w *World) MainCamera() *components.Camera {
	var first *components.Camera
	for _, g := range w.Scene.GameObjects {
		if !g.Active || g.Hidden {
			continue
		}
		cam := engine.GetComponent[*components.Camera](g)
		if cam == nil || !cam.Enabled {
			continue
		}
		if cam.IsMain {
			return cam
		}
		if first == nil {
			first = cam
		}
	}
	return first
}

// Reflections returns every PlanarReflection in the scene.
func (w *World) Reflections() []*components.PlanarReflection {
	var out []*components.PlanarReflection
	for _, g := range w.Scene.GameObjects {
		if p := engine.GetComponent[*components.PlanarReflection](g); p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Render draws every enabled camera, main camera last so the reflections it
// samples are from this frame.
func (w *World) Render() {
	main := w.MainCamera()
	var cams []rendering.Camera
	for _, g := range w.Scene.GameObjects {
		if !g.Active || g.Hidden {
			continue
		}
		if cam := engine.GetComponent[*components.Camera](g); cam != nil && cam.Enabled && cam != main {
			cams = append(cams, cam)
		}
	}
	if main != nil {
		cams = append(cams, main)
	}
	w.Pipeline.Render(cams...)
}

// Unload destroys the scene and frees pipeline targets and shaders.
func (w *World) Unload() {
	w.Scene.Unload()
	w.Pipeline.Unload()
	if w.LitShader.ID != 0 {
		rl.UnloadShader(w.LitShader)
	}
	if w.MirrorShader.ID != 0 {
		rl.UnloadShader(w.MirrorShader)
	}
}
