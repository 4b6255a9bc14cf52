package game

import (
	"fmt"
	"log"
	"path/filepath"
	"planarmirror/internal/components"
	"planarmirror/internal/config"
	"planarmirror/internal/engine"
	"planarmirror/internal/rendering"
	"planarmirror/internal/world"
	"planarmirror/internal/xr"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	World     *world.World
	Pipeline  *rendering.Pipeline
	XR        *xr.Settings
	Panel     PanelState
	ShowPanel bool

	// applied is the panel state last pushed into the scene.
	applied PanelState

	device     *rendering.RaylibDevice
	background rl.Color

	// Stereo output: the main camera renders side by side into eyes, which
	// is then warped onto the screen by the distortion shader.
	eyes       *rendering.RenderTexture
	distortion rl.Shader
	stereoOn   bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) *Game {
	return &Game{
		Config:    cfg,
		Panel:     panelStateFrom(cfg),
		ShowPanel: true,
	}
}

// Run opens the window and runs the loop until it is closed.
func (g *Game) Run() error {
	rl.SetConfigFlags(windowFlags(g.Config.Window.VSync))
	rl.InitWindow(int32(g.Config.Window.Width), int32(g.Config.Window.Height), g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.Config.Window.TargetFPS))
	initRayguiStyle()

	bg, err := parseColor(g.Config.Render.Background)
	if err != nil {
		log.Printf("Render background: %v, using default", err)
		bg = rl.NewColor(30, 30, 40, 255)
	}
	g.background = bg

	// Stereo config needs the GL context
	device := xr.DefaultDevice()
	if ipd := g.Config.XR.InterpupillaryDistance; ipd > 0 {
		device.InterpupillaryDistance = ipd
	}
	g.XR = xr.FromDevice(device)
	defer g.XR.Unload()

	g.device = &rendering.RaylibDevice{XR: g.XR}
	g.Pipeline = rendering.NewPipeline(g.device, nil)
	g.Pipeline.XR = g.XR
	g.World = world.New(g.Pipeline)
	g.World.LoadShaders(g.Config.Render.ShaderDir)
	defer g.World.Unload()

	if err := g.World.LoadScene(g.Config.Scene); err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	if g.World.MainCamera() == nil {
		return fmt.Errorf("load scene: %s has no camera", g.Config.Scene)
	}
	for _, obj := range g.World.Scene.GameObjects {
		if cam := engine.GetComponent[*components.Camera](obj); cam != nil {
			cam.Background = g.background
		}
	}

	g.distortion = rl.LoadShader("", filepath.Join(g.Config.Render.ShaderDir, "distortion.fs"))
	defer rl.UnloadShader(g.distortion)
	g.setupDistortion(device)
	defer g.unloadEyes()

	g.Panel.SeedFrom(g.World.Reflections())
	g.Panel.Apply(g.Panel, g.World.Reflections(), g.Pipeline)
	g.applied = g.Panel
	g.syncStereo()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) setupDistortion(device rl.VrDeviceInfo) {
	cfg, ok := g.XR.StereoConfig()
	if !ok || g.distortion.ID == 0 {
		return
	}
	set := func(name string, v []float32, typ rl.ShaderUniformDataType) {
		rl.SetShaderValue(g.distortion, rl.GetShaderLocation(g.distortion, name), v, typ)
	}
	set("leftLensCenter", cfg.LeftLensCenter[:], rl.ShaderUniformVec2)
	set("rightLensCenter", cfg.RightLensCenter[:], rl.ShaderUniformVec2)
	set("leftScreenCenter", cfg.LeftScreenCenter[:], rl.ShaderUniformVec2)
	set("rightScreenCenter", cfg.RightScreenCenter[:], rl.ShaderUniformVec2)
	set("scale", cfg.Scale[:], rl.ShaderUniformVec2)
	set("scaleIn", cfg.ScaleIn[:], rl.ShaderUniformVec2)
	set("deviceWarpParam", device.LensDistortionValues[:], rl.ShaderUniformVec4)
	set("chromaAbParam", device.ChromaAbCorrection[:], rl.ShaderUniformVec4)
}

// syncStereo switches the main camera between mono screen output and the
// side-by-side eye target.
func (g *Game) syncStereo() {
	cam := g.World.MainCamera()
	if cam == nil {
		return
	}
	if g.Pipeline.XR.Active() {
		g.ensureEyes()
		cam.Type = rendering.CameraVR
		cam.TargetTexture = g.eyes
	} else {
		cam.Type = rendering.CameraGame
		cam.TargetTexture = nil
	}
	g.stereoOn = g.Pipeline.XR.Active()
}

func (g *Game) ensureEyes() {
	w, h := int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight())
	if g.eyes != nil && g.eyes.Width == w && g.eyes.Height == h {
		return
	}
	g.unloadEyes()
	g.eyes = &rendering.RenderTexture{
		Width:     w,
		Height:    h,
		DepthBits: 24,
		Format:    rendering.FormatRGBA8,
		Target:    rl.LoadRenderTexture(w, h),
	}
}

func (g *Game) unloadEyes() {
	if g.eyes == nil {
		return
	}
	rl.UnloadRenderTexture(g.eyes.Target)
	g.eyes = nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.ShowPanel = !g.ShowPanel
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.Panel.ShowTextures = !g.Panel.ShowTextures
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.Panel.Stereo = !g.Panel.Stereo
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		if err := g.World.SaveScene(g.Config.Scene); err != nil {
			log.Printf("Save scene: %v", err)
		} else {
			log.Printf("Saved scene to %s", g.Config.Scene)
		}
	}

	g.Panel.Apply(g.applied, g.World.Reflections(), g.Pipeline)
	g.applied = g.Panel
	if g.stereoOn != g.Pipeline.XR.Active() || (g.stereoOn && rl.IsWindowResized()) {
		g.syncStereo()
	}

	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(g.background)

	g.World.Render()

	if g.stereoOn && g.eyes != nil {
		tex := g.eyes.Texture()
		rl.BeginShaderMode(g.distortion)
		rl.DrawTextureRec(tex,
			rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(-tex.Height)},
			rl.Vector2{}, rl.White)
		rl.EndShaderMode()
	}
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()

	g.Pipeline.EndFrame()
}

func (g *Game) DrawUI() {
	rl.DrawFPS(10, 10)

	screenW := int32(rl.GetScreenWidth())
	if g.ShowPanel {
		g.Panel = drawPanel(g.Panel, float32(screenW-panelWidth-10), 10)
	}

	if g.Panel.ShowTextures {
		left := g.Pipeline.GlobalTexture(components.LeftReflectionProperty)
		right := g.Pipeline.GlobalTexture(components.RightReflectionProperty)
		drawTexturePreview(left, "_LeftReflCameraTex", 10, 40, 240)
		if g.stereoOn {
			drawTexturePreview(right, "_RightReflCameraTex", 260, 40, 240)
		}

		y := int32(screenW/8 + 80)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, y, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, y+20, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Culled: %d", g.World.Drawer.Culled), 10, y+40, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Pooled targets: %d in use, %d free",
			g.Pipeline.Textures.InUse(), g.Pipeline.Textures.Pooled()), 10, y+60, 16, rl.Lime)
	}
}
