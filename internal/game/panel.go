package game

import (
	"fmt"
	"planarmirror/internal/components"
	"planarmirror/internal/config"
	"planarmirror/internal/rendering"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanelState holds the values the settings panel edits.
type PanelState struct {
	ReflectionScale float32
	ClipPlaneOffset float32
	RenderScale     float32
	Stereo          bool
	ShowTextures    bool
}

func panelStateFrom(cfg config.Config) PanelState {
	return PanelState{
		ReflectionScale: cfg.Reflection.Scale,
		ClipPlaneOffset: cfg.Reflection.ClipPlaneOffset,
		RenderScale:     cfg.Render.Scale,
		Stereo:          cfg.XR.Enabled,
	}
}

// SeedFrom starts the reflection sliders at the values of the first
// reflection in the scene.
func (s *PanelState) SeedFrom(reflections []*components.PlanarReflection) {
	if len(reflections) == 0 {
		return
	}
	s.ReflectionScale = reflections[0].Scale
	s.ClipPlaneOffset = reflections[0].ClipPlaneOffset
}

// Apply pushes the panel values into the pipeline. Reflections only receive
// the values that changed since prev, so per-reflection settings from the
// scene survive until the slider moves.
func (s PanelState) Apply(prev PanelState, reflections []*components.PlanarReflection, p *rendering.Pipeline) {
	for _, r := range reflections {
		if s.ReflectionScale != prev.ReflectionScale {
			r.SetScale(s.ReflectionScale)
		}
		if s.ClipPlaneOffset != prev.ClipPlaneOffset {
			r.ClipPlaneOffset = s.ClipPlaneOffset
		}
	}
	p.RenderScale = rl.Clamp(s.RenderScale, 0.1, 2)
	p.XR.Enabled = s.Stereo
}

const (
	panelWidth  = 280
	panelHeight = 210
	rowHeight   = 30
)

// drawPanel draws the settings panel and returns the edited state.
func drawPanel(s PanelState, x, y float32) PanelState {
	rl.DrawRectangleRounded(rl.Rectangle{X: x, Y: y, Width: panelWidth, Height: panelHeight}, 0.05, 6, colorBgPanel)
	rl.DrawText("Planar Reflection", int32(x)+12, int32(y)+10, 18, colorTextPrimary)

	row := func(i int) float32 { return y + 40 + float32(i)*rowHeight }
	label := func(i int, text string) {
		rl.DrawText(text, int32(x)+12, int32(row(i))+5, 14, colorTextSecondary)
	}

	label(0, "Scale")
	s.ReflectionScale = gui.Slider(rl.Rectangle{X: x + 110, Y: row(0), Width: 120, Height: 20},
		"", fmt.Sprintf("%.2f", s.ReflectionScale), s.ReflectionScale, 0, 1)

	label(1, "Clip offset")
	s.ClipPlaneOffset = gui.Slider(rl.Rectangle{X: x + 110, Y: row(1), Width: 120, Height: 20},
		"", fmt.Sprintf("%.2f", s.ClipPlaneOffset), s.ClipPlaneOffset, -0.5, 0.5)

	label(2, "Render scale")
	s.RenderScale = gui.Slider(rl.Rectangle{X: x + 110, Y: row(2), Width: 120, Height: 20},
		"", fmt.Sprintf("%.2f", s.RenderScale), s.RenderScale, 0.25, 2)

	s.Stereo = gui.CheckBox(rl.Rectangle{X: x + 12, Y: row(3), Width: 18, Height: 18}, "Stereo (F2)", s.Stereo)
	s.ShowTextures = gui.CheckBox(rl.Rectangle{X: x + 12, Y: row(4), Width: 18, Height: 18}, "Show textures (F1)", s.ShowTextures)

	rl.DrawText("RMB look, WASD/QE move, Tab panel", int32(x)+12, int32(row(5))+4, 12, colorTextMuted)
	return s
}

// drawTexturePreview shows a render texture flipped upright with a caption.
func drawTexturePreview(rt *rendering.RenderTexture, caption string, x, y, width int32) {
	if rt == nil {
		return
	}
	height := width * rt.Height / max(rt.Width, 1)
	tex := rt.Texture()
	rl.DrawTexturePro(
		tex,
		rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(-tex.Height)},
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(height)},
		rl.Vector2{},
		0,
		rl.White,
	)
	rl.DrawRectangleLines(x, y, width, height, colorAccent)
	rl.DrawText(fmt.Sprintf("%s %dx%d", caption, rt.Width, rt.Height), x, y+height+4, 14, colorAccent)
}
