package game

import (
	"testing"

	"planarmirror/internal/components"
	"planarmirror/internal/config"
	"planarmirror/internal/rendering"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type noDevice struct{}

func (noDevice) LoadRenderTexture(int32, int32, int32, rendering.TextureFormat) rl.RenderTexture2D {
	return rl.RenderTexture2D{}
}
func (noDevice) UnloadRenderTexture(rl.RenderTexture2D) {}
func (noDevice) BeginView(*rl.RenderTexture2D, rendering.View) {}
func (noDevice) EndView(*rl.RenderTexture2D) {}
func (noDevice) SetFrontFaceCulling(bool) {}

func TestPanelStateFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Reflection.Scale = 0.5
	cfg.XR.Enabled = true

	s := panelStateFrom(cfg)
	if s.ReflectionScale != 0.5 || !s.Stereo || s.ClipPlaneOffset != cfg.Reflection.ClipPlaneOffset {
		t.Errorf("Expected panel to mirror the config, got %+v", s)
	}
}

func TestPanelApply(t *testing.T) {
	p := rendering.NewPipeline(noDevice{}, nil)
	a := components.NewPlanarReflection(p)
	b := components.NewPlanarReflection(p)

	PanelState{ReflectionScale: 2, ClipPlaneOffset: 0.1, RenderScale: 5, Stereo: true}.
		Apply(PanelState{}, []*components.PlanarReflection{a, b}, p)

	for _, r := range []*components.PlanarReflection{a, b} {
		if r.Scale != 1 || r.ClipPlaneOffset != 0.1 {
			t.Errorf("Expected scale 1 and offset 0.1, got %f %f", r.Scale, r.ClipPlaneOffset)
		}
	}
	if p.RenderScale != 2 {
		t.Errorf("Expected render scale clamped to 2, got %f", p.RenderScale)
	}
	if !p.XR.Active() {
		t.Error("Expected stereo on")
	}
}

func TestPanelKeepsSceneReflectionSettings(t *testing.T) {
	p := rendering.NewPipeline(noDevice{}, nil)
	first := components.NewPlanarReflection(p)
	first.SetScale(0.5)
	first.ClipPlaneOffset = 0.2
	second := components.NewPlanarReflection(p)
	second.SetScale(0.25)
	second.ClipPlaneOffset = -0.1
	reflections := []*components.PlanarReflection{first, second}

	s := panelStateFrom(config.Default())
	s.SeedFrom(reflections)
	if s.ReflectionScale != 0.5 || s.ClipPlaneOffset != 0.2 {
		t.Errorf("Expected the panel seeded from the first reflection, got %+v", s)
	}

	// Unchanged panel leaves every reflection alone, frame after frame
	s.Apply(s, reflections, p)
	s.Apply(s, reflections, p)
	if second.Scale != 0.25 || second.ClipPlaneOffset != -0.1 {
		t.Errorf("Expected scene values kept, got %f %f", second.Scale, second.ClipPlaneOffset)
	}

	// Moving only the clip slider leaves the scales alone
	prev := s
	s.ClipPlaneOffset = 0.05
	s.Apply(prev, reflections, p)
	if first.ClipPlaneOffset != 0.05 || second.ClipPlaneOffset != 0.05 {
		t.Errorf("Expected the new offset on both, got %f %f", first.ClipPlaneOffset, second.ClipPlaneOffset)
	}
	if first.Scale != 0.5 || second.Scale != 0.25 {
		t.Errorf("Expected scales untouched, got %f %f", first.Scale, second.Scale)
	}
}

func TestPanelSeedWithoutReflections(t *testing.T) {
	cfg := config.Default()
	s := panelStateFrom(cfg)
	s.SeedFrom(nil)
	if s.ReflectionScale != cfg.Reflection.Scale || s.ClipPlaneOffset != cfg.Reflection.ClipPlaneOffset {
		t.Errorf("Expected config defaults to stay, got %+v", s)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    rl.Color
		wantErr bool
	}{
		{"#1e1e28", rl.NewColor(30, 30, 40, 255), false},
		{"ff000080", rl.NewColor(255, 0, 0, 128), false},
		{"#123", rl.Color{}, true},
		{"#zzzzzz", rl.Color{}, true},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: expected error %v, got %v", tt.in, tt.wantErr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
