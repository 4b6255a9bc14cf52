package components

import (
	"planarmirror/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("DirectionalLight", func() engine.Serializable {
		return NewDirectionalLight()
	})
}

// DirectionalLight feeds the lit shader. The helper reflection cameras share
// the same light, so mirrored geometry stays lit from the real direction.
type DirectionalLight struct {
	engine.BaseComponent
	Direction    rl.Vector3
	Color        rl.Color
	Intensity    float32
	AmbientColor rl.Color
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction:    rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35}),
		Color:        rl.White,
		Intensity:    1.0,
		AmbientColor: rl.NewColor(25, 25, 25, 255),
	}
}

// TypeName implements engine.Serializable
func (l *DirectionalLight) TypeName() string {
	return "DirectionalLight"
}

// Serialize implements engine.Serializable
func (l *DirectionalLight) Serialize() map[string]any {
	return map[string]any{
		"type":      "DirectionalLight",
		"direction": [3]float32{l.Direction.X, l.Direction.Y, l.Direction.Z},
		"color":     [4]uint8{l.Color.R, l.Color.G, l.Color.B, l.Color.A},
		"ambient":   [4]uint8{l.AmbientColor.R, l.AmbientColor.G, l.AmbientColor.B, l.AmbientColor.A},
		"intensity": l.Intensity,
	}
}

// Deserialize implements engine.Serializable
func (l *DirectionalLight) Deserialize(data map[string]any) {
	if dir, ok := data["direction"].([]any); ok && len(dir) == 3 {
		l.Direction = rl.Vector3Normalize(rl.Vector3{
			X: float32(toFloat(dir[0])),
			Y: float32(toFloat(dir[1])),
			Z: float32(toFloat(dir[2])),
		})
	}
	if c, ok := colorFrom(data["color"]); ok {
		l.Color = c
	}
	if c, ok := colorFrom(data["ambient"]); ok {
		l.AmbientColor = c
	}
	if i, ok := data["intensity"].(float64); ok {
		l.Intensity = float32(i)
	}
}

func (l *DirectionalLight) MoveLightDir(dx, dy, dz float32) {
	l.Direction.X += dx
	l.Direction.Y += dy
	l.Direction.Z += dz
	l.Direction = rl.Vector3Normalize(l.Direction)
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return []float32{
		float32(l.Color.R) / 255.0 * l.Intensity,
		float32(l.Color.G) / 255.0 * l.Intensity,
		float32(l.Color.B) / 255.0 * l.Intensity,
		1.0,
	}
}

func (l *DirectionalLight) GetAmbientFloat() []float32 {
	return []float32{
		float32(l.AmbientColor.R) / 255.0,
		float32(l.AmbientColor.G) / 255.0,
		float32(l.AmbientColor.B) / 255.0,
		1.0,
	}
}

// Apply uploads the light uniforms to a shader that declares lightDir,
// lightColor and ambient.
func (l *DirectionalLight) Apply(shader rl.Shader) {
	if shader.ID == 0 {
		return
	}
	rl.SetShaderValue(shader, rl.GetShaderLocation(shader, "lightDir"),
		[]float32{l.Direction.X, l.Direction.Y, l.Direction.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(shader, rl.GetShaderLocation(shader, "lightColor"), l.GetColorFloat(), rl.ShaderUniformVec4)
	rl.SetShaderValue(shader, rl.GetShaderLocation(shader, "ambient"), l.GetAmbientFloat(), rl.ShaderUniformVec4)
}

func colorFrom(v any) (rl.Color, bool) {
	c, ok := v.([]any)
	if !ok || len(c) != 4 {
		return rl.Color{}, false
	}
	return rl.Color{
		R: uint8(toFloat(c[0])),
		G: uint8(toFloat(c[1])),
		B: uint8(toFloat(c[2])),
		A: uint8(toFloat(c[3])),
	}, true
}
