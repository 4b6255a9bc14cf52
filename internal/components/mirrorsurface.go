package components

import (
	"planarmirror/internal/engine"
	"planarmirror/internal/rendering"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MirrorSurface", func() engine.Serializable {
		return NewMirrorSurface(rl.Vector2{X: 10, Y: 10})
	})
}

// MirrorSurface draws a quad that shows the reflection textures published
// by a PlanarReflection. The mirror shader samples them in screen space, so
// the quad itself needs no UVs tied to the reflection camera.
type MirrorSurface struct {
	engine.BaseComponent
	Size  rl.Vector2 // X by Z, in the object's local plane
	Tint  rl.Color
	Layer int

	pipeline *rendering.Pipeline
	shader   rl.Shader
	model    rl.Model
	loaded   bool
	locs     mirrorShaderLocs
}

type mirrorShaderLocs struct {
	screenSize int32
	stereo     int32
	hasTexture int32
}

func NewMirrorSurface(size rl.Vector2) *MirrorSurface {
	return &MirrorSurface{
		Size:  size,
		Tint:  rl.White,
		Layer: rendering.LayerMirror,
	}
}

// TypeName implements engine.Serializable
func (m *MirrorSurface) TypeName() string {
	return "MirrorSurface"
}

// Serialize implements engine.Serializable
func (m *MirrorSurface) Serialize() map[string]any {
	return map[string]any{
		"type":  "MirrorSurface",
		"size":  [2]float32{m.Size.X, m.Size.Y},
		"tint":  [4]uint8{m.Tint.R, m.Tint.G, m.Tint.B, m.Tint.A},
		"layer": m.Layer,
	}
}

// Deserialize implements engine.Serializable
func (m *MirrorSurface) Deserialize(data map[string]any) {
	if s, ok := data["size"].([]any); ok && len(s) == 2 {
		m.Size = rl.Vector2{X: float32(toFloat(s[0])), Y: float32(toFloat(s[1]))}
	}
	if c, ok := colorFrom(data["tint"]); ok {
		m.Tint = c
	}
	if l, ok := data["layer"].(float64); ok {
		m.Layer = int(l)
	}
}

// SetPipeline sets where the reflection textures are looked up.
func (m *MirrorSurface) SetPipeline(p *rendering.Pipeline) {
	m.pipeline = p
}

// SetShader sets the mirror shader. The reflection samplers are bound to the
// albedo and metalness material slots.
func (m *MirrorSurface) SetShader(shader rl.Shader) {
	m.shader = shader
	locs := unsafe.Slice(shader.Locs, rl.ShaderLocMapCubemap+1)
	locs[rl.ShaderLocMapAlbedo] = rl.GetShaderLocation(shader, rendering.PropertyName(LeftReflectionProperty))
	locs[rl.ShaderLocMapMetalness] = rl.GetShaderLocation(shader, rendering.PropertyName(RightReflectionProperty))
	m.locs = mirrorShaderLocs{
		screenSize: rl.GetShaderLocation(shader, "screenSize"),
		stereo:     rl.GetShaderLocation(shader, "stereo"),
		hasTexture: rl.GetShaderLocation(shader, "hasReflection"),
	}
	if m.loaded {
		m.model.Materials.Shader = shader
	}
}

func (m *MirrorSurface) ensureModel() {
	if m.loaded {
		return
	}
	m.model = rl.LoadModelFromMesh(rl.GenMeshPlane(m.Size.X, m.Size.Y, 1, 1))
	if m.shader.ID != 0 {
		m.model.Materials.Shader = m.shader
	}
	m.loaded = true
}

// Draw renders the mirror for view. Reflection cameras never see it.
func (m *MirrorSurface) Draw(view rendering.View) {
	g := m.GetGameObject()
	if g == nil || !g.Active || view.Type == rendering.CameraReflection {
		return
	}
	m.ensureModel()

	var left, right *rendering.RenderTexture
	if m.pipeline != nil {
		left = m.pipeline.GlobalTexture(LeftReflectionProperty)
		right = m.pipeline.GlobalTexture(RightReflectionProperty)
	}
	if right == nil {
		right = left
	}

	albedo := m.model.Materials.GetMap(rl.MapAlbedo)
	metal := m.model.Materials.GetMap(rl.MapMetalness)
	albedo.Texture = left.Texture()
	metal.Texture = right.Texture()
	albedo.Color = m.Tint

	if m.shader.ID != 0 {
		width, height := float32(rl.GetRenderWidth()), float32(rl.GetRenderHeight())
		if view.Target != nil {
			width, height = float32(view.Target.Width), float32(view.Target.Height)
		}
		rl.SetShaderValue(m.shader, m.locs.screenSize, []float32{width, height}, rl.ShaderUniformVec2)
		rl.SetShaderValue(m.shader, m.locs.stereo, []float32{boolFloat(view.Stereo)}, rl.ShaderUniformFloat)
		rl.SetShaderValue(m.shader, m.locs.hasTexture, []float32{boolFloat(left != nil)}, rl.ShaderUniformFloat)
	}

	scale := g.WorldScale()
	rot := engine.Transform{Rotation: g.WorldRotation()}
	pos := g.WorldPosition()
	m.model.Transform = rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(scale.X, scale.Y, scale.Z), rot.RotationMatrix()),
		rl.MatrixTranslate(pos.X, pos.Y, pos.Z),
	)
	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, rl.White)

	// The textures belong to the pool; never let UnloadModel free them.
	albedo.Texture = rl.Texture2D{}
	metal.Texture = rl.Texture2D{}
}

// Unload frees the quad mesh.
func (m *MirrorSurface) Unload() {
	if !m.loaded {
		return
	}
	// Keep the shared shader alive; UnloadModel would unload it otherwise.
	m.model.Materials.Shader = rl.Shader{}
	rl.UnloadModel(m.model)
	m.loaded = false
}

func (m *MirrorSurface) OnDestroy() {
	m.Unload()
}

func boolFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
