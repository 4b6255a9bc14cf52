package components

import (
	"fmt"
	"planarmirror/internal/engine"
	"planarmirror/internal/rendering"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.White, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshTypeNames = map[MeshType]string{
	MeshCube:   "cube",
	MeshSphere: "sphere",
	MeshPlane:  "plane",
}

func (m MeshType) String() string {
	if name, ok := meshTypeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MeshType(%d)", int(m))
}

// ParseMeshType maps a scene file name back to a MeshType.
func ParseMeshType(name string) (MeshType, bool) {
	for t, n := range meshTypeNames {
		if n == name {
			return t, true
		}
	}
	return MeshCube, false
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Layer    int
	Wires    bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
		Layer:    rendering.LayerDefault,
	}
}

// TypeName implements engine.Serializable
func (m *MeshRenderer) TypeName() string {
	return "MeshRenderer"
}

// Serialize implements engine.Serializable
func (m *MeshRenderer) Serialize() map[string]any {
	return map[string]any{
		"type":  "MeshRenderer",
		"mesh":  m.MeshType.String(),
		"color": [4]uint8{m.Color.R, m.Color.G, m.Color.B, m.Color.A},
		"size":  [3]float32{m.Size.X, m.Size.Y, m.Size.Z},
		"layer": m.Layer,
	}
}

// Deserialize implements engine.Serializable
func (m *MeshRenderer) Deserialize(data map[string]any) {
	if name, ok := data["mesh"].(string); ok {
		if t, ok := ParseMeshType(name); ok {
			m.MeshType = t
		}
	}
	if c, ok := data["color"].([]any); ok && (len(c) == 3 || len(c) == 4) {
		m.Color = rl.Color{A: 255}
		m.Color.R = uint8(toFloat(c[0]))
		m.Color.G = uint8(toFloat(c[1]))
		m.Color.B = uint8(toFloat(c[2]))
		if len(c) == 4 {
			m.Color.A = uint8(toFloat(c[3]))
		}
	}
	if s, ok := data["size"].([]any); ok && len(s) == 3 {
		m.Size = rl.Vector3{X: float32(toFloat(s[0])), Y: float32(toFloat(s[1])), Z: float32(toFloat(s[2]))}
	}
	if l, ok := data["layer"].(float64); ok {
		m.Layer = int(l)
	}
}

func toFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

// BoundingRadius is the radius of a sphere around the scaled mesh, for
// frustum culling.
func (m *MeshRenderer) BoundingRadius() float32 {
	g := m.GetGameObject()
	scale := rl.Vector3{X: 1, Y: 1, Z: 1}
	if g != nil {
		scale = g.WorldScale()
	}
	size := rl.Vector3Multiply(m.Size, scale)
	switch m.MeshType {
	case MeshSphere:
		return size.X
	default:
		return rl.Vector3Length(size) / 2
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	// Same X, Y, Z order as Transform.RotationMatrix; rlgl post-multiplies.
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(rl.Vector3Zero(), m.Size, m.Color)
		if m.Wires {
			rl.DrawCubeWiresV(rl.Vector3Zero(), m.Size, rl.DarkGray)
		}
	case MeshSphere:
		rl.DrawSphere(rl.Vector3Zero(), m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}

	rl.PopMatrix()
}
