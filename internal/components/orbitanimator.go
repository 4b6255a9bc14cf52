package components

import (
	"planarmirror/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("OrbitAnimator", func() engine.Serializable {
		return &OrbitAnimator{}
	})
}

// OrbitAnimator moves an object on a bobbing circle around where it started
// and spins it about Y. The demo uses it to give the mirror something to
// follow.
type OrbitAnimator struct {
	engine.BaseComponent
	Radius        float32
	Speed         float32 // radians per second
	Bob           float32
	Phase         float32
	RotationSpeed float32 // degrees per second

	origin  rl.Vector3
	started bool
	time    float32
}

// TypeName implements engine.Serializable
func (a *OrbitAnimator) TypeName() string {
	return "OrbitAnimator"
}

// Serialize implements engine.Serializable
func (a *OrbitAnimator) Serialize() map[string]any {
	return map[string]any{
		"type":          "OrbitAnimator",
		"radius":        a.Radius,
		"speed":         a.Speed,
		"bob":           a.Bob,
		"phase":         a.Phase,
		"rotationSpeed": a.RotationSpeed,
	}
}

// Deserialize implements engine.Serializable
func (a *OrbitAnimator) Deserialize(data map[string]any) {
	if v, ok := data["radius"].(float64); ok {
		a.Radius = float32(v)
	}
	if v, ok := data["speed"].(float64); ok {
		a.Speed = float32(v)
	}
	if v, ok := data["bob"].(float64); ok {
		a.Bob = float32(v)
	}
	if v, ok := data["phase"].(float64); ok {
		a.Phase = float32(v)
	}
	if v, ok := data["rotationSpeed"].(float64); ok {
		a.RotationSpeed = float32(v)
	}
}

func (a *OrbitAnimator) Start() {
	if g := a.GetGameObject(); g != nil {
		a.origin = g.Transform.Position
		a.started = true
	}
}

func (a *OrbitAnimator) Update(deltaTime float32) {
	g := a.GetGameObject()
	if g == nil {
		return
	}
	if !a.started {
		a.Start()
	}

	a.time += deltaTime
	t := a.time*a.Speed + a.Phase
	g.Transform.Position = rl.Vector3Add(a.origin, rl.Vector3{
		X: math32.Cos(t) * a.Radius,
		Y: math32.Sin(t*2) * a.Bob,
		Z: math32.Sin(t) * a.Radius,
	})

	g.Transform.Rotation.Y = math32.Mod(g.Transform.Rotation.Y+a.RotationSpeed*deltaTime, 360)
}
