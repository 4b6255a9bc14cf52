package components

import (
	"planarmirror/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("FlyController", func() engine.Serializable {
		return NewFlyController()
	})
}

// FlyInput is one frame of movement intent. Axes are in [-1,1].
type FlyInput struct {
	Look    rl.Vector2 // mouse delta in pixels
	Forward float32
	Right   float32
	Up      float32
	Fast    bool
}

// FlyController is a free-flying camera rig: no gravity, mouse look while the
// right button is held.
type FlyController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	EyeHeight float32
}

func NewFlyController() *FlyController {
	return &FlyController{
		Yaw:       -90.0,
		Pitch:     -20.0,
		MoveSpeed: 6.0,
		LookSpeed: 0.1,
	}
}

// TypeName implements engine.Serializable
func (f *FlyController) TypeName() string {
	return "FlyController"
}

// Serialize implements engine.Serializable
func (f *FlyController) Serialize() map[string]any {
	return map[string]any{
		"type":      "FlyController",
		"yaw":       f.Yaw,
		"pitch":     f.Pitch,
		"moveSpeed": f.MoveSpeed,
		"eyeHeight": f.EyeHeight,
	}
}

// Deserialize implements engine.Serializable
func (f *FlyController) Deserialize(data map[string]any) {
	if v, ok := data["yaw"].(float64); ok {
		f.Yaw = float32(v)
	}
	if v, ok := data["pitch"].(float64); ok {
		f.Pitch = rl.Clamp(float32(v), -89, 89)
	}
	if v, ok := data["moveSpeed"].(float64); ok {
		f.MoveSpeed = float32(v)
	}
	if v, ok := data["eyeHeight"].(float64); ok {
		f.EyeHeight = float32(v)
	}
}

func (f *FlyController) Update(deltaTime float32) {
	var in FlyInput
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		in.Look = rl.GetMouseDelta()
	}
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Right--
	}
	if rl.IsKeyDown(rl.KeyE) || rl.IsKeyDown(rl.KeySpace) {
		in.Up++
	}
	if rl.IsKeyDown(rl.KeyQ) || rl.IsKeyDown(rl.KeyLeftControl) {
		in.Up--
	}
	in.Fast = rl.IsKeyDown(rl.KeyLeftShift)
	f.Move(in, deltaTime)
}

// Move applies one frame of input to the rig's yaw, pitch and position.
func (f *FlyController) Move(in FlyInput, deltaTime float32) {
	f.Yaw += in.Look.X * f.LookSpeed
	f.Pitch = rl.Clamp(f.Pitch-in.Look.Y*f.LookSpeed, -89, 89)

	g := f.GetGameObject()
	if g == nil {
		return
	}

	look := f.lookVector()
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(look, rl.Vector3{Y: 1}))

	move := rl.Vector3Scale(look, in.Forward)
	move = rl.Vector3Add(move, rl.Vector3Scale(right, in.Right))
	move.Y += in.Up
	if rl.Vector3Length(move) > 1 {
		move = rl.Vector3Normalize(move)
	}

	speed := f.MoveSpeed
	if in.Fast {
		speed *= 3
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(move, speed*deltaTime))
}

func (f *FlyController) lookVector() rl.Vector3 {
	yaw := f.Yaw * rl.Deg2rad
	pitch := f.Pitch * rl.Deg2rad
	return rl.Vector3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}
}

// GetLookDirection implements engine.LookProvider
func (f *FlyController) GetLookDirection() (x, y, z float32) {
	v := f.lookVector()
	return v.X, v.Y, v.Z
}

// GetEyeHeight implements engine.LookProvider
func (f *FlyController) GetEyeHeight() float32 {
	return f.EyeHeight
}
