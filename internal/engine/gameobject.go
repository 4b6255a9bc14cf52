package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// RotationMatrix returns the rotation of the transform, applying X then Y then Z.
func (t Transform) RotationMatrix() rl.Matrix {
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// Forward returns the local +Z axis after rotation.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{Z: 1}, t.RotationMatrix()))
}

// Up returns the local +Y axis after rotation.
func (t Transform) Up() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{Y: 1}, t.RotationMatrix()))
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Hidden     bool // not saved, not listed; used for engine-owned helpers
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	// Late additions to a running object still get their lifecycle calls.
	if g.started {
		c.Start()
		if e, ok := c.(Enabler); ok && g.Active {
			e.OnEnable()
		}
	}
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent returns the first component implementing interface T.
func FindComponent[T any](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	if g.Active {
		g.notifyEnabled(true)
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// SetActive toggles the object and fires OnEnable/OnDisable on its components.
func (g *GameObject) SetActive(active bool) {
	if g.Active == active {
		return
	}
	g.Active = active
	if g.started && !g.destroyed {
		g.notifyEnabled(active)
	}
}

// Destroy disables the object, fires OnDestroy on its components and on all
// children. Calling it twice is a no-op.
func (g *GameObject) Destroy() {
	if g.destroyed {
		return
	}
	for _, child := range g.Children {
		child.Destroy()
	}
	if g.started && g.Active {
		g.notifyEnabled(false)
	}
	g.Active = false
	g.destroyed = true
	for _, c := range g.components {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
}

// Destroyed reports whether Destroy has been called.
func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

func (g *GameObject) notifyEnabled(enabled bool) {
	for _, c := range g.components {
		e, ok := c.(Enabler)
		if !ok {
			continue
		}
		if enabled {
			e.OnEnable()
		} else {
			e.OnDisable()
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	parentRot := Transform{Rotation: g.Parent.WorldRotation()}
	rotated := rl.Vector3Transform(scaled, parentRot.RotationMatrix())
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// Forward returns the world-space forward (+Z) axis of the object.
func (g *GameObject) Forward() rl.Vector3 {
	return Transform{Rotation: g.WorldRotation()}.Forward()
}
