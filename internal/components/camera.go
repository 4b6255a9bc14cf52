package components

import (
	"planarmirror/internal/engine"
	"planarmirror/internal/rendering"
	"planarmirror/internal/xr"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

type Camera struct {
	engine.BaseComponent `copier:"-"`
	FOV                  float32
	Near                 float32
	Far                  float32
	Projection           rl.CameraProjection
	IsMain               bool // If true, this is the active game camera
	Type                 rendering.CameraType
	CullingMask          uint32
	Background           rl.Color
	StereoSeparation     float32
	Width                int32 // 0 = screen width
	Height               int32 // 0 = screen height
	Enabled              bool
	TargetTexture        *rendering.RenderTexture
	XR                   *xr.Settings

	worldToCamera    rl.Matrix
	hasWorldToCamera bool
	projection       rl.Matrix
	hasProjection    bool
}

func NewCamera() *Camera {
	return &Camera{
		FOV:              45.0,
		Near:             0.1,
		Far:              1000.0,
		Projection:       rl.CameraPerspective,
		Type:             rendering.CameraGame,
		CullingMask:      rendering.AllLayers,
		Background:       rl.RayWhite,
		StereoSeparation: xr.DefaultStereoSeparation,
		Enabled:          true,
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	data := map[string]any{
		"type":        "Camera",
		"fov":         c.FOV,
		"near":        c.Near,
		"far":         c.Far,
		"isMain":      c.IsMain,
		"cameraType":  c.Type.String(),
		"cullingMask": c.CullingMask,
	}
	if c.Width > 0 && c.Height > 0 {
		data["width"] = c.Width
		data["height"] = c.Height
	}
	return data
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	if f, ok := data["fov"].(float64); ok {
		c.FOV = float32(f)
	}
	if n, ok := data["near"].(float64); ok {
		c.Near = float32(n)
	}
	if f, ok := data["far"].(float64); ok {
		c.Far = float32(f)
	}
	if m, ok := data["isMain"].(bool); ok {
		c.IsMain = m
	}
	if t, ok := data["cameraType"].(string); ok {
		c.Type = parseCameraType(t)
	}
	if m, ok := data["cullingMask"].(float64); ok {
		c.CullingMask = uint32(m)
	}
	if w, ok := data["width"].(float64); ok {
		c.Width = int32(w)
	}
	if h, ok := data["height"].(float64); ok {
		c.Height = int32(h)
	}
}

func parseCameraType(s string) rendering.CameraType {
	for t := rendering.CameraGame; t <= rendering.CameraReflection; t++ {
		if t.String() == s {
			return t
		}
	}
	return rendering.CameraGame
}

// CopyFrom copies the settings of src, the way a freshly created helper
// camera clones the camera it serves. The GameObject binding and any matrix
// overrides of src are copied too; the target texture is shared.
func (c *Camera) CopyFrom(src *Camera) error {
	if src == nil {
		return nil
	}
	g := c.GetGameObject()
	if err := copier.Copy(c, src); err != nil {
		return err
	}
	c.SetGameObject(g)
	c.worldToCamera, c.hasWorldToCamera = src.worldToCamera, src.hasWorldToCamera
	c.projection, c.hasProjection = src.projection, src.hasProjection
	return nil
}

// SetWorldToCameraMatrix overrides the view derived from the transform.
func (c *Camera) SetWorldToCameraMatrix(m rl.Matrix) {
	c.worldToCamera = m
	c.hasWorldToCamera = true
}

// ResetWorldToCameraMatrix goes back to deriving the view from the transform.
func (c *Camera) ResetWorldToCameraMatrix() {
	c.hasWorldToCamera = false
}

// SetProjectionMatrix overrides the projection derived from FOV/Near/Far.
func (c *Camera) SetProjectionMatrix(m rl.Matrix) {
	c.projection = m
	c.hasProjection = true
}

func (c *Camera) ResetProjectionMatrix() {
	c.hasProjection = false
}

// WorldToCameraMatrix returns the view matrix: looking down -Z, OpenGL style.
func (c *Camera) WorldToCameraMatrix() rl.Matrix {
	if c.hasWorldToCamera {
		return c.worldToCamera
	}
	return rl.GetCameraMatrix(c.GetRaylibCamera())
}

// ProjectionMatrix returns the mono projection.
func (c *Camera) ProjectionMatrix() rl.Matrix {
	if c.hasProjection {
		return c.projection
	}
	aspect := c.Aspect()
	if c.Projection == rl.CameraOrthographic {
		halfH := c.FOV / 2.0
		halfW := halfH * aspect
		return rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
	}
	return rl.MatrixPerspective(c.FOV*rl.Deg2rad, aspect, c.Near, c.Far)
}

// StereoProjectionMatrix returns the projection for one eye, falling back
// to the mono projection when stereo is off.
func (c *Camera) StereoProjectionMatrix(eye xr.Eye) rl.Matrix {
	return c.XR.EyeProjection(eye, c.ProjectionMatrix())
}

// PixelWidth is the width of what the camera renders into.
func (c *Camera) PixelWidth() int32 {
	if c.TargetTexture != nil {
		return c.TargetTexture.Width
	}
	if c.Width > 0 {
		return c.Width
	}
	return int32(rl.GetScreenWidth())
}

// PixelHeight is the height of what the camera renders into.
func (c *Camera) PixelHeight() int32 {
	if c.TargetTexture != nil {
		return c.TargetTexture.Height
	}
	if c.Height > 0 {
		return c.Height
	}
	return int32(rl.GetScreenHeight())
}

// Aspect is width over height, 1 for an empty target.
func (c *Camera) Aspect() float32 {
	w, h := c.PixelWidth(), c.PixelHeight()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// Position returns the eye position in world space.
func (c *Camera) Position() rl.Vector3 {
	return c.GetRaylibCamera().Position
}

// RenderView implements rendering.Camera.
func (c *Camera) RenderView() rendering.View {
	name := ""
	if g := c.GetGameObject(); g != nil {
		name = g.Name
	}
	return rendering.View{
		Name:          name,
		Type:          c.Type,
		Position:      c.Position(),
		WorldToCamera: c.WorldToCameraMatrix(),
		Projection:    c.ProjectionMatrix(),
		CullingMask:   c.CullingMask,
		Background:    c.Background,
		Target:        c.TargetTexture,
		Stereo:        c.Type == rendering.CameraVR && c.XR.Active(),
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	// Get eye position from world position
	eyePos := g.WorldPosition()

	// Look for any LookProvider component on this object or parents
	var lookProvider engine.LookProvider
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			lookProvider = lp
			break
		}
	}

	// A camera on the same object as the controller sits at eye height;
	// a child camera already has its offset in the local position.
	if lookProvider != nil && g.Parent == nil {
		eyePos.Y += lookProvider.GetEyeHeight()
	}

	var target rl.Vector3
	if lookProvider != nil {
		x, y, z := lookProvider.GetLookDirection()
		target = rl.Vector3Add(eyePos, rl.Vector3{X: x, Y: y, Z: z})
	} else {
		// Default: look down the object's -Z axis
		rot := engine.Transform{Rotation: g.WorldRotation()}
		forward := rl.Vector3Transform(rl.Vector3{Z: -1}, rot.RotationMatrix())
		target = rl.Vector3Add(eyePos, forward)
	}

	up := rl.Vector3{X: 0, Y: 1, Z: 0}
	// Looking straight up or down needs another up vector.
	dir := rl.Vector3Normalize(rl.Vector3Subtract(target, eyePos))
	if math32.Abs(dir.Y) > 0.999 {
		up = rl.Vector3{Z: -1}
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     target,
		Up:         up,
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
