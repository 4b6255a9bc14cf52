package components

import (
	"log"

	"planarmirror/internal/engine"
	"planarmirror/internal/mirror"
	"planarmirror/internal/rendering"
	"planarmirror/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("PlanarReflection", func() engine.Serializable {
		return NewPlanarReflection(nil)
	})
}

// Shader properties the reflection textures are published under.
var (
	LeftReflectionProperty  = rendering.PropertyToID("_LeftReflCameraTex")
	RightReflectionProperty = rendering.PropertyToID("_RightReflCameraTex")
)

const (
	reflectionDepthBits = 16
	reflectionFormat    = rendering.FormatRGB111110Float
)

// PlanarReflection renders the scene mirrored across a plane into one
// texture per eye, every time an eligible camera is about to render.
//
// The mirror plane passes through this object's position and faces along
// the forward axis of Normal. Helper cameras and textures are created on
// first use and released when the component is disabled or destroyed.
type PlanarReflection struct {
	engine.BaseComponent
	RenderMask      uint32
	Normal          engine.GameObjectRef
	ClipPlaneOffset float32
	Scale           float32 // fraction of the source resolution, [0,1]

	pipeline     *rendering.Pipeline
	listener     engine.ListenerID
	enabled      bool
	leftCamera   *Camera
	rightCamera  *Camera
	leftTexture  *rendering.RenderTexture
	rightTexture *rendering.RenderTexture
}

func NewPlanarReflection(pipeline *rendering.Pipeline) *PlanarReflection {
	return &PlanarReflection{
		RenderMask: rendering.AllLayers &^ rendering.LayerMask(rendering.LayerMirror),
		Scale:      1,
		pipeline:   pipeline,
	}
}

// TypeName implements engine.Serializable
func (p *PlanarReflection) TypeName() string {
	return "PlanarReflection"
}

// Serialize implements engine.Serializable
func (p *PlanarReflection) Serialize() map[string]any {
	return map[string]any{
		"type":            "PlanarReflection",
		"renderMask":      p.RenderMask,
		"normal":          p.Normal.Name,
		"clipPlaneOffset": p.ClipPlaneOffset,
		"scale":           p.Scale,
	}
}

// Deserialize implements engine.Serializable
func (p *PlanarReflection) Deserialize(data map[string]any) {
	if m, ok := data["renderMask"].(float64); ok {
		p.RenderMask = uint32(m)
	}
	if n, ok := data["normal"].(string); ok {
		p.Normal = engine.GameObjectRef{Name: n}
	}
	if o, ok := data["clipPlaneOffset"].(float64); ok {
		p.ClipPlaneOffset = float32(o)
	}
	if s, ok := data["scale"].(float64); ok {
		p.SetScale(float32(s))
	}
}

// SetScale sets the resolution scale, clamped to [0,1].
func (p *PlanarReflection) SetScale(s float32) {
	p.Scale = rl.Clamp(s, 0, 1)
}

// SetPipeline attaches the component to the pipeline whose cameras it
// reflects. Switching pipelines while enabled moves the subscription.
func (p *PlanarReflection) SetPipeline(pipeline *rendering.Pipeline) {
	if p.pipeline == pipeline {
		return
	}
	wasEnabled := p.enabled
	if wasEnabled {
		p.CleanUp()
	}
	p.pipeline = pipeline
	if wasEnabled {
		p.OnEnable()
	}
}

func (p *PlanarReflection) OnEnable() {
	p.enabled = true
	if p.pipeline == nil || p.listener != 0 {
		return
	}
	p.listener = p.pipeline.BeginCameraRendering.AddListener(p.executePlanarReflections)
}

func (p *PlanarReflection) OnDisable() {
	p.CleanUp()
}

func (p *PlanarReflection) OnDestroy() {
	p.CleanUp()
}

// CleanUp unsubscribes from the pipeline and releases the helper cameras
// and textures. Safe to call repeatedly.
func (p *PlanarReflection) CleanUp() {
	p.enabled = false
	if p.pipeline != nil && p.listener != 0 {
		p.pipeline.BeginCameraRendering.RemoveListener(p.listener)
	}
	p.listener = 0

	p.leftCamera = p.destroyCamera(p.leftCamera)
	p.rightCamera = p.destroyCamera(p.rightCamera)

	p.leftTexture = p.releaseTexture(p.leftTexture, LeftReflectionProperty)
	p.rightTexture = p.releaseTexture(p.rightTexture, RightReflectionProperty)
}

func (p *PlanarReflection) destroyCamera(cam *Camera) *Camera {
	if cam == nil {
		return nil
	}
	cam.TargetTexture = nil
	if g := cam.GetGameObject(); g != nil {
		g.Destroy()
	}
	return nil
}

func (p *PlanarReflection) releaseTexture(rt *rendering.RenderTexture, property int) *rendering.RenderTexture {
	if rt == nil || p.pipeline == nil {
		return nil
	}
	p.pipeline.ClearGlobalTexture(property, rt)
	p.pipeline.Textures.ReleaseTemporary(rt)
	return nil
}

// LeftCamera returns the helper camera for the left (or only) eye, nil
// before the first reflection.
func (p *PlanarReflection) LeftCamera() *Camera { return p.leftCamera }

// RightCamera returns the helper camera for the right eye, nil unless
// stereo rendering has run.
func (p *PlanarReflection) RightCamera() *Camera { return p.rightCamera }

func (p *PlanarReflection) executePlanarReflections(ev rendering.CameraRenderEvent) {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	normal := p.Normal.Get(g.Scene)
	if normal == nil {
		return
	}
	cam, ok := ev.Camera.(*Camera)
	if !ok || cam == nil {
		return
	}

	switch cam.Type {
	case rendering.CameraGame, rendering.CameraSceneView, rendering.CameraVR:
	default:
		return
	}

	if p.leftCamera == nil {
		p.leftCamera = p.createCamera(cam)
	}
	p.leftTexture = p.reflectionTexture(cam, p.leftCamera, p.leftTexture, LeftReflectionProperty)

	if p.pipeline.XR.Active() {
		if p.rightCamera == nil {
			p.rightCamera = p.createCamera(cam)
		}
		p.rightTexture = p.reflectionTexture(cam, p.rightCamera, p.rightTexture, RightReflectionProperty)
		p.vrPlanarReflections(ev.Context, cam, normal)
	} else {
		p.regularPlanarReflections(ev.Context, cam, normal)
	}
}

func (p *PlanarReflection) vrPlanarReflections(ctx *rendering.Context, cam *Camera, normal *engine.GameObject) {
	if p.leftCamera == nil || p.rightCamera == nil {
		return
	}

	p.SetupReflectionCamera(p.leftCamera, cam, normal, xr.EyeLeft)
	p.SetupReflectionCamera(p.rightCamera, cam, normal, xr.EyeRight)

	p.pipeline.SetInvertCulling(true)
	p.pipeline.RenderSingleCamera(ctx, p.leftCamera)
	p.pipeline.RenderSingleCamera(ctx, p.rightCamera)
	p.pipeline.SetInvertCulling(false)

	p.pipeline.SetGlobalTexture(LeftReflectionProperty, p.leftCamera.TargetTexture)
	p.pipeline.SetGlobalTexture(RightReflectionProperty, p.rightCamera.TargetTexture)
}

func (p *PlanarReflection) regularPlanarReflections(ctx *rendering.Context, cam *Camera, normal *engine.GameObject) {
	if p.leftCamera == nil {
		return
	}

	p.SetupReflectionCamera(p.leftCamera, cam, normal, xr.EyeLeft)

	p.pipeline.SetInvertCulling(true)
	p.pipeline.RenderSingleCamera(ctx, p.leftCamera)
	p.pipeline.SetInvertCulling(false)

	p.pipeline.SetGlobalTexture(LeftReflectionProperty, p.leftCamera.TargetTexture)
}

// ReflectionPlane returns the mirror plane for this frame, using the
// forward axis of normal.
func (p *PlanarReflection) ReflectionPlane(normal *engine.GameObject) mirror.Plane {
	pos := rl.Vector3{}
	if g := p.GetGameObject(); g != nil {
		pos = g.WorldPosition()
	}
	return mirror.PlaneFromPoint(normal.Forward(), pos, p.ClipPlaneOffset)
}

// SetupReflectionCamera points reflectionCam at the mirror image of what
// renderingCam sees. With stereo on, eye picks the projection and the
// horizontal eye shift; otherwise eye is ignored. The projection is copied
// as is, without oblique near-plane clipping.
func (p *PlanarReflection) SetupReflectionCamera(reflectionCam, renderingCam *Camera, normal *engine.GameObject, eye xr.Eye) {
	reflectionMatrix := mirror.ReflectionMatrix(p.ReflectionPlane(normal))
	view := mirror.ReflectedView(renderingCam.WorldToCameraMatrix(), reflectionMatrix)

	var projection rl.Matrix
	if p.pipeline != nil && p.pipeline.XR.Active() {
		eyeSeparation := renderingCam.StereoSeparation * 2
		view = mirror.ApplyEyeOffset(view, eye, eyeSeparation)
		projection = renderingCam.StereoProjectionMatrix(eye)
	} else {
		projection = renderingCam.ProjectionMatrix()
	}

	reflectionCam.SetWorldToCameraMatrix(view)
	reflectionCam.SetProjectionMatrix(projection)

	// Keep the helper object at the mirrored eye so lighting sees the right
	// view position.
	if g := reflectionCam.GetGameObject(); g != nil {
		g.Transform.Position = rl.Vector3Transform(renderingCam.Position(), reflectionMatrix)
	}
}

func (p *PlanarReflection) createCamera(source *Camera) *Camera {
	g := engine.NewGameObject("PlanarReflectionCamera")
	g.Hidden = true

	cam := NewCamera()
	g.AddComponent(cam)
	if err := cam.CopyFrom(source); err != nil {
		log.Printf("PlanarReflection: copy camera %q: %v", source.RenderView().Name, err)
	}
	cam.ResetWorldToCameraMatrix()
	cam.ResetProjectionMatrix()
	cam.CullingMask = p.RenderMask
	cam.Enabled = false
	cam.IsMain = false
	cam.Type = rendering.CameraReflection
	return cam
}

// reflectionTexture makes sure dst renders into a texture sized for src at
// the current scale, reusing current when its size still matches. In stereo
// each eye covers half of src's width.
func (p *PlanarReflection) reflectionTexture(src, dst *Camera, current *rendering.RenderTexture, property int) *rendering.RenderTexture {
	renderScale := p.pipeline.RenderScale
	scale := rl.Clamp(p.Scale, 0, 1)
	srcWidth := src.PixelWidth()
	if p.pipeline.XR.Active() {
		srcWidth /= 2
	}
	width := max(int32(float32(srcWidth)*scale*renderScale), 1)
	height := max(int32(float32(src.PixelHeight())*scale*renderScale), 1)

	if current != nil && current.Width == width && current.Height == height {
		dst.TargetTexture = current
		return current
	}
	p.releaseTexture(current, property)

	rt := p.pipeline.Textures.GetTemporary(width, height, reflectionDepthBits, reflectionFormat)
	dst.TargetTexture = rt
	return rt
}
