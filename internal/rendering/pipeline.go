package rendering

import (
	"planarmirror/internal/engine"
	"planarmirror/internal/xr"
)

// Context is handed to BeginCameraRendering listeners. It identifies the
// frame being rendered and lets listeners render extra cameras into it.
type Context struct {
	Frame    uint64
	pipeline *Pipeline
}

// Pipeline returns the pipeline driving this context.
func (c *Context) Pipeline() *Pipeline {
	return c.pipeline
}

// CameraRenderEvent is raised once per camera, before it draws.
type CameraRenderEvent struct {
	Context *Context
	Camera  Camera
}

// Pipeline renders cameras. It is driven from the main loop and is not safe
// for concurrent use.
type Pipeline struct {
	BeginCameraRendering engine.EventWithArg[CameraRenderEvent]

	// RenderScale multiplies the resolution of intermediate targets.
	RenderScale float32
	XR          *xr.Settings
	Textures    *TexturePool

	device        Device
	drawer        Drawer
	globals       map[int]*RenderTexture
	invertCulling bool
	frame         uint64
	depth         int
}

// maxNesting bounds cameras rendered from inside BeginCameraRendering
// listeners that themselves raise the event.
const maxNesting = 4

func NewPipeline(device Device, drawer Drawer) *Pipeline {
	return &Pipeline{
		RenderScale: 1,
		XR:          &xr.Settings{},
		Textures:    NewTexturePool(device),
		device:      device,
		drawer:      drawer,
		globals:     make(map[int]*RenderTexture),
	}
}

// SetDrawer replaces the scene drawer, e.g. after loading a new scene.
func (p *Pipeline) SetDrawer(d Drawer) {
	p.drawer = d
}

// Render raises BeginCameraRendering for each camera and then draws it.
// Cameras are drawn in order.
func (p *Pipeline) Render(cameras ...Camera) {
	ctx := &Context{Frame: p.frame, pipeline: p}
	for _, cam := range cameras {
		if cam == nil {
			continue
		}
		p.BeginCameraRendering.Invoke(CameraRenderEvent{Context: ctx, Camera: cam})
		p.RenderSingleCamera(ctx, cam)
	}
}

// EndFrame finishes the frame and lets the texture pool evict stale targets.
func (p *Pipeline) EndFrame() {
	p.frame++
	p.Textures.EndFrame()
}

// Frame returns the index of the frame being rendered.
func (p *Pipeline) Frame() uint64 {
	return p.frame
}

// RenderSingleCamera draws cam immediately into its target without raising
// BeginCameraRendering.
func (p *Pipeline) RenderSingleCamera(ctx *Context, cam Camera) {
	if cam == nil || p.depth >= maxNesting {
		return
	}
	p.depth++
	defer func() { p.depth-- }()

	view := cam.RenderView()
	view.InvertCulling = p.invertCulling

	target := view.Target
	if target != nil {
		p.device.BeginView(&target.Target, view)
		target.lastUsed = p.frame
	} else {
		p.device.BeginView(nil, view)
	}

	if p.invertCulling {
		p.device.SetFrontFaceCulling(true)
	}
	if p.drawer != nil {
		p.drawer.Draw(view)
	}
	if p.invertCulling {
		p.device.SetFrontFaceCulling(false)
	}

	if target != nil {
		p.device.EndView(&target.Target)
	} else {
		p.device.EndView(nil)
	}
}

// SetInvertCulling flips face culling for cameras rendered until it is
// turned off again.
func (p *Pipeline) SetInvertCulling(invert bool) {
	p.invertCulling = invert
}

// InvertCulling reports the current culling mode.
func (p *Pipeline) InvertCulling() bool {
	return p.invertCulling
}

// SetGlobalTexture exposes rt to every material under property id.
// Passing nil removes the binding.
func (p *Pipeline) SetGlobalTexture(id int, rt *RenderTexture) {
	if rt == nil {
		delete(p.globals, id)
		return
	}
	p.globals[id] = rt
}

// GlobalTexture returns the texture bound under id, or nil.
func (p *Pipeline) GlobalTexture(id int) *RenderTexture {
	return p.globals[id]
}

// ClearGlobalTexture drops the binding for id only if it still points to rt.
func (p *Pipeline) ClearGlobalTexture(id int, rt *RenderTexture) {
	if p.globals[id] == rt {
		delete(p.globals, id)
	}
}

// Unload releases every pooled texture.
func (p *Pipeline) Unload() {
	p.globals = make(map[int]*RenderTexture)
	p.Textures.Flush()
}
