package rendering

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// recordingDevice logs device calls instead of touching the GPU.
type recordingDevice struct {
	nextID   uint32
	loaded   map[uint32]bool
	calls    []string
	frontCul bool
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{loaded: make(map[uint32]bool)}
}

func (d *recordingDevice) LoadRenderTexture(width, height, depthBits int32, format TextureFormat) rl.RenderTexture2D {
	d.nextID++
	d.loaded[d.nextID] = true
	d.calls = append(d.calls, fmt.Sprintf("load %dx%d/%d %s", width, height, depthBits, format))
	return rl.RenderTexture2D{ID: d.nextID, Texture: rl.Texture2D{ID: d.nextID, Width: width, Height: height}}
}

func (d *recordingDevice) UnloadRenderTexture(target rl.RenderTexture2D) {
	delete(d.loaded, target.ID)
	d.calls = append(d.calls, fmt.Sprintf("unload %d", target.ID))
}

func (d *recordingDevice) BeginView(target *rl.RenderTexture2D, view View) {
	if target == nil {
		d.calls = append(d.calls, "begin screen")
		return
	}
	d.calls = append(d.calls, fmt.Sprintf("begin %d", target.ID))
}

func (d *recordingDevice) EndView(target *rl.RenderTexture2D) {
	d.calls = append(d.calls, "end")
}

func (d *recordingDevice) SetFrontFaceCulling(front bool) {
	d.frontCul = front
	d.calls = append(d.calls, fmt.Sprintf("cull front=%v", front))
}

type staticCamera struct {
	view View
}

func (c *staticCamera) RenderView() View { return c.view }
