package rendering

import (
	"planarmirror/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Device is the slice of the graphics API the pipeline uses. RaylibDevice
// is the real one; tests substitute a recorder.
type Device interface {
	LoadRenderTexture(width, height, depthBits int32, format TextureFormat) rl.RenderTexture2D
	UnloadRenderTexture(target rl.RenderTexture2D)
	// BeginView starts drawing view into target (nil for the screen) and
	// clears it.
	BeginView(target *rl.RenderTexture2D, view View)
	EndView(target *rl.RenderTexture2D)
	// SetFrontFaceCulling culls front faces instead of back faces. Mirrored
	// views flip triangle winding, so they need it.
	SetFrontFaceCulling(front bool)
}

// RaylibDevice draws through raylib/rlgl. It must only be used after the
// window has been created.
type RaylibDevice struct {
	// XR supplies the stereo config for views marked Stereo.
	XR *xr.Settings

	stereo bool
}

func (d *RaylibDevice) LoadRenderTexture(width, height, depthBits int32, format TextureFormat) rl.RenderTexture2D {
	target := rl.RenderTexture2D{}

	target.ID = rl.LoadFramebuffer()
	if target.ID == 0 {
		return target
	}
	rl.EnableFramebuffer(target.ID)

	pixelFormat := pixelFormatFor(format)
	target.Texture.ID = rl.LoadTexture(nil, width, height, int32(pixelFormat), 1)
	target.Texture.Width = width
	target.Texture.Height = height
	target.Texture.Format = pixelFormat
	target.Texture.Mipmaps = 1
	rl.FramebufferAttach(target.ID, target.Texture.ID, rl.AttachmentColorChannel0, rl.AttachmentTexture2d, 0)

	if depthBits > 0 {
		target.Depth.ID = rl.LoadTextureDepth(width, height, true)
		target.Depth.Width = width
		target.Depth.Height = height
		target.Depth.Format = 19
		target.Depth.Mipmaps = 1
		rl.FramebufferAttach(target.ID, target.Depth.ID, rl.AttachmentDepth, rl.AttachmentRenderbuffer, 0)
	}

	rl.DisableFramebuffer()
	return target
}

func (d *RaylibDevice) UnloadRenderTexture(target rl.RenderTexture2D) {
	rl.UnloadRenderTexture(target)
}

func (d *RaylibDevice) BeginView(target *rl.RenderTexture2D, v View) {
	if target != nil {
		rl.BeginTextureMode(*target)
	}
	rl.ClearBackground(v.Background)

	// In stereo mode rlgl draws every batch twice, once per half of the
	// target, with the per-eye projection and view offset of the config.
	if cfg, ok := d.XR.StereoConfig(); v.Stereo && ok {
		rl.BeginVrStereoMode(cfg)
		d.stereo = true
	}

	// BeginMode3D pushes the matrix stack and enables depth; the camera
	// matrices are then replaced wholesale.
	rl.BeginMode3D(rl.Camera3D{Up: rl.Vector3{Y: 1}, Fovy: 45, Projection: rl.CameraPerspective})
	rl.SetMatrixModelview(v.WorldToCamera)
	rl.SetMatrixProjection(v.Projection)
}

func (d *RaylibDevice) EndView(target *rl.RenderTexture2D) {
	rl.EndMode3D()
	if d.stereo {
		rl.EndVrStereoMode()
		d.stereo = false
	}
	if target != nil {
		rl.EndTextureMode()
		rl.Viewport(0, 0, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))
	}
}

func (d *RaylibDevice) SetFrontFaceCulling(front bool) {
	if front {
		rl.SetCullFace(0)
	} else {
		rl.SetCullFace(1)
	}
}

func pixelFormatFor(format TextureFormat) rl.PixelFormat {
	switch format {
	case FormatDefaultHDR:
		return rl.UncompressedR32g32b32a32
	case FormatRGB111110Float:
		return rl.UncompressedR16g16b16
	default:
		return rl.UncompressedR8g8b8a8
	}
}
