package rendering

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextureFormat is the color format of a render texture.
type TextureFormat int

const (
	FormatRGBA8 TextureFormat = iota
	// FormatDefaultHDR is 32-bit float RGBA.
	FormatDefaultHDR
	// FormatRGB111110Float is a packed float format on desktop GL. rlgl has
	// no R11G11B10 format, so the raylib device backs it with half floats.
	FormatRGB111110Float
)

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatDefaultHDR:
		return "DefaultHDR"
	case FormatRGB111110Float:
		return "RGB111110Float"
	default:
		return "Unknown"
	}
}

// RenderTexture is a color+depth target owned by a TexturePool.
type RenderTexture struct {
	Width     int32
	Height    int32
	DepthBits int32
	Format    TextureFormat
	Target    rl.RenderTexture2D

	lastUsed uint64
}

// Texture returns the color attachment for binding in shaders.
func (rt *RenderTexture) Texture() rl.Texture2D {
	if rt == nil {
		return rl.Texture2D{}
	}
	return rt.Target.Texture
}

type textureKey struct {
	width, height, depth int32
	format               TextureFormat
}

// StaleFrames is how many frames a released texture stays pooled before
// EndFrame unloads it.
const StaleFrames = 15

// TexturePool hands out temporary render textures keyed by resolution,
// depth and format. Released textures are reused by later requests with the
// same key.
type TexturePool struct {
	device Device
	free   map[textureKey][]*RenderTexture
	inUse  map[*RenderTexture]struct{}
	frame  uint64
}

func NewTexturePool(device Device) *TexturePool {
	return &TexturePool{
		device: device,
		free:   make(map[textureKey][]*RenderTexture),
		inUse:  make(map[*RenderTexture]struct{}),
	}
}

// GetTemporary returns a texture matching the request, reusing a released
// one when possible. Sizes below one pixel are raised to one.
func (p *TexturePool) GetTemporary(width, height, depthBits int32, format TextureFormat) *RenderTexture {
	key := textureKey{width: max(width, 1), height: max(height, 1), depth: depthBits, format: format}

	var rt *RenderTexture
	if list := p.free[key]; len(list) > 0 {
		rt = list[len(list)-1]
		p.free[key] = list[:len(list)-1]
	} else {
		rt = &RenderTexture{
			Width:     key.width,
			Height:    key.height,
			DepthBits: key.depth,
			Format:    key.format,
			Target:    p.device.LoadRenderTexture(key.width, key.height, key.depth, key.format),
		}
	}
	rt.lastUsed = p.frame
	p.inUse[rt] = struct{}{}
	return rt
}

// ReleaseTemporary returns rt to the pool. Releasing a texture the pool does
// not hold is a no-op.
func (p *TexturePool) ReleaseTemporary(rt *RenderTexture) {
	if rt == nil {
		return
	}
	if _, ok := p.inUse[rt]; !ok {
		return
	}
	delete(p.inUse, rt)
	rt.lastUsed = p.frame
	key := textureKey{width: rt.Width, height: rt.Height, depth: rt.DepthBits, format: rt.Format}
	p.free[key] = append(p.free[key], rt)
}

// EndFrame advances the frame counter and unloads pooled textures nobody
// asked for in StaleFrames frames.
func (p *TexturePool) EndFrame() {
	p.frame++
	for key, list := range p.free {
		kept := list[:0]
		for _, rt := range list {
			if p.frame-rt.lastUsed > StaleFrames {
				p.device.UnloadRenderTexture(rt.Target)
				continue
			}
			kept = append(kept, rt)
		}
		if len(kept) == 0 {
			delete(p.free, key)
		} else {
			p.free[key] = kept
		}
	}
}

// InUse returns how many textures are checked out.
func (p *TexturePool) InUse() int {
	return len(p.inUse)
}

// Pooled returns how many released textures are waiting for reuse.
func (p *TexturePool) Pooled() int {
	n := 0
	for _, list := range p.free {
		n += len(list)
	}
	return n
}

// Flush unloads every texture, checked out or not.
func (p *TexturePool) Flush() {
	for _, list := range p.free {
		for _, rt := range list {
			p.device.UnloadRenderTexture(rt.Target)
		}
	}
	for rt := range p.inUse {
		p.device.UnloadRenderTexture(rt.Target)
	}
	p.free = make(map[textureKey][]*RenderTexture)
	p.inUse = make(map[*RenderTexture]struct{})
}
