package rendering

import "testing"

func TestTexturePoolReuse(t *testing.T) {
	dev := newRecordingDevice()
	pool := NewTexturePool(dev)

	a := pool.GetTemporary(640, 360, 16, FormatRGB111110Float)
	if a.Width != 640 || a.Height != 360 || a.DepthBits != 16 || a.Format != FormatRGB111110Float {
		t.Fatalf("Unexpected texture %+v", a)
	}
	pool.ReleaseTemporary(a)

	b := pool.GetTemporary(640, 360, 16, FormatRGB111110Float)
	if b != a {
		t.Error("Released texture with the same key should be reused")
	}

	c := pool.GetTemporary(640, 360, 16, FormatRGBA8)
	if c == a {
		t.Error("Different format must not share a texture")
	}
	if len(dev.loaded) != 2 {
		t.Errorf("Expected 2 device textures, got %d", len(dev.loaded))
	}
	if pool.InUse() != 2 {
		t.Errorf("Expected 2 in use, got %d", pool.InUse())
	}
}

func TestTexturePoolClampsSize(t *testing.T) {
	pool := NewTexturePool(newRecordingDevice())
	rt := pool.GetTemporary(0, -4, 0, FormatRGBA8)
	if rt.Width != 1 || rt.Height != 1 {
		t.Errorf("Expected 1x1, got %dx%d", rt.Width, rt.Height)
	}
}

func TestTexturePoolReleaseUnknown(t *testing.T) {
	pool := NewTexturePool(newRecordingDevice())
	pool.ReleaseTemporary(nil)
	pool.ReleaseTemporary(&RenderTexture{Width: 4, Height: 4})
	if pool.Pooled() != 0 {
		t.Errorf("Unknown textures should not be pooled, got %d", pool.Pooled())
	}

	rt := pool.GetTemporary(8, 8, 0, FormatRGBA8)
	pool.ReleaseTemporary(rt)
	pool.ReleaseTemporary(rt)
	if pool.Pooled() != 1 {
		t.Errorf("Double release should pool once, got %d", pool.Pooled())
	}
}

func TestTexturePoolEvictsStale(t *testing.T) {
	dev := newRecordingDevice()
	pool := NewTexturePool(dev)

	rt := pool.GetTemporary(32, 32, 16, FormatRGBA8)
	pool.ReleaseTemporary(rt)

	for i := 0; i < StaleFrames; i++ {
		pool.EndFrame()
	}
	if pool.Pooled() != 1 {
		t.Fatalf("Texture evicted too early")
	}

	pool.EndFrame()
	if pool.Pooled() != 0 {
		t.Errorf("Expected stale texture evicted, %d pooled", pool.Pooled())
	}
	if len(dev.loaded) != 0 {
		t.Errorf("Expected device texture unloaded, %d loaded", len(dev.loaded))
	}
}

func TestTexturePoolFlush(t *testing.T) {
	dev := newRecordingDevice()
	pool := NewTexturePool(dev)

	pool.GetTemporary(16, 16, 0, FormatRGBA8)
	pool.ReleaseTemporary(pool.GetTemporary(32, 32, 0, FormatRGBA8))

	pool.Flush()
	if len(dev.loaded) != 0 || pool.InUse() != 0 || pool.Pooled() != 0 {
		t.Errorf("Flush should unload everything, loaded=%d inUse=%d pooled=%d", len(dev.loaded), pool.InUse(), pool.Pooled())
	}
}

func TestPropertyToID(t *testing.T) {
	left := PropertyToID("_LeftReflCameraTex")
	right := PropertyToID("_RightReflCameraTex")

	if left == right {
		t.Error("Different names should get different IDs")
	}
	if PropertyToID("_LeftReflCameraTex") != left {
		t.Error("Same name should map to the same ID")
	}
	if PropertyName(left) != "_LeftReflCameraTex" {
		t.Errorf("Expected name back, got %q", PropertyName(left))
	}
	if PropertyName(-1) != "" {
		t.Error("Unknown ID should have no name")
	}
}
