package rendering

import (
	"reflect"
	"testing"
)

func TestPipelineRaisesEventBeforeDrawing(t *testing.T) {
	dev := newRecordingDevice()
	var order []string

	p := NewPipeline(dev, DrawerFunc(func(v View) {
		order = append(order, "draw "+v.Name)
	}))
	p.BeginCameraRendering.AddListener(func(ev CameraRenderEvent) {
		order = append(order, "event "+ev.Camera.RenderView().Name)
		if ev.Context.Pipeline() != p {
			t.Error("Context should point back to the pipeline")
		}
	})

	p.Render(&staticCamera{View{Name: "main"}}, nil, &staticCamera{View{Name: "side"}})

	want := []string{"event main", "draw main", "event side", "draw side"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Expected %v, got %v", want, order)
	}
}

func TestRenderSingleCameraIntoTarget(t *testing.T) {
	dev := newRecordingDevice()
	p := NewPipeline(dev, nil)
	rt := p.Textures.GetTemporary(64, 32, 16, FormatRGBA8)

	p.SetInvertCulling(true)
	p.RenderSingleCamera(&Context{pipeline: p}, &staticCamera{View{Target: rt}})
	p.SetInvertCulling(false)

	want := []string{
		"load 64x32/16 RGBA8",
		"begin 1",
		"cull front=true",
		"cull front=false",
		"end",
	}
	if !reflect.DeepEqual(dev.calls, want) {
		t.Errorf("Expected %v, got %v", want, dev.calls)
	}
}

func TestRenderSingleCameraPassesInvertCulling(t *testing.T) {
	var seen []bool
	p := NewPipeline(newRecordingDevice(), DrawerFunc(func(v View) {
		seen = append(seen, v.InvertCulling)
	}))

	cam := &staticCamera{}
	p.RenderSingleCamera(nil, cam)
	p.SetInvertCulling(true)
	p.RenderSingleCamera(nil, cam)

	if !reflect.DeepEqual(seen, []bool{false, true}) {
		t.Errorf("Expected [false true], got %v", seen)
	}
}

func TestRenderNestingIsBounded(t *testing.T) {
	p := NewPipeline(newRecordingDevice(), nil)
	draws := 0
	var cam *staticCamera
	p.SetDrawer(DrawerFunc(func(View) {
		draws++
		p.RenderSingleCamera(nil, cam)
	}))
	cam = &staticCamera{}

	p.RenderSingleCamera(nil, cam)
	if draws != maxNesting {
		t.Errorf("Expected %d nested draws, got %d", maxNesting, draws)
	}
}

func TestGlobalTextures(t *testing.T) {
	p := NewPipeline(newRecordingDevice(), nil)
	id := PropertyToID("_TestGlobalTex")
	rt := p.Textures.GetTemporary(4, 4, 0, FormatRGBA8)
	other := &RenderTexture{}

	p.SetGlobalTexture(id, rt)
	if p.GlobalTexture(id) != rt {
		t.Fatal("GlobalTexture should return the bound texture")
	}

	p.ClearGlobalTexture(id, other)
	if p.GlobalTexture(id) != rt {
		t.Error("Clearing with a different texture should keep the binding")
	}

	p.ClearGlobalTexture(id, rt)
	if p.GlobalTexture(id) != nil {
		t.Error("Binding should be cleared")
	}
}

func TestPipelineEndFrame(t *testing.T) {
	p := NewPipeline(newRecordingDevice(), nil)
	p.EndFrame()
	if p.Frame() != 1 {
		t.Errorf("Expected frame 1, got %d", p.Frame())
	}
}
