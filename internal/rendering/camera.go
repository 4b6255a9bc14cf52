// Package rendering is the engine's small render pipeline: it raises a
// per-camera event before each camera draws, renders cameras into screen or
// texture targets, pools temporary render textures and keeps the global
// shader textures materials sample from.
package rendering

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraType says what a camera is used for. Effects such as planar
// reflections only react to some types.
type CameraType int

const (
	CameraGame CameraType = iota
	CameraSceneView
	CameraVR
	CameraPreview
	CameraReflection
)

func (t CameraType) String() string {
	switch t {
	case CameraGame:
		return "Game"
	case CameraSceneView:
		return "SceneView"
	case CameraVR:
		return "VR"
	case CameraPreview:
		return "Preview"
	case CameraReflection:
		return "Reflection"
	default:
		return "Unknown"
	}
}

// AllLayers is a culling mask that renders everything.
const AllLayers uint32 = 0xFFFFFFFF

// View is everything the pipeline needs to draw one camera.
type View struct {
	Name          string
	Type          CameraType
	Position      rl.Vector3
	WorldToCamera rl.Matrix
	Projection    rl.Matrix
	CullingMask   uint32
	Background    rl.Color
	Target        *RenderTexture // nil renders to the screen
	InvertCulling bool
	// Stereo draws both eyes side by side into the target using the
	// pipeline's stereo config.
	Stereo bool
}

// Camera is anything the pipeline can render.
type Camera interface {
	RenderView() View
}

// Drawer draws the scene for a view. Implementations honor the view's
// culling mask.
type Drawer interface {
	Draw(view View)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(view View)

func (f DrawerFunc) Draw(view View) { f(view) }
