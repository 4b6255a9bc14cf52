// Package xr holds stereo rendering settings: whether stereo is on, and the
// per-eye projections and eye distance derived from a head-mounted display
// description.
package xr

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Eye selects which view of a stereo pair is rendered.
type Eye int

const (
	EyeLeft Eye = iota
	EyeRight
	EyeMono
)

func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "left"
	case EyeRight:
		return "right"
	default:
		return "mono"
	}
}

// DefaultStereoSeparation is the per-camera half interocular distance used
// when no device is configured, in world units (meters).
const DefaultStereoSeparation float32 = 0.022

// Settings is the stereo state shared by the pipeline and its cameras.
type Settings struct {
	Enabled bool

	// Projection is indexed by EyeLeft / EyeRight.
	Projection [2]rl.Matrix

	InterpupillaryDistance float32

	config rl.VrStereoConfig
	loaded bool
}

// DefaultDevice returns an Oculus Rift CV1 style description, the same
// parameters raylib's stereo example uses.
func DefaultDevice() rl.VrDeviceInfo {
	return rl.VrDeviceInfo{
		HResolution:            2160,
		VResolution:            1200,
		HScreenSize:            0.133793,
		VScreenSize:            0.0669,
		EyeToScreenDistance:    0.041,
		LensSeparationDistance: 0.07,
		InterpupillaryDistance: 0.07,
		LensDistortionValues:   [4]float32{1.0, 0.22, 0.24, 0.0},
		ChromaAbCorrection:     [4]float32{0.996, -0.004, 1.014, 0.0},
	}
}

// FromDevice computes the stereo config for device. Stereo starts disabled.
// Must be called after the window is created.
func FromDevice(device rl.VrDeviceInfo) *Settings {
	cfg := rl.LoadVrStereoConfig(device)
	return &Settings{
		Projection:             cfg.Projection,
		InterpupillaryDistance: device.InterpupillaryDistance,
		config:                 cfg,
		loaded:                 true,
	}
}

// StereoConfig returns the raylib config for distortion rendering, if one
// was loaded through FromDevice.
func (s *Settings) StereoConfig() (rl.VrStereoConfig, bool) {
	if s == nil {
		return rl.VrStereoConfig{}, false
	}
	return s.config, s.loaded
}

// Active reports whether stereo rendering is on. A nil Settings is mono.
func (s *Settings) Active() bool {
	return s != nil && s.Enabled
}

// StereoSeparation returns half the interocular distance, or the default
// when none is configured.
func (s *Settings) StereoSeparation() float32 {
	if s == nil || s.InterpupillaryDistance <= 0 {
		return DefaultStereoSeparation
	}
	return s.InterpupillaryDistance / 2
}

// EyeProjection returns the projection for eye, or fallback when stereo is
// off or eye is mono.
func (s *Settings) EyeProjection(eye Eye, fallback rl.Matrix) rl.Matrix {
	if !s.Active() || eye == EyeMono {
		return fallback
	}
	return s.Projection[eye]
}

// Unload releases the raylib stereo config.
func (s *Settings) Unload() {
	if s == nil || !s.loaded {
		return
	}
	rl.UnloadVrStereoConfig(s.config)
	s.loaded = false
}
