//go:build darwin

package game

import rl "github.com/gen2brain/raylib-go/raylib"

// Retina displays need the high-DPI framebuffer or the mirror samples a
// quarter of the screen.
func windowFlags(vsync bool) uint32 {
	flags := uint32(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	if vsync {
		flags |= rl.FlagVsyncHint
	}
	return flags
}
