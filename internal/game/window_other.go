//go:build !darwin

package game

import rl "github.com/gen2brain/raylib-go/raylib"

func windowFlags(vsync bool) uint32 {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if vsync {
		flags |= rl.FlagVsyncHint
	}
	return flags
}
