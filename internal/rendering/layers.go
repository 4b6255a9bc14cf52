package rendering

// Layer indices used by the built-in components. Culling masks have bit i
// set when layer i is drawn.
const (
	LayerDefault = 0
	LayerMirror  = 4
)

// LayerMask builds a culling mask with the given layers set.
func LayerMask(layers ...int) uint32 {
	var mask uint32
	for _, l := range layers {
		if l >= 0 && l < 32 {
			mask |= 1 << uint(l)
		}
	}
	return mask
}

// InMask reports whether layer is drawn under mask.
func InMask(mask uint32, layer int) bool {
	if layer < 0 || layer >= 32 {
		return false
	}
	return mask&(1<<uint(layer)) != 0
}
