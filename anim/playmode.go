package anim

// PlayMode maps elapsed playback time to a frame index.
type PlayMode int

const (
	// Loop wraps around the clip forever.
	Loop PlayMode = iota
	// Normal plays once and holds the last frame.
	Normal
	// Reversed plays once from the last frame back to the first.
	Reversed
	// LoopReversed wraps forever, playing backwards.
	LoopReversed
)

func (m PlayMode) String() string {
	switch m {
	case Loop:
		return "loop"
	case Normal:
		return "normal"
	case Reversed:
		return "reversed"
	case LoopReversed:
		return "loop_reversed"
	}
	return "unknown"
}

// reversed reports whether frames are indexed from the end of the clip.
func (m PlayMode) reversed() bool {
	return m == Reversed || m == LoopReversed
}

// once reports whether playback finishes instead of wrapping.
func (m PlayMode) once() bool {
	return m == Normal || m == Reversed
}
