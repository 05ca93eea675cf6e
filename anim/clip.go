package anim

import "github.com/ajroz/tilestage/atlas"

// Clip is an immutable ordered frame sequence with a fixed per-frame
// duration. Clips are shared read-only between every entity playing them;
// all mutable playback state lives on State.
type Clip struct {
	frames        []*atlas.Region
	frameDuration float64
}

// NewClip creates a clip from ordered frames. frameDuration must be > 0.
func NewClip(frames []*atlas.Region, frameDuration float64) *Clip {
	fs := make([]*atlas.Region, len(frames))
	copy(fs, frames)
	return &Clip{frames: fs, frameDuration: frameDuration}
}

// Len returns the frame count.
func (c *Clip) Len() int {
	if c == nil {
		return 0
	}
	return len(c.frames)
}

// Duration returns the total clip duration in seconds.
func (c *Clip) Duration() float64 {
	if c == nil {
		return 0
	}
	return float64(len(c.frames)) * c.frameDuration
}

// FrameDuration returns the fixed per-frame duration in seconds.
func (c *Clip) FrameDuration() float64 {
	if c == nil {
		return 0
	}
	return c.frameDuration
}

// Frame returns the frame at index i, or nil when out of range.
func (c *Clip) Frame(i int) *atlas.Region {
	if c == nil || i < 0 || i >= len(c.frames) {
		return nil
	}
	return c.frames[i]
}

// KeyFrame resolves the frame presented at the given elapsed time under the
// given play mode. Loop modes wrap modulo the clip duration; once modes
// clamp to the final frame; reversed modes index from the end.
func (c *Clip) KeyFrame(elapsed float64, mode PlayMode) *atlas.Region {
	if c == nil || len(c.frames) == 0 {
		return nil
	}
	if elapsed < 0 {
		elapsed = 0
	}

	n := len(c.frames)
	idx := int(elapsed / c.frameDuration)
	if mode.once() {
		if idx > n-1 {
			idx = n - 1
		}
	} else {
		idx %= n
	}
	if mode.reversed() {
		idx = n - 1 - idx
	}
	return c.frames[idx]
}

// IsDone reports whether playback has finished: only once-through modes
// finish, after elapsed reaches the clip duration.
func (c *Clip) IsDone(elapsed float64, mode PlayMode) bool {
	if c == nil || len(c.frames) == 0 {
		return false
	}
	return mode.once() && elapsed >= c.Duration()
}
