package anim

// State is the mutable per-entity playback state. Two entities playing the
// same clip each carry their own State; the clip itself is shared and never
// written.
//
// A state is either switching (a pending clip id is set) or playing. SetClip
// marks the switch; the animation system applies it on the next tick,
// resetting Elapsed and clearing the pending id.
type State struct {
	AtlasKey string
	Elapsed  float64
	Mode     PlayMode
	ClipID   string

	pending    string
	hasPending bool
}

// NewState creates a playback state for the given atlas key.
func NewState(atlasKey string, mode PlayMode) *State {
	return &State{AtlasKey: atlasKey, Mode: mode}
}

// SetClip requests a switch to the given clip id. The switch takes effect
// on the next animation tick; until then the current clip keeps playing.
func (s *State) SetClip(id string) {
	if s == nil {
		return
	}
	s.pending = id
	s.hasPending = true
}

// Pending returns the requested clip id, if a switch is pending.
func (s *State) Pending() (string, bool) {
	if s == nil {
		return "", false
	}
	return s.pending, s.hasPending
}

// TakePending clears and returns the pending clip id.
func (s *State) TakePending() (string, bool) {
	if s == nil || !s.hasPending {
		return "", false
	}
	id := s.pending
	s.pending = ""
	s.hasPending = false
	return id, true
}

// Switching reports whether a clip switch is pending.
func (s *State) Switching() bool {
	return s != nil && s.hasPending
}
