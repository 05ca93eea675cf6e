package system

import (
	"errors"
	"fmt"

	"github.com/ajroz/tilestage/anim"
	"github.com/ajroz/tilestage/entity"
)

// AnimationSystem advances playback for every animated entity once per
// tick. An entity with a pending clip id switches first (elapsed reset,
// frame 0 presented); otherwise its elapsed time advances and the frame for
// the active play mode is presented.
type AnimationSystem struct {
	clips    *anim.Cache
	registry *entity.Registry
}

// NewAnimationSystem creates an animation system over the shared clip
// cache.
func NewAnimationSystem(clips *anim.Cache, registry *entity.Registry) *AnimationSystem {
	return &AnimationSystem{clips: clips, registry: registry}
}

// Update ticks every animated entity. A failed clip switch aborts only that
// entity's switch; its error is joined into the returned error and the
// entity keeps playing its current clip.
func (s *AnimationSystem) Update(delta float64) error {
	if s == nil || s.registry == nil {
		return nil
	}
	var errs []error
	for _, e := range s.registry.Entities() {
		if e.Anim == nil {
			continue
		}
		if err := s.tick(e, delta); err != nil {
			errs = append(errs, fmt.Errorf("entity %d (%s): %w", e.ID, e.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (s *AnimationSystem) tick(e *entity.Entity, delta float64) error {
	st := e.Anim

	if id, ok := st.TakePending(); ok {
		clip, err := s.clips.GetOrBuild(id)
		if err != nil {
			return err
		}
		st.ClipID = id
		st.Elapsed = 0
		e.SetFrame(clip.KeyFrame(0, st.Mode))
		return nil
	}

	if st.ClipID == "" {
		return nil
	}
	clip, err := s.clips.GetOrBuild(st.ClipID)
	if err != nil {
		return err
	}
	st.Elapsed += delta
	// Mode is re-read every tick; it may have been changed externally.
	e.SetFrame(clip.KeyFrame(st.Elapsed, st.Mode))
	return nil
}

// Finished reports whether an entity's current clip has played through.
// Only once-through play modes finish.
func (s *AnimationSystem) Finished(e *entity.Entity) bool {
	if s == nil || e == nil || e.Anim == nil || e.Anim.ClipID == "" {
		return false
	}
	clip, err := s.clips.GetOrBuild(e.Anim.ClipID)
	if err != nil {
		return false
	}
	return clip.IsDone(e.Anim.Elapsed, e.Anim.Mode)
}
