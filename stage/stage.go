package stage

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Actor is anything the stage updates and draws each frame.
type Actor interface {
	Act(delta float64)
	Draw(screen *ebiten.Image, camX, camY, zoom float64)
}

// Stage is the shared presentation surface. It owns an ordered actor list;
// draw order is list order, so callers reorder via ToFront or SortActors.
type Stage struct {
	actors []Actor
	camera Camera
}

// New creates an empty stage with a default camera.
func New() *Stage {
	return &Stage{camera: Camera{Zoom: 1}}
}

// Camera returns the stage camera for reading and writing.
func (s *Stage) Camera() *Camera {
	return &s.camera
}

// Add registers an actor at the back of the draw order (drawn last, on top).
func (s *Stage) Add(a Actor) {
	if s == nil || a == nil {
		return
	}
	s.actors = append(s.actors, a)
}

// Remove deregisters an actor. A removed actor is never drawn again.
func (s *Stage) Remove(a Actor) {
	if s == nil || a == nil {
		return
	}
	for i, cur := range s.actors {
		if cur == a {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			return
		}
	}
}

// ToFront moves an actor to the end of the draw order.
func (s *Stage) ToFront(a Actor) {
	if s == nil || a == nil {
		return
	}
	for i, cur := range s.actors {
		if cur == a {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			s.actors = append(s.actors, a)
			return
		}
	}
}

// SortActors reorders the draw list with a stable sort, so actors that
// compare equal keep their relative order across frames.
func (s *Stage) SortActors(less func(a, b Actor) bool) {
	if s == nil || less == nil {
		return
	}
	sort.SliceStable(s.actors, func(i, j int) bool {
		return less(s.actors[i], s.actors[j])
	})
}

// Actors returns the current draw list. Callers must not add or remove
// actors while iterating it.
func (s *Stage) Actors() []Actor {
	if s == nil {
		return nil
	}
	return s.actors
}

// Act updates every actor in draw order.
func (s *Stage) Act(delta float64) {
	if s == nil {
		return
	}
	for _, a := range s.actors {
		a.Act(delta)
	}
}

// Draw renders every actor in draw order under the stage camera.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s == nil || screen == nil {
		return
	}
	camX, camY, zoom := s.camera.Apply()
	for _, a := range s.actors {
		a.Draw(screen, camX, camY, zoom)
	}
}
