package entity

import (
	"github.com/ajroz/tilestage/event"
	"github.com/ajroz/tilestage/stage"
)

// Registry owns every live entity and its stage registration. Adding an
// entity registers its drawable with the stage in the same call; destroying
// is deferred to the next Flush so nothing disappears while the render pass
// iterates the stage.
type Registry struct {
	stage   *stage.Stage
	nextID  int
	alive   []*Entity
	doomed  []*Entity
}

// NewRegistry creates a registry that registers drawables on the given
// stage.
func NewRegistry(st *stage.Stage) *Registry {
	return &Registry{stage: st, nextID: 1}
}

// Add takes ownership of a fully constructed entity: assigns its id and
// registers its drawable with the stage. The entity is visible to the
// render pass from this point on.
func (r *Registry) Add(e *Entity) {
	if r == nil || e == nil {
		return
	}
	e.ID = r.nextID
	r.nextID++
	r.alive = append(r.alive, e)
	if r.stage != nil {
		r.stage.Add(e)
	}
}

// Destroy queues an entity for removal at the next Flush.
func (r *Registry) Destroy(e *Entity) {
	if r == nil || e == nil {
		return
	}
	r.doomed = append(r.doomed, e)
}

// Flush applies queued destruction: deregisters each doomed entity's
// drawable and drops it from the live set. Called at tick start, never
// mid-iteration.
func (r *Registry) Flush() {
	if r == nil || len(r.doomed) == 0 {
		return
	}
	for _, e := range r.doomed {
		if r.stage != nil {
			r.stage.Remove(e)
		}
		for i, cur := range r.alive {
			if cur == e {
				r.alive = append(r.alive[:i], r.alive[i+1:]...)
				break
			}
		}
	}
	r.doomed = nil
}

// Entities returns the live entity list.
func (r *Registry) Entities() []*Entity {
	if r == nil {
		return nil
	}
	return r.alive
}

// HandleMapChanged queues every live entity for destruction; a new map
// starts from an empty entity set before its own spawns materialize.
func (r *Registry) HandleMapChanged(ev event.MapChanged) (bool, error) {
	if r == nil {
		return false, nil
	}
	for _, e := range r.alive {
		r.Destroy(e)
	}
	return false, nil
}
