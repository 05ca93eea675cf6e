package event

import "github.com/ajroz/tilestage/tilemap"

// MapChanged signals that a new map is active. It is published once per map
// load, synchronously on the game goroutine.
type MapChanged struct {
	Map *tilemap.Map
}

// MapChangedHandler reacts to a map change. Returning consumed=true stops
// propagation to later subscribers; the core pipeline subscribers all return
// false so every component observes the change. A returned error aborts
// dispatch and surfaces to the publisher.
type MapChangedHandler interface {
	HandleMapChanged(ev MapChanged) (consumed bool, err error)
}

// Dispatcher fans a map-change event out to subscribers in registration
// order. Registration order is the dispatch order; the game wires the
// render system first (layer repartition), then the entity registry (cull),
// then the spawn resolver, so spawns always see fresh layer state.
type Dispatcher struct {
	subscribers []MapChangedHandler
}

// Subscribe appends a handler to the dispatch order.
func (d *Dispatcher) Subscribe(h MapChangedHandler) {
	if d == nil || h == nil {
		return
	}
	d.subscribers = append(d.subscribers, h)
}

// Publish delivers the event to each subscriber in order, stopping at the
// first that consumes it or fails.
func (d *Dispatcher) Publish(ev MapChanged) error {
	if d == nil {
		return nil
	}
	for _, h := range d.subscribers {
		consumed, err := h.HandleMapChanged(ev)
		if err != nil {
			return err
		}
		if consumed {
			return nil
		}
	}
	return nil
}
