package entity

import "image/color"

// SpawnRequest asks for one entity to be materialized. Requests are
// transient: queued by the spawn resolver and consumed by the materializer
// at the start of the next tick.
type SpawnRequest struct {
	EntityType string
	X          float64
	Y          float64
	Tint       color.RGBA
}
