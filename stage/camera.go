package stage

// Camera is the viewport transform: a world-space origin in pixels plus a
// zoom factor around it.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64
}

// Apply returns the transform parameters for the current frame. A zero or
// negative zoom is treated as 1.
func (c *Camera) Apply() (camX, camY, zoom float64) {
	if c == nil {
		return 0, 0, 1
	}
	zoom = c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return c.X, c.Y, zoom
}
