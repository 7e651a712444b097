// Package camera provides the viewport mapping for the arena.
//
// The camera never draws; it only turns world coordinates into screen
// coordinates for an external renderer. In follow mode the zoom shrinks as
// the tracked blob grows (zoom = 100/mass + 0.3) so bigger blobs see more of
// the platform. Global view fits the whole platform into the viewport.
package camera

// Camera controls the viewport into the arena.
type Camera struct {
	// X, Y is the screen-space offset: screen = world*Zoom + offset
	X, Y float32

	// Zoom level applied to world coordinates
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Platform dimensions
	WorldW, WorldH float32

	// GlobalView shows the entire platform instead of following a blob
	GlobalView bool
}

// New creates a camera for the given viewport and platform dimensions.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	return &Camera{
		Zoom:      0.5,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
	}
}

// Follow recenters the camera on the tracked blob and derives the zoom from
// its mass. In global view the platform is fitted instead and mass ignored.
func (c *Camera) Follow(x, y, mass float32) {
	if c.GlobalView {
		c.Zoom = fitZoom(c.ViewportW, c.ViewportH, c.WorldW, c.WorldH)
		c.X, c.Y = 0, 0
		return
	}

	c.Zoom = 100/mass + 0.3
	c.X = c.ViewportW/2 - x*c.Zoom
	c.Y = c.ViewportH/2 - y*c.Zoom
}

// ToggleGlobalView switches between platform overview and blob following.
func (c *Camera) ToggleGlobalView() {
	c.GlobalView = !c.GlobalView
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return wx*c.Zoom + c.X, wy*c.Zoom + c.Y
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.X) / c.Zoom, (sy - c.Y) / c.Zoom
}

// ScreenRadius converts a world-space radius to screen pixels.
func (c *Camera) ScreenRadius(r float32) float32 {
	return r * c.Zoom
}

// fitZoom returns the zoom that fits the whole platform into the viewport.
func fitZoom(vw, vh, ww, wh float32) float32 {
	zx := vw / ww
	zy := vh / wh
	if zx < zy {
		return zx
	}
	return zy
}
