package camera

import (
	"math"
	"testing"
)

func TestFollowCentersTarget(t *testing.T) {
	cam := New(1500, 1000, 2500, 2500)
	cam.Follow(1200, 800, 20)

	sx, sy := cam.WorldToScreen(1200, 800)
	if math.Abs(float64(sx-750)) > 0.01 || math.Abs(float64(sy-500)) > 0.01 {
		t.Errorf("tracked blob should map to screen center (750, 500), got (%f, %f)", sx, sy)
	}
}

func TestFollowZoomLaw(t *testing.T) {
	cam := New(1500, 1000, 2500, 2500)

	cam.Follow(0, 0, 20)
	if math.Abs(float64(cam.Zoom-5.3)) > 0.001 {
		t.Errorf("expected zoom 5.3 at mass 20, got %f", cam.Zoom)
	}

	cam.Follow(0, 0, 100)
	if math.Abs(float64(cam.Zoom-1.3)) > 0.001 {
		t.Errorf("expected zoom 1.3 at mass 100, got %f", cam.Zoom)
	}
}

func TestZoomShrinksWithMass(t *testing.T) {
	cam := New(1500, 1000, 2500, 2500)

	prev := float32(math.Inf(1))
	for _, mass := range []float32{20, 50, 100, 400, 1000} {
		cam.Follow(0, 0, mass)
		if cam.Zoom >= prev {
			t.Errorf("zoom must shrink as mass grows: zoom(%f)=%f >= previous %f", mass, cam.Zoom, prev)
		}
		prev = cam.Zoom
	}
}

func TestGlobalViewFitsPlatform(t *testing.T) {
	cam := New(1500, 1000, 2500, 2500)
	cam.ToggleGlobalView()
	cam.Follow(1200, 800, 20)

	// min(1500/2500, 1000/2500) = 0.4
	if math.Abs(float64(cam.Zoom-0.4)) > 0.001 {
		t.Errorf("expected global zoom 0.4, got %f", cam.Zoom)
	}

	// The far platform corner must land inside the viewport
	sx, sy := cam.WorldToScreen(2500, 2500)
	if sx > cam.ViewportW+0.01 || sy > cam.ViewportH+0.01 {
		t.Errorf("platform corner outside viewport: (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1500, 1000, 2500, 2500)
	cam.Follow(600, 900, 35)

	cases := []struct{ wx, wy float32 }{
		{600, 900},
		{0, 0},
		{2500, 2500},
		{123.5, 987.25},
	}

	for _, tc := range cases {
		sx, sy := cam.WorldToScreen(tc.wx, tc.wy)
		wx, wy := cam.ScreenToWorld(sx, sy)
		if math.Abs(float64(wx-tc.wx)) > 0.01 || math.Abs(float64(wy-tc.wy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.wx, tc.wy, sx, sy, wx, wy)
		}
	}
}

func TestScreenRadius(t *testing.T) {
	cam := New(1500, 1000, 2500, 2500)
	cam.Follow(0, 0, 100) // zoom 1.3

	if r := cam.ScreenRadius(10); math.Abs(float64(r-13)) > 0.001 {
		t.Errorf("expected screen radius 13, got %f", r)
	}
}
