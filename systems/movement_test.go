package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/petri/components"
)

func TestSpeedMonotonicDecreasing(t *testing.T) {
	masses := []float32{1, 7, 20, 23.5, 40, 100, 500, 2000}

	prev := Speed(10, masses[0])
	for _, m := range masses[1:] {
		s := Speed(10, m)
		if s >= prev {
			t.Errorf("speed must strictly decrease with mass: speed(%f)=%f >= previous %f", m, s, prev)
		}
		prev = s
	}
}

func TestSpeedBaseValue(t *testing.T) {
	// mass 1 leaves the base speed untouched
	if s := Speed(10, 1); s != 10 {
		t.Errorf("expected speed 10 at mass 1, got %f", s)
	}
}

func TestSteerScalesDirection(t *testing.T) {
	vel := Steer(1, -0.5, 10, 1)
	if vel.X != 10 || vel.Y != -5 {
		t.Errorf("expected velocity (10, -5), got (%f, %f)", vel.X, vel.Y)
	}
}

func TestIntegrateClampsToBounds(t *testing.T) {
	b := Bounds{Width: 100, Height: 50}

	cases := []struct {
		name     string
		pos      components.Position
		vel      components.Velocity
		wantX    float32
		wantY    float32
	}{
		{"interior move", components.Position{X: 10, Y: 10}, components.Velocity{X: 5, Y: -3}, 15, 7},
		{"clamp right", components.Position{X: 98, Y: 10}, components.Velocity{X: 10, Y: 0}, 100, 10},
		{"clamp left", components.Position{X: 1, Y: 10}, components.Velocity{X: -10, Y: 0}, 0, 10},
		{"clamp bottom", components.Position{X: 10, Y: 49}, components.Velocity{X: 0, Y: 10}, 10, 50},
		{"clamp top", components.Position{X: 10, Y: 1}, components.Velocity{X: 0, Y: -10}, 10, 0},
		{"corner", components.Position{X: 99, Y: 49}, components.Velocity{X: 10, Y: 10}, 100, 50},
	}

	for _, tc := range cases {
		pos := tc.pos
		Integrate(&pos, tc.vel, b)
		if pos.X != tc.wantX || pos.Y != tc.wantY {
			t.Errorf("%s: got (%f, %f), want (%f, %f)", tc.name, pos.X, pos.Y, tc.wantX, tc.wantY)
		}
	}
}

func TestIntegrateIdempotentAtBoundary(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	pos := components.Position{X: 100, Y: 0}
	outward := components.Velocity{X: 25, Y: -25}

	for i := 0; i < 3; i++ {
		Integrate(&pos, outward, b)
		if pos.X != 100 || pos.Y != 0 {
			t.Fatalf("boundary position moved on pass %d: (%f, %f)", i, pos.X, pos.Y)
		}
	}
}

func TestWanderRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		dx, dy := Wander(rng)
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("wander direction out of [-1,1]: (%f, %f)", dx, dy)
		}
	}
}
