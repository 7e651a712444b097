package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/petri/components"
)

// speedExponent controls how strongly mass slows an entity down.
const speedExponent = 0.3

// Bounds is the platform rectangle. Positions live in [0,Width]x[0,Height].
type Bounds struct {
	Width, Height float32
}

// Speed returns the movement speed for an entity of the given mass:
// baseSpeed / mass^0.3. Strictly decreasing in mass.
func Speed(baseSpeed, mass float32) float32 {
	return baseSpeed / float32(math.Pow(float64(mass), speedExponent))
}

// Steer converts a direction vector (components in [-1,1], not necessarily
// normalized) into a velocity scaled by the mass-dependent speed.
func Steer(dx, dy, baseSpeed, mass float32) components.Velocity {
	speed := Speed(baseSpeed, mass)
	return components.Velocity{X: dx * speed, Y: dy * speed}
}

// Wander draws a fresh uniform direction from [-1,1]^2. No momentum: bots
// redraw every tick.
func Wander(rng *rand.Rand) (dx, dy float32) {
	return rng.Float32()*2 - 1, rng.Float32()*2 - 1
}

// Integrate applies a velocity to a position and clamps the result into the
// platform componentwise. Clamping is idempotent: an entity sitting on a
// boundary with outward velocity stays exactly on the boundary.
func Integrate(pos *components.Position, vel components.Velocity, b Bounds) {
	pos.X = clamp32(pos.X+vel.X, 0, b.Width)
	pos.Y = clamp32(pos.Y+vel.Y, 0, b.Height)
}
