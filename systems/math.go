// Package systems contains the pure simulation systems for the arena:
// movement integration, consumption rules, and the spatial food index.
package systems

import (
	"math"

	"github.com/pthm-cable/petri/components"
)

// Distance returns the Euclidean distance between two positions.
func Distance(a, b components.Position) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// DistanceSq returns the squared Euclidean distance between two positions.
func DistanceSq(a, b components.Position) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// clamp32 clamps x to [min, max].
func clamp32(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
