package systems

import "github.com/pthm-cable/petri/components"

// Two geometric rules decide consumption. They are intentionally different
// and are kept separate:
//
//   - blob vs food: the cell's center must lie within coverage * radius of
//     the eater, where radius = mass/2.
//   - blob vs blob: the eater's center-to-center distance must be under its
//     own radius, it must be strictly heavier, and the squared radius ratio
//     (mass/2)^2 / (otherMass/2)^2 must reach coverage. Mass stands in for
//     radius here; the ratio is not a true geometric area ratio.

// EatsCell reports whether a blob of the given mass at pos consumes the food
// cell at cellPos. The boundary is inclusive: a cell exactly at
// mass/2*coverage is eaten.
func EatsCell(pos components.Position, mass float32, cellPos components.Position, coverage float32) bool {
	return Distance(pos, cellPos) <= mass/2*coverage
}

// EatRadius returns the food pickup radius for a blob of the given mass.
func EatRadius(mass, coverage float32) float32 {
	return mass / 2 * coverage
}

// Overpowers reports whether blob a at aPos can eat blob b at bPos.
// The distance bound is exclusive and the mass comparison strict: equal
// masses never consume each other.
func Overpowers(aPos components.Position, aMass float32, bPos components.Position, bMass, coverage float32) bool {
	if Distance(aPos, bPos) >= aMass/2 {
		return false
	}
	if aMass <= bMass {
		return false
	}
	ra := aMass / 2
	rb := bMass / 2
	return (ra*ra)/(rb*rb) >= coverage
}
