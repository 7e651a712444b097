// Package components defines ECS components for the arena simulation.
//
// Entity kinds are expressed through component sets rather than a hierarchy:
// the player and bots carry (Position, Velocity, Mass, Blob, Skin), food
// cells carry (Position, Mass, Cell, Skin). A food cell has no Velocity and
// no Blob, so it can neither move nor eat.
package components

// Kind identifies what an entity is, for reporting and telemetry.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBot
	KindFood
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBot:
		return "bot"
	case KindFood:
		return "food"
	}
	return "unknown"
}

// Position represents an entity's world position on the platform.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity for the current tick.
type Velocity struct {
	X, Y float32
}

// Blob holds identity for a mobile, eating entity (player or bot).
type Blob struct {
	ID   uint32
	Name string
	Kind Kind
}

// Cell is the tag component marking a food cell.
type Cell struct{}

// Skin holds display metadata. The simulation never interprets it; it is
// carried for external renderers.
type Skin struct {
	Color   [3]uint8
	Outline [3]uint8
}
