package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/camera"
	"github.com/pthm-cable/petri/components"
)

// BlobView is a read-only snapshot of a player or bot.
type BlobView struct {
	ID         uint32
	Name       string
	Kind       components.Kind
	X, Y       float32
	Mass       float32
	TargetMass float32
	Color      [3]uint8
	Outline    [3]uint8
}

// Score is the displayed score, derived from mass.
func (v BlobView) Score() int {
	return int(v.Mass * 2)
}

// FoodView is a read-only snapshot of a food cell.
type FoodView struct {
	X, Y  float32
	Mass  float32
	Color [3]uint8
}

// Removal records an entity consumed during the last tick.
type Removal struct {
	Kind components.Kind
	Name string // empty for food
	Mass float32
	X, Y float32
}

func (g *Game) blobView(e ecs.Entity) BlobView {
	pos := g.posMap.Get(e)
	mass := g.massMap.Get(e)
	blob := g.blobMap.Get(e)
	skin := g.skinMap.Get(e)

	return BlobView{
		ID:         blob.ID,
		Name:       blob.Name,
		Kind:       blob.Kind,
		X:          pos.X,
		Y:          pos.Y,
		Mass:       mass.Value,
		TargetMass: mass.Target,
		Color:      skin.Color,
		Outline:    skin.Outline,
	}
}

// Player returns a snapshot of the player blob. The player entity persists
// even after elimination.
func (g *Game) Player() BlobView {
	return g.blobView(g.player)
}

// Bots returns snapshots of all live bots in processing order.
func (g *Game) Bots() []BlobView {
	views := make([]BlobView, 0, len(g.bots))
	for _, b := range g.bots {
		views = append(views, g.blobView(b))
	}
	return views
}

// Food returns snapshots of all remaining food cells.
func (g *Game) Food() []FoodView {
	views := make([]FoodView, 0, g.foodCount)

	query := g.foodFilter.Query()
	for query.Next() {
		pos, mass, _, skin := query.Get()
		views = append(views, FoodView{
			X:     pos.X,
			Y:     pos.Y,
			Mass:  mass.Value,
			Color: skin.Color,
		})
	}
	return views
}

// RemovedThisTick returns the entities consumed during the last Step call.
// The slice is reused; callers must not retain it across steps.
func (g *Game) RemovedThisTick() []Removal {
	return g.removed
}

// Camera returns the camera tracking the player.
func (g *Game) Camera() *camera.Camera {
	return g.cam
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Eliminated reports whether a bot has ever consumed the player. The flag
// latches; the simulation keeps running.
func (g *Game) Eliminated() bool {
	return g.eliminated
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

// FoodRemaining returns the number of uneaten food cells.
func (g *Game) FoodRemaining() int {
	return g.foodCount
}

// PlatformWidth returns the platform width in world units.
func (g *Game) PlatformWidth() float32 {
	return g.bounds.Width
}

// PlatformHeight returns the platform height in world units.
func (g *Game) PlatformHeight() float32 {
	return g.bounds.Height
}
