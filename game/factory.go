package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
)

// blobPalette colors players and bots; cellPalette colors food.
var (
	blobPalette = [][3]uint8{
		{37, 7, 255}, {35, 183, 253}, {48, 254, 241},
		{19, 79, 251}, {255, 7, 230}, {255, 7, 23}, {6, 254, 13},
	}
	cellPalette = [][3]uint8{
		{80, 252, 54}, {36, 244, 255}, {243, 31, 46}, {4, 39, 243},
		{254, 6, 178}, {255, 211, 7}, {216, 6, 254}, {145, 255, 7},
		{7, 255, 182}, {255, 6, 86}, {147, 7, 255},
	}
)

// Food keeps this distance from the platform edge; blobs spawn anywhere.
const spawnMargin float32 = 20

// outlineFor darkens a fill color by a third per channel.
func outlineFor(c [3]uint8) [3]uint8 {
	return [3]uint8{c[0] - c[0]/3, c[1] - c[1]/3, c[2] - c[2]/3}
}

// spawnBlob creates a player or bot at a random platform position with the
// configured initial mass.
func (g *Game) spawnBlob(name string, kind components.Kind) ecs.Entity {
	id := g.nextID
	g.nextID++

	pos := components.Position{
		X: g.rng.Float32() * g.bounds.Width,
		Y: g.rng.Float32() * g.bounds.Height,
	}
	vel := components.Velocity{}
	mass := components.NewMass(float32(g.cfg.Entity.InitialMass))
	blob := components.Blob{ID: id, Name: name, Kind: kind}

	color := blobPalette[g.rng.Intn(len(blobPalette))]
	skin := components.Skin{Color: color, Outline: outlineFor(color)}

	return g.blobMapper.NewEntity(&pos, &vel, &mass, &blob, &skin)
}

// spawnBots creates n bots named "Bot 1" through "Bot n".
func (g *Game) spawnBots(n int) {
	for i := 0; i < n; i++ {
		bot := g.spawnBlob(fmt.Sprintf("Bot %d", i+1), components.KindBot)
		g.bots = append(g.bots, bot)
	}
}

// spawnFood creates n food cells inside the spawn margin and indexes them in
// the spatial grid. Food never moves, so the grid entry is permanent until
// the cell is eaten.
func (g *Game) spawnFood(n int) {
	for i := 0; i < n; i++ {
		pos := components.Position{
			X: spawnMargin + g.rng.Float32()*(g.bounds.Width-2*spawnMargin),
			Y: spawnMargin + g.rng.Float32()*(g.bounds.Height-2*spawnMargin),
		}
		mass := components.NewMass(float32(g.cfg.Entity.FoodMass))
		cell := components.Cell{}

		color := cellPalette[g.rng.Intn(len(cellPalette))]
		skin := components.Skin{Color: color, Outline: outlineFor(color)}

		e := g.foodMapper.NewEntity(&pos, &mass, &cell, &skin)
		g.foodGrid.Insert(e, pos.X, pos.Y)
	}
	g.foodCount += n
}
