// Package game wires the arena together: entity lifecycle, the per-tick
// update order, consumption resolution and telemetry.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/camera"
	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
)

// ErrInvalidDirection reports a steering input with a non-finite component or
// a component outside [-1, 1].
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is the external steering input for the player blob. Components
// are not normalized; each must be finite and within [-1, 1].
type Direction struct {
	DX, DY float32
}

func (d *Direction) validate() error {
	for _, v := range [2]float32{d.DX, d.DY} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: components must be finite, got (%g, %g)", ErrInvalidDirection, d.DX, d.DY)
		}
		if v < -1 || v > 1 {
			return fmt.Errorf("%w: components must be in [-1, 1], got (%g, %g)", ErrInvalidDirection, d.DX, d.DY)
		}
	}
	return nil
}

// Options holds run parameters that are not part of the arena configuration.
type Options struct {
	Seed      int64  // 0 = time-based
	OutputDir string // empty disables CSV output
	LogStats  bool   // log window stats via slog on flush
}

// Game holds the complete arena state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   *config.Config

	bounds systems.Bounds

	// Entity mappers for the two component sets
	blobMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Mass,
		components.Blob,
		components.Skin,
	]
	foodMapper *ecs.Map4[
		components.Position,
		components.Mass,
		components.Cell,
		components.Skin,
	]
	foodFilter *ecs.Filter4[
		components.Position,
		components.Mass,
		components.Cell,
		components.Skin,
	]

	// Individual component mappers for lookups
	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	massMap *ecs.Map1[components.Mass]
	blobMap *ecs.Map1[components.Blob]
	skinMap *ecs.Map1[components.Skin]

	player ecs.Entity
	bots   []ecs.Entity // stable processing order

	// Spatial index over the static food population
	foodGrid  *systems.SpatialGrid
	foodCount int

	cam *camera.Camera

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	tick       int32
	eliminated bool
	removed    []Removal
	nextID     uint32
	seed       int64

	queryBuf []systems.Neighbor
}

// NewGame creates an arena from the given configuration and seeds the initial
// population. A zero seed is replaced with a time-based one.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g := &Game{
		cfg: cfg,
		bounds: systems.Bounds{
			Width:  float32(cfg.Platform.Width),
			Height: float32(cfg.Platform.Height),
		},
		collector: telemetry.NewCollector(int32(cfg.Telemetry.StatsWindowTicks)),
		output:    output,
		logStats:  opts.LogStats,
	}

	g.Reset(opts.Seed)

	return g, nil
}

// Reset rebuilds the arena from scratch with the given seed. Two resets with
// the same seed and configuration produce identical runs.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))

	world := ecs.NewWorld()
	g.world = world
	g.blobMapper = ecs.NewMap5[
		components.Position,
		components.Velocity,
		components.Mass,
		components.Blob,
		components.Skin,
	](world)
	g.foodMapper = ecs.NewMap4[
		components.Position,
		components.Mass,
		components.Cell,
		components.Skin,
	](world)
	g.foodFilter = ecs.NewFilter4[
		components.Position,
		components.Mass,
		components.Cell,
		components.Skin,
	](world)
	g.posMap = ecs.NewMap1[components.Position](world)
	g.velMap = ecs.NewMap1[components.Velocity](world)
	g.massMap = ecs.NewMap1[components.Mass](world)
	g.blobMap = ecs.NewMap1[components.Blob](world)
	g.skinMap = ecs.NewMap1[components.Skin](world)

	g.foodGrid = systems.NewSpatialGrid(g.bounds.Width, g.bounds.Height, float32(g.cfg.Spatial.GridCellSize))
	g.cam = camera.New(
		float32(g.cfg.Screen.Width), float32(g.cfg.Screen.Height),
		g.bounds.Width, g.bounds.Height,
	)

	g.tick = 0
	g.eliminated = false
	g.removed = g.removed[:0]
	g.bots = g.bots[:0]
	g.foodCount = 0
	g.nextID = 1

	g.player = g.spawnBlob("GeoVas", components.KindPlayer)
	g.spawnBots(g.cfg.Population.Bots)
	g.spawnFood(g.cfg.Population.Food)

	slog.Info("arena_reset",
		"seed", seed,
		"bots", len(g.bots),
		"food", g.foodCount,
		"platform_w", g.bounds.Width,
		"platform_h", g.bounds.Height,
	)
}

// Step advances the arena by one tick. dir steers the player; nil means no
// input and the player wanders like a bot. A rejected direction leaves the
// arena untouched.
func (g *Game) Step(dir *Direction) error {
	if dir != nil {
		if err := dir.validate(); err != nil {
			return err
		}
	}

	g.removed = g.removed[:0]

	// 1. Move the player, then feed and grow it
	pPos := g.posMap.Get(g.player)
	pMass := g.massMap.Get(g.player)

	var dx, dy float32
	if dir != nil {
		dx, dy = dir.DX, dir.DY
	} else {
		dx, dy = systems.Wander(g.rng)
	}
	pVel := g.velMap.Get(g.player)
	*pVel = systems.Steer(dx, dy, float32(g.cfg.Entity.BaseSpeed), pMass.Value)
	systems.Integrate(pPos, *pVel, g.bounds)

	g.eatFood(g.player, true)
	pMass.Grow(float32(g.cfg.Growth.Rate))
	assertMass(pMass.Value, "player")

	// 2. Bots: wander, feed, grow, then resolve blob-vs-player consumption
	var eaten []ecs.Entity
	blobCoverage := float32(g.cfg.Consumption.BlobCoverage)
	for _, bot := range g.bots {
		bPos := g.posMap.Get(bot)
		bMass := g.massMap.Get(bot)

		wx, wy := systems.Wander(g.rng)
		bVel := g.velMap.Get(bot)
		*bVel = systems.Steer(wx, wy, float32(g.cfg.Entity.BaseSpeed), bMass.Value)
		systems.Integrate(bPos, *bVel, g.bounds)

		g.eatFood(bot, false)
		bMass.Grow(float32(g.cfg.Growth.Rate))
		assertMass(bMass.Value, "bot")

		if systems.Overpowers(*pPos, pMass.Value, *bPos, bMass.Value, blobCoverage) {
			pMass.Consume(bMass.Value)
			g.collector.RecordBotEaten()
			eaten = append(eaten, bot)
		} else if !g.eliminated && systems.Overpowers(*bPos, bMass.Value, *pPos, pMass.Value, blobCoverage) {
			// Elimination is a one-time terminal event: the credit is paid
			// once and the latched flag makes later overlaps inert.
			bMass.Consume(pMass.Value)
			g.collector.RecordPlayerEaten()
			g.eliminated = true
			blob := g.blobMap.Get(bot)
			slog.Warn("player_eaten",
				"by", blob.Name,
				"bot_mass", bMass.Value,
				"player_mass", pMass.Value,
				"tick", g.tick,
			)
		}
	}

	// 3. Apply queued bot removals (collection complete)
	g.removeBots(eaten)

	// 4. Track the player with the camera
	g.cam.Follow(pPos.X, pPos.Y, pMass.Value)

	g.tick++
	g.flushTelemetry()

	return nil
}

// assertMass is a consistency check: growth and consumption can never drive
// a mass to zero or below, so a violation is a programming error.
func assertMass(v float32, who string) {
	if v <= 0 {
		panic(fmt.Sprintf("non-positive mass %g for %s", v, who))
	}
}

// eatFood consumes every food cell within the blob's pickup radius. The
// neighbor set is collected before any cell is removed, so eating earlier
// cells cannot affect later checks within the same scan.
func (g *Game) eatFood(e ecs.Entity, byPlayer bool) {
	pos := g.posMap.Get(e)
	mass := g.massMap.Get(e)

	coverage := float32(g.cfg.Consumption.FoodCoverage)
	radius := systems.EatRadius(mass.Value, coverage)

	g.queryBuf = g.foodGrid.QueryRadiusInto(g.queryBuf[:0], pos.X, pos.Y, radius, g.posMap)

	for _, n := range g.queryBuf {
		fPos := g.posMap.Get(n.E)
		fMass := g.massMap.Get(n.E)
		if fPos == nil || fMass == nil {
			continue
		}
		if !systems.EatsCell(*pos, mass.Value, *fPos, coverage) {
			continue
		}

		mass.Consume(fMass.Value)
		g.collector.RecordFoodEaten(byPlayer)
		g.removed = append(g.removed, Removal{
			Kind: components.KindFood,
			Mass: fMass.Value,
			X:    fPos.X,
			Y:    fPos.Y,
		})

		g.foodGrid.Remove(n.E, fPos.X, fPos.Y)
		g.foodMapper.Remove(n.E)
		g.foodCount--
	}
}

// removeBots deletes consumed bots from the world and the processing order.
func (g *Game) removeBots(eaten []ecs.Entity) {
	if len(eaten) == 0 {
		return
	}

	for _, bot := range eaten {
		pos := g.posMap.Get(bot)
		mass := g.massMap.Get(bot)
		blob := g.blobMap.Get(bot)

		g.removed = append(g.removed, Removal{
			Kind: blob.Kind,
			Name: blob.Name,
			Mass: mass.Value,
			X:    pos.X,
			Y:    pos.Y,
		})
		slog.Info("bot_eaten", "name", blob.Name, "mass", mass.Value, "tick", g.tick)

		g.blobMapper.Remove(bot)
	}

	alive := g.bots[:0]
	for _, b := range g.bots {
		removed := false
		for _, e := range eaten {
			if b == e {
				removed = true
				break
			}
		}
		if !removed {
			alive = append(alive, b)
		}
	}
	g.bots = alive
}

// flushTelemetry emits window stats when the window elapses.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	masses := make([]float64, 0, len(g.bots))
	for _, b := range g.bots {
		if m := g.massMap.Get(b); m != nil {
			masses = append(masses, float64(m.Value))
		}
	}
	pMass := g.massMap.Get(g.player)

	stats := g.collector.Flush(g.tick, float64(pMass.Value), len(g.bots), g.foodCount, masses)
	if g.logStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("telemetry_write_failed", "err", err)
	}
}

// Close flushes and releases run outputs.
func (g *Game) Close() error {
	return g.output.Close()
}
