package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 10000, "Stop after N ticks")
	bots := flag.Int("bots", -1, "Bot count (-1 = use config)")
	food := flag.Int("food", -1, "Food count (-1 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Use config values unless overridden by CLI
	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindowTicks = *statsWindow
	}
	if *bots >= 0 {
		cfg.Population.Bots = *bots
	}
	if *food >= 0 {
		cfg.Population.Food = *food
	}

	opts := game.Options{
		Seed:      *seed,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to create arena", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting simulation",
		"seed", g.Seed(),
		"max_ticks", *maxTicks,
		"stats_window", cfg.Telemetry.StatsWindowTicks,
	)

	// The player has no external controller here; nil input makes it wander
	// alongside the bots.
	for int(g.Tick()) < *maxTicks {
		if err := g.Step(nil); err != nil {
			slog.Error("step failed", "error", err, "tick", g.Tick())
			os.Exit(1)
		}
	}

	p := g.Player()
	slog.Info("simulation finished",
		"tick", g.Tick(),
		"player_mass", p.Mass,
		"player_score", p.Score(),
		"eliminated", g.Eliminated(),
		"bots", len(g.Bots()),
		"food_remaining", g.FoodRemaining(),
	)
}
