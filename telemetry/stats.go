package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Player state at window end
	PlayerMass  float64 `csv:"player_mass"`
	PlayerScore int     `csv:"player_score"`

	// Population at window end
	BotCount      int `csv:"bots"`
	FoodRemaining int `csv:"food_remaining"`

	// Consumption events during the window
	FoodEatenPlayer int `csv:"food_eaten_player"`
	FoodEatenBots   int `csv:"food_eaten_bots"`
	BotsEaten       int `csv:"bots_eaten"`
	PlayerEaten     int `csv:"player_eaten"`

	// Bot mass distribution (sampled at window end)
	BotMassMean float64 `csv:"bot_mass_mean"`
	BotMassP10  float64 `csv:"bot_mass_p10"`
	BotMassP50  float64 `csv:"bot_mass_p50"`
	BotMassP90  float64 `csv:"bot_mass_p90"`
}

// ComputeMassStats calculates mean and percentiles from mass samples.
func ComputeMassStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, p10, p50, p90
}

// LogStats emits the window via slog.
func (s WindowStats) LogStats() {
	slog.Info("window_stats",
		"window_end", s.WindowEndTick,
		"player_mass", s.PlayerMass,
		"player_score", s.PlayerScore,
		"bots", s.BotCount,
		"food_remaining", s.FoodRemaining,
		"food_eaten_player", s.FoodEatenPlayer,
		"food_eaten_bots", s.FoodEatenBots,
		"bots_eaten", s.BotsEaten,
		"player_eaten", s.PlayerEaten,
		"bot_mass_mean", s.BotMassMean,
		"bot_mass_p50", s.BotMassP50,
	)
}
