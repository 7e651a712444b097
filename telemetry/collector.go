// Package telemetry accumulates simulation events into window statistics
// and writes them to CSV for offline analysis.
package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int32

	// Current window tracking
	windowStartTick int32

	// Event counters for the current window
	foodEatenPlayer int
	foodEatenBots   int
	botsEaten       int
	playerEaten     int
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int32) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordFoodEaten records a consumed food cell, attributed to the player or
// to a bot.
func (c *Collector) RecordFoodEaten(byPlayer bool) {
	if byPlayer {
		c.foodEatenPlayer++
	} else {
		c.foodEatenBots++
	}
}

// RecordBotEaten records a bot consumed by the player.
func (c *Collector) RecordBotEaten() {
	c.botsEaten++
}

// RecordPlayerEaten records the player being overpowered by a bot.
func (c *Collector) RecordPlayerEaten() {
	c.playerEaten++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the population sample taken at window end.
func (c *Collector) Flush(currentTick int32, playerMass float64, botCount, foodRemaining int, botMasses []float64) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		PlayerMass:      playerMass,
		PlayerScore:     int(playerMass * 2),
		BotCount:        botCount,
		FoodRemaining:   foodRemaining,
		FoodEatenPlayer: c.foodEatenPlayer,
		FoodEatenBots:   c.foodEatenBots,
		BotsEaten:       c.botsEaten,
		PlayerEaten:     c.playerEaten,
	}

	stats.BotMassMean, stats.BotMassP10, stats.BotMassP50, stats.BotMassP90 = ComputeMassStats(botMasses)

	// Reset for next window
	c.windowStartTick = currentTick
	c.foodEatenPlayer = 0
	c.foodEatenBots = 0
	c.botsEaten = 0
	c.playerEaten = 0

	return stats
}
