package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures a Game.
type Option func(*gameConfig)

type gameConfig struct {
	logger    *log.Logger
	maxThrows int
	clock     quartz.Clock
}

func defaultConfig() gameConfig {
	return gameConfig{
		maxThrows: MaxThrows,
		clock:     quartz.NewReal(),
	}
}

// WithLogger sets the logger for game progress. Without one the game is
// silent.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithMaxThrows caps the throws of the first player in every mini-round.
// Values outside 1..3 are ignored.
func WithMaxThrows(n int) Option {
	return func(c *gameConfig) {
		if n >= 1 && n <= MaxThrows {
			c.maxThrows = n
		}
	}
}

// WithClock sets the clock used to timestamp completed rounds.
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) {
		c.clock = clock
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
