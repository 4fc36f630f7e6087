// internal/config/config.go
//
// Process configuration. Values come from the environment (optionally seeded
// from a .env file) and are immutable once loaded.
//
// Environment variables:
//   PORT, LOG_LEVEL, CLIENT_ORIGIN, SEAT_SECRET, SEAT_TTL, TICK_INTERVAL,
//   SESSION_IDLE_TTL, SESSION_SWEEP_INTERVAL, WORDS_FILE, WORDS_DB,
//   WORDS_SALT, and the MATCH_* block below.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/lingo/internal/game"
)

// Config is the full server configuration.
type Config struct {
	Port         string        `env:"PORT" envDefault:"5175"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	SeatSecret   string        `env:"SEAT_SECRET" envDefault:"dev_secret_change_me"`
	SeatTTL      time.Duration `env:"SEAT_TTL" envDefault:"12h"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"100ms"`
	SessionTTL   time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SweepEvery   time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	WordsFile    string        `env:"WORDS_FILE"`
	WordsDB      string        `env:"WORDS_DB"`
	WordsSalt    string        `env:"WORDS_SALT" envDefault:"local_dev_salt"`

	Match Match `envPrefix:"MATCH_"`
}

// Match holds the per-match rules.
type Match struct {
	RoundWordLengths  []int         `env:"ROUND_WORD_LENGTHS" envSeparator:"," envDefault:"4,5,5,5,6"`
	MaxAttempts       int           `env:"MAX_ATTEMPTS" envDefault:"5"`
	RowTimeLimit      time.Duration `env:"ROW_TIME_LIMIT" envDefault:"30s"`
	StealTimeLimit    time.Duration `env:"STEAL_TIME_LIMIT" envDefault:"15s"`
	RoundEndDelay     time.Duration `env:"ROUND_END_DELAY" envDefault:"1s"`
	BaseScore         int           `env:"BASE_SCORE" envDefault:"100"`
	AttemptBonus      int           `env:"ATTEMPT_BONUS" envDefault:"10"`
	InitialPlayer     int           `env:"INITIAL_PLAYER" envDefault:"1"`
	FixedFirstLetter  bool          `env:"FIXED_FIRST_LETTER" envDefault:"true"`
	EnterSkipsAttempt bool          `env:"ENTER_SKIPS_ATTEMPT" envDefault:"false"`
}

// Load reads .env files (missing files are fine) and parses the environment.
func Load(dotenvFiles ...string) (*Config, error) {
	_ = godotenv.Load(dotenvFiles...)
	return Parse()
}

// Parse reads the environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Game().Validate(); err != nil {
		return nil, err
	}
	if cfg.SeatTTL <= 0 {
		return nil, fmt.Errorf("config: SEAT_TTL must be positive")
	}
	if cfg.SessionTTL < 0 {
		return nil, fmt.Errorf("config: SESSION_IDLE_TTL must not be negative")
	}
	return &cfg, nil
}

// Game converts the match block into the engine configuration.
func (c *Config) Game() game.Config {
	m := c.Match
	return game.Config{
		RoundWordLengths: append([]int(nil), m.RoundWordLengths...),
		MaxAttempts:      m.MaxAttempts,
		RowTimeLimit:     m.RowTimeLimit,
		StealTimeLimit:   m.StealTimeLimit,
		RoundEndDelay:    m.RoundEndDelay,
		Scoring: game.ScoreRules{
			Base:         m.BaseScore,
			AttemptBonus: m.AttemptBonus,
		},
		InitialPlayer:     game.Player(m.InitialPlayer),
		FixedFirstLetter:  m.FixedFirstLetter,
		EnterSkipsAttempt: m.EnterSkipsAttempt,
	}
}
