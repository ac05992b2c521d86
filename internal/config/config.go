// Package config loads table settings from yaml with EUCHRE_* environment
// overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/palemoky/euchre/internal/apperrors"
	"github.com/palemoky/euchre/internal/game/player"
)

// Agent kinds accepted in game.agents.
const (
	AgentRandom = "random"
	AgentFirst  = "first"
	AgentHuman  = "human"
	AgentTUI    = "tui"
)

type Config struct {
	Game  GameConfig  `yaml:"game"`
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
}

// GameConfig describes the table. Dealer and Seed are optional; when unset
// they are drawn from system entropy.
type GameConfig struct {
	Dealer  *int     `yaml:"dealer"`
	Seed    *uint64  `yaml:"seed"`
	Games   int      `yaml:"games"`
	Agents  []string `yaml:"agents"`
	Verbose bool     `yaml:"verbose"`
}

// RedisConfig enables the result tally.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LogConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// Default returns four random agents playing one game.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Games:  1,
			Agents: []string{AgentRandom, AgentRandom, AgentRandom, AgentRandom},
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path, fills defaults and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Game.Agents = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, "parse %s: %v", path, err)
	}
	if len(cfg.Game.Agents) == 0 {
		cfg.Game.Agents = Default().Game.Agents
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads a .env file into the process environment. A missing
// file is not an error.
func LoadEnvFile(paths ...string) error {
	err := godotenv.Load(paths...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overrides fields from EUCHRE_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var firstErr error
	intVar := func(name string, dst *int) {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil && firstErr == nil {
				firstErr = apperrors.Wrap(apperrors.ErrInvalidConfig, "%s=%q", name, v)
			}
			*dst = n
		}
	}
	boolVar := func(name string, dst *bool) {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil && firstErr == nil {
				firstErr = apperrors.Wrap(apperrors.ErrInvalidConfig, "%s=%q", name, v)
			}
			*dst = b
		}
	}
	stringVar := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	if v, ok := lookup("EUCHRE_DEALER"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil && firstErr == nil {
			firstErr = apperrors.Wrap(apperrors.ErrInvalidConfig, "EUCHRE_DEALER=%q", v)
		}
		c.Game.Dealer = &n
	}
	if v, ok := lookup("EUCHRE_SEED"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil && firstErr == nil {
			firstErr = apperrors.Wrap(apperrors.ErrInvalidConfig, "EUCHRE_SEED=%q", v)
		}
		c.Game.Seed = &n
	}
	if v, ok := lookup("EUCHRE_AGENTS"); ok {
		c.Game.Agents = splitList(v)
	}
	intVar("EUCHRE_GAMES", &c.Game.Games)
	boolVar("EUCHRE_VERBOSE", &c.Game.Verbose)

	boolVar("EUCHRE_REDIS_ENABLED", &c.Redis.Enabled)
	stringVar("EUCHRE_REDIS_ADDR", &c.Redis.Addr)
	stringVar("EUCHRE_REDIS_PASSWORD", &c.Redis.Password)
	intVar("EUCHRE_REDIS_DB", &c.Redis.DB)

	stringVar("EUCHRE_LOG_DIR", &c.Log.Dir)
	stringVar("EUCHRE_LOG_LEVEL", &c.Log.Level)

	return firstErr
}

// Validate reports the first setting the table cannot run with.
func (c *Config) Validate() error {
	if len(c.Game.Agents) != player.Seats {
		return apperrors.Wrap(apperrors.ErrAgentCount, "got %d agents", len(c.Game.Agents))
	}
	for i, kind := range c.Game.Agents {
		switch kind {
		case AgentRandom, AgentFirst, AgentHuman, AgentTUI:
		default:
			return apperrors.Wrap(apperrors.ErrInvalidConfig, "agent %d: unknown kind %q", i, kind)
		}
	}
	if d := c.Game.Dealer; d != nil && (*d < 0 || *d >= player.Seats) {
		return apperrors.Wrap(apperrors.ErrDealerRange, "dealer %d", *d)
	}
	if c.Game.Games < 1 {
		return apperrors.Wrap(apperrors.ErrInvalidConfig, "games must be at least 1, got %d", c.Game.Games)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return apperrors.Wrap(apperrors.ErrInvalidConfig, "redis enabled without addr")
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidConfig, "log level %q", c.Log.Level)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
