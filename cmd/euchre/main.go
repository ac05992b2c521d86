package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/euchre/internal/agent"
	"github.com/palemoky/euchre/internal/config"
	"github.com/palemoky/euchre/internal/env"
	"github.com/palemoky/euchre/internal/logger"
	"github.com/palemoky/euchre/internal/storage"
)

type flags struct {
	config  string
	envFile string
	dealer  int
	seed    string
	games   int
	human   int
	tui     int
	verbose bool
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "configs/config.yaml", "config file path")
	flag.StringVar(&f.envFile, "env", ".env", "env file with EUCHRE_* overrides")
	flag.IntVar(&f.dealer, "dealer", -1, "dealer seat 0-3, -1 for random")
	flag.StringVar(&f.seed, "seed", "", "shuffle seed, empty for system entropy")
	flag.IntVar(&f.games, "games", 0, "number of games to play")
	flag.IntVar(&f.human, "human", -1, "seat played from the terminal")
	flag.IntVar(&f.tui, "tui", -1, "seat played through the interactive prompt")
	flag.BoolVar(&f.verbose, "verbose", false, "log every turn")
	flag.Parse()

	if err := run(f); err != nil {
		logger.LogError("%v", err)
		fmt.Fprintf(os.Stderr, "euchre: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	if err := config.LoadEnvFile(f.envFile); err != nil {
		return fmt.Errorf("load %s: %w", f.envFile, err)
	}
	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, f); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return err
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	envCfg, err := env.NewConfig(buildAgents(cfg.Game), cfg.Game.Dealer, cfg.Game.Seed, cfg.Game.Verbose)
	if err != nil {
		return err
	}

	var store *storage.RedisStore
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		store = storage.NewRedisStore(client)
		if err := store.Ping(ctx); err != nil {
			return fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		envCfg.Recorder = store
	}

	e := env.New(envCfg)
	if cfg.Game.Games == 1 {
		res, err := e.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Game %s\nScores: %v\n", res.ID, res.Scores)
	} else {
		sum, err := e.Simulate(ctx, cfg.Game.Games)
		if err != nil {
			return err
		}
		fmt.Printf("Played %d games\nPoints: %v\nTeam wins: %v\n", sum.Games, sum.Points, sum.Wins)
	}

	if store != nil {
		totals, err := store.LoadTotals(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("All time: %d games, points %v, team wins %v\n", totals.Games, totals.Points, totals.Wins)
	}
	logger.LogInfo("log written to %s", logger.GetLogPath())
	return nil
}

// loadConfig falls back to the defaults when the file is missing.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
		return cfg, cfg.ApplyEnv(os.LookupEnv)
	}
	return cfg, err
}

func applyFlags(cfg *config.Config, f flags) error {
	if f.dealer >= 0 {
		cfg.Game.Dealer = &f.dealer
	}
	if f.seed != "" {
		seed, err := strconv.ParseUint(f.seed, 10, 64)
		if err != nil {
			return fmt.Errorf("bad -seed %q: %w", f.seed, err)
		}
		cfg.Game.Seed = &seed
	}
	if f.games > 0 {
		cfg.Game.Games = f.games
	}
	if f.verbose {
		cfg.Game.Verbose = true
	}
	overrides := []struct {
		seat int
		kind string
	}{{f.human, config.AgentHuman}, {f.tui, config.AgentTUI}}
	for _, o := range overrides {
		if o.seat < 0 {
			continue
		}
		if o.seat >= len(cfg.Game.Agents) {
			return fmt.Errorf("seat %d out of range", o.seat)
		}
		cfg.Game.Agents[o.seat] = o.kind
	}
	return nil
}

// buildAgents seeds random agents from the table seed so a seeded run
// replays exactly. Terminal seats share one reader on stdin.
func buildAgents(g config.GameConfig) []agent.Agent {
	agents := make([]agent.Agent, len(g.Agents))
	var human *agent.Human
	for seat, kind := range g.Agents {
		switch kind {
		case config.AgentFirst:
			agents[seat] = agent.First{}
		case config.AgentHuman:
			if human == nil {
				human = agent.NewHuman(os.Stdin, os.Stdout)
			}
			agents[seat] = human
		case config.AgentTUI:
			agents[seat] = agent.NewTUI()
		default:
			var seed *uint64
			if g.Seed != nil {
				s := *g.Seed + uint64(seat) + 1
				seed = &s
			}
			agents[seat] = agent.NewRandom(seed)
		}
	}
	return agents
}
