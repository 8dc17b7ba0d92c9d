package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage                string
	BoardSize            int
	MaxPlacementAttempts int
	MaxGenerationRuns    int
	Seed                 int64
	PsqlUrl              string
}

// Load reads .env outside of prod and then the process environment. A
// missing .env file is not an error.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Stage:   StageDev,
		PsqlUrl: getenv("PSQL_URL"),
	}

	if stage := getenv("STAGE"); stage != "" {
		if stage != StageDev && stage != StageProd {
			return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", stage)
		}
		cfg.Stage = stage
	}

	var err error
	if cfg.BoardSize, err = intFromEnv(getenv, "BOARD_SIZE", mb.GridSizeStandard); err != nil {
		return Config{}, err
	}
	if cfg.MaxPlacementAttempts, err = intFromEnv(getenv, "MAX_PLACEMENT_ATTEMPTS", mb.DefaultMaxPlacementAttempts); err != nil {
		return Config{}, err
	}
	if cfg.MaxGenerationRuns, err = intFromEnv(getenv, "MAX_GENERATION_RUNS", mb.DefaultMaxGenerationRuns); err != nil {
		return Config{}, err
	}

	if longest := mb.MaxShipLength(mb.StandardFleet); cfg.BoardSize < longest {
		return Config{}, fmt.Errorf("BOARD_SIZE must be at least %d, got: %d", longest, cfg.BoardSize)
	}
	if cfg.MaxPlacementAttempts < 1 || cfg.MaxGenerationRuns < 1 {
		return Config{}, errors.New("MAX_PLACEMENT_ATTEMPTS and MAX_GENERATION_RUNS must be positive")
	}

	cfg.Seed = time.Now().UnixNano()
	if seedEnv := getenv("SEED"); seedEnv != "" {
		seed, err := strconv.ParseInt(seedEnv, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func intFromEnv(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func (c Config) AnalyticsEnabled() bool {
	return c.PsqlUrl != ""
}

func (c Config) LogSummary() {
	log.Printf("stage: %s\tboard size: %d\tseed: %d\tanalytics: %t\n", c.Stage, c.BoardSize, c.Seed, c.AnalyticsEnabled())
}
