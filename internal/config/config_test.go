package config

import (
	"testing"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Stage != StageDev {
		t.Fatalf("expected stage: %s\tgot: %s", StageDev, cfg.Stage)
	}
	if cfg.BoardSize != mb.GridSizeStandard {
		t.Fatalf("expected board size: %d\tgot: %d", mb.GridSizeStandard, cfg.BoardSize)
	}
	if cfg.MaxPlacementAttempts != mb.DefaultMaxPlacementAttempts {
		t.Fatalf("expected max attempts: %d\tgot: %d", mb.DefaultMaxPlacementAttempts, cfg.MaxPlacementAttempts)
	}
	if cfg.MaxGenerationRuns != mb.DefaultMaxGenerationRuns {
		t.Fatalf("expected max runs: %d\tgot: %d", mb.DefaultMaxGenerationRuns, cfg.MaxGenerationRuns)
	}
	if cfg.AnalyticsEnabled() {
		t.Fatal("analytics must be disabled without PSQL_URL")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"STAGE":                  "prod",
		"BOARD_SIZE":             "8",
		"MAX_PLACEMENT_ATTEMPTS": "500",
		"MAX_GENERATION_RUNS":    "3",
		"SEED":                   "-42",
		"PSQL_URL":               "postgres://localhost:5432/battleship",
	}))
	if err != nil {
		t.Fatal(err)
	}

	expected := Config{
		Stage:                StageProd,
		BoardSize:            8,
		MaxPlacementAttempts: 500,
		MaxGenerationRuns:    3,
		Seed:                 -42,
		PsqlUrl:              "postgres://localhost:5432/battleship",
	}
	if cfg != expected {
		t.Fatalf("expected: %+v\tgot: %+v", expected, cfg)
	}
	if !cfg.AnalyticsEnabled() {
		t.Fatal("expected analytics to be enabled")
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown stage", env: map[string]string{"STAGE": "staging"}},
		{name: "board size not a number", env: map[string]string{"BOARD_SIZE": "six"}},
		{name: "board smaller than longest ship", env: map[string]string{"BOARD_SIZE": "2"}},
		{name: "zero attempts", env: map[string]string{"MAX_PLACEMENT_ATTEMPTS": "0"}},
		{name: "negative runs", env: map[string]string{"MAX_GENERATION_RUNS": "-1"}},
		{name: "seed not a number", env: map[string]string{"SEED": "abc"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := FromEnv(envOf(test.env)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadReadsProcessEnv(t *testing.T) {
	t.Setenv("STAGE", StageProd)
	t.Setenv("BOARD_SIZE", "7")
	t.Setenv("SEED", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BoardSize != 7 || cfg.Seed != 5 {
		t.Fatalf("expected board size/seed: 7/5\tgot: %d/%d", cfg.BoardSize, cfg.Seed)
	}
}
