package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/contribs-dev/contribs/schema"
)

// Config holds the runtime configuration for one stats run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath      string // Resolved repository root
	Branch        string // Requested branch display name; empty means current branch
	StartTime     time.Time
	EndTime       time.Time
	FromBeginning bool // True when --start was the "beginning" sentinel

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Start      string `mapstructure:"start"`
	End        string `mapstructure:"end"`
	Branch     string `mapstructure:"branch"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Bounded reports whether both a concrete start and end bound were given,
// which selects the dense date axis.
func (c *Config) Bounded() bool {
	return !c.StartTime.IsZero() && !c.EndTime.IsZero()
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDateBounds(cfg, input); err != nil {
		return err
	}
	if err := resolveRepoPath(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path, non-date fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Branch = strings.TrimSpace(input.Branch)
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return nil
}

// processDateBounds parses the start/end bounds. Each bound is either absent,
// a YYYY-MM-DD date, or (start only) the "beginning" sentinel.
func processDateBounds(cfg *Config, input *ConfigRawInput) error {
	start := strings.TrimSpace(input.Start)
	end := strings.TrimSpace(input.End)

	switch {
	case start == "":
	case strings.EqualFold(start, schema.BeginningLabel):
		cfg.FromBeginning = true
	default:
		t, err := time.Parse(schema.DateFormat, start)
		if err != nil {
			return fmt.Errorf("invalid start date '%s'. Expected %s or '%s': %w", start, schema.DateFormat, schema.BeginningLabel, err)
		}
		cfg.StartTime = t
	}

	if end != "" {
		t, err := time.Parse(schema.DateFormat, end)
		if err != nil {
			return fmt.Errorf("invalid end date '%s'. Expected %s: %w", end, schema.DateFormat, err)
		}
		cfg.EndTime = t
	}

	if cfg.FromBeginning && cfg.EndTime.IsZero() {
		return fmt.Errorf("--start %s requires an explicit --end", schema.BeginningLabel)
	}
	if cfg.Bounded() && cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			cfg.StartTime.Format(schema.DateFormat), cfg.EndTime.Format(schema.DateFormat))
	}

	return nil
}

// resolveRepoPath verifies the repository probe and resolves the repo root.
// The probe runs before any other git operation so that a bad path surfaces
// as ErrNotARepository rather than a downstream command failure.
func resolveRepoPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	if info, statErr := os.Stat(absSearchPath); statErr == nil && !info.IsDir() {
		absSearchPath = filepath.Dir(absSearchPath)
	}

	ok, err := client.IsRepository(ctx, absSearchPath)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotARepository, absSearchPath)
	}

	gitRoot, err := client.RepoRoot(ctx, absSearchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot

	return nil
}
