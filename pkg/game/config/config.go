// Package config loads the game settings. Values are layered: built-in
// defaults, then a .env file, then MAZEHUNT_* environment variables, then
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation and parse failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "MAZEHUNT_"

// Config holds the game settings.
type Config struct {
	Cols              int           // Maze width in cells
	Rows              int           // Maze height in cells
	ExtraEdgeFraction float64       // Loop carving attempts per cell, in [0, 1]
	MaxSteps          int           // Farthest a new treasure may be placed
	Seed              int64         // Random seed, 0 picks one from the clock
	MoveLimit         int           // Moves before the game ends, 0 for unlimited
	TimeLimit         time.Duration // Play time before the game ends, 0 for unlimited
	Renderer          string        // "tui" or "ebiten"
	Locale            string        // gettext language, e.g. en_GB
	LocaleDir         string        // Directory holding <lang>/LC_MESSAGES/default.po
	LogLevel          string        // logrus level name
	LogFile           string        // Log destination, empty for none
	Dump              bool          // Print one maze and exit
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Cols:              20,
		Rows:              12,
		ExtraEdgeFraction: 0.1,
		MaxSteps:          8,
		Renderer:          RendererTUI,
		Locale:            "en_GB",
		LocaleDir:         "locales",
		LogLevel:          "warn",
		LogFile:           "mazehunt.log",
	}
}

// Load builds a Config from envFile (ignored if missing), the process
// environment and args (without the program name).
func Load(envFile string, args []string) (Config, error) {
	cfg := Default()

	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := fileEnv[EnvPrefix+key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"COLS":       &c.Cols,
		"ROWS":       &c.Rows,
		"MAX_STEPS":  &c.MaxSteps,
		"MOVE_LIMIT": &c.MoveLimit,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, key, err)
		}
		*dst = n
	}

	strs := map[string]*string{
		"RENDERER":   &c.Renderer,
		"LOCALE":     &c.Locale,
		"LOCALE_DIR": &c.LocaleDir,
		"LOG_LEVEL":  &c.LogLevel,
		"LOG_FILE":   &c.LogFile,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	if v, ok := lookup("EXTRA_EDGES"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %sEXTRA_EDGES must be a number: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.ExtraEdgeFraction = f
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED must be an integer: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := lookup("TIME_LIMIT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sTIME_LIMIT must be a duration: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.TimeLimit = d
	}
	return nil
}

func (c *Config) flagSet(out io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("mazehunt", flag.ContinueOnError)
	flags.SetOutput(out)

	flags.IntVar(&c.Cols, "cols", c.Cols, "maze width in cells")
	flags.IntVar(&c.Rows, "rows", c.Rows, "maze height in cells")
	flags.Float64Var(&c.ExtraEdgeFraction, "extra", c.ExtraEdgeFraction, "loop carving fraction in [0,1]")
	flags.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "farthest a treasure may be placed")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = from clock)")
	flags.IntVar(&c.MoveLimit, "move-limit", c.MoveLimit, "moves before the game ends (0 = unlimited)")
	flags.DurationVar(&c.TimeLimit, "time-limit", c.TimeLimit, "play time before the game ends (0 = unlimited)")
	flags.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer to use: tui or ebiten")
	flags.StringVar(&c.Locale, "locale", c.Locale, "language for messages")
	flags.StringVar(&c.LocaleDir, "locale-dir", c.LocaleDir, "directory containing translations")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	flags.StringVar(&c.LogFile, "log-file", c.LogFile, "log file, empty to disable")
	flags.BoolVar(&c.Dump, "dump", c.Dump, "print one maze and exit")
	return flags
}

func (c *Config) applyFlags(args []string) error {
	flags := c.flagSet(io.Discard)
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidConfig, flags.Arg(0))
	}
	return nil
}

// PrintUsage writes the flag summary with default values to w
func PrintUsage(w io.Writer) {
	cfg := Default()
	flags := cfg.flagSet(w)
	fmt.Fprintln(w, "Usage: mazehunt [flags]")
	flags.PrintDefaults()
}

// Validate checks ranges and names
func (c Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: maze size %dx%d must be positive", ErrInvalidConfig, c.Cols, c.Rows)
	case math.IsNaN(c.ExtraEdgeFraction) || c.ExtraEdgeFraction < 0 || c.ExtraEdgeFraction > 1:
		return fmt.Errorf("%w: extra edge fraction %v outside [0,1]", ErrInvalidConfig, c.ExtraEdgeFraction)
	case c.MaxSteps <= 0:
		return fmt.Errorf("%w: max steps %d must be positive", ErrInvalidConfig, c.MaxSteps)
	case c.MoveLimit < 0:
		return fmt.Errorf("%w: move limit %d is negative", ErrInvalidConfig, c.MoveLimit)
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: time limit %v is negative", ErrInvalidConfig, c.TimeLimit)
	case c.Renderer != RendererTUI && c.Renderer != RendererEbiten:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	return nil
}

// EffectiveSeed returns Seed, or a clock-based seed when Seed is zero
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
