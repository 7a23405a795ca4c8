package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/blog2video/internal/theme"
)

// DefaultPath is the config file read when neither -config nor PathEnv is set
const DefaultPath = "blog2video.yaml"

// PathEnv names the environment variable that overrides DefaultPath
const PathEnv = "BLOG2VIDEO_CONFIG"

type Config struct {
	Input     string `yaml:"input"`
	OutputDir string `yaml:"output_dir"`

	// Frame renders a single composition frame; -1 renders From..To
	Frame   int `yaml:"frame"`
	From    int `yaml:"from"`
	To      int `yaml:"to"` // -1 is the last frame
	Step    int `yaml:"step"`
	Workers int `yaml:"workers"`

	// Project overrides, zero keeps the project's value
	FPS         int    `yaml:"fps"`
	AspectRatio string `yaml:"aspect_ratio"`
	ThemePreset string `yaml:"theme_preset"`
	ThemeFile   string `yaml:"theme_file"` // inline theme YAML, wins over ThemePreset

	Preview   bool `yaml:"preview"`
	ShowStats bool `yaml:"show_stats"`
	Verbose   bool `yaml:"verbose"`

	// One-shot actions, never persisted
	Init       bool   `yaml:"-"`
	SaveConfig bool   `yaml:"-"`
	Path       string `yaml:"-"` // resolved config file
}

func Default() *Config {
	return &Config{
		OutputDir: "output",
		Frame:     -1,
		To:        -1,
		Step:      1,
		Workers:   runtime.NumCPU(),
	}
}

// Load overlays the YAML file at path onto the defaults
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	if c.Step < 1 {
		return fmt.Errorf("step must be positive, got %d", c.Step)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.FPS)
	}
	if c.To >= 0 && c.From > c.To {
		return fmt.Errorf("from %d is after to %d", c.From, c.To)
	}
	if c.ThemePreset != "" && !slices.Contains(theme.Names(), c.ThemePreset) {
		return fmt.Errorf("unknown theme preset %q (want one of %s)", c.ThemePreset, strings.Join(theme.Names(), ", "))
	}
	return nil
}

func bind(set *flag.FlagSet, c *Config) *string {
	set.StringVar(&c.Input, "input", c.Input, "project file (default: newest project in input/projects/)")
	set.StringVar(&c.OutputDir, "output", c.OutputDir, "directory for rendered frame JSON")
	set.IntVar(&c.Frame, "frame", c.Frame, "render a single composition frame (-1: render the -from..-to range)")
	set.IntVar(&c.From, "from", c.From, "first frame of the range")
	set.IntVar(&c.To, "to", c.To, "last frame of the range (-1: end of composition)")
	set.IntVar(&c.Step, "step", c.Step, "frame step within the range")
	set.IntVar(&c.Workers, "workers", c.Workers, "concurrent render workers")
	set.IntVar(&c.FPS, "fps", c.FPS, "override project fps")
	set.StringVar(&c.AspectRatio, "aspect", c.AspectRatio, "override project aspect ratio (9:16 renders portrait)")
	set.StringVar(&c.ThemePreset, "theme", c.ThemePreset, "override project theme preset ("+strings.Join(theme.Names(), ", ")+")")
	set.StringVar(&c.ThemeFile, "theme-file", c.ThemeFile, "override project theme with a theme YAML file")
	set.BoolVar(&c.Preview, "preview", c.Preview, "print a terminal preview of each rendered frame")
	set.BoolVar(&c.ShowStats, "stats", c.ShowStats, "report process resource usage after rendering")
	set.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
	set.BoolVar(&c.Init, "init", c.Init, "write a starter project to input/projects/ and exit")
	set.BoolVar(&c.SaveConfig, "save-config", c.SaveConfig, "write the resolved configuration to the config file and exit")
	path := DefaultPath
	if env := os.Getenv(PathEnv); env != "" {
		path = env
	}
	return set.String("config", path, "path to config file (env "+PathEnv+")")
}

// Parse resolves the configuration: defaults, then the config file, then
// flags given explicitly in args. A missing config file is only logged.
func Parse(name string, args []string, logger zerolog.Logger) (*Config, error) {
	first := flag.NewFlagSet(name, flag.ContinueOnError)
	path := bind(first, Default())
	if err := first.Parse(args); err != nil {
		return nil, err
	}

	c, err := Load(*path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn().Str("path", *path).Msg("config file not found; using defaults and flags")
	case err != nil:
		return nil, err
	}

	second := flag.NewFlagSet(name, flag.ContinueOnError)
	second.SetOutput(io.Discard)
	bind(second, c)
	if err := second.Parse(args); err != nil {
		return nil, err
	}
	c.Path = *path
	return c, c.Validate()
}
