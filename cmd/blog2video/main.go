package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ivlev/blog2video/internal/config"
	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/preview"
	"github.com/ivlev/blog2video/internal/project"
	"github.com/ivlev/blog2video/internal/system"
	"github.com/ivlev/blog2video/internal/theme"
	"github.com/ivlev/blog2video/internal/timeline"
)

func main() {
	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// ---- Optional .env (BLOG2VIDEO_CONFIG) ----
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env")
	}

	cfg, err := config.Parse(filepath.Base(os.Args[0]), os.Args[1:], log.Logger)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	done, err := setup(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}
	if done {
		return
	}

	if err := run(cfg, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
}

// setup performs the one-shot -save-config and -init actions. done means
// there is nothing to render.
func setup(cfg *config.Config, logger zerolog.Logger) (done bool, err error) {
	if cfg.SaveConfig {
		if err := config.Save(cfg.Path, cfg); err != nil {
			return false, fmt.Errorf("save config: %w", err)
		}
		logger.Info().Str("path", cfg.Path).Msg("configuration saved")
	}
	if cfg.Init {
		path, err := project.Scaffold(project.DefaultDir)
		if err != nil {
			return false, err
		}
		logger.Info().Str("project", path).Msg("starter project written")
	}
	return cfg.SaveConfig || cfg.Init, nil
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	start := time.Now()
	runID := uuid.NewString()
	logger = logger.With().Str("run", runID).Logger()

	input := cfg.Input
	if input == "" {
		latest, err := project.FindLatest(project.DefaultDir)
		if err != nil {
			return fmt.Errorf("no -input given: %w", err)
		}
		input = latest
		logger.Info().Str("input", input).Msg("using newest project")
	}

	p, err := project.Load(input)
	if err != nil {
		return err
	}
	if err := applyOverrides(p, cfg); err != nil {
		return err
	}

	tl, err := timeline.New(p, logger)
	if err != nil {
		return err
	}

	frames := []int{cfg.Frame}
	if cfg.Frame < 0 {
		if frames, err = tl.Range(cfg.From, cfg.To, cfg.Step); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	system.InitResourceLimits(logger, 2048)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := &frameWriter{dir: cfg.OutputDir, runID: runID, timeline: tl}
	var mu sync.Mutex
	sink := func(global int, root *node.Node) error {
		if err := w.Write(global, root); err != nil {
			return err
		}
		if cfg.Preview {
			mu.Lock()
			fmt.Println(preview.Render(fmt.Sprintf("frame %d", global), root))
			mu.Unlock()
		}
		return nil
	}

	logger.Info().
		Str("input", input).
		Int("frames", len(frames)).
		Int("total", tl.TotalFrames()).
		Str("theme", tl.Theme().Name).
		Str("output", cfg.OutputDir).
		Msg("starting render")

	if err := tl.Render(ctx, frames, cfg.Workers, sink); err != nil {
		return err
	}
	logger.Info().Int("frames", len(frames)).Dur("elapsed", time.Since(start)).Msg("done")

	if cfg.ShowStats {
		stats, err := system.Collect(start, len(frames))
		if err != nil {
			logger.Warn().Err(err).Msg("could not collect stats")
		}
		stats.Log(logger)
	}
	return nil
}

func applyOverrides(p *project.Project, cfg *config.Config) error {
	if cfg.FPS > 0 {
		p.FPS = cfg.FPS
	}
	if cfg.AspectRatio != "" {
		p.AspectRatio = cfg.AspectRatio
	}
	if cfg.ThemePreset != "" {
		p.ThemePreset = cfg.ThemePreset
		p.Theme = nil
	}
	if cfg.ThemeFile != "" {
		t, err := theme.Read(cfg.ThemeFile)
		if err != nil {
			return fmt.Errorf("theme file %s: %w", cfg.ThemeFile, err)
		}
		p.Theme = &t
	}
	return nil
}
