// Package timeline places the scenes of a project on one composition frame
// axis and renders frames through the assembly core.
package timeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/blog2video/internal/assembly"
	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/project"
	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/theme"
)

var ErrFrameOutOfRange = errors.New("frame out of composition range")

// Cursor is a composition frame resolved to a scene and its local frame
type Cursor struct {
	Global int
	Scene  int
	Frame  int // 0 at scene start
}

// Sink receives rendered frames. It may be called from several goroutines.
type Sink func(global int, root *node.Node) error

type Timeline struct {
	fps     int
	aspect  string
	theme   theme.Theme
	scenes  []project.Scene
	layouts []scene.LayoutConfig
	starts  []int // first global frame of each scene
	total   int
	logger  zerolog.Logger
}

// New normalizes every scene once and computes the frame span of each.
// A scene lasts ceil(duration*fps) frames and never less than one.
func New(p *project.Project, logger zerolog.Logger) (*Timeline, error) {
	if err := project.Validate(p); err != nil {
		return nil, err
	}

	t := &Timeline{
		fps:     p.FPS,
		aspect:  p.AspectRatio,
		theme:   p.ResolveTheme(),
		scenes:  append([]project.Scene(nil), p.Scenes...),
		layouts: p.Layouts(logger),
		starts:  make([]int, len(p.Scenes)),
		logger:  logger,
	}
	for i, s := range p.Scenes {
		t.starts[i] = t.total
		t.total += SceneFrames(s.Duration, p.FPS)
	}

	logger.Debug().
		Int("scenes", len(t.scenes)).
		Int("frames", t.total).
		Int("fps", t.fps).
		Str("theme", t.theme.Name).
		Msg("timeline ready")
	return t, nil
}

// SceneFrames is the number of frames a scene of the given duration occupies
func SceneFrames(duration float64, fps int) int {
	n := int(math.Ceil(duration * float64(fps)))
	if n < 1 {
		return 1
	}
	return n
}

func (t *Timeline) FPS() int { return t.fps }
func (t *Timeline) TotalFrames() int { return t.total }
func (t *Timeline) SceneCount() int { return len(t.scenes) }
func (t *Timeline) Theme() theme.Theme { return t.theme }

// Locate resolves a composition frame to its scene and local frame
func (t *Timeline) Locate(global int) (Cursor, error) {
	if global < 0 || global >= t.total {
		return Cursor{}, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameOutOfRange, global, t.total)
	}
	i := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > global }) - 1
	return Cursor{Global: global, Scene: i, Frame: global - t.starts[i]}, nil
}

// Input builds the assembly input for a cursor
func (t *Timeline) Input(c Cursor) assembly.Input {
	s := t.scenes[c.Scene]
	return assembly.Input{
		Config:      t.layouts[c.Scene],
		Theme:       t.theme,
		Title:       s.Title,
		Narration:   s.Narration,
		ImageURL:    s.ImageURL,
		AspectRatio: t.aspect,
		Frame:       c.Frame,
		FPS:         t.fps,
	}
}

// Frame renders one composition frame
func (t *Timeline) Frame(global int) (*node.Node, error) {
	c, err := t.Locate(global)
	if err != nil {
		return nil, err
	}
	return assembly.Assemble(t.Input(c)), nil
}

// Range lists frames from..to inclusive with the given step. A negative to
// means the last frame of the composition. A from past the last frame is
// ErrFrameOutOfRange.
func (t *Timeline) Range(from, to, step int) ([]int, error) {
	if step < 1 {
		step = 1
	}
	if from < 0 {
		from = 0
	}
	if from >= t.total {
		return nil, fmt.Errorf("%w: start %d not in [0, %d)", ErrFrameOutOfRange, from, t.total)
	}
	if to < 0 || to >= t.total {
		to = t.total - 1
	}
	var frames []int
	for f := from; f <= to; f += step {
		frames = append(frames, f)
	}
	return frames, nil
}

// Render renders frames concurrently on at most workers goroutines and hands
// each result to sink. The first error cancels the remaining frames.
func (t *Timeline) Render(ctx context.Context, frames []int, workers int, sink Sink) error {
	if workers < 1 {
		workers = 1
	}
	for _, f := range frames {
		if _, err := t.Locate(f); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	t.logger.Info().Int("frames", len(frames)).Int("workers", workers).Msg("rendering")
	for _, f := range frames {
		f := f
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			root, err := t.Frame(f)
			if err != nil {
				return err
			}
			if err := sink(f, root); err != nil {
				return fmt.Errorf("frame %d: %w", f, err)
			}
			t.logger.Debug().Int("frame", f).Msg("frame rendered")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
