package timeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/project"
	"github.com/ivlev/blog2video/internal/scene"
)

func testProject() *project.Project {
	heading := scene.RawElement{Type: "heading"}
	return &project.Project{
		FPS:         10,
		ThemePreset: "nightfall",
		Scenes: []project.Scene{
			{Title: "One", Duration: 1, Layout: scene.RawLayout{Arrangement: "full-center", Elements: []scene.RawElement{heading}}},
			{Title: "Two", Duration: 0.25, Layout: scene.RawLayout{Arrangement: "stacked", Elements: []scene.RawElement{heading}}},
			{Title: "Three", Duration: 0, Layout: scene.RawLayout{Elements: []scene.RawElement{heading, {Type: "bogus"}}}},
		},
	}
}

func TestSceneFrames(t *testing.T) {
	assert.Equal(t, 30, SceneFrames(1, 30))
	assert.Equal(t, 3, SceneFrames(0.25, 10))
	assert.Equal(t, 1, SceneFrames(0, 30))
	assert.Equal(t, 1, SceneFrames(0.001, 30))
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(&project.Project{FPS: 30}, zerolog.Nop())
	assert.ErrorIs(t, err, project.ErrNoScenes)

	p := testProject()
	p.FPS = 0
	_, err = New(p, zerolog.Nop())
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	tl, err := New(testProject(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 14, tl.TotalFrames())
	assert.Equal(t, 3, tl.SceneCount())

	tests := []struct {
		global int
		want   Cursor
	}{
		{0, Cursor{Global: 0, Scene: 0, Frame: 0}},
		{9, Cursor{Global: 9, Scene: 0, Frame: 9}},
		{10, Cursor{Global: 10, Scene: 1, Frame: 0}},
		{12, Cursor{Global: 12, Scene: 1, Frame: 2}},
		{13, Cursor{Global: 13, Scene: 2, Frame: 0}},
	}
	for _, tt := range tests {
		got, err := tl.Locate(tt.global)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, f := range []int{-1, 14, 100} {
		_, err := tl.Locate(f)
		assert.True(t, errors.Is(err, ErrFrameOutOfRange), "frame %d", f)
	}
}

func TestFrame(t *testing.T) {
	tl, err := New(testProject(), zerolog.Nop())
	require.NoError(t, err)

	root, err := tl.Frame(11)
	require.NoError(t, err)
	h := root.Find("heading")
	require.Len(t, h, 1)
	assert.Equal(t, "Two", h[0].Text)

	_, err = tl.Frame(14)
	assert.ErrorIs(t, err, ErrFrameOutOfRange)
}

func TestRange(t *testing.T) {
	tl, err := New(testProject(), zerolog.Nop())
	require.NoError(t, err)

	frames, err := tl.Range(0, 12, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10}, frames)

	frames, err = tl.Range(0, -1, 1)
	require.NoError(t, err)
	assert.Len(t, frames, 14)

	frames, err = tl.Range(12, 99, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 13}, frames)

	frames, err = tl.Range(-3, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, frames)
}

func TestRangeStartPastEnd(t *testing.T) {
	tl, err := New(testProject(), zerolog.Nop())
	require.NoError(t, err)

	for _, from := range []int{14, 99} {
		frames, err := tl.Range(from, -1, 1)
		assert.ErrorIs(t, err, ErrFrameOutOfRange, "from %d", from)
		assert.Nil(t, frames)
	}
}

func allFrames(t *testing.T, tl *Timeline) []int {
	t.Helper()
	frames, err := tl.Range(0, -1, 1)
	require.NoError(t, err)
	return frames
}

func TestRenderOrderIndependent(t *testing.T) {
	tl, err := New(testProject(), zerolog.Nop())
	require.NoError(t, err)

	var mu sync.Mutex
	got := map[int]*node.Node{}
	sink := func(f int, root *node.Node) error {
		mu.Lock()
		defer mu.Unlock()
		got[f] = root
		return nil
	}

	frames := []int{13, 2, 7, 0, 11}
	require.NoError(t, tl.Render(context.Background(), frames, 3, sink))
	require.Len(t, got, len(frames))

	for _, f := range frames {
		want, err := tl.Frame(f)
		require.NoError(t, err)
		assert.Equal(t, want, got[f], "frame %d", f)
	}
}

func TestRenderStopsOnSinkError(t *testing.T) {
	tl, err := New(testProject(), zerolog.Nop())
	require.NoError(t, err)

	boom := errors.New("disk full")
	err = tl.Render(context.Background(), allFrames(t, tl), 2, func(int, *node.Node) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestRenderRejectsOutOfRange(t *testing.T) {
	tl, err := New(testProject(), zerolog.Nop())
	require.NoError(t, err)

	called := false
	err = tl.Render(context.Background(), []int{0, 50}, 2, func(int, *node.Node) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrFrameOutOfRange)
	assert.False(t, called)
}

func TestRenderCancelled(t *testing.T) {
	tl, err := New(testProject(), zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = tl.Render(ctx, allFrames(t, tl), 2, func(int, *node.Node) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
