package project

import (
	"fmt"
	"os"

	"github.com/ivlev/blog2video/internal/scene"
	"github.com/ivlev/blog2video/internal/theme"
)

// Starter returns a small two-scene project to edit from
func Starter() *Project {
	return &Project{
		Version:     "1.0",
		Title:       "New project",
		FPS:         DefaultFPS,
		AspectRatio: "16:9",
		ThemePreset: theme.DefaultPreset,
		Scenes: []Scene{
			{
				ID:        1,
				Title:     "Welcome",
				Narration: "Replace this narration with your own.",
				Duration:  3,
				Layout: scene.RawLayout{
					Arrangement: string(scene.FullCenter),
					Elements: []scene.RawElement{
						{Type: string(scene.KindHeading)},
						{Type: string(scene.KindBodyText)},
					},
				},
			},
			{
				ID:       2,
				Title:    "Key points",
				Duration: 4,
				Layout: scene.RawLayout{
					Arrangement: string(scene.SplitLeft),
					Elements: []scene.RawElement{
						{Type: string(scene.KindHeading)},
						{Type: string(scene.KindSteps), Content: scene.RawContent{Items: []scene.RawItem{
							{Title: "First point"},
							{Title: "Second point"},
						}}},
					},
				},
			},
		},
	}
}

// Scaffold writes a Starter project to a fresh timestamped file in dir
func Scaffold(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create project dir: %w", err)
	}
	path := GeneratePath(dir)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("project %s already exists", path)
	}
	if err := Write(Starter(), path); err != nil {
		return "", err
	}
	return path, nil
}
