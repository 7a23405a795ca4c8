package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultDir is where projects are looked up when no input is given
var DefaultDir = filepath.Join("input", "projects")

// GeneratePath creates a timestamped project filename in dir
func GeneratePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("project_%s.yaml", timestamp))
}

// FindLatest finds the most recently modified project file in dir
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read projects directory: %w", err)
	}

	type candidate struct {
		path string
		mod  time.Time
	}
	var projects []candidate
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		projects = append(projects, candidate{filepath.Join(dir, entry.Name()), info.ModTime()})
	}

	if len(projects) == 0 {
		return "", fmt.Errorf("no project files found in %s", dir)
	}

	// Sort by modification time (newest first)
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].mod.After(projects[j].mod)
	})

	return projects[0].path, nil
}
