package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Write writes a project to a YAML file
func Write(p *Project, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read reads a project from a YAML (or JSON) file, filling the default fps
func Read(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", path, err)
	}
	if p.FPS == 0 {
		p.FPS = DefaultFPS
	}

	return &p, nil
}

// Load reads and validates a project
func Load(path string) (*Project, error) {
	p, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(p); err != nil {
		return nil, fmt.Errorf("project %s: %w", path, err)
	}
	return p, nil
}
