package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivlev/blog2video/internal/node"
	"github.com/ivlev/blog2video/internal/system"
	"github.com/ivlev/blog2video/internal/timeline"
)

// frameDocument is the JSON written for every rendered frame
type frameDocument struct {
	RunID      string     `json:"runId"`
	Frame      int        `json:"frame"`
	Scene      int        `json:"scene"`
	LocalFrame int        `json:"localFrame"`
	FPS        int        `json:"fps"`
	Root       *node.Node `json:"root"`
}

type frameWriter struct {
	dir      string
	runID    string
	timeline *timeline.Timeline
}

func (w *frameWriter) Path(global int) string {
	return filepath.Join(w.dir, fmt.Sprintf("frame_%06d.json", global))
}

func (w *frameWriter) Write(global int, root *node.Node) error {
	c, err := w.timeline.Locate(global)
	if err != nil {
		return err
	}

	buf := system.GetBuffer()
	defer system.PutBuffer(buf)

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	doc := frameDocument{RunID: w.runID, Frame: global, Scene: c.Scene, LocalFrame: c.Frame, FPS: w.timeline.FPS(), Root: root}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode frame %d: %w", global, err)
	}
	return os.WriteFile(w.Path(global), buf.Bytes(), 0644)
}
