package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink stores encoded artifacts.
type Sink interface {
	Write(name string, data []byte) (string, error)
}

// DirSink writes artifacts into a directory, creating it when needed. An
// empty Dir means the working directory.
type DirSink struct {
	Dir string
}

// Write implements Sink and returns the written path.
func (s DirSink) Write(name string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
