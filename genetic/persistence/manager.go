// Package persistence stores optimization run archives on disk as YAML,
// one file per run, so runs can be inspected later or resumed.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manager handles save/load of run archives under a base directory.
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory.
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a run archive.
func (m *Manager) FilePath(runID string) string {
	return filepath.Join(m.basePath, runID+".yaml")
}

// Save writes the archive to disk under its run ID.
func (m *Manager) Save(archive RunArchive) error {
	if archive.RunID == "" {
		return fmt.Errorf("archive has no run ID")
	}
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(archive)
	if err != nil {
		return err
	}

	return os.WriteFile(m.FilePath(archive.RunID), data, 0644)
}

// Load reads a run archive from disk.
func (m *Manager) Load(runID string) (RunArchive, error) {
	var archive RunArchive

	data, err := os.ReadFile(m.FilePath(runID))
	if err != nil {
		return archive, err
	}

	if err := yaml.Unmarshal(data, &archive); err != nil {
		return archive, fmt.Errorf("run %s: %w", runID, err)
	}

	return archive, nil
}

// List returns the run IDs present in the base directory.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		runs = append(runs, strings.TrimSuffix(name, ".yaml"))
	}
	return runs, nil
}
