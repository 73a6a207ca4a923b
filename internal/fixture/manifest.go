package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the name of the manifest written beside the fixtures.
const ManifestName = "manifest.yaml"

// ManifestEntry describes one generated fixture. Paths are relative to
// the base output directory so the manifest stays valid when the tree
// is checked in or moved.
type ManifestEntry struct {
	Version string `yaml:"version"`
	Message string `yaml:"message"`
	Path    string `yaml:"path"`
	Size    int    `yaml:"size"`
}

// Manifest lists every fixture produced by one generation run.
type Manifest struct {
	Prefix   string          `yaml:"prefix"`
	Fixtures []ManifestEntry `yaml:"fixtures"`
}

// ManifestPath returns the manifest location for a base output
// directory.
func ManifestPath(baseDir string) string {
	return filepath.Join(baseDir, ManifestName)
}

// WriteManifest writes the manifest for a completed run.
func WriteManifest(baseDir string, results []Result) error {
	manifest := Manifest{
		Prefix:   FixturePrefix,
		Fixtures: make([]ManifestEntry, 0, len(results)),
	}
	for _, r := range results {
		rel, err := filepath.Rel(baseDir, r.Path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", r.Path, err)
		}
		manifest.Fixtures = append(manifest.Fixtures, ManifestEntry{
			Version: r.Version,
			Message: r.Message,
			Path:    filepath.ToSlash(rel),
			Size:    r.Size,
		})
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(ManifestPath(baseDir), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(baseDir string) (Manifest, error) {
	data, err := os.ReadFile(ManifestPath(baseDir))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return manifest, nil
}
