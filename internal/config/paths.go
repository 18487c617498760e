// Package config manages obscura configuration and filesystem paths.
//
// Configuration includes the location of the obscura data directory, which can
// be customized via environment variables, and the user settings file that
// supplies CLI defaults. The default root is ~/.obscura/ containing recipes/
// and config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by obscura.
type Paths struct {
	// Root is the base directory for all obscura data (default: ~/.obscura)
	Root string

	// Recipes is the directory containing saved recipes
	Recipes string

	// Config is the path to the settings file
	Config string
}

// DefaultPaths returns the default paths for obscura.
// Paths can be overridden with environment variables:
// - OBSCURA_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("OBSCURA_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".obscura")
	}

	return PathsAt(root), nil
}

// PathsAt returns the layout rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:    root,
		Recipes: filepath.Join(root, "recipes"),
		Config:  filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Recipes,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
