package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv("OBSCURA_ROOT", "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if filepath.Base(paths.Root) != ".obscura" {
			t.Errorf("Root should end with .obscura, got: %s", paths.Root)
		}
		if paths.Recipes != filepath.Join(paths.Root, "recipes") {
			t.Errorf("Recipes path incorrect: got %s", paths.Recipes)
		}
		if paths.Config != filepath.Join(paths.Root, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})

	t.Run("respects OBSCURA_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/obscura/path"
		t.Setenv("OBSCURA_ROOT", customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Recipes != filepath.Join(customRoot, "recipes") {
			t.Errorf("Recipes should be under custom root, got: %s", paths.Recipes)
		}
	})
}

func TestPaths_EnsureDirectories(t *testing.T) {
	paths := PathsAt(filepath.Join(t.TempDir(), "obscura"))

	for i := 0; i < 2; i++ {
		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("EnsureDirectories (pass %d) failed: %v", i+1, err)
		}
	}

	for _, dir := range []string{paths.Root, paths.Recipes} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("Directory %s was not created", dir)
		}
	}
}
