package integration

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/danieljhkim/obscura/internal/clock"
	"github.com/danieljhkim/obscura/internal/config"
	"github.com/danieljhkim/obscura/internal/engine"
	"github.com/danieljhkim/obscura/internal/fsops"
	"github.com/danieljhkim/obscura/internal/hash"
	"github.com/danieljhkim/obscura/internal/recipes"
)

const testRecipesDir = "/obscura/recipes"

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for p := path; p != "." && p != string(filepath.Separator); p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
	return nil
}

func (fs *testFS) Remove(path string) error {
	if _, ok := fs.files[path]; !ok && !fs.dirs[path] {
		return os.ErrNotExist
	}
	delete(fs.files, path)
	delete(fs.dirs, path)
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) ReadDir(dir string) ([]string, error) {
	names := []string{}
	for p := range fs.files {
		if filepath.Dir(p) == dir {
			names = append(names, filepath.Base(p))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (fs *testFS) ValidateIdentifier(id string) error {
	return fsops.ValidateIdentifier(id)
}

// setupTestEngine creates an engine backed by the file recipe repo on an
// in-memory filesystem.
func setupTestEngine(t *testing.T, settings config.Settings) (*engine.Engine, *testFS, *clock.FakeClock) {
	t.Helper()

	fs := newTestFS()
	if err := fs.MkdirAll(testRecipesDir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	clk := clock.NewFakeClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	repo := recipes.NewFileRecipeRepo(fs, testRecipesDir)
	eng := engine.New(repo, hash.NewSHA256Hasher(), clk, settings)

	return eng, fs, clk
}
