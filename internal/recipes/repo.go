// Package recipes persists named option sets.
//
// A recipe lets a user save a configuration once (method, tables, keyword,
// layers) and reuse it for both obscure and reveal, which is what makes a
// layered pipeline practical to invert later. Recipes are stored as YAML files
// in ~/.obscura/recipes/, one file per recipe.
//
// Key components:
//   - RecipeRepo: Interface for managing recipe lifecycle (save, load, delete)
//   - Recipe: Recipe metadata plus the saved options
package recipes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/obscura/internal/fsops"
)

// ErrNotFound indicates a recipe does not exist.
var ErrNotFound = errors.New("recipe not found")

const fileExt = ".yaml"

// RecipeRepo provides an interface for managing recipes.
type RecipeRepo interface {
	// List returns all recipe names, sorted.
	List() ([]string, error)

	// Exists checks if a recipe with the given name exists.
	Exists(name string) (bool, error)

	// Load loads a recipe by name.
	Load(name string) (*Recipe, error)

	// Save creates or replaces a recipe.
	Save(recipe *Recipe) error

	// Delete deletes a recipe.
	Delete(name string) error
}

// FileRecipeRepo implements RecipeRepo using files on disk.
type FileRecipeRepo struct {
	fs         fsops.FS
	recipesDir string
}

// NewFileRecipeRepo creates a new FileRecipeRepo.
func NewFileRecipeRepo(fs fsops.FS, recipesDir string) *FileRecipeRepo {
	return &FileRecipeRepo{
		fs:         fs,
		recipesDir: recipesDir,
	}
}

func (r *FileRecipeRepo) path(name string) string {
	return filepath.Join(r.recipesDir, name+fileExt)
}

// List returns all recipe names, sorted.
func (r *FileRecipeRepo) List() ([]string, error) {
	files, err := r.fs.ReadDir(r.recipesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if strings.HasPrefix(file, ".") || filepath.Ext(file) != fileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(file, fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Exists checks if a recipe with the given name exists.
func (r *FileRecipeRepo) Exists(name string) (bool, error) {
	if err := r.fs.ValidateIdentifier(name); err != nil {
		return false, fmt.Errorf("invalid recipe name: %w", err)
	}
	return r.fs.Exists(r.path(name))
}

// Load loads a recipe by name.
func (r *FileRecipeRepo) Load(name string) (*Recipe, error) {
	if err := r.fs.ValidateIdentifier(name); err != nil {
		return nil, fmt.Errorf("invalid recipe name: %w", err)
	}

	data, err := r.fs.ReadFile(r.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	var recipe Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe %s: %w", name, err)
	}

	// The file name is authoritative for the name.
	recipe.Name = name
	return &recipe, nil
}

// Save creates or replaces a recipe.
func (r *FileRecipeRepo) Save(recipe *Recipe) error {
	if recipe == nil {
		return fmt.Errorf("cannot save nil recipe")
	}
	if err := r.fs.ValidateIdentifier(recipe.Name); err != nil {
		return fmt.Errorf("invalid recipe name: %w", err)
	}
	if recipe.SchemaVersion == 0 {
		recipe.SchemaVersion = SchemaVersion
	}
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}

	data, err := yaml.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}

	if err := r.fs.AtomicWrite(r.path(recipe.Name), data, 0644); err != nil {
		return fmt.Errorf("failed to write recipe file: %w", err)
	}

	return nil
}

// Delete deletes a recipe.
func (r *FileRecipeRepo) Delete(name string) error {
	exists, err := r.Exists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err := r.fs.Remove(r.path(name)); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	return nil
}
