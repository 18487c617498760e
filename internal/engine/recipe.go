package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/obscura/internal/fsops"
	"github.com/danieljhkim/obscura/internal/recipes"
)

// SaveRecipe validates req.Options and writes them under req.Name.
// Replacing an existing recipe requires Force and keeps its ID and CreatedAt.
func (e *Engine) SaveRecipe(ctx context.Context, req *SaveRecipeRequest) (*SaveRecipeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fsops.ValidateIdentifier(req.Name); err != nil {
		return nil, fmt.Errorf("%w: recipe name: %v", ErrValidation, err)
	}
	if err := req.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recipe options: %w", err)
	}

	exists, err := e.recipeRepo.Exists(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check if recipe exists: %w", err)
	}
	if exists && !req.Force {
		return nil, fmt.Errorf("%w: %s", ErrRecipeExists, req.Name)
	}

	fingerprint, err := req.Options.Fingerprint(e.hasher)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	recipe := recipes.NewRecipe(req.Name, req.Description, req.Options, now)
	recipe.Fingerprint = fingerprint

	if exists {
		previous, err := e.recipeRepo.Load(req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to load existing recipe: %w", err)
		}
		if previous.ID != "" {
			recipe.ID = previous.ID
		}
		if !previous.CreatedAt.IsZero() {
			recipe.CreatedAt = previous.CreatedAt
		}
	}

	if err := e.recipeRepo.Save(recipe); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	return &SaveRecipeResult{Recipe: recipe, Created: !exists}, nil
}

// LoadRecipe loads a recipe by name and checks that its options are usable.
func (e *Engine) LoadRecipe(ctx context.Context, name string) (*recipes.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recipe, err := e.recipeRepo.Load(name)
	if err != nil {
		return nil, err
	}
	if err := recipe.Options.Validate(); err != nil {
		return nil, fmt.Errorf("recipe %s: %w", name, err)
	}
	return recipe, nil
}

// ListRecipes returns a summary of every saved recipe, sorted by name.
// Recipes that fail to load are skipped.
func (e *Engine) ListRecipes(ctx context.Context) ([]RecipeSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := e.recipeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	summaries := make([]RecipeSummary, 0, len(names))
	for _, name := range names {
		recipe, err := e.recipeRepo.Load(name)
		if err != nil {
			continue
		}
		summaries = append(summaries, RecipeSummary{
			Name:        recipe.Name,
			Method:      recipe.Options.Method,
			Description: recipe.Description,
			UpdatedAt:   recipe.UpdatedAt,
		})
	}
	return summaries, nil
}

// DeleteRecipe deletes a recipe by name.
func (e *Engine) DeleteRecipe(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.recipeRepo.Delete(name); err != nil {
		return err
	}
	return nil
}
