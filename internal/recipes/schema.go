package recipes

import (
	"time"

	"github.com/google/uuid"

	"github.com/danieljhkim/obscura/internal/options"
)

// SchemaVersion is the current recipe file version.
const SchemaVersion = 1

// Recipe is a named, saved set of options.
type Recipe struct {
	// SchemaVersion is the version of this schema
	SchemaVersion int `yaml:"schemaVersion" json:"schemaVersion"`

	// ID uniquely identifies the recipe across renames and machines
	ID string `yaml:"id" json:"id"`

	// Name is the recipe's file name without extension
	Name string `yaml:"name" json:"name"`

	// Description provides additional context about the recipe
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Fingerprint is the hash of Options when the recipe was saved
	Fingerprint string `yaml:"fingerprint,omitempty" json:"fingerprint,omitempty"`

	// CreatedAt is when the recipe was first saved
	CreatedAt time.Time `yaml:"createdAt" json:"createdAt"`

	// UpdatedAt is when the recipe was last saved
	UpdatedAt time.Time `yaml:"updatedAt" json:"updatedAt"`

	// Options are the saved obscure/reveal options
	Options options.Options `yaml:"options" json:"options"`
}

// NewRecipe creates a new Recipe with a fresh ID.
func NewRecipe(name, description string, opts options.Options, createdAt time.Time) *Recipe {
	return &Recipe{
		SchemaVersion: SchemaVersion,
		ID:            uuid.NewString(),
		Name:          name,
		Description:   description,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		Options:       opts,
	}
}
