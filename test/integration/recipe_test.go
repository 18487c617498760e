package integration

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/obscura/internal/config"
	"github.com/danieljhkim/obscura/internal/engine"
	"github.com/danieljhkim/obscura/internal/options"
)

func TestRecipe_SaveEncodeDecode(t *testing.T) {
	eng, fs, _ := setupTestEngine(t, config.DefaultSettings())
	ctx := context.Background()

	layered := options.Options{
		Method: options.MethodAdvanced,
		Layers: []options.LayerSpec{
			{Type: "table", TableConfig: &options.TableConfig{ShiftPattern: "fibonacci", BaseShift: options.Int(2)}},
			{Type: "transpose", BlockSize: options.Int(4)},
			{Type: "shift", Shift: options.Int(-5)},
			{Type: "reverse"},
		},
	}

	if _, err := eng.SaveRecipe(ctx, &engine.SaveRecipeRequest{
		Name:        "layered",
		Description: "four layers",
		Options:     layered,
	}); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	data, ok := fs.files[filepath.Join(testRecipesDir, "layered.yaml")]
	if !ok {
		t.Fatal("recipe file was not written")
	}
	for _, want := range []string{"method: advanced", "type: transpose", "blockSize: 4", "shiftPattern: fibonacci"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("recipe file missing %q:\n%s", want, data)
		}
	}

	input := "Meet me at the old mill, 9pm."
	encoded, err := eng.Encode(ctx, &engine.EncodeRequest{Text: input, Recipe: "layered", Verify: true})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	direct, err := engine.Obscure(input, layered)
	if err != nil {
		t.Fatalf("Obscure failed: %v", err)
	}
	if encoded.Output != direct {
		t.Errorf("recipe output %q differs from direct output %q", encoded.Output, direct)
	}

	decoded, err := eng.Decode(ctx, &engine.DecodeRequest{Text: encoded.Output, Recipe: "layered"})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Output != input {
		t.Errorf("Decode = %q, want %q", decoded.Output, input)
	}
}

func TestRecipe_FingerprintTracksOptions(t *testing.T) {
	eng, _, clk := setupTestEngine(t, config.DefaultSettings())
	ctx := context.Background()

	first, err := eng.SaveRecipe(ctx, &engine.SaveRecipeRequest{
		Name:    "keyed",
		Options: options.Options{Method: options.MethodPolyalphabetic, PolyConfig: &options.PolyConfig{Keyword: "lemon"}},
	})
	if err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	clk.Advance(time.Minute)
	second, err := eng.SaveRecipe(ctx, &engine.SaveRecipeRequest{
		Name:    "keyed",
		Options: options.Options{Method: options.MethodPolyalphabetic, PolyConfig: &options.PolyConfig{Keyword: "orange"}},
		Force:   true,
	})
	if err != nil {
		t.Fatalf("forced SaveRecipe failed: %v", err)
	}

	if first.Recipe.Fingerprint == "" || first.Recipe.Fingerprint == second.Recipe.Fingerprint {
		t.Errorf("fingerprints should differ: %q vs %q", first.Recipe.Fingerprint, second.Recipe.Fingerprint)
	}

	loaded, err := eng.LoadRecipe(ctx, "keyed")
	if err != nil {
		t.Fatalf("LoadRecipe failed: %v", err)
	}
	if loaded.ID != first.Recipe.ID {
		t.Errorf("ID changed on overwrite: %s -> %s", first.Recipe.ID, loaded.ID)
	}
	if loaded.Options.PolyConfig.Keyword != "orange" {
		t.Errorf("Keyword = %q, want orange", loaded.Options.PolyConfig.Keyword)
	}
	if !loaded.UpdatedAt.After(loaded.CreatedAt) {
		t.Errorf("UpdatedAt %v should be after CreatedAt %v", loaded.UpdatedAt, loaded.CreatedAt)
	}
}

func TestRecipe_CorruptFileIsReported(t *testing.T) {
	eng, fs, _ := setupTestEngine(t, config.DefaultSettings())
	ctx := context.Background()

	fs.files[filepath.Join(testRecipesDir, "broken.yaml")] = []byte("options: [not, a, mapping")
	fs.files[filepath.Join(testRecipesDir, "badlayer.yaml")] = []byte("name: badlayer\noptions:\n  method: advanced\n  layers:\n    - type: scramble\n")

	if _, err := eng.LoadRecipe(ctx, "broken"); err == nil {
		t.Error("expected error loading a corrupt recipe")
	}
	if _, err := eng.LoadRecipe(ctx, "badlayer"); !errors.Is(err, engine.ErrUnknownLayer) {
		t.Errorf("LoadRecipe(badlayer) error = %v, want ErrUnknownLayer", err)
	}

	summaries, err := eng.ListRecipes(ctx)
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "badlayer" {
		t.Errorf("summaries = %+v, want only the parseable recipe", summaries)
	}
}

func TestRecipe_DefaultRecipeFromSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Recipe = "house"
	eng, _, _ := setupTestEngine(t, settings)
	ctx := context.Background()

	if _, err := eng.Encode(ctx, &engine.EncodeRequest{Text: "abc"}); !errors.Is(err, engine.ErrRecipeNotFound) {
		t.Errorf("Encode before save error = %v, want ErrRecipeNotFound", err)
	}

	if _, err := eng.SaveRecipe(ctx, &engine.SaveRecipeRequest{
		Name:    "house",
		Options: options.Options{Method: options.MethodSymbolMap},
	}); err != nil {
		t.Fatalf("SaveRecipe failed: %v", err)
	}

	result, err := eng.Encode(ctx, &engine.EncodeRequest{Text: "Hi!", Verify: true})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Recipe != "house" || result.Method != options.MethodSymbolMap {
		t.Errorf("unexpected result %+v", result)
	}
	if !strings.HasSuffix(result.Output, "!") || strings.ContainsAny(result.Output, "Hi") {
		t.Errorf("Output = %q, want letters replaced and ! kept", result.Output)
	}

	// Explicit options override the default recipe.
	explicit, err := eng.Encode(ctx, &engine.EncodeRequest{
		Text:    "abc",
		Options: &options.Options{Method: options.MethodROT13},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if explicit.Output != "nop" || explicit.Recipe != "" {
		t.Errorf("unexpected result %+v", explicit)
	}
}
