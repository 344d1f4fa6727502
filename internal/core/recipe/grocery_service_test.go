package recipe

import (
	"context"
	"testing"

	aiservice "recipe-assistant/internal/core/ai/service"
	"recipe-assistant/internal/infrastructure/config"
	"recipe-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAI struct {
	content    string
	err        error
	lastPrompt string
	lastModel  string
}

func (f *fakeAI) ProcessRequest(ctx context.Context, prompt string) (*aiservice.Response, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return &aiservice.Response{Content: f.content}, nil
}

func (f *fakeAI) ProcessWithModel(ctx context.Context, prompt string, model string) (*aiservice.Response, error) {
	f.lastModel = model
	return f.ProcessRequest(ctx, prompt)
}

type fakeMailer struct {
	to      []string
	subject string
	body    string
	err     error
}

func (f *fakeMailer) Send(to []string, subject string, htmlBody string) error {
	f.to = to
	f.subject = subject
	f.body = htmlBody
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		OpenRouter: config.OpenRouterConfig{
			Model:        "openai/gpt-3.5-turbo",
			GroceryModel: "openai/gpt-4o-mini",
		},
		Parser: config.ParserConfig{
			MaxResponseSize: 50000,
			MaxIngredients:  50,
			MaxSteps:        30,
		},
		Grocery: config.GroceryConfig{
			Departments: []string{"Produce", "Dairy", "Pantry", "Other"},
			MaxRecipes:  50,
		},
	}
}

func TestConsolidateIngredients(t *testing.T) {
	t.Parallel()

	recipes := []common.GroceryRecipe{
		{
			Name: "Pasta",
			Ingredients: []common.RecipeIngredient{
				{Quantity: "2", Measurement: "cup", Name: "Flour"},
				{Quantity: "1/2", Measurement: "teaspoon", Name: "salt"},
			},
		},
		{
			Name: "Bread",
			Ingredients: []common.RecipeIngredient{
				{Quantity: "1", Measurement: "Cup", Name: "flour"},
				{Quantity: "", Measurement: "", Name: "yeast"},
			},
		},
	}

	got := ConsolidateIngredients(recipes)

	assert.InDelta(t, 3.0, got[consolidatedKey{Name: "flour", Measurement: "cup"}], 1e-9)
	assert.InDelta(t, 0.5, got[consolidatedKey{Name: "salt", Measurement: "teaspoon"}], 1e-9)
	assert.InDelta(t, 1.0, got[consolidatedKey{Name: "yeast", Measurement: ""}], 1e-9)
}

func TestConsolidateIngredientsSkipsEmptyNames(t *testing.T) {
	t.Parallel()

	recipes := []common.GroceryRecipe{
		{Name: "Weird", Ingredients: []common.RecipeIngredient{{Quantity: "2", Name: "  "}}},
	}
	assert.Empty(t, ConsolidateIngredients(recipes))
}

func TestFormatConsolidatedList(t *testing.T) {
	t.Parallel()

	consolidated := map[consolidatedKey]float64{
		{Name: "salt", Measurement: "teaspoon"}: 0.5,
		{Name: "flour", Measurement: "cup"}:     3,
		{Name: "yeast", Measurement: ""}:        1,
	}

	got := FormatConsolidatedList(consolidated)
	want := "- 3 cup flour\n- 0.5 teaspoon salt\n- 1 yeast"
	assert.Equal(t, want, got)
}

func TestDedupRecipes(t *testing.T) {
	t.Parallel()

	recipes := []common.GroceryRecipe{
		{Name: "Pasta"},
		{Name: "pasta"},
		{Name: "Bread"},
		{Name: "  "},
	}

	got := dedupRecipes(recipes, 50)
	require.Len(t, got, 2)
	assert.Equal(t, "Pasta", got[0].Name)
	assert.Equal(t, "Bread", got[1].Name)
}

func TestDedupRecipesHonorsLimit(t *testing.T) {
	t.Parallel()

	recipes := []common.GroceryRecipe{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	got := dedupRecipes(recipes, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "B", got[1].Name)
}

func TestSendGroceryList(t *testing.T) {
	t.Parallel()

	ai := &fakeAI{content: "<h2>Pantry</h2><ul><li>3 cup Flour</li></ul>"}
	mailer := &fakeMailer{}
	svc := NewGroceryService(testConfig(), ai, mailer)

	recipes := []common.GroceryRecipe{
		{Name: "Pasta", Ingredients: []common.RecipeIngredient{{Quantity: "3", Measurement: "cup", Name: "flour"}}},
	}

	err := svc.SendGroceryList(context.Background(), recipes, "user@example.com")
	require.NoError(t, err)

	assert.Equal(t, "openai/gpt-4o-mini", ai.lastModel)
	assert.Contains(t, ai.lastPrompt, "- 3 cup flour")
	assert.Contains(t, ai.lastPrompt, "Produce, Dairy, Pantry, Other")
	assert.Equal(t, []string{"user@example.com"}, mailer.to)
	assert.Contains(t, mailer.body, "Pantry")
	assert.Contains(t, mailer.body, "<!DOCTYPE html>")
}

func TestSendGroceryListRejectsEmptyRecipes(t *testing.T) {
	t.Parallel()

	svc := NewGroceryService(testConfig(), &fakeAI{content: "x"}, &fakeMailer{})
	err := svc.SendGroceryList(context.Background(), nil, "user@example.com")
	assert.True(t, common.IsValidationError(err))
}

func TestSendGroceryListRejectsBadEmail(t *testing.T) {
	t.Parallel()

	svc := NewGroceryService(testConfig(), &fakeAI{content: "x"}, &fakeMailer{})
	recipes := []common.GroceryRecipe{
		{Name: "Pasta", Ingredients: []common.RecipeIngredient{{Quantity: "1", Name: "flour"}}},
	}
	err := svc.SendGroceryList(context.Background(), recipes, "not-an-email")
	assert.True(t, common.IsValidationError(err))
}

func TestSendGroceryListRejectsRecipesWithoutIngredients(t *testing.T) {
	t.Parallel()

	svc := NewGroceryService(testConfig(), &fakeAI{content: "x"}, &fakeMailer{})
	recipes := []common.GroceryRecipe{{Name: "Empty"}}
	err := svc.SendGroceryList(context.Background(), recipes, "user@example.com")
	assert.True(t, common.IsValidationError(err))
}
