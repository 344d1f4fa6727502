package recipe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"recipe-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "a pasta dish", "a pasta dish", false},
		{"trims whitespace", "  pasta  ", "pasta", false},
		{"strips control characters", "pa\x00sta", "pasta", false},
		{"keeps newlines", "pasta\nwith sauce", "pasta\nwith sauce", false},
		{"too short", "a", "", true},
		{"empty", "", "", true},
		{"too long", strings.Repeat("a", 1001), "", true},
		{"max length ok", strings.Repeat("a", 1000), strings.Repeat("a", 1000), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ValidateMessage(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, common.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateRecipe(t *testing.T) {
	t.Parallel()

	ai := &fakeAI{content: "Recipe Name: Pasta\nIngredients:\n- 2 cups flour\n1. Mix everything\n"}
	svc := NewCreateService(testConfig(), ai)

	got, raw, err := svc.CreateRecipe(context.Background(), "a simple pasta recipe")
	require.NoError(t, err)
	assert.Equal(t, ai.content, raw)

	assert.True(t, strings.HasPrefix(ai.lastPrompt, "Create me a recipe based on the following requirements:\n"))
	assert.Contains(t, ai.lastPrompt, "a simple pasta recipe")

	assert.Equal(t, "Pasta", got.Name)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "2", got.Ingredients[0].Quantity)
	assert.Equal(t, "cup", got.Ingredients[0].Measurement)
	assert.Equal(t, "flour", got.Ingredients[0].Name)
	require.Len(t, got.Steps, 1)
	assert.Equal(t, "Mix everything", got.Steps[0])
}

func TestCreateRecipeRejectsInvalidMessage(t *testing.T) {
	t.Parallel()

	svc := NewCreateService(testConfig(), &fakeAI{content: "x"})
	_, _, err := svc.CreateRecipe(context.Background(), "a")
	assert.True(t, common.IsValidationError(err))
}

func TestCreateRecipeWrapsAIError(t *testing.T) {
	t.Parallel()

	svc := NewCreateService(testConfig(), &fakeAI{err: errors.New("upstream down")})
	_, _, err := svc.CreateRecipe(context.Background(), "a pasta recipe")
	require.Error(t, err)

	var customErr *common.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrAIServiceError.Code, customErr.Code)
	assert.EqualError(t, err, "upstream down")
}

func TestCreateRecipeKeepsCustomAIError(t *testing.T) {
	t.Parallel()

	svc := NewCreateService(testConfig(), &fakeAI{err: common.ErrTooManyRequests})
	_, _, err := svc.CreateRecipe(context.Background(), "a pasta recipe")

	var customErr *common.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrTooManyRequests.Code, customErr.Code)
}

func TestCreateRecipeRejectsEmptyAIResponse(t *testing.T) {
	t.Parallel()

	svc := NewCreateService(testConfig(), &fakeAI{content: "   "})
	_, _, err := svc.CreateRecipe(context.Background(), "a pasta recipe")
	assert.ErrorIs(t, err, common.ErrEmptyAIResponse)
}

func TestModifyRecipe(t *testing.T) {
	t.Parallel()

	ai := &fakeAI{content: "Recipe Name: Vegan Pasta\nIngredients:\n- 2 cups flour\n1. Mix everything\n"}
	svc := NewModifyService(testConfig(), ai)

	existing := common.RecipeDetails{
		Name: "Pasta",
		Ingredients: []common.RecipeIngredient{
			{Quantity: "2", Measurement: "cup", Name: "flour"},
		},
		Steps: []string{"Mix everything"},
	}

	got, _, err := svc.ModifyRecipe(context.Background(), existing, "make it vegan")
	require.NoError(t, err)

	assert.Contains(t, ai.lastPrompt, "Below is a recipe I would like to modify:\n")
	assert.Contains(t, ai.lastPrompt, "Recipe Name: Pasta")
	assert.Contains(t, ai.lastPrompt, "Modify the above recipe based on the following requirements:\nmake it vegan")
	assert.Equal(t, "Vegan Pasta", got.Name)
}

func TestModifyRecipeRequiresRecipe(t *testing.T) {
	t.Parallel()

	svc := NewModifyService(testConfig(), &fakeAI{content: "x"})
	_, _, err := svc.ModifyRecipe(context.Background(), common.RecipeDetails{}, "make it vegan")
	assert.True(t, common.IsValidationError(err))
}
