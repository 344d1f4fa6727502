package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	var out map[string]interface{}
	require.NoError(t, ParseJSON(`{"name":"Pasta"}`, &out))
	assert.Equal(t, "Pasta", out["name"])
}

func TestParseJSONStrictRejectsTrailingContent(t *testing.T) {
	t.Parallel()

	var out map[string]interface{}
	assert.Error(t, ParseJSONStrict(`{"name":"Pasta"} trailing`, &out))
}

func TestQuoteJSONKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unquoted keys", `{name: "Pasta", steps: []}`, `{"name": "Pasta", "steps": []}`},
		{"already quoted", `{"name": "Pasta"}`, `{"name": "Pasta"}`},
		{"nested", `{recipe: {name: "Pasta"}}`, `{"recipe": {"name": "Pasta"}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, QuoteJSONKeys(tt.input))
		})
	}
}

func TestFormatRecipeDetails(t *testing.T) {
	t.Parallel()

	details := RecipeDetails{
		Name:        "Pasta",
		Description: "Simple pasta",
		Ingredients: []RecipeIngredient{
			{Quantity: "2", Measurement: "cup", Name: "flour"},
			{Name: "salt to taste"},
		},
		Steps: []string{"Mix everything", "Cook"},
	}

	got := FormatRecipeDetails(details)
	want := "Recipe Name: Pasta\n" +
		"Description: Simple pasta\n" +
		"Ingredients:\n" +
		"- 2 cup flour\n" +
		"- salt to taste\n" +
		"Instructions:\n" +
		"1. Mix everything\n" +
		"2. Cook\n"
	assert.Equal(t, want, got)
}
