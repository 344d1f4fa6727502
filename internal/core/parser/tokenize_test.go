package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeIngredient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Ingredient
	}{
		{
			name: "quantity unit and name",
			line: "2 cups flour",
			want: Ingredient{Quantity: "2", Measurement: "cups", Name: "flour"},
		},
		{
			name: "fraction quantity",
			line: "1/2 tsp salt",
			want: Ingredient{Quantity: "1/2", Measurement: "tsp", Name: "salt"},
		},
		{
			name: "decimal quantity",
			line: "1.5 kg potatoes",
			want: Ingredient{Quantity: "1.5", Measurement: "kg", Name: "potatoes"},
		},
		{
			name: "range quantity",
			line: "1-2 cloves garlic",
			want: Ingredient{Quantity: "1-2", Measurement: "cloves", Name: "garlic"},
		},
		{
			name: "quantity without unit",
			line: "2 eggs",
			want: Ingredient{Quantity: "2", Measurement: "", Name: "eggs"},
		},
		{
			name: "no quantity falls back to name only",
			line: "salt to taste",
			want: Ingredient{Quantity: "", Measurement: "", Name: "salt to taste"},
		},
		{
			name: "unit with trailing period",
			line: "3 tbsp. olive oil",
			want: Ingredient{Quantity: "3", Measurement: "tbsp.", Name: "olive oil"},
		},
		{
			name: "multi word unit",
			line: "8 fl oz milk",
			want: Ingredient{Quantity: "8", Measurement: "fl oz", Name: "milk"},
		},
		{
			name: "uppercase unit captured as written",
			line: "1 Cup sugar",
			want: Ingredient{Quantity: "1", Measurement: "Cup", Name: "sugar"},
		},
		{
			name: "empty line yields empty name",
			line: "",
			want: Ingredient{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TokenizeIngredient(tt.line))
		})
	}
}

func TestTokenizeIngredientCapsLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 300)
	got := TokenizeIngredient(long)
	assert.LessOrEqual(t, len(got.Name), maxNameLen)
	assert.Empty(t, got.Quantity)
	assert.Empty(t, got.Measurement)
}
