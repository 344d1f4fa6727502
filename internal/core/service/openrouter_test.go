package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses spaces", "a  recipe   with  spaces", "a recipe with spaces"},
		{"keeps newlines", "Ingredients:\n- 2 cups   flour\n- 1 egg", "Ingredients:\n- 2 cups flour\n- 1 egg"},
		{"trims edges", "  \n a recipe \n  ", "a recipe"},
		{"tabs collapsed", "a\trecipe", "a recipe"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, simplifyPrompt(tt.input))
		})
	}
}
