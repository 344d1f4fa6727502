package common

import (
	"fmt"
	"strings"
)

// RecipeIngredient 食材（quantity / measurement / name 皆為顯示用字串）
type RecipeIngredient struct {
	Quantity    string `json:"quantity"`
	Measurement string `json:"measurement"`
	Name        string `json:"name"`
}

// RecipeDetails 一份完整食譜的傳輸結構
// 注意：欄位名稱要與前端表單一致
type RecipeDetails struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    string             `json:"category,omitempty"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Steps       []string           `json:"steps"`
}

// GroceryRecipe 購物清單請求中的一份食譜
type GroceryRecipe struct {
	Name        string             `json:"name"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// FormatRecipeDetails 將食譜格式化為提示詞中的文字區塊
func FormatRecipeDetails(recipe RecipeDetails) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recipe Name: %s\n", recipe.Name))
	if recipe.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", recipe.Description))
	}
	sb.WriteString("Ingredients:\n")
	for _, ing := range recipe.Ingredients {
		sb.WriteString("- ")
		if ing.Quantity != "" {
			sb.WriteString(ing.Quantity + " ")
		}
		if ing.Measurement != "" {
			sb.WriteString(ing.Measurement + " ")
		}
		sb.WriteString(ing.Name + "\n")
	}
	sb.WriteString("Instructions:\n")
	for i, step := range recipe.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	return sb.String()
}

// AIRequest AI 請求結構
type AIRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

// AIResponse AI 響應結構
type AIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
