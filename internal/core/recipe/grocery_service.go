package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"recipe-assistant/internal/core/parser"
	"recipe-assistant/internal/infrastructure/config"
	"recipe-assistant/internal/pkg/common"
	"recipe-assistant/internal/pkg/mail"

	"go.uber.org/zap"
)

// consolidatedKey 合併彙總的分組鍵
type consolidatedKey struct {
	Name        string
	Measurement string
}

// GroceryService 購物清單服務
type GroceryService struct {
	config *config.Config
	ai     AIClient
	mailer mail.Mailer
}

// NewGroceryService 創建購物清單服務
func NewGroceryService(cfg *config.Config, ai AIClient, mailer mail.Mailer) *GroceryService {
	return &GroceryService{
		config: cfg,
		ai:     ai,
		mailer: mailer,
	}
}

// SendGroceryList 合併多份食譜的食材，交由 LLM 依賣場分區整理後寄送郵件
func (s *GroceryService) SendGroceryList(ctx context.Context, recipes []common.GroceryRecipe, email string) error {
	recipes = dedupRecipes(recipes, s.config.Grocery.MaxRecipes)
	if len(recipes) == 0 {
		return common.NewValidationError("recipes 不可為空")
	}
	if !strings.Contains(email, "@") {
		return common.NewValidationError("email 格式無效")
	}

	consolidated := ConsolidateIngredients(recipes)
	if len(consolidated) == 0 {
		return common.NewValidationError("所選食譜沒有任何食材")
	}

	ingredientList := FormatConsolidatedList(consolidated)

	common.LogInfo("整理購物清單",
		zap.Int("recipes", len(recipes)),
		zap.Int("consolidated_ingredients", len(consolidated)),
	)

	prompt := s.buildGroceryPrompt(ingredientList)

	resp, err := s.ai.ProcessWithModel(ctx, prompt, s.groceryModel())
	if err != nil {
		common.LogError("購物清單整理失敗", zap.Error(err))
		return err
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return common.ErrEmptyAIResponse
	}

	// LLM 回傳的 HTML 片段僅保留安全範圍內的結構
	content = parser.CleanText(content)

	html := BuildGroceryEmailHTML(content)
	if err := s.mailer.Send([]string{email}, "Your Grocery List", html); err != nil {
		return common.NewError(common.ErrEmailSendFailed.Code, common.ErrEmailSendFailed.Message, common.ErrEmailSendFailed.Status, err)
	}

	common.LogInfo("購物清單已寄出", zap.String("email", email))
	return nil
}

// dedupRecipes 依名稱去除重複食譜並限制數量，保留原始順序
func dedupRecipes(recipes []common.GroceryRecipe, max int) []common.GroceryRecipe {
	seen := make(map[string]bool, len(recipes))
	out := make([]common.GroceryRecipe, 0, len(recipes))
	for _, r := range recipes {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}

// ConsolidateIngredients 依 (名稱, 單位) 分組並加總數量
func ConsolidateIngredients(recipes []common.GroceryRecipe) map[consolidatedKey]float64 {
	consolidated := make(map[consolidatedKey]float64)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			name := strings.ToLower(strings.TrimSpace(ing.Name))
			if name == "" {
				continue
			}
			key := consolidatedKey{
				Name:        name,
				Measurement: strings.ToLower(strings.TrimSpace(ing.Measurement)),
			}
			consolidated[key] += ParseQuantity(ing.Quantity)
		}
	}
	return consolidated
}

// FormatConsolidatedList 將彙總結果格式化為提示詞用的清單，依名稱排序
func FormatConsolidatedList(consolidated map[consolidatedKey]float64) string {
	keys := make([]consolidatedKey, 0, len(consolidated))
	for k := range consolidated {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Measurement < keys[j].Measurement
	})

	var sb strings.Builder
	for _, k := range keys {
		qty := fmt.Sprintf("%g", consolidated[k])
		if k.Measurement != "" {
			sb.WriteString(fmt.Sprintf("- %s %s %s\n", qty, k.Measurement, k.Name))
		} else {
			sb.WriteString(fmt.Sprintf("- %s %s\n", qty, k.Name))
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// buildGroceryPrompt 組合賣場分區整理提示詞
func (s *GroceryService) buildGroceryPrompt(ingredientList string) string {
	departments := strings.Join(s.config.Grocery.Departments, ", ")
	return fmt.Sprintf(`Organize the following grocery list by store department.
Use these departments: %s.

Format your response as HTML with:
- <h2> tags for department names
- <ul> and <li> tags for items within each department
- Only include departments that have items
- Keep the quantities and measurements exactly as provided
- Capitalize ingredient names properly

Grocery list to organize:
%s

Return ONLY the HTML content for the departments and items, no additional text or explanation.`, departments, ingredientList)
}

// groceryModel 選擇購物清單專用模型，未設定時使用預設模型
func (s *GroceryService) groceryModel() string {
	if s.config.OpenRouter.GroceryModel != "" {
		return s.config.OpenRouter.GroceryModel
	}
	return s.config.OpenRouter.Model
}

// BuildGroceryEmailHTML 將分區內容包進完整的郵件 HTML
func BuildGroceryEmailHTML(organizedContent string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Your Grocery List</title>
</head>
<body style="font-family: Arial, Helvetica, sans-serif; background-color: #0f172a; margin: 0; padding: 0;">
    <div style="max-width: 600px; margin: 20px auto; background-color: #1e293b; border-radius: 8px; overflow: hidden;">
        <div style="text-align: center; background-color: #0f172a; color: white; padding: 20px 15px; border-bottom: 3px solid #ff6b6b;">
            <h1 style="margin: 0; font-size: 24px;">Your Grocery List</h1>
        </div>
        <div style="padding: 24px; color: #e2e8f0;">
            %s
        </div>
        <div style="text-align: center; padding: 16px; color: #94a3b8; font-size: 12px; background-color: #0f172a;">
            <p>Generated by Recipe Assistant</p>
        </div>
    </div>
</body>
</html>`, organizedContent)
}
