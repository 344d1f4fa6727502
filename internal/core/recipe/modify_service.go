package recipe

import (
	"context"
	"strings"

	"recipe-assistant/internal/core/parser"
	"recipe-assistant/internal/infrastructure/config"
	"recipe-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	modifyPromptIntro  = "Below is a recipe I would like to modify:\n"
	modifyPromptSuffix = "Modify the above recipe based on the following requirements:\n"
)

// ModifyService 食譜修改服務
type ModifyService struct {
	config *config.Config
	ai     AIClient
	parser *parser.Parser
}

// NewModifyService 創建食譜修改服務
func NewModifyService(cfg *config.Config, ai AIClient) *ModifyService {
	return &ModifyService{
		config: cfg,
		ai:     ai,
		parser: parser.New(parser.Limits{
			MaxResponseSize: cfg.Parser.MaxResponseSize,
			MaxIngredients:  cfg.Parser.MaxIngredients,
			MaxSteps:        cfg.Parser.MaxSteps,
		}),
	}
}

// ModifyRecipe 將既有食譜連同修改需求送入 LLM，解析回傳的新版本
// 第二個返回值為未解析的原始 LLM 回應
func (s *ModifyService) ModifyRecipe(ctx context.Context, existing common.RecipeDetails, message string) (*common.RecipeDetails, string, error) {
	cleaned, err := ValidateMessage(message)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(existing.Name) == "" || len(existing.Ingredients) == 0 {
		return nil, "", common.NewValidationError("recipe 必須包含名稱與至少一項食材")
	}

	prompt := modifyPromptIntro +
		common.FormatRecipeDetails(existing) +
		modifyPromptSuffix +
		cleaned

	resp, err := s.ai.ProcessRequest(ctx, prompt)
	if err != nil {
		common.LogError("食譜修改失敗", zap.Error(err))
		return nil, "", wrapAIError(err)
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, "", common.ErrEmptyAIResponse
	}

	parsed, err := s.parser.Parse(resp.Content)
	if err != nil {
		return nil, "", err
	}

	details := toRecipeDetails(parsed)
	common.LogParseResult(len(details.Ingredients), len(details.Steps), len(parsed.ParseErrors), "")
	return details, resp.Content, nil
}
