package recipe

import (
	"context"
	"errors"
	"strings"
	"unicode"

	aiservice "recipe-assistant/internal/core/ai/service"
	"recipe-assistant/internal/core/parser"
	"recipe-assistant/internal/infrastructure/config"
	"recipe-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	minMessageLen = 2
	maxMessageLen = 1000

	createPromptPrefix = "Create me a recipe based on the following requirements:\n"
)

// AIClient AI 呼叫介面，方便測試替換
type AIClient interface {
	ProcessRequest(ctx context.Context, prompt string) (*aiservice.Response, error)
	ProcessWithModel(ctx context.Context, prompt string, model string) (*aiservice.Response, error)
}

// CreateService 食譜生成服務
type CreateService struct {
	config *config.Config
	ai     AIClient
	parser *parser.Parser
}

// NewCreateService 創建食譜生成服務
func NewCreateService(cfg *config.Config, ai AIClient) *CreateService {
	return &CreateService{
		config: cfg,
		ai:     ai,
		parser: parser.New(parser.Limits{
			MaxResponseSize: cfg.Parser.MaxResponseSize,
			MaxIngredients:  cfg.Parser.MaxIngredients,
			MaxSteps:        cfg.Parser.MaxSteps,
		}),
	}
}

// ValidateMessage 驗證使用者需求描述，回傳清理後的訊息
func ValidateMessage(message string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, message)
	cleaned = strings.TrimSpace(cleaned)

	n := len([]rune(cleaned))
	if n < minMessageLen || n > maxMessageLen {
		return "", common.NewValidationError("message 長度必須介於 2 到 1000 字元")
	}
	return cleaned, nil
}

// CreateRecipe 依使用者需求生成食譜並解析為結構化資料
// 第二個返回值為未解析的原始 LLM 回應，供前端顯示或除錯
func (s *CreateService) CreateRecipe(ctx context.Context, message string) (*common.RecipeDetails, string, error) {
	cleaned, err := ValidateMessage(message)
	if err != nil {
		return nil, "", err
	}

	prompt := createPromptPrefix + cleaned

	resp, err := s.ai.ProcessRequest(ctx, prompt)
	if err != nil {
		common.LogError("食譜生成失敗", zap.Error(err))
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

// wrapAIError 將 LLM 呼叫失敗統一包成 AI 服務錯誤，保留原始錯誤
func wrapAIError(err error) error {
	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		return err
	}
	return common.NewError(common.ErrAIServiceError.Code, common.ErrAIServiceError.Message, common.ErrAIServiceError.Status, err)
}

// toRecipeDetails 轉換解析結果並正規化計量單位
func toRecipeDetails(parsed *parser.Recipe) *common.RecipeDetails {
	details := &common.RecipeDetails{
		Name:        parsed.Name,
		Description: parsed.Description,
		Category:    parsed.Category,
		Ingredients: make([]common.RecipeIngredient, 0, len(parsed.Ingredients)),
		Steps:       append([]string{}, parsed.Steps...),
	}
	for _, ing := range parsed.Ingredients {
		details.Ingredients = append(details.Ingredients, common.RecipeIngredient{
			Quantity:    ing.Quantity,
			Measurement: parser.NormalizeMeasurement(ing.Measurement),
			Name:        ing.Name,
		})
	}
	return details
}
