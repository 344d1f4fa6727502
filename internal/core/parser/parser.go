package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"recipe-assistant/internal/pkg/common"
)

// 不允許出現在 LLM 回應中的標記模式，命中任一即整體拒絕
var blocklistPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)data:`),
	regexp.MustCompile(`(?i)vbscript:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
}

// Parser LLM 回應解析器
// 純函數式：相同輸入必得相同輸出，無共享可變狀態
type Parser struct {
	limits Limits
}

// New 創建解析器
func New(limits Limits) *Parser {
	if limits.MaxResponseSize <= 0 {
		limits = DefaultLimits()
	}
	return &Parser{limits: limits}
}

// jsonIngredient JSON 路徑的食材欄位
type jsonIngredient struct {
	Quantity    string `json:"quantity"`
	Measurement string `json:"measurement"`
	Name        string `json:"name"`
}

// jsonRecipe JSON 路徑的回應結構
type jsonRecipe struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Ingredients []jsonIngredient `json:"ingredients"`
	Steps       []string         `json:"steps"`
}

// Parse 將 LLM 回應文字解析為食譜結構
// 超出大小限制或含不允許標記時整體拒絕，不返回部分結果；
// 個別行解析失敗只降級處理（整行作為名稱或步驟文字），不會中斷
func (p *Parser) Parse(text string) (*Recipe, error) {
	// 大小檢查先於一切分類
	if utf8.RuneCountInString(text) > p.limits.MaxResponseSize {
		return nil, common.ErrInputTooLarge
	}

	for _, pattern := range blocklistPatterns {
		if pattern.MatchString(text) {
			return nil, common.ErrDisallowedContent
		}
	}

	result := &Recipe{
		Name:        "Untitled Recipe",
		Ingredients: []Ingredient{},
		Steps:       []string{},
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return result, nil
	}

	// 先嘗試 JSON 格式，失敗再退回逐行分類
	if strings.HasPrefix(trimmed, "{") {
		if p.parseJSON(trimmed, result) {
			return result, nil
		}
	}

	p.parseLines(trimmed, result)
	return result, nil
}

// parseJSON 嘗試以 JSON 解析回應，成功時就地填入結果並返回 true
func (p *Parser) parseJSON(text string, result *Recipe) bool {
	var doc jsonRecipe
	if err := common.ParseJSON(text, &doc); err != nil {
		// LLM 偶爾輸出未加引號的鍵，補上後重試一次
		if err := common.ParseJSON(common.QuoteJSONKeys(text), &doc); err != nil {
			return false
		}
	}

	if name := SanitizeText(doc.Name, 100); name != "" {
		result.Name = name
	}
	result.Description = SanitizeText(doc.Description, maxFieldLen)
	result.Category = SanitizeText(doc.Category, 100)

	ingredients := doc.Ingredients
	if len(ingredients) > p.limits.MaxIngredients {
		ingredients = ingredients[:p.limits.MaxIngredients]
		result.ParseErrors = append(result.ParseErrors,
			fmt.Sprintf("ingredients truncated to %d", p.limits.MaxIngredients))
	}
	for _, ing := range ingredients {
		name := SanitizeText(ing.Name, maxNameLen)
		if name == "" {
			continue
		}
		result.Ingredients = append(result.Ingredients, Ingredient{
			Quantity:    SanitizeText(ing.Quantity, maxQuantityLen),
			Measurement: truncate(strings.TrimSpace(ing.Measurement), maxMeasurementLen),
			Name:        name,
		})
	}

	steps := doc.Steps
	if len(steps) > p.limits.MaxSteps {
		steps = steps[:p.limits.MaxSteps]
		result.ParseErrors = append(result.ParseErrors,
			fmt.Sprintf("steps truncated to %d", p.limits.MaxSteps))
	}
	for _, step := range steps {
		if s := SanitizeText(step, maxFieldLen); s != "" {
			result.Steps = append(result.Steps, s)
		}
	}

	return true
}

// parseLines 逐行分類後組裝結果
func (p *Parser) parseLines(text string, result *Recipe) {
	c := classifyLines(text)

	if c.name != "" {
		result.Name = SanitizeText(c.name, maxTitleLen)
	} else if heading := headingName(text); heading != "" {
		result.Name = SanitizeText(heading, 100)
	}
	if c.description != "" {
		result.Description = SanitizeText(c.description, maxFieldLen)
	}

	lines := c.ingredientLines
	if len(lines) > p.limits.MaxIngredients {
		lines = lines[:p.limits.MaxIngredients]
		result.ParseErrors = append(result.ParseErrors,
			fmt.Sprintf("ingredients truncated to %d", p.limits.MaxIngredients))
	}
	for _, line := range lines {
		cleaned := SanitizeText(line, maxNameLen)
		if cleaned == "" {
			continue
		}
		result.Ingredients = append(result.Ingredients, TokenizeIngredient(cleaned))
	}

	steps := c.stepLines
	if len(steps) > p.limits.MaxSteps {
		steps = steps[:p.limits.MaxSteps]
		result.ParseErrors = append(result.ParseErrors,
			fmt.Sprintf("steps truncated to %d", p.limits.MaxSteps))
	}
	for _, line := range steps {
		if s := SanitizeText(line, maxFieldLen); s != "" {
			result.Steps = append(result.Steps, s)
		}
	}
}
