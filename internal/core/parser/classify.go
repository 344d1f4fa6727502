package parser

import (
	"regexp"
	"strings"
)

// section 分類器目前所在的區塊
type section int

const (
	sectionNone section = iota
	sectionIngredients
	sectionSteps
)

var (
	// 步驟行、編號行的前綴（"1." "2." ...）
	numberedPrefixPattern = regexp.MustCompile(`^\s*\d+\.\s*`)

	// 食材行的項目符號前綴
	bulletPrefixPattern = regexp.MustCompile(`^\s*[-*\x{2022}]\s*`)
)

// classified 分類器輸出：逐行掃描後累積的原始資料
type classified struct {
	name            string
	description     string
	ingredientLines []string
	stepLines       []string
}

// classifyLines 逐行掃描 LLM 回應，追蹤目前區塊並收集食材行與步驟行
// 區塊狀態以明確的列舉值在單次掃描中傳遞，不依賴可變閉包
func classifyLines(text string) classified {
	var result classified
	current := sectionNone

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)

		// 標題與描述：取第一個冒號之後的內容
		switch {
		case strings.Contains(lower, "recipe name:") ||
			strings.Contains(lower, "title:") ||
			strings.Contains(lower, "name:"):
			if result.name == "" {
				result.name = truncate(valueAfterColon(line), maxTitleLen)
			}
			continue
		case strings.Contains(lower, "description:"):
			if result.description == "" {
				result.description = truncate(valueAfterColon(line), maxFieldLen)
			}
			continue
		case strings.Contains(lower, "ingredients:"):
			// 區塊標頭本身不帶資料
			current = sectionIngredients
			continue
		case strings.Contains(lower, "instructions:") ||
			strings.Contains(lower, "steps:") ||
			strings.Contains(lower, "directions:"):
			current = sectionSteps
			continue
		}

		switch current {
		case sectionIngredients:
			// 編號行視為步驟的開始：LLM 經常省略步驟標頭直接編號
			if numberedPrefixPattern.MatchString(line) {
				current = sectionSteps
				result.stepLines = append(result.stepLines, numberedPrefixPattern.ReplaceAllString(line, ""))
				continue
			}
			if bulletPrefixPattern.MatchString(line) {
				result.ingredientLines = append(result.ingredientLines, bulletPrefixPattern.ReplaceAllString(line, ""))
			}
		case sectionSteps:
			if numberedPrefixPattern.MatchString(line) {
				result.stepLines = append(result.stepLines, numberedPrefixPattern.ReplaceAllString(line, ""))
			}
		}
		// 其餘行一律忽略，不累積
	}

	return result
}

// valueAfterColon 取第一個冒號之後的內容並修剪空白
func valueAfterColon(line string) string {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line[idx+1:])
}

// 取自 Markdown 標題的名稱（"# Pasta" 形式），分類規則未命中時的補充來源
var headingPattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

func headingName(text string) string {
	m := headingPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
