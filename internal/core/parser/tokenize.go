package parser

import (
	"regexp"
	"strings"
)

// ingredientLinePattern 匹配「數量 + 可選單位 + 名稱」
// 數量可為整數、小數、分數或連字號範圍；單位取自同義詞表，長詞優先
// 多詞修飾語（如 "1 15-oz can diced tomatoes"）會整段併入名稱
var ingredientLinePattern = regexp.MustCompile(
	`(?i)^\s*(?:(\d+(?:[/-]\d+)?(?:\.\d+)?)\s+)?(?:(` + unitAlternation + `)\s+)?(.+)$`,
)

// TokenizeIngredient 將清理後的食材行拆為數量、單位與名稱
// 行首的項目符號或編號應先由呼叫端移除
// 無法匹配時整行作為名稱，數量與單位為空
func TokenizeIngredient(line string) Ingredient {
	m := ingredientLinePattern.FindStringSubmatch(line)
	if m == nil {
		return Ingredient{Name: truncate(strings.TrimSpace(line), maxNameLen)}
	}

	quantity := strings.TrimSpace(m[1])
	measurement := strings.TrimSpace(m[2])
	name := strings.TrimSpace(m[3])

	// 名稱為空時退回整行
	if name == "" {
		return Ingredient{Name: truncate(strings.TrimSpace(line), maxNameLen)}
	}

	return Ingredient{
		Quantity:    truncate(quantity, maxQuantityLen),
		Measurement: truncate(measurement, maxMeasurementLen),
		Name:        truncate(name, maxNameLen),
	}
}

// truncate 依字元數截斷
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return strings.TrimSpace(string(runes[:maxLen]))
}
