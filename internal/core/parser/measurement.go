package parser

import (
	"regexp"
	"sort"
	"strings"
)

// CanonicalMeasurements 下游表單接受的固定單位集合
var CanonicalMeasurements = []string{
	"gram", "ounce", "pound", "kilogram",
	"teaspoon", "tablespoon", "fluid ounce",
	"cup", "pint", "quart", "gallon",
	"milliliter", "liter",
	"pinch", "dash", "dollop", "handful",
	"clove", "sprig", "piece", "slice", "whole",
}

// measurementSynonyms 單位同義詞表：複數、縮寫與標點變體對應到正規單位
// 查詢時一律轉小寫，表中鍵也全為小寫
var measurementSynonyms = map[string]string{
	// gram
	"g": "gram", "g.": "gram", "gr": "gram", "gram": "gram", "grams": "gram",
	// ounce
	"oz": "ounce", "oz.": "ounce", "ounce": "ounce", "ounces": "ounce",
	// pound
	"lb": "pound", "lb.": "pound", "lbs": "pound", "lbs.": "pound",
	"pound": "pound", "pounds": "pound",
	// kilogram
	"kg": "kilogram", "kg.": "kilogram", "kilo": "kilogram", "kilos": "kilogram",
	"kilogram": "kilogram", "kilograms": "kilogram",
	// teaspoon
	"tsp": "teaspoon", "tsp.": "teaspoon", "tsps": "teaspoon",
	"teaspoon": "teaspoon", "teaspoons": "teaspoon",
	// tablespoon
	"tbsp": "tablespoon", "tbsp.": "tablespoon", "tbsps": "tablespoon", "tbs": "tablespoon",
	"tablespoon": "tablespoon", "tablespoons": "tablespoon",
	// fluid ounce
	"fl oz": "fluid ounce", "fl. oz.": "fluid ounce", "fl.oz.": "fluid ounce",
	"floz": "fluid ounce", "fluid ounce": "fluid ounce", "fluid ounces": "fluid ounce",
	// cup
	"cup": "cup", "cups": "cup",
	// pint
	"pt": "pint", "pt.": "pint", "pint": "pint", "pints": "pint",
	// quart
	"qt": "quart", "qt.": "quart", "quart": "quart", "quarts": "quart",
	// gallon
	"gal": "gallon", "gal.": "gallon", "gallon": "gallon", "gallons": "gallon",
	// milliliter
	"ml": "milliliter", "ml.": "milliliter",
	"milliliter": "milliliter", "milliliters": "milliliter",
	"millilitre": "milliliter", "millilitres": "milliliter",
	// liter
	"l": "liter", "l.": "liter",
	"liter": "liter", "liters": "liter", "litre": "liter", "litres": "liter",
	// pinch
	"pinch": "pinch", "pinches": "pinch",
	// dash
	"dash": "dash", "dashes": "dash",
	// dollop
	"dollop": "dollop", "dollops": "dollop",
	// handful
	"handful": "handful", "handfuls": "handful",
	// clove
	"clove": "clove", "cloves": "clove",
	// sprig
	"sprig": "sprig", "sprigs": "sprig",
	// piece
	"pc": "piece", "pcs": "piece", "piece": "piece", "pieces": "piece",
	// slice
	"slice": "slice", "slices": "slice",
	// whole
	"whole": "whole",
}

// unitAlternation 供 tokenizer 正則使用的單位替代式，長詞優先避免被短詞搶先匹配
var unitAlternation = buildUnitAlternation()

func buildUnitAlternation() string {
	keys := make([]string, 0, len(measurementSynonyms))
	for k := range measurementSynonyms {
		keys = append(keys, k)
	}
	// 長度遞減排序，確保 "fluid ounces" 先於 "fluid"、"tbsp." 先於 "tbsp"
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(quoted, "|")
}

// NormalizeMeasurement 將原始單位 token 對應到正規單位
// 查無對應時原樣返回，由下游 UI 顯示原值供使用者修正，永不報錯
func NormalizeMeasurement(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return token
	}
	if canonical, ok := measurementSynonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return token
}

// IsCanonicalMeasurement 檢查是否為正規單位
func IsCanonicalMeasurement(s string) bool {
	for _, m := range CanonicalMeasurements {
		if s == m {
			return true
		}
	}
	return false
}
