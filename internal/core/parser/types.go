package parser

// Ingredient 解析出的單一食材
// quantity / measurement / name 皆可為空，但輸出的食材至少要有 name
type Ingredient struct {
	Quantity    string `json:"quantity"`
	Measurement string `json:"measurement"`
	Name        string `json:"name"`
}

// Recipe 一次 LLM 回應解析出的暫態食譜結構
// 僅存在於使用者確認表單前，不做任何持久化
type Recipe struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	ParseErrors []string     `json:"parse_errors,omitempty"`
}

// Limits 解析限制
type Limits struct {
	MaxResponseSize int // 輸入字元數上限，超過直接拒絕
	MaxIngredients  int
	MaxSteps        int
}

// DefaultLimits 預設解析限制
func DefaultLimits() Limits {
	return Limits{
		MaxResponseSize: 50000,
		MaxIngredients:  50,
		MaxSteps:        30,
	}
}

// 各欄位長度上限
const (
	maxQuantityLen    = 50
	maxMeasurementLen = 50
	maxNameLen        = 200
	maxTitleLen       = 1000
	maxFieldLen       = 500
)
