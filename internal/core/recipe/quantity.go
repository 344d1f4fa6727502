package recipe

import (
	"strconv"
	"strings"
)

// ParseQuantity 將數量字串轉為 float64，支援分數、帶分數與範圍
// 解析失敗時回傳 1.0
func ParseQuantity(qty string) float64 {
	qty = strings.TrimSpace(qty)
	if qty == "" {
		return 1.0
	}

	// 範圍如 "1-2" 取平均值
	if strings.Contains(qty, "-") && !strings.Contains(qty, "/") {
		parts := strings.SplitN(qty, "-", 2)
		if len(parts) == 2 {
			low := ParseQuantity(parts[0])
			high := ParseQuantity(parts[1])
			return (low + high) / 2
		}
	}

	// 帶分數如 "1 1/2"
	if strings.Contains(qty, " ") && strings.Contains(qty, "/") {
		parts := strings.SplitN(qty, " ", 2)
		whole, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 1.0
		}
		fracParts := strings.Split(strings.TrimSpace(parts[1]), "/")
		if len(fracParts) == 2 {
			num, errN := strconv.ParseFloat(fracParts[0], 64)
			den, errD := strconv.ParseFloat(fracParts[1], 64)
			if errN != nil || errD != nil || den == 0 {
				return 1.0
			}
			return whole + num/den
		}
		return 1.0
	}

	// 簡單分數如 "1/2"
	if strings.Contains(qty, "/") {
		parts := strings.Split(qty, "/")
		if len(parts) == 2 {
			num, errN := strconv.ParseFloat(parts[0], 64)
			den, errD := strconv.ParseFloat(parts[1], 64)
			if errN != nil || errD != nil || den == 0 {
				return 1.0
			}
			return num / den
		}
		return 1.0
	}

	// 小數與整數
	v, err := strconv.ParseFloat(qty, 64)
	if err != nil {
		return 1.0
	}
	return v
}
