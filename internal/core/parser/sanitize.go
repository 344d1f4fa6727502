package parser

import (
	"regexp"
	"strings"
)

// 已知的亂碼序列：UTF-8 多位元組字元被誤當成單位元組編碼解讀後的結果
// 依序修復回原本的單一 Unicode 字元
var mojibakeReplacer = strings.NewReplacer(
	"â€“", "–", // en dash
	"â€”", "—", // em dash
	"â€˜", "‘", // 左單引號
	"â€™", "’", // 右單引號
	"â€œ", "“", // 左雙引號
	"â€", "”", // 右雙引號
	"â€¦", "…", // 刪節號
)

var (
	// 未被上表修復的殘留亂碼：前導字元 â 後接 0~2 個高位字元，一律退回連字號
	mojibakeFallbackPattern = regexp.MustCompile("â[-ÿŒœŠšŸŽžƒˆ˜–—‘-„†-•…‰‹›€™]{0,2}")

	// Unicode 連字號、減號變體
	hyphenPattern = regexp.MustCompile("[‐‑‒–—―−﹘﹣－]")

	// Unicode 引號變體
	singleQuotePattern = regexp.MustCompile("[‘’‚‛′`´]")
	doubleQuotePattern = regexp.MustCompile("[“”„‟″«»]")

	// 控制字元（保留換行與 tab）
	controlPattern = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f\u0080-\u009f]")

	// 空白字元連續段
	whitespacePattern = regexp.MustCompile(`\s+`)

	// HTML 標籤
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// CleanText 修復亂碼並將標點正規化為 ASCII
// 此管線具冪等性：對自身輸出再執行一次結果不變
func CleanText(s string) string {
	// 1. 移除替換字元
	s = strings.ReplaceAll(s, "�", "")

	// 2. 修復已知亂碼序列
	s = mojibakeReplacer.Replace(s)

	// 3. 殘留亂碼退回連字號
	s = mojibakeFallbackPattern.ReplaceAllString(s, "-")

	// 4. 連字號變體統一為 ASCII 連字號
	s = hyphenPattern.ReplaceAllString(s, "-")

	// 5. 引號變體統一為 ASCII 引號
	s = singleQuotePattern.ReplaceAllString(s, "'")
	s = doubleQuotePattern.ReplaceAllString(s, "\"")

	// 6. 移除控制字元（保留換行與 tab）
	s = controlPattern.ReplaceAllString(s, "")

	// 7. 空白收斂為單一空格並修剪頭尾
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripHTML 移除 HTML 標籤，保留標籤內的文字
func StripHTML(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}

// SanitizeText 清理 LLM 輸出的單一欄位：去標籤、修復亂碼、截斷長度
func SanitizeText(s string, maxLen int) string {
	s = CleanText(StripHTML(s))
	runes := []rune(s)
	if len(runes) > maxLen {
		s = strings.TrimSpace(string(runes[:maxLen]))
	}
	return s
}
