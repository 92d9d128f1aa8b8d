package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - str: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行，连续空格在断行后合并
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(str string, face text.Face, maxWidth float64) []string {
	if str == "" || face == nil || maxWidth <= 0 || MeasureText(str, face) <= maxWidth {
		return []string{str}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(str) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if MeasureText(candidate, face) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
		}
		// 单词本身超宽，按字符切开，最后一段留给下一行继续拼接
		pieces := breakWord(word, face, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func breakWord(word string, face text.Face, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]

		candidate := current + string(r)
		if current != "" && MeasureText(candidate, face) > maxWidth {
			pieces = append(pieces, current)
			candidate = string(r)
		}
		current = candidate
	}
	return append(pieces, current)
}

// MeasureText 测量单行文本宽度
func MeasureText(str string, face text.Face) float64 {
	if str == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(str, face, 0)
	return width
}

// CenterText 返回文本在 w x h 区域内居中时相对区域左上角的偏移
func CenterText(str string, face text.Face, w, h float64) (float64, float64) {
	if face == nil {
		return 0, 0
	}
	tw, th := text.Measure(str, face, 0)
	return (w - tw) / 2, (h - th) / 2
}
