package slug

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
	nonWordChars  = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Slugify 将标题转换为URL路径片段
func Slugify(text string) string {
	if text == "" {
		return ""
	}

	s := strings.TrimFunc(strings.ToLower(text), isSpace)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonWordChars.ReplaceAllString(s, "")
	return hyphenRun.ReplaceAllString(s, "-")
}

// isSpace 与 whitespaceRun 使用同一组空白字符
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
