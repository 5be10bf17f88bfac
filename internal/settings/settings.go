package settings

import (
	"fmt"
	"strings"
)

const (
	MinTextSize   = 12
	MaxTextSize   = 30
	MinLineHeight = 18
	MaxLineHeight = 40
)

// Fonts 可选字体
var Fonts = []string{"inter", "merriweather", "montserrat"}

// Contrasts 可选对比度
var Contrasts = []string{"normal", "high"}

// ReaderSettings 阅读器显示偏好
type ReaderSettings struct {
	Font       string `json:"font"`
	Size       int    `json:"size"`
	LineHeight int    `json:"lineHeight"`
	Contrast   string `json:"contrast"`
}

// Defaults 默认设置
func Defaults() ReaderSettings {
	return ReaderSettings{
		Font:       "inter",
		Size:       16,
		LineHeight: 24,
		Contrast:   "normal",
	}
}

// Normalize 非法取值回退为默认值，数值限制在允许范围内
func (s ReaderSettings) Normalize() ReaderSettings {
	d := Defaults()

	s.Font = strings.TrimPrefix(strings.ToLower(s.Font), "font-")
	if !contains(Fonts, s.Font) {
		s.Font = d.Font
	}
	if !contains(Contrasts, s.Contrast) {
		s.Contrast = d.Contrast
	}
	if s.Size == 0 {
		s.Size = d.Size
	}
	if s.LineHeight == 0 {
		s.LineHeight = d.LineHeight
	}
	s.Size = clamp(s.Size, MinTextSize, MaxTextSize)
	s.LineHeight = clamp(s.LineHeight, MinLineHeight, MaxLineHeight)

	return s
}

// StepTextSize 按步长调整字号，到达边界后不再变化
func (s *ReaderSettings) StepTextSize(delta int) {
	s.Size = clamp(s.Size+delta, MinTextSize, MaxTextSize)
}

// StepLineHeight 按步长调整行高，到达边界后不再变化
func (s *ReaderSettings) StepLineHeight(delta int) {
	s.LineHeight = clamp(s.LineHeight+delta, MinLineHeight, MaxLineHeight)
}

// SetFont 设置字体，接受带 "font-" 前缀的写法
func (s *ReaderSettings) SetFont(font string) error {
	font = strings.TrimPrefix(strings.ToLower(font), "font-")
	if !contains(Fonts, font) {
		return fmt.Errorf("unknown font %q", font)
	}
	s.Font = font
	return nil
}

// SetContrast 设置对比度
func (s *ReaderSettings) SetContrast(contrast string) error {
	if !contains(Contrasts, contrast) {
		return fmt.Errorf("unknown contrast %q", contrast)
	}
	s.Contrast = contrast
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
