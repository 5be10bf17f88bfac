package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IndexEntry 小说总索引中的一项
type IndexEntry struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Status string `json:"status,omitempty"`
}

// Manifest 单部小说的清单
type Manifest struct {
	Title           string                 `json:"title"`
	Cover           string                 `json:"cover"`
	Author          string                 `json:"author,omitempty"`
	Artist          string                 `json:"artist,omitempty"`
	Description     string                 `json:"description,omitempty"`
	Genres          []string               `json:"genres,omitempty"`
	Chapters        map[string]ChapterMeta `json:"chapters"`
	PremiumChapters map[string]ChapterMeta `json:"premium_chapters,omitempty"`

	// SourceURL 清单的获取地址，章节正文的相对路径以此为基准
	SourceURL string `json:"-"`
}

// ChapterMeta 章节元数据
type ChapterMeta struct {
	URL            string  `json:"url"`
	DisplayChapter float64 `json:"display_chapter"`
	Volume         Volume  `json:"volume,omitempty"`
	Title          string  `json:"title,omitempty"`
	LastUpdated    Millis  `json:"last_updated"`
}

// ChapterLabel 章节号的展示形式
func (c ChapterMeta) ChapterLabel() string {
	return strconv.FormatFloat(c.DisplayChapter, 'f', -1, 64)
}

// BannerItem 首页横幅
type BannerItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Cover       string `json:"cover"`
}

// Volume 卷号，JSON中可能是数字也可能是字符串（如 "WN"）
type Volume string

// UnmarshalJSON 同时接受数字与字符串
func (v *Volume) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Volume(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("volume: %w", err)
	}
	*v = Volume(n.String())
	return nil
}

// MarshalJSON 合法的JSON数字原样输出，其余（如 "01"、"+1"、"NaN"）输出为字符串
func (v Volume) MarshalJSON() ([]byte, error) {
	raw := []byte(v)
	if _, err := strconv.ParseFloat(string(v), 64); err == nil && json.Valid(raw) {
		return raw, nil
	}
	return json.Marshal(string(v))
}

// Number 卷号的数值，缺失、非数字或非有限值时为0
func (v Volume) Number() float64 {
	n, err := strconv.ParseFloat(string(v), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Visible 是否在界面上展示卷号
func (v Volume) Visible() bool {
	return v != "" && !strings.EqualFold(string(v), "WN")
}

// Millis 毫秒时间戳，JSON中可能是数字也可能是数字字符串
type Millis int64

// UnmarshalJSON 同时接受数字与数字字符串
func (m *Millis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*m = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("last_updated: %w", err)
	}
	*m = Millis(f)
	return nil
}
