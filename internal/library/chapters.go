package library

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ricci/novel-reader-go/internal/content"
)

// Order 章节排序方式
type Order string

const (
	OrderLatest Order = "latest"
	OrderOldest Order = "oldest"
)

// ParseOrder 解析排序参数，默认为 latest
func ParseOrder(s string) Order {
	if strings.EqualFold(s, string(OrderOldest)) {
		return OrderOldest
	}
	return OrderLatest
}

// Chapter 合并后的章节，Premium 表示只能通过外部渠道阅读
type Chapter struct {
	Key string
	content.ChapterMeta
	Premium bool
}

// Collect 合并公开章节与付费章节，按卷号、章节号升序排列。
// 同一键同时出现在两个映射中时以公开章节为准。
func Collect(m *content.Manifest) []Chapter {
	if m == nil {
		return nil
	}

	merged := make(map[string]Chapter, len(m.Chapters)+len(m.PremiumChapters))
	for key, meta := range m.PremiumChapters {
		merged[key] = Chapter{Key: key, ChapterMeta: meta, Premium: true}
	}
	for key, meta := range m.Chapters {
		merged[key] = Chapter{Key: key, ChapterMeta: meta}
	}

	chapters := make([]Chapter, 0, len(merged))
	for _, ch := range merged {
		chapters = append(chapters, ch)
	}
	sortAscending(chapters)

	return chapters
}

// Public 仅包含可在站内阅读的章节，升序
func Public(m *content.Manifest) []Chapter {
	if m == nil {
		return nil
	}

	chapters := make([]Chapter, 0, len(m.Chapters))
	for key, meta := range m.Chapters {
		chapters = append(chapters, Chapter{Key: key, ChapterMeta: meta})
	}
	sortAscending(chapters)

	return chapters
}

// Arrange 按排序方式返回新切片；latest 恰为 oldest 的逆序
func Arrange(ascending []Chapter, order Order) []Chapter {
	out := make([]Chapter, len(ascending))
	copy(out, ascending)

	if order == OrderLatest {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Filter 按卷号、章节号、标题组成的字符串做不区分大小写的子串过滤，不改变顺序
func Filter(chapters []Chapter, query string) []Chapter {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return chapters
	}

	var out []Chapter
	for _, ch := range chapters {
		if strings.Contains(searchText(ch), query) {
			out = append(out, ch)
		}
	}
	return out
}

// Adjacent 计算前后章节，只在公开章节中遍历；不存在时返回空字符串
func Adjacent(m *content.Manifest, key string) (prev, next string) {
	chapters := Public(m)
	for i, ch := range chapters {
		if ch.Key != key {
			continue
		}
		if i > 0 {
			prev = chapters[i-1].Key
		}
		if i < len(chapters)-1 {
			next = chapters[i+1].Key
		}
		return prev, next
	}
	return "", ""
}

// Bounds 第一章与最新一章（仅公开章节）
func Bounds(m *content.Manifest) (first, last string) {
	chapters := Public(m)
	if len(chapters) == 0 {
		return "", ""
	}
	return chapters[0].Key, chapters[len(chapters)-1].Key
}

// Less 章节的全序：卷号、章节号，最后以键兜底保证结果稳定
func Less(a, b Chapter) bool {
	av, bv := a.Volume.Number(), b.Volume.Number()
	if av != bv {
		return av < bv
	}
	if a.DisplayChapter != b.DisplayChapter {
		return a.DisplayChapter < b.DisplayChapter
	}
	return a.Key < b.Key
}

func sortAscending(chapters []Chapter) {
	sort.Slice(chapters, func(i, j int) bool {
		return Less(chapters[i], chapters[j])
	})
}

func searchText(ch Chapter) string {
	return strings.ToLower(fmt.Sprintf("%s %s %s", ch.Volume, ch.ChapterLabel(), ch.Title))
}
