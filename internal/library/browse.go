package library

import (
	"sort"
	"strings"
)

// BrowseQuery 浏览页的筛选条件
type BrowseQuery struct {
	Search string
	Status string // 空或 "all" 表示不过滤
	SortBy string // "title" 或 "last_updated"
	Order  string // "ascending" 或 "descending"
}

// Statuses 浏览页可选的连载状态
var Statuses = []string{"ongoing", "completed", "dropped"}

// Normalize 补全默认值：按更新时间倒序
func (q BrowseQuery) Normalize() BrowseQuery {
	q.Search = strings.TrimSpace(q.Search)
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	if q.Status == "all" {
		q.Status = ""
	}
	if q.SortBy != "title" {
		q.SortBy = "last_updated"
	}
	if q.Order != "ascending" {
		q.Order = "descending"
	}
	return q
}

// Browse 按标题或简介搜索、按状态过滤并排序，返回新切片
func Browse(series []Series, q BrowseQuery) []Series {
	q = q.Normalize()
	search := strings.ToLower(q.Search)

	out := make([]Series, 0, len(series))
	for _, s := range series {
		if search != "" && !matchesSearch(s, search) {
			continue
		}
		if q.Status != "" && !strings.EqualFold(s.Entry.Status, q.Status) {
			continue
		}
		out = append(out, s)
	}

	switch q.SortBy {
	case "title":
		sort.SliceStable(out, func(i, j int) bool {
			return titleLess(out[i], out[j])
		})
		if q.Order == "descending" {
			reverse(out)
		}
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastUpdated > out[j].LastUpdated
		})
		if q.Order == "ascending" {
			reverse(out)
		}
	}

	return out
}

// SortByTitle 按标题升序排列，返回新切片
func SortByTitle(series []Series) []Series {
	out := make([]Series, len(series))
	copy(out, series)
	sort.SliceStable(out, func(i, j int) bool {
		return titleLess(out[i], out[j])
	})
	return out
}

func matchesSearch(s Series, search string) bool {
	if strings.Contains(strings.ToLower(s.Title()), search) {
		return true
	}
	return s.Manifest != nil && strings.Contains(strings.ToLower(s.Manifest.Description), search)
}

func titleLess(a, b Series) bool {
	at, bt := strings.ToLower(a.Title()), strings.ToLower(b.Title())
	if at != bt {
		return at < bt
	}
	return a.Title() < b.Title()
}

func reverse(series []Series) {
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}
}
