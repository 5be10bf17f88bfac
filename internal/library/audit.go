package library

import (
	"fmt"
	"sort"

	"github.com/ricci/novel-reader-go/internal/content"
)

// Issue 数据检查发现的问题
type Issue struct {
	Novel   string
	Kind    string
	Subject string
	Detail  string
}

const (
	IssueSlugCollision  = "slug-collision"
	IssueDualListed     = "dual-listed"
	IssueMissingBodyURL = "missing-body-url"
	IssueUnreachable    = "unreachable"
)

// Audit 检查slug冲突、同时出现在公开与付费映射中的章节键、缺少正文地址的章节以及无法获取的清单
func Audit(entries []content.IndexEntry, results []Result) []Issue {
	var issues []Issue

	firstTitle := make(map[string]string)
	for _, entry := range entries {
		s := slugOf(entry)
		if prev, ok := firstTitle[s]; ok {
			issues = append(issues, Issue{
				Novel:   entry.Title,
				Kind:    IssueSlugCollision,
				Subject: s,
				Detail:  fmt.Sprintf("shadowed by %q", prev),
			})
			continue
		}
		firstTitle[s] = entry.Title
	}

	for _, r := range results {
		if r.Err != nil || r.Manifest == nil {
			issues = append(issues, Issue{
				Novel:   r.Entry.Title,
				Kind:    IssueUnreachable,
				Subject: r.Entry.URL,
				Detail:  fmt.Sprint(r.Err),
			})
			continue
		}

		for _, key := range sortedKeys(r.Manifest.Chapters) {
			if _, dup := r.Manifest.PremiumChapters[key]; dup {
				issues = append(issues, Issue{
					Novel:   r.Entry.Title,
					Kind:    IssueDualListed,
					Subject: key,
					Detail:  "public entry takes precedence",
				})
			}
			if r.Manifest.Chapters[key].URL == "" {
				issues = append(issues, Issue{
					Novel:   r.Entry.Title,
					Kind:    IssueMissingBodyURL,
					Subject: key,
				})
			}
		}
	}

	return issues
}

func sortedKeys(m map[string]content.ChapterMeta) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
