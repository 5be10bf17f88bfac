package library

import (
	"sort"
)

// DefaultLatestLimit 首页最新发布的展示数量
const DefaultLatestLimit = 8

// Release 某部小说最近更新的一章
type Release struct {
	NovelTitle string
	Cover      string
	Slug       string
	Chapter    Chapter
}

// LatestReleases 每部小说取更新时间最大的公开章节，按时间倒序并截取前 limit 项。
// 没有章节的小说不产生条目。
func LatestReleases(series []Series, limit int) []Release {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	releases := make([]Release, 0, len(series))
	for _, s := range series {
		latest, ok := latestChapter(s)
		if !ok {
			continue
		}
		releases = append(releases, Release{
			NovelTitle: s.Title(),
			Cover:      s.Manifest.Cover,
			Slug:       s.Slug,
			Chapter:    latest,
		})
	}

	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].Chapter.LastUpdated > releases[j].Chapter.LastUpdated
	})

	if len(releases) > limit {
		releases = releases[:limit]
	}
	return releases
}

func latestChapter(s Series) (Chapter, bool) {
	if s.Manifest == nil || len(s.Manifest.Chapters) == 0 {
		return Chapter{}, false
	}

	// 按升序遍历，时间相同取先遇到的一章
	var latest Chapter
	found := false
	for _, ch := range Public(s.Manifest) {
		if !found || ch.LastUpdated > latest.LastUpdated {
			latest = ch
			found = true
		}
	}
	return latest, found
}
