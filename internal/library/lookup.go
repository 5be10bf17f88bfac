package library

import (
	"github.com/ricci/novel-reader-go/internal/content"
	"github.com/ricci/novel-reader-go/internal/slug"
)

// FindBySlug 按标题的slug查找索引项，重名时取索引中的第一项
func FindBySlug(entries []content.IndexEntry, s string) (content.IndexEntry, bool) {
	if s == "" {
		return content.IndexEntry{}, false
	}
	for _, entry := range entries {
		if slugOf(entry) == s {
			return entry, true
		}
	}
	return content.IndexEntry{}, false
}

func slugOf(entry content.IndexEntry) string {
	return slug.Slugify(entry.Title)
}
