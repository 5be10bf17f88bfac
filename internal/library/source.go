package library

import (
	"context"

	"github.com/ricci/novel-reader-go/internal/content"
)

// Source 索引与清单的来源，由 content.Client 实现
type Source interface {
	FetchIndex(ctx context.Context) ([]content.IndexEntry, error)
	FetchManifest(ctx context.Context, url string) (*content.Manifest, error)
}

// Series 索引项与其清单的组合
type Series struct {
	Slug     string
	Entry    content.IndexEntry
	Manifest *content.Manifest

	// LastUpdated 公开章节中最新的更新时间（毫秒）
	LastUpdated int64
}

// Title 优先使用清单中的标题
func (s Series) Title() string {
	if s.Manifest != nil && s.Manifest.Title != "" {
		return s.Manifest.Title
	}
	return s.Entry.Title
}

// ChapterCount 公开章节数量
func (s Series) ChapterCount() int {
	if s.Manifest == nil {
		return 0
	}
	return len(s.Manifest.Chapters)
}

func newSeries(entry content.IndexEntry, manifest *content.Manifest) Series {
	s := Series{Entry: entry, Manifest: manifest, Slug: slugOf(entry)}
	if manifest != nil {
		for _, ch := range manifest.Chapters {
			if int64(ch.LastUpdated) > s.LastUpdated {
				s.LastUpdated = int64(ch.LastUpdated)
			}
		}
	}
	return s
}
