package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ricci/novel-reader-go/internal/content"
)

// fakeSource 内存中的索引与清单
type fakeSource struct {
	mu        sync.Mutex
	entries   []content.IndexEntry
	manifests map[string]*content.Manifest
	indexErr  error
	calls     []string
}

func (f *fakeSource) FetchIndex(_ context.Context) ([]content.IndexEntry, error) {
	if f.indexErr != nil {
		return nil, content.IndexUnavailable(f.indexErr)
	}
	return f.entries, nil
}

func (f *fakeSource) FetchManifest(_ context.Context, url string) (*content.Manifest, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()

	m, ok := f.manifests[url]
	if !ok {
		return nil, content.ManifestUnavailable(url, errors.New("404 Not Found"))
	}
	m.SourceURL = url
	return m, nil
}

func meta(volume string, display float64, updated int64) content.ChapterMeta {
	return content.ChapterMeta{
		URL:            fmt.Sprintf("ch-%v.md", display),
		Volume:         content.Volume(volume),
		DisplayChapter: display,
		LastUpdated:    content.Millis(updated),
	}
}

func keys(chapters []Chapter) []string {
	out := make([]string, len(chapters))
	for i, ch := range chapters {
		out[i] = ch.Key
	}
	return out
}

func novelURL(title string) string {
	return "https://raw.example.com/" + strings.ReplaceAll(strings.ToLower(title), " ", "_") + "/novel.json"
}
