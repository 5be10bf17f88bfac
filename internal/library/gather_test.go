package library

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci/novel-reader-go/internal/content"
)

func fiveNovelSource() *fakeSource {
	src := &fakeSource{manifests: map[string]*content.Manifest{}}
	for _, title := range []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"} {
		src.entries = append(src.entries, content.IndexEntry{Title: title, URL: novelURL(title), Status: "ongoing"})
		src.manifests[novelURL(title)] = &content.Manifest{
			Title:    title,
			Chapters: map[string]content.ChapterMeta{"chapter-1": meta("", 1, 10)},
		}
	}
	return src
}

func TestGatherPartialFailure(t *testing.T) {
	src := fiveNovelSource()
	delete(src.manifests, novelURL("Gamma"))

	results := Gather(context.Background(), src, src.entries, 2)

	require.Len(t, results, 5)
	assert.Equal(t, "Gamma", results[2].Entry.Title)
	assert.Equal(t, content.KindManifestUnavailable, content.KindOf(results[2].Err))
	assert.Len(t, src.calls, 5)

	series := Present(results)
	require.Len(t, series, 4)
	for _, s := range series {
		assert.NotEqual(t, "Gamma", s.Title())
	}
}

func TestGatherKeepsInputOrder(t *testing.T) {
	src := fiveNovelSource()

	series := Present(Gather(context.Background(), src, src.entries, 0))

	var titles []string
	for _, s := range series {
		titles = append(titles, s.Title())
	}
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}, titles)
}

func TestLoadCatalog(t *testing.T) {
	src := fiveNovelSource()

	series, err := LoadCatalog(context.Background(), src, 4)

	require.NoError(t, err)
	assert.Len(t, series, 5)
	assert.Equal(t, "alpha", series[0].Slug)
	assert.Equal(t, int64(10), series[0].LastUpdated)
	assert.Equal(t, 1, series[0].ChapterCount())
}

func TestLoadCatalogIndexUnavailable(t *testing.T) {
	src := fiveNovelSource()
	src.indexErr = errors.New("connection refused")

	_, err := LoadCatalog(context.Background(), src, 4)

	assert.Equal(t, content.KindIndexUnavailable, content.KindOf(err))
}

func TestLoadSeries(t *testing.T) {
	src := fiveNovelSource()

	s, err := LoadSeries(context.Background(), src, "delta")
	require.NoError(t, err)
	assert.Equal(t, "Delta", s.Title())
	assert.Equal(t, novelURL("Delta"), s.Manifest.SourceURL)

	_, err = LoadSeries(context.Background(), src, "omega")
	assert.Equal(t, content.KindNovelNotFound, content.KindOf(err))

	delete(src.manifests, novelURL("Beta"))
	_, err = LoadSeries(context.Background(), src, "beta")
	assert.Equal(t, content.KindManifestUnavailable, content.KindOf(err))
}

func TestFindBySlugFirstMatchWins(t *testing.T) {
	entries := []content.IndexEntry{
		{Title: "Hero's Return", URL: "first"},
		{Title: "Heros Return", URL: "second"},
	}

	entry, ok := FindBySlug(entries, "heros-return")
	require.True(t, ok)
	assert.Equal(t, "first", entry.URL)

	_, ok = FindBySlug(entries, "")
	assert.False(t, ok)
}
