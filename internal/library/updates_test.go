package library

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci/novel-reader-go/internal/content"
)

func seriesWith(title string, chapters map[string]content.ChapterMeta) Series {
	entry := content.IndexEntry{Title: title, URL: novelURL(title)}
	return newSeries(entry, &content.Manifest{Title: title, Cover: title + ".jpg", Chapters: chapters})
}

func TestLatestReleasesPicksNewestChapterPerNovel(t *testing.T) {
	series := []Series{
		seriesWith("Alpha", map[string]content.ChapterMeta{
			"chapter-1": meta("", 1, 100),
			"chapter-2": meta("", 2, 300),
		}),
		seriesWith("Beta", map[string]content.ChapterMeta{
			"chapter-7": meta("", 7, 200),
		}),
	}

	releases := LatestReleases(series, 8)

	require.Len(t, releases, 2)
	assert.Equal(t, "Alpha", releases[0].NovelTitle)
	assert.Equal(t, "chapter-2", releases[0].Chapter.Key)
	assert.Equal(t, "alpha", releases[0].Slug)
	assert.Equal(t, "Alpha.jpg", releases[0].Cover)
	assert.Equal(t, "Beta", releases[1].NovelTitle)
}

func TestLatestReleasesCapsAndSortsDescending(t *testing.T) {
	for _, n := range []int{0, 3, 8, 12} {
		t.Run(fmt.Sprintf("%d novels", n), func(t *testing.T) {
			var series []Series
			for i := 0; i < n; i++ {
				series = append(series, seriesWith(fmt.Sprintf("Novel %d", i), map[string]content.ChapterMeta{
					"chapter-1": meta("", 1, int64(1000+i)),
				}))
			}

			releases := LatestReleases(series, DefaultLatestLimit)

			assert.Len(t, releases, min(n, 8))
			for i := 1; i < len(releases); i++ {
				assert.Greater(t, releases[i-1].Chapter.LastUpdated, releases[i].Chapter.LastUpdated)
			}
		})
	}
}

func TestLatestReleasesSkipsEmptyNovels(t *testing.T) {
	series := []Series{
		seriesWith("Empty", map[string]content.ChapterMeta{}),
		seriesWith("Nil", nil),
		seriesWith("Full", map[string]content.ChapterMeta{"chapter-1": meta("", 1, 5)}),
		{Entry: content.IndexEntry{Title: "No manifest"}},
	}

	releases := LatestReleases(series, 8)

	require.Len(t, releases, 1)
	assert.Equal(t, "Full", releases[0].NovelTitle)
}

func TestLatestReleasesIgnoresPremium(t *testing.T) {
	s := seriesWith("Alpha", map[string]content.ChapterMeta{"chapter-1": meta("", 1, 100)})
	s.Manifest.PremiumChapters = map[string]content.ChapterMeta{"chapter-2": meta("", 2, 999)}

	releases := LatestReleases([]Series{s}, 8)

	require.Len(t, releases, 1)
	assert.Equal(t, "chapter-1", releases[0].Chapter.Key)
}
