package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricci/novel-reader-go/internal/content"
)

func TestCollectOrdersByVolumeThenChapter(t *testing.T) {
	m := &content.Manifest{Chapters: map[string]content.ChapterMeta{
		"c3": meta("2", 1, 0),
		"c1": meta("1", 1, 0),
		"c2": meta("1", 2, 0),
	}}

	chapters := Collect(m)

	assert.Equal(t, []string{"c1", "c2", "c3"}, keys(chapters))

	prev, next := Adjacent(m, "c2")
	assert.Equal(t, "c1", prev)
	assert.Equal(t, "c3", next)
}

func TestCollectUsesDisplayChapterNotKey(t *testing.T) {
	m := &content.Manifest{Chapters: map[string]content.ChapterMeta{
		"chapter-10": meta("", 2, 0),
		"chapter-2":  meta("", 10, 0),
		"chapter-9":  meta("", 1.5, 0),
	}}

	assert.Equal(t, []string{"chapter-9", "chapter-10", "chapter-2"}, keys(Collect(m)))
}

func TestCollectMissingOrSentinelVolumeSortsFirst(t *testing.T) {
	m := &content.Manifest{Chapters: map[string]content.ChapterMeta{
		"v1": meta("1", 1, 0),
		"wn": meta("WN", 5, 0),
		"no": meta("", 3, 0),
	}}

	assert.Equal(t, []string{"no", "wn", "v1"}, keys(Collect(m)))
}

func TestCollectMarksPremiumAndPublicWins(t *testing.T) {
	m := &content.Manifest{
		Chapters: map[string]content.ChapterMeta{
			"chapter-1": meta("", 1, 0),
			"chapter-2": meta("", 2, 0),
		},
		PremiumChapters: map[string]content.ChapterMeta{
			"chapter-2": meta("", 2, 0),
			"chapter-3": meta("", 3, 0),
		},
	}

	chapters := Collect(m)

	assert.Equal(t, []string{"chapter-1", "chapter-2", "chapter-3"}, keys(chapters))
	assert.False(t, chapters[0].Premium)
	assert.False(t, chapters[1].Premium)
	assert.True(t, chapters[2].Premium)
}

func TestArrangeLatestIsReverseOfOldest(t *testing.T) {
	m := &content.Manifest{Chapters: map[string]content.ChapterMeta{
		"a":  meta("1", 1, 0),
		"b":  meta("1", 1, 0),
		"c":  meta("1", 2, 0),
		"d":  meta("2", 1, 0),
		"d2": meta("2", 1, 0),
	}}
	ascending := Collect(m)

	oldest := Arrange(ascending, OrderOldest)
	latest := Arrange(ascending, OrderLatest)

	assert.Equal(t, keys(ascending), keys(oldest))
	for i := range oldest {
		assert.Equal(t, oldest[i].Key, latest[len(latest)-1-i].Key)
	}
	// 入参不被修改
	assert.Equal(t, "a", ascending[0].Key)
}

func TestLessIsTotalOrder(t *testing.T) {
	chapters := []Chapter{
		{Key: "a", ChapterMeta: meta("1", 1, 0)},
		{Key: "b", ChapterMeta: meta("1", 2, 0)},
		{Key: "c", ChapterMeta: meta("2", 1, 0)},
		{Key: "d", ChapterMeta: meta("", 7, 0)},
		{Key: "e", ChapterMeta: meta("NaN", 3, 0)},
		{Key: "f", ChapterMeta: meta("01", 1, 0)},
		{Key: "g", ChapterMeta: meta("+1", 4, 0)},
		{Key: "h", ChapterMeta: meta("Inf", 2, 0)},
	}

	for _, x := range chapters {
		assert.False(t, Less(x, x))
		for _, y := range chapters {
			if x.Key == y.Key {
				continue
			}
			assert.NotEqual(t, Less(x, y), Less(y, x), "%s vs %s", x.Key, y.Key)
			for _, z := range chapters {
				if Less(x, y) && Less(y, z) {
					assert.True(t, Less(x, z))
				}
			}
		}
	}
}

func TestCollectNonFiniteVolumeSortsAsZero(t *testing.T) {
	m := &content.Manifest{Chapters: map[string]content.ChapterMeta{
		"one":  meta("01", 1, 0),
		"nan":  meta("NaN", 5, 0),
		"plus": meta("+1", 2, 0),
	}}

	assert.Equal(t, []string{"nan", "one", "plus"}, keys(Collect(m)))
}

func TestFilter(t *testing.T) {
	chapters := []Chapter{
		{Key: "c1", ChapterMeta: content.ChapterMeta{Volume: "1", DisplayChapter: 1, Title: "The Awakening"}},
		{Key: "c2", ChapterMeta: content.ChapterMeta{Volume: "1", DisplayChapter: 12, Title: "Sword Dance"}},
		{Key: "c3", ChapterMeta: content.ChapterMeta{Volume: "2", DisplayChapter: 21, Title: "Aftermath"}},
	}

	assert.Equal(t, []string{"c2"}, keys(Filter(chapters, "sword")))
	assert.Equal(t, []string{"c2", "c3"}, keys(Filter(chapters, "2")))
	assert.Equal(t, []string{"c3"}, keys(Filter(chapters, "AFT")))
	assert.Equal(t, []string{"c1", "c2", "c3"}, keys(Filter(chapters, "  ")))
	assert.Empty(t, Filter(chapters, "nothing like this"))
}

func TestAdjacentSkipsPremium(t *testing.T) {
	m := &content.Manifest{
		Chapters: map[string]content.ChapterMeta{
			"chapter-1": meta("", 1, 0),
			"chapter-3": meta("", 3, 0),
		},
		PremiumChapters: map[string]content.ChapterMeta{
			"chapter-2": meta("", 2, 0),
		},
	}

	prev, next := Adjacent(m, "chapter-1")
	assert.Equal(t, "", prev)
	assert.Equal(t, "chapter-3", next)

	prev, next = Adjacent(m, "chapter-3")
	assert.Equal(t, "chapter-1", prev)
	assert.Equal(t, "", next)

	prev, next = Adjacent(m, "chapter-2")
	assert.Equal(t, "", prev)
	assert.Equal(t, "", next)
}

func TestBounds(t *testing.T) {
	m := &content.Manifest{
		Chapters: map[string]content.ChapterMeta{
			"chapter-2": meta("", 2, 0),
			"chapter-1": meta("", 1, 0),
			"chapter-5": meta("", 5, 0),
		},
		PremiumChapters: map[string]content.ChapterMeta{
			"chapter-6": meta("", 6, 0),
		},
	}

	first, last := Bounds(m)
	assert.Equal(t, "chapter-1", first)
	assert.Equal(t, "chapter-5", last)

	first, last = Bounds(&content.Manifest{})
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, OrderOldest, ParseOrder("oldest"))
	assert.Equal(t, OrderOldest, ParseOrder("OLDEST"))
	assert.Equal(t, OrderLatest, ParseOrder(""))
	assert.Equal(t, OrderLatest, ParseOrder("whatever"))
}
