package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ricci/novel-reader-go/internal/content"
	"github.com/ricci/novel-reader-go/internal/library"
	"github.com/ricci/novel-reader-go/internal/render"
	"github.com/ricci/novel-reader-go/internal/settings"
)

type novelSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Status      string `json:"status,omitempty"`
	Cover       string `json:"cover"`
	Author      string `json:"author,omitempty"`
	Chapters    int    `json:"chapters"`
	LastUpdated int64  `json:"last_updated"`
}

type apiChapter struct {
	Key string `json:"key"`
	content.ChapterMeta
	Premium bool `json:"premium"`
}

type apiRelease struct {
	NovelTitle string     `json:"novel_title"`
	Slug       string     `json:"slug"`
	Cover      string     `json:"cover"`
	Chapter    apiChapter `json:"chapter"`
}

type stepRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func summarize(s library.Series) novelSummary {
	return novelSummary{
		Slug:        s.Slug,
		Title:       s.Title(),
		Status:      s.Entry.Status,
		Cover:       s.Manifest.Cover,
		Author:      s.Manifest.Author,
		Chapters:    s.ChapterCount(),
		LastUpdated: s.LastUpdated,
	}
}

func toAPIChapters(chapters []library.Chapter) []apiChapter {
	out := make([]apiChapter, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, apiChapter{Key: ch.Key, ChapterMeta: ch.ChapterMeta, Premium: ch.Premium})
	}
	return out
}

// APINovels REST API小说列表，支持与浏览页相同的筛选参数
func (h *Handler) APINovels(c *gin.Context) {
	query := library.BrowseQuery{
		Search: c.Query("q"),
		Status: c.Query("status"),
		SortBy: c.Query("sort"),
		Order:  c.Query("order"),
	}

	series, err := library.LoadCatalog(c.Request.Context(), h.content, h.config.FetchConcurrency)
	if err != nil {
		apiError(c, err)
		return
	}
	if !alive(c) {
		return
	}

	results := library.Browse(series, query)
	novels := make([]novelSummary, 0, len(results))
	for _, s := range results {
		novels = append(novels, summarize(s))
	}

	c.JSON(http.StatusOK, gin.H{
		"novels": novels,
		"total":  len(series),
	})
}

// APINovelDetail REST API小说详情与章节列表
func (h *Handler) APINovelDetail(c *gin.Context) {
	s, err := library.LoadSeries(c.Request.Context(), h.content, c.Param("slug"))
	if err != nil {
		apiError(c, err)
		return
	}
	if !alive(c) {
		return
	}

	all := library.Collect(s.Manifest)
	chapters := library.Filter(library.Arrange(all, library.ParseOrder(c.Query("order"))), c.Query("q"))
	first, last := library.Bounds(s.Manifest)

	c.JSON(http.StatusOK, gin.H{
		"novel":       summarize(s),
		"artist":      s.Manifest.Artist,
		"description": s.Manifest.Description,
		"genres":      s.Manifest.Genres,
		"first":       first,
		"latest":      last,
		"total":       len(all),
		"chapters":    toAPIChapters(chapters),
	})
}

// APIChapter REST API章节正文
func (h *Handler) APIChapter(c *gin.Context) {
	ctx := c.Request.Context()
	key := c.Param("key")

	s, err := library.LoadSeries(ctx, h.content, c.Param("slug"))
	if err != nil {
		apiError(c, err)
		return
	}

	text, err := h.content.FetchChapterBody(ctx, s.Manifest, key)
	if err != nil {
		apiError(c, err)
		return
	}

	body, err := render.Markdown(text)
	if err != nil {
		apiError(c, err)
		return
	}
	if !alive(c) {
		return
	}

	chapter := library.Chapter{Key: key, ChapterMeta: s.Manifest.Chapters[key]}
	prev, next := library.Adjacent(s.Manifest, key)

	c.JSON(http.StatusOK, gin.H{
		"novel":   s.Title(),
		"slug":    s.Slug,
		"title":   chapterTitle(chapter),
		"chapter": toAPIChapters([]library.Chapter{chapter})[0],
		"text":    text,
		"html":    string(body),
		"prev":    prev,
		"next":    next,
	})
}

// APILatest REST API最新发布
func (h *Handler) APILatest(c *gin.Context) {
	limit := getIntParam(c, "limit", h.config.LatestLimit, 50)

	series, err := library.LoadCatalog(c.Request.Context(), h.content, h.config.FetchConcurrency)
	if err != nil {
		apiError(c, err)
		return
	}
	if !alive(c) {
		return
	}

	releases := library.LatestReleases(series, limit)
	out := make([]apiRelease, 0, len(releases))
	for _, r := range releases {
		out = append(out, apiRelease{
			NovelTitle: r.NovelTitle,
			Slug:       r.Slug,
			Cover:      r.Cover,
			Chapter:    toAPIChapters([]library.Chapter{r.Chapter})[0],
		})
	}

	c.JSON(http.StatusOK, gin.H{"releases": out})
}

// APIGetSettings 读取当前读者的设置
func (h *Handler) APIGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Load(c.Request.Context(), readerID(c)))
}

// APIPutSettings 覆盖保存整条设置
func (h *Handler) APIPutSettings(c *gin.Context) {
	ctx := c.Request.Context()
	id := readerID(c)

	rs := h.settings.Load(ctx, id)
	if err := c.ShouldBindJSON(&rs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings payload"})
		return
	}
	if err := rs.SetFont(rs.Font); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := rs.SetContrast(rs.Contrast); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settings.Save(ctx, id, rs); err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs.Normalize())
}

// APIStepTextSize 字号加减一档
func (h *Handler) APIStepTextSize(c *gin.Context) {
	h.step(c, func(rs *settings.ReaderSettings, delta int) { rs.StepTextSize(delta) })
}

// APIStepLineHeight 行高加减一档
func (h *Handler) APIStepLineHeight(c *gin.Context) {
	h.step(c, func(rs *settings.ReaderSettings, delta int) { rs.StepLineHeight(delta) })
}

func (h *Handler) step(c *gin.Context, apply func(*settings.ReaderSettings, int)) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta must be 1 or -1"})
		return
	}

	delta := 1
	if req.Delta < 0 {
		delta = -1
	}

	rs, err := h.settings.Update(c.Request.Context(), readerID(c), func(rs *settings.ReaderSettings) error {
		apply(rs, delta)
		return nil
	})
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// APIResetSettings 恢复默认设置并删除记录
func (h *Handler) APIResetSettings(c *gin.Context) {
	rs, err := h.settings.Reset(c.Request.Context(), readerID(c))
	if err != nil {
		apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// APIHealth 健康检查
func (h *Handler) APIHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	// 测试总索引是否可达
	entries, err := h.content.FetchIndex(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"index":     "unreachable",
			"settings":  h.config.SettingsBackend,
			"error":     err.Error(),
			"timestamp": h.now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"index":       "reachable",
		"settings":    h.config.SettingsBackend,
		"novel_count": len(entries),
		"timestamp":   h.now().UTC().Format(time.RFC3339),
	})
}
