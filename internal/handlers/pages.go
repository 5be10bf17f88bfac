package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/ricci/novel-reader-go/internal/content"
	"github.com/ricci/novel-reader-go/internal/library"
	"github.com/ricci/novel-reader-go/internal/render"
	"github.com/ricci/novel-reader-go/internal/settings"
)

// descriptionLimit 系列简介默认展示的字符数
const descriptionLimit = 300

type homePage struct {
	page
	Banner []content.BannerItem
	Latest []library.Release
	Series []library.Series
}

type browsePage struct {
	page
	Query    library.BrowseQuery
	Statuses []string
	Results  []library.Series
	Total    int
}

type seriesPage struct {
	page
	Series           library.Series
	Manifest         *content.Manifest
	DescriptionShort string
	DescriptionCut   bool
	FirstKey         string
	LastKey          string
	Order            library.Order
	Search           string
	Chapters         []library.Chapter
	Total            int
}

type readerPage struct {
	page
	Series       library.Series
	Chapter      library.Chapter
	ChapterTitle string
	Body         template.HTML
	PrevKey      string
	NextKey      string
	Public       []library.Chapter
	Settings     settings.ReaderSettings
	Fonts        []string
	Contrasts    []string
	ReturnPath   string
	PageURL      string
	DisqusID     string
}

// Home 首页：横幅、最新发布与全部系列
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		banner []content.BannerItem
		series []library.Series
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := h.content.FetchBanner(gctx)
		if err != nil {
			// 横幅失败不影响首页其余部分
			slog.Warn("banner unavailable", slog.String("err", err.Error()))
			return nil
		}
		banner = items
		return nil
	})
	g.Go(func() error {
		var err error
		series, err = library.LoadCatalog(gctx, h.content, h.config.FetchConcurrency)
		return err
	})
	if err := g.Wait(); err != nil {
		h.renderError(c, err)
		return
	}

	if !alive(c) {
		return
	}

	c.HTML(http.StatusOK, "home", homePage{
		page:   h.page(""),
		Banner: banner,
		Latest: library.LatestReleases(series, h.config.LatestLimit),
		Series: library.SortByTitle(series),
	})
}

// Browse 浏览与搜索全部系列
func (h *Handler) Browse(c *gin.Context) {
	query := library.BrowseQuery{
		Search: c.Query("q"),
		Status: c.Query("status"),
		SortBy: c.Query("sort"),
		Order:  c.Query("order"),
	}.Normalize()

	series, err := library.LoadCatalog(c.Request.Context(), h.content, h.config.FetchConcurrency)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if !alive(c) {
		return
	}

	c.HTML(http.StatusOK, "browse", browsePage{
		page:     h.page("Browse"),
		Query:    query,
		Statuses: library.Statuses,
		Results:  library.Browse(series, query),
		Total:    len(series),
	})
}

// Series 系列详情与章节列表
func (h *Handler) Series(c *gin.Context) {
	s, err := library.LoadSeries(c.Request.Context(), h.content, c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	if !alive(c) {
		return
	}

	order := library.ParseOrder(c.Query("order"))
	search := c.Query("q")
	all := library.Collect(s.Manifest)
	first, last := library.Bounds(s.Manifest)
	short, cut := render.Truncate(s.Manifest.Description, descriptionLimit)

	c.HTML(http.StatusOK, "series", seriesPage{
		page:             h.page(s.Title()),
		Series:           s,
		Manifest:         s.Manifest,
		DescriptionShort: short,
		DescriptionCut:   cut,
		FirstKey:         first,
		LastKey:          last,
		Order:            order,
		Search:           search,
		Chapters:         library.Filter(library.Arrange(all, order), search),
		Total:            len(all),
	})
}

// Reader 章节阅读页
func (h *Handler) Reader(c *gin.Context) {
	ctx := c.Request.Context()
	key := c.Param("chapterKey")

	s, err := library.LoadSeries(ctx, h.content, c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	text, err := h.content.FetchChapterBody(ctx, s.Manifest, key)
	if err != nil {
		h.renderError(c, err)
		return
	}

	body, err := render.Markdown(text)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if !alive(c) {
		return
	}

	chapter := library.Chapter{Key: key, ChapterMeta: s.Manifest.Chapters[key]}
	prev, next := library.Adjacent(s.Manifest, key)

	c.HTML(http.StatusOK, "reader", readerPage{
		page:         h.page(chapterTitle(chapter) + " | " + s.Title()),
		Series:       s,
		Chapter:      chapter,
		ChapterTitle: chapterTitle(chapter),
		Body:         body,
		PrevKey:      prev,
		NextKey:      next,
		Public:       library.Public(s.Manifest),
		Settings:     h.settings.Load(ctx, readerID(c)),
		Fonts:        settings.Fonts,
		Contrasts:    settings.Contrasts,
		ReturnPath:   c.Request.URL.Path,
		PageURL:      h.config.Site.BaseURL + c.Request.URL.Path,
		DisqusID:     s.Slug + "-" + key,
	})
}

// About 关于页
func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about", h.page("About"))
}

// NotFound 未知路由
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error", errorPage{
		page:    h.page("Not Found"),
		Message: "Page not found.",
	})
}

// chapterTitle 形如 "Chapter 12 - Title"
func chapterTitle(ch library.Chapter) string {
	title := "Chapter " + ch.ChapterLabel()
	if ch.Title != "" {
		title += " - " + ch.Title
	}
	return title
}
