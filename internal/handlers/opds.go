package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ricci/novel-reader-go/internal/library"
	"github.com/ricci/novel-reader-go/internal/opds"
)

const opdsContentType = "application/atom+xml;charset=utf-8"

func (h *Handler) generator(c *gin.Context) *opds.Generator {
	return opds.NewGenerator(getBaseURL(c), h.config.Site.Name, h.config.Site.KofiURL)
}

// opdsError OPDS客户端只需要状态码与一行说明
func opdsError(c *gin.Context, err error) {
	if !alive(c) {
		return
	}
	status, message := describe(err)
	c.String(status, message)
}

func writeFeed(c *gin.Context, data []byte, err error) {
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate feed")
		return
	}
	c.Data(http.StatusOK, opdsContentType, data)
}

// OPDSRoot OPDS根目录
func (h *Handler) OPDSRoot(c *gin.Context) {
	gen := h.generator(c)

	entries := []opds.Entry{
		gen.CreateNavigationEntry("Latest Releases", "/opds/latest", "The newest chapter of every series"),
		gen.CreateNavigationEntry("All Series", "/opds/series", "Every series from A to Z"),
	}

	data, err := gen.CreateFeed(h.config.Site.Name, "/opds", opds.TypeNavigation, entries)
	writeFeed(c, data, err)
}

// OPDSLatest 最新发布
func (h *Handler) OPDSLatest(c *gin.Context) {
	limit := getIntParam(c, "limit", h.config.LatestLimit, 50)

	series, err := library.LoadCatalog(c.Request.Context(), h.content, h.config.FetchConcurrency)
	if err != nil {
		opdsError(c, err)
		return
	}
	if !alive(c) {
		return
	}

	gen := h.generator(c)
	var entries []opds.Entry
	for _, r := range library.LatestReleases(series, limit) {
		entries = append(entries, gen.CreateReleaseEntry(r))
	}

	data, err := gen.CreateFeed("Latest Releases", "/opds/latest", opds.TypeAcquisition, entries)
	writeFeed(c, data, err)
}

// OPDSSeries 全部系列，按标题排序
func (h *Handler) OPDSSeries(c *gin.Context) {
	series, err := library.LoadCatalog(c.Request.Context(), h.content, h.config.FetchConcurrency)
	if err != nil {
		opdsError(c, err)
		return
	}
	if !alive(c) {
		return
	}

	gen := h.generator(c)
	var entries []opds.Entry
	for _, s := range library.SortByTitle(series) {
		entries = append(entries, gen.CreateSeriesEntry(s))
	}

	data, err := gen.CreateFeed("All Series", "/opds/series", opds.TypeNavigation, entries)
	writeFeed(c, data, err)
}

// OPDSNovel 单部小说的章节，从旧到新
func (h *Handler) OPDSNovel(c *gin.Context) {
	s, err := library.LoadSeries(c.Request.Context(), h.content, c.Param("slug"))
	if err != nil {
		opdsError(c, err)
		return
	}
	if !alive(c) {
		return
	}

	gen := h.generator(c)
	var entries []opds.Entry
	for _, ch := range library.Arrange(library.Collect(s.Manifest), library.OrderOldest) {
		entries = append(entries, gen.CreateChapterEntry(s, ch))
	}

	data, err := gen.CreateFeed(s.Title(), "/opds/novel/"+s.Slug, opds.TypeAcquisition, entries)
	writeFeed(c, data, err)
}
