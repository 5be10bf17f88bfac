package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ricci/novel-reader-go/internal/config"
	"github.com/ricci/novel-reader-go/internal/content"
	"github.com/ricci/novel-reader-go/internal/library"
	"github.com/ricci/novel-reader-go/internal/settings"
)

// Content 远程内容来源，由 content.Client 实现
type Content interface {
	library.Source
	FetchChapterBody(ctx context.Context, manifest *content.Manifest, key string) (string, error)
	FetchBanner(ctx context.Context) ([]content.BannerItem, error)
}

// Handler HTTP处理器
type Handler struct {
	content  Content
	settings *settings.Service
	config   *config.Config

	now func() time.Time
}

// NewHandler 创建新的处理器
func NewHandler(src Content, svc *settings.Service, cfg *config.Config) *Handler {
	return &Handler{
		content:  src,
		settings: svc,
		config:   cfg,
		now:      time.Now,
	}
}

// page 所有页面共用的数据
type page struct {
	Title string
	Site  config.Site
	Now   time.Time
}

func (h *Handler) page(title string) page {
	return page{Title: title, Site: h.config.Site, Now: h.now()}
}

type errorPage struct {
	page
	Message   string
	AccessURL string
}

// describe 错误对应的状态码与用户可读说明
func describe(err error) (int, string) {
	if e, ok := content.AsError(err); ok {
		return e.Status(), e.Message()
	}
	return http.StatusInternalServerError, "Something went wrong. Please try again later."
}

// renderError 在页面内展示错误并提供返回首页的链接
func (h *Handler) renderError(c *gin.Context, err error) {
	if !alive(c) {
		return
	}

	status, message := describe(err)
	slog.Warn("page failed",
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", status),
		slog.String("err", err.Error()),
	)

	data := errorPage{page: h.page("Error"), Message: message}
	if content.KindOf(err) == content.KindPremiumChapter {
		data.AccessURL = h.config.Site.KofiURL
	}
	c.HTML(status, "error", data)
}

// apiError 以JSON返回错误
func apiError(c *gin.Context, err error) {
	if !alive(c) {
		return
	}

	status, message := describe(err)
	if status >= http.StatusInternalServerError {
		slog.Warn("api request failed", slog.String("path", c.Request.URL.Path), slog.String("err", err.Error()))
	}
	c.JSON(status, gin.H{"error": message})
}

// alive 请求在加载期间被取消时不再渲染
func alive(c *gin.Context) bool {
	if err := c.Request.Context().Err(); err != nil {
		slog.Debug("client went away before render", slog.String("path", c.Request.URL.Path))
		c.Abort()
		return false
	}
	return true
}

// 辅助函数
func getBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

func getIntParam(c *gin.Context, key string, defaultValue, maxValue int) int {
	val := c.Query(key)
	if val == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(val)
	if err != nil || intVal < 1 {
		return defaultValue
	}

	if maxValue > 0 && intVal > maxValue {
		return maxValue
	}

	return intVal
}
