package handlers

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter 注册全部路由；apiMiddleware 只作用于 /api
func NewRouter(h *Handler, tmpl *template.Template, apiMiddleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(tmpl)
	router.Use(ReaderID())

	// 页面路由
	router.GET("/", h.Home)
	router.GET("/about", h.About)
	router.GET("/browse", h.Browse)
	router.GET("/novel/:slug", h.Series)
	router.GET("/novel/:slug/:chapterKey", h.Reader)
	router.POST("/settings", h.SaveSettings)
	router.NoRoute(h.NotFound)

	// OPDS路由
	opdsGroup := router.Group("/opds")
	{
		opdsGroup.GET("", h.OPDSRoot)
		opdsGroup.GET("/latest", h.OPDSLatest)
		opdsGroup.GET("/series", h.OPDSSeries)
		opdsGroup.GET("/novel/:slug", h.OPDSNovel)
	}

	// REST API路由
	apiGroup := router.Group("/api", apiMiddleware...)
	{
		apiGroup.GET("/novels", h.APINovels)
		apiGroup.GET("/novels/:slug", h.APINovelDetail)
		apiGroup.GET("/novels/:slug/chapters/:key", h.APIChapter)
		apiGroup.GET("/latest", h.APILatest)
		apiGroup.GET("/settings", h.APIGetSettings)
		apiGroup.PUT("/settings", h.APIPutSettings)
		apiGroup.POST("/settings/text-size", h.APIStepTextSize)
		apiGroup.POST("/settings/line-height", h.APIStepLineHeight)
		apiGroup.POST("/settings/reset", h.APIResetSettings)
		apiGroup.GET("/health", h.APIHealth)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
