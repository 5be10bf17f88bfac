package web

import (
	"embed"
	"html/template"
	"net/url"
	"time"

	"github.com/ricci/novel-reader-go/internal/content"
	"github.com/ricci/novel-reader-go/internal/render"
)

//go:embed templates/*.html
var files embed.FS

// Funcs 模板函数
func Funcs() template.FuncMap {
	return template.FuncMap{
		"relativeTime": func(now time.Time, ms content.Millis) string {
			return render.RelativeTime(now, int64(ms))
		},
		"shortAgo": func(now time.Time, ms content.Millis) string {
			return render.ShortAgo(now, int64(ms))
		},
		"pathEscape": url.PathEscape,
		"add":        func(a, b int) int { return a + b },
	}
}

// Templates 解析全部页面模板，页面以 {{define "name"}} 命名
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}
