package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ricci/novel-reader-go/internal/settings"
)

// errUnknownAction 表单中的操作无法识别
var errUnknownAction = errors.New("unknown settings action")

// applyForm 按表单字段修改设置；每个字段独立生效
func applyForm(c *gin.Context) func(*settings.ReaderSettings) error {
	return func(rs *settings.ReaderSettings) error {
		if font := c.PostForm("font"); font != "" {
			if err := rs.SetFont(font); err != nil {
				return err
			}
		}
		if contrast := c.PostForm("contrast"); contrast != "" {
			if err := rs.SetContrast(contrast); err != nil {
				return err
			}
		}

		switch c.PostForm("action") {
		case "":
		case "text-size-up":
			rs.StepTextSize(1)
		case "text-size-down":
			rs.StepTextSize(-1)
		case "line-height-up":
			rs.StepLineHeight(1)
		case "line-height-down":
			rs.StepLineHeight(-1)
		default:
			return errUnknownAction
		}
		return nil
	}
}

// SaveSettings 阅读页设置表单，保存后回到原页面
func (h *Handler) SaveSettings(c *gin.Context) {
	ctx := c.Request.Context()
	id := readerID(c)

	var err error
	if c.PostForm("action") == "reset" {
		_, err = h.settings.Reset(ctx, id)
	} else {
		_, err = h.settings.Update(ctx, id, applyForm(c))
	}
	if err != nil {
		slog.Warn("settings not saved", slog.String("reader", id), slog.String("err", err.Error()))
	}

	c.Redirect(http.StatusSeeOther, returnPath(c.PostForm("return")))
}

// returnPath 只允许站内相对路径
func returnPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}
