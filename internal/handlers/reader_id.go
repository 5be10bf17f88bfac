package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	readerCookie = "reader_id"
	readerIDKey  = "readerID"
	readerMaxAge = 365 * 24 * 60 * 60
)

// ReaderID 为每位访客分配稳定的匿名ID，阅读设置以此为键保存
func ReaderID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(readerCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(readerCookie, id, readerMaxAge, "/", "", c.Request.TLS != nil, true)
		c.Set(readerIDKey, id)
		c.Next()
	}
}

func readerID(c *gin.Context) string {
	return c.GetString(readerIDKey)
}
