package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci/novel-reader-go/internal/config"
	"github.com/ricci/novel-reader-go/internal/database"
	"github.com/ricci/novel-reader-go/internal/settings"
)

func TestOpenSettingsStore(t *testing.T) {
	ctx := context.Background()

	store, closeStore, err := openSettingsStore(ctx, &config.Config{SettingsBackend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &settings.MemoryStore{}, store)
	closeStore()

	store, closeStore, err = openSettingsStore(ctx, &config.Config{
		SettingsBackend: "sqlite",
		SettingsDBPath:  filepath.Join(t.TempDir(), "settings.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &database.DB{}, store)
	closeStore()

	_, _, err = openSettingsStore(ctx, &config.Config{SettingsBackend: "etcd"})
	assert.Error(t, err)
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(corsMiddleware(&config.Config{CORSOrigins: []string{"https://app.example"}}))
	r.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Origin", "https://other.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
