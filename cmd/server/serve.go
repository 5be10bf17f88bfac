package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ricci/novel-reader-go/internal/config"
	"github.com/ricci/novel-reader-go/internal/content"
	"github.com/ricci/novel-reader-go/internal/database"
	"github.com/ricci/novel-reader-go/internal/handlers"
	"github.com/ricci/novel-reader-go/internal/settings"
	"github.com/ricci/novel-reader-go/internal/watcher"
	"github.com/ricci/novel-reader-go/internal/web"
	"github.com/ricci/novel-reader-go/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 初始化日志
	logger.Init(cfg.LogLevel, cfg.IsProduction())
	log.Println("Starting Novel Reader Server...")
	log.Printf("Novel index: %s", cfg.IndexURL)

	// 初始化设置存储
	store, closeStore, err := openSettingsStore(cmd.Context(), cfg)
	if err != nil {
		logger.Error.Printf("Failed to open settings store: %v", err)
		return err
	}
	defer closeStore()
	log.Printf("Settings backend: %s", cfg.SettingsBackend)

	// 设置Gin模式
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.Info.Writer()
	gin.DefaultErrorWriter = logger.Error.Writer()

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	client := content.NewClient(cfg)
	h := handlers.NewHandler(client, settings.NewService(store), cfg)
	router := handlers.NewRouter(h, tmpl, corsMiddleware(cfg))

	// 后台发布监视
	if cfg.WatchSchedule != "" {
		w := watcher.New(client, cfg.FetchConcurrency, cfg.FetchTimeout*2)
		if err := w.Start(cfg.WatchSchedule); err != nil {
			return err
		}
		defer w.Stop()
	} else {
		logger.Warning.Printf("WATCH_SCHEDULE not set, release watcher disabled")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("OPDS Catalog: http://%s/opds", cfg.Addr())
		log.Printf("Server starting on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error.Printf("Failed to start server: %v", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openSettingsStore 按配置选择 sqlite、redis 或内存存储
func openSettingsStore(ctx context.Context, cfg *config.Config) (settings.Store, func(), error) {
	switch cfg.SettingsBackend {
	case "redis":
		rs, err := settings.NewRedisStore(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return rs, closer(rs), nil
	case "memory":
		return settings.NewMemoryStore(), func() {}, nil
	case "sqlite", "":
		db, err := database.NewDB(cfg.SettingsDBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Validate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, closer(db), nil
	default:
		return nil, nil, fmt.Errorf("unknown settings backend %q", cfg.SettingsBackend)
	}
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			slog.Warn("close settings store", slog.String("err", err.Error()))
		}
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	cc := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.CORSOrigins
	}
	cc.AllowMethods = []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodOptions}
	return cors.New(cc)
}
