package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	// 服务器配置
	Host        string   `env:"READER_HOST" envDefault:"0.0.0.0"`
	Port        string   `env:"READER_PORT" envDefault:"8080"`
	Environment string   `env:"ENVIRONMENT" envDefault:"development"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// 日志配置
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	// 远程内容配置
	IndexURL         string        `env:"NOVEL_INDEX_URL" envDefault:"https://raw.githubusercontent.com/ASSAROCKT/Apscans-novels-Repo/main/novels.json"`
	BannerURL        string        `env:"BANNER_FEED_URL" envDefault:"https://raw.githubusercontent.com/ASSAROCKT/aphroditescans/refs/heads/main/bannernovels.json"`
	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	FetchConcurrency int           `env:"FETCH_CONCURRENCY" envDefault:"8"`
	LatestLimit      int           `env:"LATEST_LIMIT" envDefault:"8"`

	// 阅读设置存储
	SettingsBackend string `env:"SETTINGS_BACKEND" envDefault:"sqlite"`
	SettingsDBPath  string `env:"SETTINGS_DB_PATH" envDefault:"reader_settings.db"`
	Redis           Redis

	// 站点与后台任务
	SiteConfigPath string `env:"SITE_CONFIG" envDefault:"site.toml"`
	WatchSchedule  string `env:"WATCH_SCHEDULE"`

	Site Site
}

// Redis Redis连接配置
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Load 加载配置
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.FetchConcurrency < 1 {
		cfg.FetchConcurrency = 1
	}
	if cfg.LatestLimit < 1 {
		cfg.LatestLimit = 8
	}

	site, err := LoadSite(cfg.SiteConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Site = site

	return cfg, nil
}

// Addr 监听地址
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProduction 是否为生产环境
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
