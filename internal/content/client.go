package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ricci/novel-reader-go/internal/config"
	"github.com/ricci/novel-reader-go/internal/encoding"
	"github.com/ricci/novel-reader-go/internal/metrics"
)

// maxBodySize 单个远程资源的读取上限
const maxBodySize = 16 << 20

// Client 远程内容客户端，不做重试也不做缓存
type Client struct {
	http      *http.Client
	indexURL  string
	bannerURL string
}

// NewClient 创建远程内容客户端
func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.FetchTimeout},
		indexURL:  cfg.IndexURL,
		bannerURL: cfg.BannerURL,
	}
}

// FetchIndex 获取小说总索引
func (c *Client) FetchIndex(ctx context.Context) ([]IndexEntry, error) {
	body, _, err := c.get(ctx, "index", c.indexURL)
	if err != nil {
		return nil, IndexUnavailable(err)
	}

	var entries []IndexEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, IndexUnavailable(fmt.Errorf("decode index: %w", err))
	}

	return entries, nil
}

// FetchManifest 获取单部小说的清单，并记录其来源地址
func (c *Client) FetchManifest(ctx context.Context, url string) (*Manifest, error) {
	body, _, err := c.get(ctx, "manifest", url)
	if err != nil {
		return nil, ManifestUnavailable(url, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		return nil, ManifestUnavailable(url, fmt.Errorf("decode manifest: %w", err))
	}
	manifest.SourceURL = url

	return &manifest, nil
}

// FetchChapterBody 获取章节正文
func (c *Client) FetchChapterBody(ctx context.Context, manifest *Manifest, key string) (string, error) {
	url, err := ChapterURL(manifest, key)
	if err != nil {
		return "", err
	}

	body, contentType, err := c.get(ctx, "chapter", url)
	if err != nil {
		return "", ChapterBodyUnavailable(url, err)
	}

	return encoding.DecodeBody(body, contentType), nil
}

// FetchBanner 获取首页横幅数据
func (c *Client) FetchBanner(ctx context.Context) ([]BannerItem, error) {
	body, _, err := c.get(ctx, "banner", c.bannerURL)
	if err != nil {
		return nil, err
	}

	var items []BannerItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode banner: %w", err)
	}

	return items, nil
}

// ChapterURL 计算章节正文地址
func ChapterURL(manifest *Manifest, key string) (string, error) {
	chapter, ok := manifest.Chapters[key]
	if !ok {
		if _, premium := manifest.PremiumChapters[key]; premium {
			return "", PremiumChapter(key)
		}
		return "", ChapterNotFound(key)
	}

	return BasePath(manifest.SourceURL) + chapter.URL, nil
}

// BasePath 截取到最后一个路径分隔符（含）为止
func BasePath(url string) string {
	return url[:strings.LastIndex(url, "/")+1]
}

func (c *Client) get(ctx context.Context, kind, url string) (body []byte, contentType string, err error) {
	start := time.Now()
	defer func() {
		metrics.Fetch.Observe(kind, start, err)
		if err != nil {
			slog.Debug("fetch failed", slog.String("kind", kind), slog.String("url", url), slog.String("err", err.Error()))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, "", err
	}

	return body, resp.Header.Get("Content-Type"), nil
}
