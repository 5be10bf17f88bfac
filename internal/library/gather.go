package library

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ricci/novel-reader-go/internal/content"
	"github.com/ricci/novel-reader-go/internal/metrics"
)

// Result 单个清单的获取结果，Err 非空时该项会被丢弃
type Result struct {
	Entry    content.IndexEntry
	Manifest *content.Manifest
	Err      error
}

// Gather 并发获取所有清单，全部完成后按输入顺序返回结果。
// 单个失败不会中断其他请求。
func Gather(ctx context.Context, src Source, entries []content.IndexEntry, limit int) []Result {
	results := make([]Result, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, entry := range entries {
		g.Go(func() error {
			manifest, err := src.FetchManifest(gctx, entry.URL)
			results[i] = Result{Entry: entry, Manifest: manifest, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Present 丢弃失败的结果并记录日志
func Present(results []Result) []Series {
	series := make([]Series, 0, len(results))
	for _, r := range results {
		if r.Err != nil || r.Manifest == nil {
			reason := "error"
			if r.Err == nil {
				reason = "empty"
			}
			metrics.Fetch.Dropped.WithLabelValues(reason).Inc()
			slog.Warn("manifest dropped from batch",
				slog.String("title", r.Entry.Title),
				slog.String("url", r.Entry.URL),
				slog.Any("err", r.Err),
			)
			continue
		}
		series = append(series, newSeries(r.Entry, r.Manifest))
	}
	return series
}

// LoadCatalog 获取索引与全部清单；索引失败返回错误，单个清单失败被丢弃
func LoadCatalog(ctx context.Context, src Source, limit int) ([]Series, error) {
	entries, err := src.FetchIndex(ctx)
	if err != nil {
		return nil, err
	}
	return Present(Gather(ctx, src, entries, limit)), nil
}

// LoadSeries 按slug定位小说并获取其清单
func LoadSeries(ctx context.Context, src Source, slug string) (Series, error) {
	entries, err := src.FetchIndex(ctx)
	if err != nil {
		return Series{}, err
	}

	entry, ok := FindBySlug(entries, slug)
	if !ok {
		return Series{}, content.NovelNotFound(slug)
	}

	manifest, err := src.FetchManifest(ctx, entry.URL)
	if err != nil {
		return Series{}, err
	}

	return newSeries(entry, manifest), nil
}
