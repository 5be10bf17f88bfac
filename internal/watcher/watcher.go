package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ricci/novel-reader-go/internal/library"
)

// Watcher 定期加载目录并记录新发布的章节
type Watcher struct {
	src         library.Source
	concurrency int
	timeout     time.Duration

	mu     sync.Mutex
	seen   map[string]struct{}
	primed bool

	cron *cron.Cron
	// OnRelease 每个新发布的章节调用一次
	OnRelease func(library.Release)
}

// New 创建监视器；第一次运行只记录现有章节，不视为新发布
func New(src library.Source, concurrency int, timeout time.Duration) *Watcher {
	return &Watcher{
		src:         src,
		concurrency: concurrency,
		timeout:     timeout,
		seen:        make(map[string]struct{}),
	}
}

// Start 按cron表达式启动定时任务
func (w *Watcher) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, w.run); err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", spec, err)
	}

	w.cron = c
	c.Start()
	slog.Info("Release watcher started", slog.String("schedule", spec))
	return nil
}

// Stop 停止调度并等待正在运行的任务结束
func (w *Watcher) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	slog.Info("Release watcher stopped")
}

func (w *Watcher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if _, err := w.Tick(ctx); err != nil {
		slog.Warn("release watch failed", slog.String("err", err.Error()))
	}
}

// Tick 执行一次检查，返回自上次以来新出现的章节
func (w *Watcher) Tick(ctx context.Context) ([]library.Release, error) {
	series, err := library.LoadCatalog(ctx, w.src, w.concurrency)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var fresh []library.Release
	for _, s := range series {
		for _, ch := range library.Public(s.Manifest) {
			id := s.Slug + "/" + ch.Key
			if _, ok := w.seen[id]; ok {
				continue
			}
			w.seen[id] = struct{}{}
			if w.primed {
				fresh = append(fresh, library.Release{
					NovelTitle: s.Title(),
					Cover:      s.Manifest.Cover,
					Slug:       s.Slug,
					Chapter:    ch,
				})
			}
		}
	}

	if !w.primed {
		w.primed = true
		slog.Info("Release watcher primed", slog.Int("chapters", len(w.seen)))
		return nil, nil
	}

	for _, r := range fresh {
		slog.Info("New chapter released",
			slog.String("novel", r.NovelTitle),
			slog.String("chapter", r.Chapter.Key),
			slog.String("label", r.Chapter.ChapterLabel()),
		)
		if w.OnRelease != nil {
			w.OnRelease(r)
		}
	}
	return fresh, nil
}
