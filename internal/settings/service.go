package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// KeyPrefix 设置记录的键前缀，后接读者ID
const KeyPrefix = "novelReaderSettings"

// Service 读取、保存、重置阅读设置
type Service struct {
	store Store
}

// NewService 创建设置服务
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Key 读者对应的存储键
func Key(readerID string) string {
	if readerID == "" {
		return KeyPrefix
	}
	return KeyPrefix + ":" + readerID
}

// Load 读取设置；记录不存在或无法解析时返回默认值，不返回错误
func (s *Service) Load(ctx context.Context, readerID string) ReaderSettings {
	raw, err := s.store.Get(ctx, Key(readerID))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("failed to read reader settings", slog.String("reader", readerID), slog.String("err", err.Error()))
		}
		return Defaults()
	}

	loaded := Defaults()
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		slog.Warn("stored reader settings are malformed", slog.String("reader", readerID), slog.String("err", err.Error()))
		return Defaults()
	}

	return loaded.Normalize()
}

// Save 覆盖保存整条记录
func (s *Service) Save(ctx context.Context, readerID string, settings ReaderSettings) error {
	data, err := json.Marshal(settings.Normalize())
	if err != nil {
		return fmt.Errorf("marshal reader settings: %w", err)
	}

	if err := s.store.Set(ctx, Key(readerID), string(data)); err != nil {
		return fmt.Errorf("save reader settings: %w", err)
	}
	return nil
}

// Reset 删除记录并返回默认值
func (s *Service) Reset(ctx context.Context, readerID string) (ReaderSettings, error) {
	if err := s.store.Delete(ctx, Key(readerID)); err != nil {
		return Defaults(), fmt.Errorf("reset reader settings: %w", err)
	}
	return Defaults(), nil
}

// Update 读取、修改并保存
func (s *Service) Update(ctx context.Context, readerID string, mutate func(*ReaderSettings) error) (ReaderSettings, error) {
	current := s.Load(ctx, readerID)
	if err := mutate(&current); err != nil {
		return current, err
	}
	if err := s.Save(ctx, readerID, current); err != nil {
		return current, err
	}
	return current, nil
}
