package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

var (
	// Info 信息日志
	Info *log.Logger
	// Warning 警告日志
	Warning *log.Logger
	// Error 错误日志
	Error *log.Logger
)

// Init 初始化日志系统
func Init(level string, production bool) {
	InitWithWriter(os.Stdout, level, production)
}

// InitWithWriter 使用指定输出初始化日志系统
func InitWithWriter(w io.Writer, level string, production bool) {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: !production,
	}

	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	Info = slog.NewLogLogger(handler, slog.LevelInfo)
	Warning = slog.NewLogLogger(handler, slog.LevelWarn)
	Error = slog.NewLogLogger(handler, slog.LevelError)
}

// ParseLevel 解析日志级别
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
