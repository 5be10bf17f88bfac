package render

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// RelativeTime 首页使用的相对时间，如 "Just now"、"5 mins ago"
func RelativeTime(now time.Time, millis int64) string {
	if millis <= 0 {
		return ""
	}

	seconds := int64(now.Sub(time.UnixMilli(millis)) / time.Second)
	if seconds < 60 {
		return "Just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return plural(minutes, "min")
	}
	hours := minutes / 60
	if hours < 24 {
		return plural(hours, "hour")
	}
	return plural(hours/24, "day")
}

// ShortAgo 章节列表使用的紧凑形式，如 "45s ago"、"3d ago"
func ShortAgo(now time.Time, millis int64) string {
	if millis <= 0 {
		return "N/A"
	}

	seconds := int64(now.Sub(time.UnixMilli(millis)) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return strconv.FormatInt(seconds, 10) + "s ago"
	case seconds < 3600:
		return strconv.FormatInt(seconds/60, 10) + "m ago"
	case seconds < 86400:
		return strconv.FormatInt(seconds/3600, 10) + "h ago"
	}
	return strconv.FormatInt(seconds/86400, 10) + "d ago"
}

// Truncate 按字符截断并追加省略号，返回值表示是否发生截断
func Truncate(text string, max int) (string, bool) {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text, false
	}
	runes := []rune(text)
	return string(runes[:max]) + "...", true
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
