package content

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind 错误类别
type Kind int

const (
	KindUnknown Kind = iota
	KindIndexUnavailable
	KindNovelNotFound
	KindManifestUnavailable
	KindChapterNotFound
	KindChapterBodyUnavailable
	KindPremiumChapter
)

func (k Kind) String() string {
	switch k {
	case KindIndexUnavailable:
		return "IndexUnavailable"
	case KindNovelNotFound:
		return "NovelNotFound"
	case KindManifestUnavailable:
		return "ManifestUnavailable"
	case KindChapterNotFound:
		return "ChapterNotFound"
	case KindChapterBodyUnavailable:
		return "ChapterBodyUnavailable"
	case KindPremiumChapter:
		return "PremiumChapterRequiresExternalAccess"
	default:
		return "Unknown"
	}
}

// Error 远程内容错误，Subject 为相关的slug、地址或章节键
type Error struct {
	Kind    Kind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s(%s): %v", e.Kind, e.Subject, e.Err)
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Subject)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message 面向用户的错误说明
func (e *Error) Message() string {
	switch e.Kind {
	case KindIndexUnavailable:
		return "Could not fetch the main list of novels."
	case KindNovelNotFound:
		return fmt.Sprintf("Novel with slug %q not found.", e.Subject)
	case KindManifestUnavailable:
		return fmt.Sprintf("Novel series data not found at %s", e.Subject)
	case KindChapterNotFound:
		return fmt.Sprintf("Chapter %q not found.", strings.TrimPrefix(e.Subject, "chapter-"))
	case KindChapterBodyUnavailable:
		return fmt.Sprintf("Chapter content file not found at %s.", e.Subject)
	case KindPremiumChapter:
		return "This chapter is available early to supporters. Read it through our Ko-fi membership."
	default:
		return "Something went wrong."
	}
}

// Status 对应的HTTP状态码
func (e *Error) Status() int {
	switch e.Kind {
	case KindIndexUnavailable:
		return http.StatusServiceUnavailable
	case KindNovelNotFound, KindChapterNotFound:
		return http.StatusNotFound
	case KindManifestUnavailable, KindChapterBodyUnavailable:
		return http.StatusBadGateway
	case KindPremiumChapter:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// IndexUnavailable 总索引不可用
func IndexUnavailable(err error) *Error {
	return &Error{Kind: KindIndexUnavailable, Err: err}
}

// NovelNotFound 没有与slug对应的小说
func NovelNotFound(slug string) *Error {
	return &Error{Kind: KindNovelNotFound, Subject: slug}
}

// ManifestUnavailable 清单不可用
func ManifestUnavailable(url string, err error) *Error {
	return &Error{Kind: KindManifestUnavailable, Subject: url, Err: err}
}

// ChapterNotFound 清单中没有该章节
func ChapterNotFound(key string) *Error {
	return &Error{Kind: KindChapterNotFound, Subject: key}
}

// ChapterBodyUnavailable 章节正文不可用
func ChapterBodyUnavailable(url string, err error) *Error {
	return &Error{Kind: KindChapterBodyUnavailable, Subject: url, Err: err}
}

// PremiumChapter 付费章节只能通过外部渠道阅读
func PremiumChapter(key string) *Error {
	return &Error{Kind: KindPremiumChapter, Subject: key}
}

// KindOf 取出错误类别
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// AsError 取出 *Error
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
