package opds

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ricci/novel-reader-go/internal/library"
)

const (
	TypeNavigation  = "application/atom+xml;profile=opds-catalog;kind=navigation"
	TypeAcquisition = "application/atom+xml;profile=opds-catalog;kind=acquisition"
	TypeHTML        = "text/html"

	RelSubsection = "subsection"
	RelAlternate  = "alternate"
	RelImage      = "http://opds-spec.org/image"
	RelThumbnail  = "http://opds-spec.org/image/thumbnail"
	RelOpenAccess = "http://opds-spec.org/acquisition/open-access"
	RelBuy        = "http://opds-spec.org/acquisition/buy"
)

// Feed OPDS feed结构
type Feed struct {
	XMLName   xml.Name `xml:"feed"`
	Xmlns     string   `xml:"xmlns,attr"`
	XmlnsOPDS string   `xml:"xmlns:opds,attr"`

	Title   string  `xml:"title"`
	ID      string  `xml:"id"`
	Updated string  `xml:"updated"`
	Author  *Author `xml:"author,omitempty"`

	Links   []Link  `xml:"link"`
	Entries []Entry `xml:"entry"`

	// 分页信息
	TotalResults *int `xml:"opds:totalResults,omitempty"`
}

// Entry OPDS条目
type Entry struct {
	Title      string     `xml:"title"`
	ID         string     `xml:"id"`
	Updated    string     `xml:"updated,omitempty"`
	Summary    string     `xml:"summary,omitempty"`
	Authors    []Author   `xml:"author,omitempty"`
	Categories []Category `xml:"category,omitempty"`
	Links      []Link     `xml:"link"`
}

// Author 作者
type Author struct {
	Name string `xml:"name"`
}

// Category 分类
type Category struct {
	Term  string `xml:"term,attr"`
	Label string `xml:"label,attr,omitempty"`
}

// Link 链接
type Link struct {
	Rel   string `xml:"rel,attr"`
	Href  string `xml:"href,attr"`
	Type  string `xml:"type,attr,omitempty"`
	Title string `xml:"title,attr,omitempty"`
}

// Generator OPDS生成器
type Generator struct {
	BaseURL   string
	SiteName  string
	AccessURL string // 付费章节的外部获取地址

	now func() time.Time
}

// NewGenerator 创建OPDS生成器
func NewGenerator(baseURL, siteName, accessURL string) *Generator {
	return &Generator{
		BaseURL:   baseURL,
		SiteName:  siteName,
		AccessURL: accessURL,
		now:       time.Now,
	}
}

// CreateFeed 创建OPDS feed，id由路径派生，同一路径每次生成相同的id
func (g *Generator) CreateFeed(title, path, kind string, entries []Entry) ([]byte, error) {
	total := len(entries)
	feed := Feed{
		Xmlns:     "http://www.w3.org/2005/Atom",
		XmlnsOPDS: "http://opds-spec.org/2010/catalog",
		Title:     title,
		ID:        g.id("feed", path),
		Updated:   g.now().UTC().Format(time.RFC3339),
		Author:    &Author{Name: g.SiteName},
		Links: []Link{
			{Rel: "self", Href: g.BaseURL + path, Type: kind},
			{Rel: "start", Href: g.BaseURL + "/opds", Type: TypeNavigation},
		},
		Entries:      entries,
		TotalResults: &total,
	}

	data, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed %s: %w", path, err)
	}
	return append([]byte(xml.Header), data...), nil
}

// CreateNavigationEntry 创建导航条目
func (g *Generator) CreateNavigationEntry(title, href, description string) Entry {
	return Entry{
		Title:   title,
		ID:      g.id("nav", href),
		Updated: g.now().UTC().Format(time.RFC3339),
		Summary: description,
		Links: []Link{
			{Rel: RelSubsection, Href: g.BaseURL + href, Type: TypeNavigation},
		},
	}
}

// CreateSeriesEntry 小说条目，指向该小说的章节feed
func (g *Generator) CreateSeriesEntry(s library.Series) Entry {
	entry := Entry{
		Title:   s.Title(),
		ID:      g.id("novel", s.Slug),
		Updated: millisToRFC3339(s.LastUpdated),
		Links: []Link{
			{Rel: RelSubsection, Href: g.BaseURL + "/opds/novel/" + url.PathEscape(s.Slug), Type: TypeAcquisition},
			{Rel: RelAlternate, Href: g.BaseURL + "/novel/" + url.PathEscape(s.Slug), Type: TypeHTML},
		},
	}

	if m := s.Manifest; m != nil {
		entry.Summary = m.Description
		if m.Author != "" {
			entry.Authors = append(entry.Authors, Author{Name: m.Author})
		}
		for _, genre := range m.Genres {
			entry.Categories = append(entry.Categories, Category{Term: genre, Label: genre})
		}
		if m.Cover != "" {
			entry.Links = append(entry.Links,
				Link{Rel: RelImage, Href: m.Cover, Type: imageType(m.Cover)},
				Link{Rel: RelThumbnail, Href: m.Cover, Type: imageType(m.Cover)},
			)
		}
	}
	return entry
}

// CreateChapterEntry 章节条目；公开章节链接到阅读页，付费章节链接到外部获取地址
func (g *Generator) CreateChapterEntry(s library.Series, ch library.Chapter) Entry {
	title := "Chapter " + ch.ChapterLabel()
	if ch.Title != "" {
		title += " - " + ch.Title
	}
	if ch.Volume.Visible() {
		title = "Vol. " + string(ch.Volume) + " " + title
	}

	entry := Entry{
		Title:   title,
		ID:      g.id("chapter", s.Slug+"/"+ch.Key),
		Updated: millisToRFC3339(int64(ch.LastUpdated)),
	}

	if ch.Premium {
		entry.Summary = "Premium chapter"
		entry.Links = []Link{{Rel: RelBuy, Href: g.AccessURL, Type: TypeHTML, Title: "Read early access"}}
		return entry
	}

	entry.Links = []Link{{
		Rel:  RelOpenAccess,
		Href: g.BaseURL + "/novel/" + url.PathEscape(s.Slug) + "/" + url.PathEscape(ch.Key),
		Type: TypeHTML,
	}}
	return entry
}

// CreateReleaseEntry 最新发布条目
func (g *Generator) CreateReleaseEntry(r library.Release) Entry {
	s := library.Series{Slug: r.Slug}
	entry := g.CreateChapterEntry(s, r.Chapter)
	entry.Title = r.NovelTitle + ": " + entry.Title
	if r.Cover != "" {
		entry.Links = append(entry.Links, Link{Rel: RelThumbnail, Href: r.Cover, Type: imageType(r.Cover)})
	}
	return entry
}

// id 基于站点地址的UUIDv5
func (g *Generator) id(kind, name string) string {
	ns := uuid.NewSHA1(uuid.NameSpaceURL, []byte(g.BaseURL))
	return "urn:uuid:" + uuid.NewSHA1(ns, []byte(kind+":"+name)).String()
}

func millisToRFC3339(ms int64) string {
	if ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

// imageType 按扩展名推断封面MIME类型
func imageType(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return "image/jpeg"
	}

	mimeTypes := map[string]string{
		".png":  "image/png",
		".webp": "image/webp",
		".gif":  "image/gif",
	}
	if mime, ok := mimeTypes[strings.ToLower(path.Ext(u.Path))]; ok {
		return mime
	}
	return "image/jpeg"
}
