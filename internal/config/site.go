package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Site 站点级展示配置，来自可选的TOML文件
type Site struct {
	Name            string   `toml:"name"`
	BaseURL         string   `toml:"base_url"`
	KofiURL         string   `toml:"kofi_url"`
	DisqusShortname string   `toml:"disqus_shortname"`
	About           []string `toml:"about"`
}

// DefaultSite 默认站点配置
func DefaultSite() Site {
	return Site{
		Name:    "Alucard Translations",
		BaseURL: "https://alucardtranslations.org",
		KofiURL: "https://ko-fi.com/alucardnovels",
		About: []string{
			"We are a dedicated group of enthusiasts passionate about bringing captivating stories from Japanese to English, ensuring a smooth and enjoyable reading experience for our community.",
			"Browse every series from the Browse page, follow the latest releases on the home page, and read chapters in the built-in reader with adjustable font, text size, line height and contrast.",
		},
	}
}

// LoadSite 读取站点配置文件，文件不存在时使用默认值
func LoadSite(path string) (Site, error) {
	site := DefaultSite()
	if path == "" {
		return site, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return site, nil
	}

	if _, err := toml.DecodeFile(path, &site); err != nil {
		return site, fmt.Errorf("decode site config %s: %w", path, err)
	}

	return site, nil
}
