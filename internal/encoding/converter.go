package encoding

import (
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// fallbacks 未声明字符集且不是合法UTF-8时依次尝试的编码
var fallbacks = []encoding.Encoding{
	simplifiedchinese.GBK,
	traditionalchinese.Big5,
	charmap.Windows1252,
}

// DecodeBody 按Content-Type声明的字符集把章节正文转换为UTF-8
func DecodeBody(body []byte, contentType string) string {
	if len(body) == 0 {
		return ""
	}

	if enc := charsetOf(contentType); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(body); err == nil && utf8.Valid(decoded) {
			return strings.TrimPrefix(string(decoded), "\uFEFF")
		}
	}

	return ConvertToUTF8(string(body))
}

// ConvertToUTF8 将可能的GBK/Big5/Windows-1252编码转换为UTF-8
func ConvertToUTF8(text string) string {
	if text == "" {
		return text
	}

	// 检查是否已经是有效的UTF-8
	if utf8.ValidString(text) && !hasGarbledChars(text) {
		return strings.TrimPrefix(text, "\uFEFF")
	}

	for _, enc := range fallbacks {
		decoded, err := enc.NewDecoder().String(text)
		if err == nil && utf8.ValidString(decoded) && !hasGarbledChars(decoded) {
			return decoded
		}
	}

	// 都失败时替换非法字节，保证输出为UTF-8
	return strings.ToValidUTF8(text, "�")
}

// charsetOf 从Content-Type中解析字符集
func charsetOf(contentType string) encoding.Encoding {
	if contentType == "" {
		return nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}

	label := params["charset"]
	if label == "" {
		return nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil
	}
	return enc
}

// hasGarbledChars 检查是否包含乱码特征
func hasGarbledChars(text string) bool {
	return strings.Contains(text, "�") || strings.Contains(text, "□")
}
