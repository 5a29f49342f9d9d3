package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// ExtractDocxText 从DOCX字节流中提取纯文本。
// DOCX本质是一个zip包，正文在 word/document.xml 里；
// 把段落边界转成换行后剥掉全部XML标签即可。
func ExtractDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("打开DOCX压缩包失败: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("打开document.xml失败: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("读取document.xml失败: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("DOCX中未找到document.xml")
	}

	text := string(docXML)
	// 段落结束转换行，制表符标签转制表符
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTagPattern.ReplaceAllString(text, " ")
	return normalizeWhitespace(text), nil
}

var (
	spaceRunPattern   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRunPattern = regexp.MustCompile(`[ \t]*\n\s*`)
)

// normalizeWhitespace 压缩连续空白，保留换行但合并连续空行
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = spaceRunPattern.ReplaceAllString(s, " ")
	s = newlineRunPattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
