package parser

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// TextExtractor 按文件扩展名分发的简历文本提取器。
// 提取永远不向上传播失败：文档损坏或格式不支持时返回空字符串，
// 由调用方产出一份空的抽取结果，用户仍然能得到响应。
type TextExtractor struct {
	pdf    *EinoPDFExtractor
	logger *log.Logger
}

// TextExtractorOption 提取器配置选项
type TextExtractorOption func(*TextExtractor)

// WithExtractorLogger 配置自定义日志记录器
func WithExtractorLogger(logger *log.Logger) TextExtractorOption {
	return func(e *TextExtractor) {
		e.logger = logger
	}
}

// NewTextExtractor 创建文本提取器，内部初始化PDF解析组件。
// PDF组件复用提取器的日志记录器。
func NewTextExtractor(ctx context.Context, options ...TextExtractorOption) (*TextExtractor, error) {
	e := &TextExtractor{
		logger: log.New(os.Stderr, "[文本提取] ", log.LstdFlags),
	}
	for _, option := range options {
		option(e)
	}

	pdfExtractor, err := NewEinoPDFExtractor(ctx, WithPDFLogger(e.logger))
	if err != nil {
		return nil, err
	}
	e.pdf = pdfExtractor
	return e, nil
}

// ExtractText 根据扩展名提取文本。
// .pdf 走PDF解析器，.docx 解包OOXML，其余一律按UTF-8纯文本读取
// （非法字节直接丢弃）。任何失败都落为空字符串。
func (e *TextExtractor) ExtractText(ctx context.Context, data []byte, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		text, err := e.pdf.ExtractText(ctx, bytes.NewReader(data), filename)
		if err != nil {
			e.logger.Printf("PDF文本提取失败 (%s): %v，按空文本处理", filename, err)
			return ""
		}
		return text
	case ".docx":
		text, err := ExtractDocxText(data)
		if err != nil {
			e.logger.Printf("DOCX文本提取失败 (%s): %v，按空文本处理", filename, err)
			return ""
		}
		return text
	default:
		return strings.ToValidUTF8(string(data), "")
	}
}
