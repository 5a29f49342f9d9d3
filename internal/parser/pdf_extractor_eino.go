// Package parser 负责从上传的简历文件中提取纯文本。
// PDF走Eino的PDF解析组件，DOCX直接解包OOXML，其余格式按纯文本处理。
package parser

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

// EinoPDFExtractor 使用 Eino PDF Parser 提取PDF文本
type EinoPDFExtractor struct {
	parser *pdf.PDFParser
	logger *log.Logger
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFExtractor)

// WithPDFLogger 配置自定义日志记录器
func WithPDFLogger(logger *log.Logger) EinoPDFOption {
	return func(e *EinoPDFExtractor) {
		e.logger = logger
	}
}

// NewEinoPDFExtractor 初始化PDF文本提取器。
// 不按页面分割，整个文档作为一段连续文本返回。
func NewEinoPDFExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	extractor := &EinoPDFExtractor{
		parser: p,
		logger: log.New(os.Stderr, "[PDF解析器] ", log.LstdFlags),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor, nil
}

// ExtractText 从Reader中提取PDF的完整纯文本
func (e *EinoPDFExtractor) ExtractText(ctx context.Context, reader io.Reader, uri string) (string, error) {
	startTime := time.Now()

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI(uri),
	)
	if err != nil {
		e.logger.Printf("PDF解析失败 (URI: %s): %v (用时 %.2f秒)", uri, err, time.Since(startTime).Seconds())
		return "", fmt.Errorf("解析PDF %s 失败: %w", uri, err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("PDF解析器未返回任何文档 (URI: %s)", uri)
	}

	// 合并所有文档的内容（以防返回了多个）
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(doc.Content)
	}

	e.logger.Printf("PDF解析完成: 提取了 %d 个字符 (用时 %.2f秒)", b.Len(), time.Since(startTime).Seconds())
	return b.String(), nil
}
