package parser

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *TextExtractor {
	t.Helper()
	extractor, err := NewTextExtractor(context.Background(),
		WithExtractorLogger(log.New(io.Discard, "", 0)))
	require.NoError(t, err, "创建文本提取器失败")
	return extractor
}

// TestExtractTextPlainFile 验证未知扩展名按纯文本处理
func TestExtractTextPlainFile(t *testing.T) {
	extractor := newTestExtractor(t)

	text := extractor.ExtractText(context.Background(), []byte("Python developer with BSc"), "resume.txt")
	assert.Equal(t, "Python developer with BSc", text)

	// 无扩展名同样按纯文本处理
	text = extractor.ExtractText(context.Background(), []byte("plain content"), "resume")
	assert.Equal(t, "plain content", text)
}

// TestExtractTextInvalidUTF8 验证纯文本路径剔除非法UTF-8字节
func TestExtractTextInvalidUTF8(t *testing.T) {
	extractor := newTestExtractor(t)

	data := append([]byte("valid "), 0xff, 0xfe)
	data = append(data, []byte(" text")...)

	text := extractor.ExtractText(context.Background(), data, "notes.txt")
	assert.Equal(t, "valid  text", text)
}

// TestExtractTextCorruptPDF 验证损坏的PDF降级为空文本而非报错
func TestExtractTextCorruptPDF(t *testing.T) {
	extractor := newTestExtractor(t)

	text := extractor.ExtractText(context.Background(), []byte("not a real pdf"), "resume.pdf")
	assert.Equal(t, "", text, "损坏的PDF应产出空文本")
}

// TestExtractTextDocx 验证docx分支走DOCX解析
func TestExtractTextDocx(t *testing.T) {
	extractor := newTestExtractor(t)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>Docx resume text</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	text := extractor.ExtractText(context.Background(), buf.Bytes(), "Resume.DOCX")
	assert.Equal(t, "Docx resume text", text, "扩展名匹配应不区分大小写")
}

// TestExtractTextCorruptDocx 验证损坏的docx降级为空文本
func TestExtractTextCorruptDocx(t *testing.T) {
	extractor := newTestExtractor(t)

	text := extractor.ExtractText(context.Background(), []byte("not a zip"), "resume.docx")
	assert.Equal(t, "", text)
}

// TestExtractTextLoggerPropagation 验证自定义日志记录器同时作用于PDF解析组件
func TestExtractTextLoggerPropagation(t *testing.T) {
	var buf bytes.Buffer
	extractor, err := NewTextExtractor(context.Background(),
		WithExtractorLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)

	text := extractor.ExtractText(context.Background(), []byte("not a real pdf"), "resume.pdf")

	assert.Equal(t, "", text)
	assert.Contains(t, buf.String(), "PDF", "PDF解析失败应记录到注入的日志记录器")
}
