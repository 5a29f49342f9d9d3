// Package ranking 实现岗位目录的加载与候选人-岗位匹配打分。
// 目录在进程启动时从CSV加载一次，之后只读；打分为纯计算，
// 每个请求的打分结果互不干扰。
package ranking

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// JobPosting 岗位目录中的一行，列名到文本值的有序映射。
// 引擎不感知具体的列含义，所有列一视同仁地作为检索文本。
// 缺失的单元格统一归一为空字符串，下游可以放心渲染。
type JobPosting struct {
	Columns []string
	Values  map[string]string
}

// Get 返回指定列的值，列不存在时返回空字符串
func (p JobPosting) Get(column string) string {
	return p.Values[column]
}

// MarshalJSON 将岗位序列化为 {列名: 值} 对象，缺失列补空字符串
func (p JobPosting) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 256)
	buf = append(buf, '{')
	for i, col := range p.Columns {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendJSONString(buf, col)
		buf = append(buf, ':')
		buf = appendJSONString(buf, p.Values[col])
	}
	buf = append(buf, '}')
	return buf, nil
}

// appendJSONString 追加一个JSON字符串字面量，仅转义必要字符
func appendJSONString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if r < 0x20 {
				buf = append(buf, []byte(fmt.Sprintf(`\u%04x`, r))...)
			} else {
				buf = append(buf, []byte(string(r))...)
			}
		}
	}
	return append(buf, '"')
}

// Catalog 只读的岗位目录
type Catalog struct {
	Columns  []string
	Postings []JobPosting
}

// Size 返回目录中的岗位数量
func (c *Catalog) Size() int {
	if c == nil {
		return 0
	}
	return len(c.Postings)
}

// LoadCatalog 从CSV数据源读取岗位目录。第一行作为列名，
// 之后每行一个岗位；行内字段数不足时缺失列补空字符串，
// 多余字段丢弃。目录的列结构不做任何校验，保持模式无关。
func LoadCatalog(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 允许参差不齐的行
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("岗位目录为空，缺少表头行")
	}
	if err != nil {
		return nil, fmt.Errorf("读取岗位目录表头失败: %w", err)
	}

	catalog := &Catalog{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取岗位目录第%d行失败: %w", len(catalog.Postings)+2, err)
		}

		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				values[col] = record[i]
			} else {
				values[col] = ""
			}
		}
		catalog.Postings = append(catalog.Postings, JobPosting{
			Columns: header,
			Values:  values,
		})
	}

	return catalog, nil
}

// LoadCatalogFile 从CSV文件加载岗位目录
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开岗位目录文件 %s 失败: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}
