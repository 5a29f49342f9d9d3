package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dannya123-blm/MajorIndividualProject/internal/config"
	"github.com/dannya123-blm/MajorIndividualProject/internal/ranking"
	"github.com/dannya123-blm/MajorIndividualProject/internal/types"
)

func testCatalog() *ranking.Catalog {
	cols := []string{"Title", "Description", "Requirements"}
	posting := func(title, desc, req string) ranking.JobPosting {
		return ranking.JobPosting{
			Columns: cols,
			Values:  map[string]string{"Title": title, "Description": desc, "Requirements": req},
		}
	}
	return &ranking.Catalog{
		Columns: cols,
		Postings: []ranking.JobPosting{
			posting("Python Role", "python and sql daily", "bsc required"),
			posting("Java Role", "java services", "degree preferred"),
			posting("Unrelated", "forklift operation", "license"),
		},
	}
}

// TestJobMatchHandlerMatch 验证匹配流程与响应结构
func TestJobMatchHandlerMatch(t *testing.T) {
	h := NewJobMatchHandler(nil, testCatalog())

	resp, err := h.Match(&types.JobMatchRequest{
		Skills:         []string{"python", "sql"},
		Qualifications: []string{"bsc"},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "Python Role", resp.Matches[0].Posting.Get("Title"))
	assert.Equal(t, 5, resp.Matches[0].TotalScore)
}

// TestJobMatchHandlerLimit 验证请求limit与配置默认值的优先级
func TestJobMatchHandlerLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.DefaultLimit = 1
	h := NewJobMatchHandler(cfg, testCatalog())

	// 请求未指定limit时使用配置默认值
	resp, err := h.Match(&types.JobMatchRequest{Skills: []string{"python", "java"}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)

	// 请求显式指定limit时优先生效
	resp, err = h.Match(&types.JobMatchRequest{Skills: []string{"python", "java"}, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
}

// TestJobMatchHandlerCatalogUnavailable 验证目录缺失时返回哨兵错误
func TestJobMatchHandlerCatalogUnavailable(t *testing.T) {
	h := NewJobMatchHandler(nil, nil)

	resp, err := h.Match(&types.JobMatchRequest{Skills: []string{"python"}})

	assert.ErrorIs(t, err, ranking.ErrCatalogUnavailable)
	assert.Nil(t, resp)
}

// TestJobMatchHandlerEmptyKeywords 验证空关键词得到空结果而非错误
func TestJobMatchHandlerEmptyKeywords(t *testing.T) {
	h := NewJobMatchHandler(nil, testCatalog())

	resp, err := h.Match(&types.JobMatchRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Matches)
}

// performJobMatch 用给定请求体直接调用HTTP处理函数
func performJobMatch(h *JobMatchHandler, body []byte) *app.RequestContext {
	c := &app.RequestContext{}
	c.Request.Header.SetMethod("POST")
	c.Request.SetBody(body)
	h.HandleJobMatch(context.Background(), c)
	return c
}

// TestHandleJobMatchHTTP 验证HTTP层：请求体解析、打分结果与状态码
func TestHandleJobMatchHTTP(t *testing.T) {
	h := NewJobMatchHandler(nil, testCatalog())

	c := performJobMatch(h, []byte(`{"skills":["python","sql"],"qualifications":["bsc"]}`))
	require.Equal(t, consts.StatusOK, c.Response.StatusCode())

	var resp types.JobMatchResponse
	require.NoError(t, json.Unmarshal(c.Response.Body(), &resp), "响应体应为合法JSON")
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Python Role", resp.Matches[0].Posting.Get("Title"))
	assert.Equal(t, 5, resp.Matches[0].TotalScore)
}

// TestHandleJobMatchHTTPBadJSON 验证非法JSON返回400
func TestHandleJobMatchHTTPBadJSON(t *testing.T) {
	h := NewJobMatchHandler(nil, testCatalog())

	c := performJobMatch(h, []byte(`{"skills": [not json`))

	assert.Equal(t, consts.StatusBadRequest, c.Response.StatusCode())
}

// TestHandleJobMatchHTTPCatalogUnavailable 验证目录缺失时返回503
func TestHandleJobMatchHTTPCatalogUnavailable(t *testing.T) {
	h := NewJobMatchHandler(nil, nil)

	c := performJobMatch(h, []byte(`{"skills":["python"]}`))

	assert.Equal(t, consts.StatusServiceUnavailable, c.Response.StatusCode())
}
