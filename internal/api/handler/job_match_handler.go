package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/dannya123-blm/MajorIndividualProject/internal/config"
	"github.com/dannya123-blm/MajorIndividualProject/internal/constants"
	"github.com/dannya123-blm/MajorIndividualProject/internal/logger"
	"github.com/dannya123-blm/MajorIndividualProject/internal/ranking"
	"github.com/dannya123-blm/MajorIndividualProject/internal/types"
)

// JobMatchHandler 岗位匹配处理器，基于调用方给定的关键词对岗位目录打分排序
type JobMatchHandler struct {
	cfg     *config.Config
	catalog *ranking.Catalog
}

// NewJobMatchHandler 创建一个新的岗位匹配处理器
func NewJobMatchHandler(cfg *config.Config, catalog *ranking.Catalog) *JobMatchHandler {
	return &JobMatchHandler{
		cfg:     cfg,
		catalog: catalog,
	}
}

// Match 执行一次岗位匹配
func (h *JobMatchHandler) Match(req *types.JobMatchRequest) (*types.JobMatchResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = constants.DefaultMatchLimit
		if h.cfg != nil && h.cfg.Catalog.DefaultLimit > 0 {
			limit = h.cfg.Catalog.DefaultLimit
		}
	}

	matches, err := ranking.Rank(req.Skills, req.Qualifications, h.catalog, limit)
	if err != nil {
		return nil, err
	}
	return &types.JobMatchResponse{
		Matches: matches,
		Count:   len(matches),
	}, nil
}

// HandleJobMatch 处理岗位匹配HTTP请求
func (h *JobMatchHandler) HandleJobMatch(ctx context.Context, c *app.RequestContext) {
	body, err := c.Body()
	if err != nil {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "读取请求体失败"})
		return
	}

	var req types.JobMatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "请求体JSON解析失败"})
		return
	}

	resp, err := h.Match(&req)
	if err != nil {
		if errors.Is(err, ranking.ErrCatalogUnavailable) {
			c.JSON(consts.StatusServiceUnavailable, map[string]string{"error": "岗位目录不可用"})
			return
		}
		logger.Error().Err(err).Msg("岗位匹配执行失败")
		c.JSON(consts.StatusInternalServerError, map[string]string{"error": "岗位匹配执行失败"})
		return
	}

	c.JSON(consts.StatusOK, resp)
}
