package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/dannya123-blm/MajorIndividualProject/internal/config"
	"github.com/dannya123-blm/MajorIndividualProject/internal/constants"
	"github.com/dannya123-blm/MajorIndividualProject/internal/keyword"
	"github.com/dannya123-blm/MajorIndividualProject/internal/logger"
	"github.com/dannya123-blm/MajorIndividualProject/internal/parser"
	"github.com/dannya123-blm/MajorIndividualProject/internal/ranking"
	"github.com/dannya123-blm/MajorIndividualProject/internal/storage"
	"github.com/dannya123-blm/MajorIndividualProject/internal/storage/models"
	"github.com/dannya123-blm/MajorIndividualProject/internal/types"
	"github.com/dannya123-blm/MajorIndividualProject/pkg/utils"
)

// ResumeHandler 简历处理器，负责协调上传、归档、文本提取与关键词匹配流程
type ResumeHandler struct {
	cfg       *config.Config
	storage   *storage.Storage
	extractor *parser.TextExtractor
	catalog   *ranking.Catalog
}

// NewResumeHandler 创建一个新的简历处理器
func NewResumeHandler(
	cfg *config.Config,
	storage *storage.Storage,
	extractor *parser.TextExtractor,
	catalog *ranking.Catalog,
) *ResumeHandler {
	return &ResumeHandler{
		cfg:       cfg,
		storage:   storage,
		extractor: extractor,
		catalog:   catalog,
	}
}

// HandleCVUpload 处理一次简历上传：去重、归档、提取文本、匹配关键词并给出岗位推荐。
// 提取和匹配在请求内同步完成，存储组件缺失时对应步骤降级跳过。
func (h *ResumeHandler) HandleCVUpload(ctx context.Context, reader io.Reader,
	filename string, sourceChannel string) (*types.CVUploadResponse, error) {

	// 0. 读取文件内容并计算MD5（reader只能读一次）
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}
	if len(fileBytes) == 0 {
		return nil, fmt.Errorf("上传文件内容为空")
	}
	fileMD5Hex := utils.CalculateMD5(fileBytes)

	// 1. 基于文件MD5的重复上传检测
	if h.storage != nil && h.storage.Redis != nil {
		exists, err := h.storage.Redis.CheckRawFileMD5Exists(ctx, fileMD5Hex)
		if err != nil {
			// 去重查询失败不阻断上传，仅记录
			logger.Warn().
				Err(err).
				Str("md5", fileMD5Hex).
				Msg("查询Redis文件MD5 Set失败，跳过重复检测")
		} else if exists {
			logger.Info().
				Str("md5", fileMD5Hex).
				Str("filename", filename).
				Msg("检测到重复的文件MD5，跳过处理")
			return &types.CVUploadResponse{
				OriginalName:   filename,
				Skills:         []string{},
				Qualifications: []string{},
				Status:         constants.StatusDuplicateFile,
			}, nil
		}
	}

	// 2. 生成UUIDv7作为本次提交的标识
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".pdf"
	}
	if sourceChannel == "" {
		sourceChannel = constants.DefaultSourceChannel
	}

	// 3. 归档原始文件到MinIO（失败降级，不阻断解析）
	var objectKey, fileURL string
	if h.storage != nil && h.storage.MinIO != nil {
		objectKey, err = h.storage.MinIO.UploadCVFile(ctx, submissionUUID, ext, bytes.NewReader(fileBytes), int64(len(fileBytes)))
		if err != nil {
			logger.Warn().
				Err(err).
				Str("submission_uuid", submissionUUID).
				Msg("上传简历到MinIO失败，继续本地解析流程")
			objectKey = ""
		} else {
			if url, urlErr := h.storage.MinIO.GetPresignedURL(ctx, objectKey, constants.PresignedURLExpiry); urlErr != nil {
				logger.Warn().Err(urlErr).Str("object_key", objectKey).Msg("生成预签名URL失败")
			} else {
				fileURL = url
			}

			// 归档成功后记录MD5，失败只记录警告，去重在下次上传时仍有机会生效
			if h.storage.Redis != nil {
				if err := h.storage.Redis.AddRawFileMD5(ctx, fileMD5Hex); err != nil {
					logger.Warn().
						Err(err).
						Str("md5", fileMD5Hex).
						Str("object_key", objectKey).
						Msg("添加文件MD5到Redis Set失败，文件已上传到MinIO")
				}
			}
		}
	}

	// 4. 写入审计记录（不落地解析结果，仅记录提交元数据）
	auditEnabled := h.storage != nil && h.storage.MySQL != nil
	if auditEnabled {
		submission := &models.ResumeSubmission{
			SubmissionUUID:      submissionUUID,
			OriginalFilename:    filename,
			OriginalFilePathOSS: objectKey,
			FileMD5:             fileMD5Hex,
			SourceChannel:       sourceChannel,
			ProcessingStatus:    constants.StatusReceived,
			SubmissionTimestamp: time.Now(),
		}
		if err := h.storage.MySQL.CreateResumeSubmission(ctx, submission); err != nil {
			logger.Warn().
				Err(err).
				Str("submission_uuid", submissionUUID).
				Msg("创建上传审计记录失败")
			auditEnabled = false
		}
	}

	// 5. 提取文本。提取失败或内容为空都按空文本处理，不报错。
	extractCtx := ctx
	if h.cfg != nil && h.cfg.Server.ExtractTimeoutSec > 0 {
		var cancel context.CancelFunc
		extractCtx, cancel = context.WithTimeout(ctx, time.Duration(h.cfg.Server.ExtractTimeoutSec)*time.Second)
		defer cancel()
	}
	text := ""
	if h.extractor != nil {
		text = h.extractor.ExtractText(extractCtx, fileBytes, filename)
	}

	// 6. 关键词提取与岗位匹配
	result := keyword.Extract(text)

	var matches []ranking.JobMatch
	if h.catalog != nil {
		limit := constants.DefaultMatchLimit
		if h.cfg != nil && h.cfg.Catalog.DefaultLimit > 0 {
			limit = h.cfg.Catalog.DefaultLimit
		}
		matches, err = ranking.Rank(result.Skills, result.Qualifications, h.catalog, limit)
		if err != nil {
			logger.Warn().Err(err).Msg("岗位匹配失败，返回结果中不包含推荐岗位")
			matches = nil
		}
	}

	status := constants.StatusCompleted
	if text == "" {
		status = constants.StatusExtractionEmpty
	}

	// 7. 更新审计记录状态与关键词数量
	if auditEnabled {
		if err := h.storage.MySQL.UpdateResumeSubmissionFields(ctx, submissionUUID, map[string]interface{}{
			"processing_status":   status,
			"skill_count":         len(result.Skills),
			"qualification_count": len(result.Qualifications),
		}); err != nil {
			logger.Warn().
				Err(err).
				Str("submission_uuid", submissionUUID).
				Msg("更新上传审计记录失败")
		}
	}

	logger.Info().
		Str("submission_uuid", submissionUUID).
		Str("filename", filename).
		Int("skill_count", len(result.Skills)).
		Int("qualification_count", len(result.Qualifications)).
		Int("match_count", len(matches)).
		Str("status", status).
		Msg("简历处理完成")

	return &types.CVUploadResponse{
		SubmissionUUID: submissionUUID,
		OriginalName:   filename,
		ObjectKey:      objectKey,
		FileURL:        fileURL,
		Skills:         result.Skills,
		Qualifications: result.Qualifications,
		TextPreview:    result.TextPreview,
		JobMatches:     matches,
		Status:         status,
	}, nil
}
