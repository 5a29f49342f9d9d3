// Package types 定义API请求与响应结构
package types

import (
	"github.com/dannya123-blm/MajorIndividualProject/internal/ranking"
)

// CVUploadResponse 简历上传接口响应
type CVUploadResponse struct {
	SubmissionUUID string             `json:"submission_uuid"`
	OriginalName   string             `json:"original_name"`
	ObjectKey      string             `json:"object_key,omitempty"`
	FileURL        string             `json:"file_url,omitempty"`
	Skills         []string           `json:"skills"`
	Qualifications []string           `json:"qualifications"`
	TextPreview    string             `json:"text_preview"`
	JobMatches     []ranking.JobMatch `json:"job_matches,omitempty"`
	Status         string             `json:"status"`
}

// JobMatchRequest 岗位匹配接口请求
type JobMatchRequest struct {
	Skills         []string `json:"skills"`
	Qualifications []string `json:"qualifications"`
	Limit          int      `json:"limit,omitempty"`
}

// JobMatchResponse 岗位匹配接口响应
type JobMatchResponse struct {
	Matches []ranking.JobMatch `json:"matches"`
	Count   int                `json:"count"`
}

// ErrorResponse 通用错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}
