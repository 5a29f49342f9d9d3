package constants

import "time"

const (
	// TextPreviewMaxRunes 返回给前端的简历文本预览最大长度（字符数）
	TextPreviewMaxRunes = 600

	// SkillScoreWeight 技能关键词在岗位匹配总分中的权重
	SkillScoreWeight = 2
	// QualificationScoreWeight 学历/证书关键词在岗位匹配总分中的权重
	QualificationScoreWeight = 1

	// DefaultMatchLimit 岗位匹配结果的默认返回数量
	DefaultMatchLimit = 20

	// DefaultSourceChannel 未指定上传来源时使用的默认渠道
	DefaultSourceChannel = "web_upload"

	// PresignedURLExpiry 上传成功后返回的预签名下载链接有效期
	PresignedURLExpiry = 24 * time.Hour
)

// Redis Key 常量
const (
	// RawFileMD5SetKey 存放已上传原始文件MD5的Redis Set，用于重复上传检测
	RawFileMD5SetKey = "cv:file_md5s"
)

// 简历提交处理状态
const (
	StatusReceived        = "RECEIVED"
	StatusCompleted       = "COMPLETED"
	StatusExtractionEmpty = "EXTRACTION_EMPTY"
	StatusDuplicateFile   = "DUPLICATE_FILE_SKIPPED"
)
