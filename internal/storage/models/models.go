package models

import "time"

// ResumeSubmission 简历上传记录（审计用途，不落地解析结果）
type ResumeSubmission struct {
	SubmissionUUID      string    `gorm:"primaryKey;type:char(36)" json:"submission_uuid"`
	OriginalFilename    string    `gorm:"type:varchar(255)" json:"original_filename"`
	OriginalFilePathOSS string    `gorm:"type:varchar(512)" json:"original_file_path_oss"`
	FileMD5             string    `gorm:"type:char(32);index" json:"file_md5"`
	SourceChannel       string    `gorm:"type:varchar(64)" json:"source_channel"`
	SkillCount          int       `json:"skill_count"`
	QualificationCount  int       `json:"qualification_count"`
	ProcessingStatus    string    `gorm:"type:varchar(50);index" json:"processing_status"`
	SubmissionTimestamp time.Time `json:"submission_timestamp"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName 指定表名
func (ResumeSubmission) TableName() string {
	return "resume_submissions"
}
