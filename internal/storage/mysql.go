package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dannya123-blm/MajorIndividualProject/internal/config"
	"github.com/dannya123-blm/MajorIndividualProject/internal/storage/models"
)

// MySQL 封装GORM数据库访问
type MySQL struct {
	db *gorm.DB
}

// NewMySQL 创建MySQL连接并自动迁移表结构
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MySQL配置不能为空")
	}

	connTimeout := cfg.ConnectTimeoutSeconds
	if connTimeout <= 0 {
		connTimeout = 10
	}
	readTimeout := cfg.ReadTimeoutSeconds
	if readTimeout <= 0 {
		readTimeout = 30
	}
	writeTimeout := cfg.WriteTimeoutSeconds
	if writeTimeout <= 0 {
		writeTimeout = 30
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database, connTimeout, readTimeout, writeTimeout)

	var logLevel gormlogger.LogLevel
	switch cfg.LogLevel {
	case 1:
		logLevel = gormlogger.Silent
	case 2:
		logLevel = gormlogger.Error
	case 3:
		logLevel = gormlogger.Warn
	case 4:
		logLevel = gormlogger.Info
	default:
		logLevel = gormlogger.Warn
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败 (%s:%d/%s): %w", cfg.Host, cfg.Port, cfg.Database, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层sql.DB失败: %w", err)
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 10
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.ResumeSubmission{}); err != nil {
		return nil, fmt.Errorf("自动迁移表结构失败: %w", err)
	}

	return &MySQL{db: db}, nil
}

// DB 返回底层GORM实例
func (m *MySQL) DB() *gorm.DB {
	return m.db
}

// Close 关闭数据库连接
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateResumeSubmission 创建上传记录
func (m *MySQL) CreateResumeSubmission(ctx context.Context, submission *models.ResumeSubmission) error {
	if err := m.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("创建上传记录 %s 失败: %w", submission.SubmissionUUID, err)
	}
	return nil
}

// UpdateResumeSubmissionFields 按字段更新上传记录
func (m *MySQL) UpdateResumeSubmissionFields(ctx context.Context, submissionUUID string, fields map[string]interface{}) error {
	result := m.db.WithContext(ctx).Model(&models.ResumeSubmission{}).
		Where("submission_uuid = ?", submissionUUID).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("更新上传记录 %s 失败: %w", submissionUUID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("更新上传记录 %s 失败: 记录不存在", submissionUUID)
	}
	return nil
}
