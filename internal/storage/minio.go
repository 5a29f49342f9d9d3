package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"

	"github.com/dannya123-blm/MajorIndividualProject/internal/config"
)

// ObjectStorage 对象存储接口
type ObjectStorage interface {
	// UploadCVFile 上传原始简历文件，返回对象键
	UploadCVFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, error)

	// GetPresignedURL 获取预签名下载URL
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// 确保MinIO实现了ObjectStorage接口
var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
type MinIO struct {
	client *minio.Client
	cfg    *config.MinIOConfig
	bucket string
	logger *log.Logger
}

// NewMinIO 创建MinIO客户端并确保存储桶与生命周期规则就绪
func NewMinIO(cfg *config.MinIOConfig, logger *log.Logger) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	bucket := cfg.BucketName
	if bucket == "" {
		bucket = "cv-originals"
	}

	m := &MinIO{
		client: client,
		cfg:    cfg,
		bucket: bucket,
		logger: logger,
	}

	if err := m.ensureBucketExists(bucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保存储桶 %s 存在失败: %w", bucket, err)
	}

	if cfg.OriginalFileExpireDays > 0 {
		if err := m.setupBucketLifecycle(context.Background(), bucket, "expire-cv-originals", cfg.OriginalFileExpireDays); err != nil {
			logger.Printf("[MinIO] Warning: failed to set up lifecycle rules: %v", err)
		}
	}

	logger.Printf("[MinIO] Client initialized for endpoint %s, bucket %s", cfg.Endpoint, bucket)
	return m, nil
}

// ensureBucketExists 确保存储桶存在，不存在则创建
func (m *MinIO) ensureBucketExists(bucketName, location string) error {
	exists, err := m.client.BucketExists(context.Background(), bucketName)
	if err != nil {
		return fmt.Errorf("检查存储桶 %s 是否存在时出错: %w", bucketName, err)
	}
	if !exists {
		err = m.client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("创建存储桶 %s 失败: %w", bucketName, err)
		}
		m.logger.Printf("[MinIO] Bucket %s created.", bucketName)
	}
	return nil
}

// setupBucketLifecycle 为存储桶设置对象过期规则
func (m *MinIO) setupBucketLifecycle(ctx context.Context, bucketName, ruleID string, expiryDays int) error {
	lc := lifecycle.NewConfiguration()
	lc.Rules = []lifecycle.Rule{
		{
			ID:     ruleID,
			Status: "Enabled",
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(expiryDays),
			},
		},
	}
	if err := m.client.SetBucketLifecycle(ctx, bucketName, lc); err != nil {
		return fmt.Errorf("为存储桶 %s 设置生命周期失败: %w", bucketName, err)
	}
	return nil
}

// UploadCVFile 上传原始简历文件到存储桶。
// 对象键形如 cv/{submissionUUID}/original{ext}。
func (m *MinIO) UploadCVFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, error) {
	objectName := fmt.Sprintf("cv/%s/original%s", submissionUUID, fileExt)
	contentType := contentTypeForExt(fileExt)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("上传对象 %s/%s 失败: %w", m.bucket, objectName, err)
	}
	return objectName, nil
}

// GetPresignedURL 生成对象的预签名下载URL
func (m *MinIO) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成预签名URL失败 (%s/%s): %w", m.bucket, objectName, err)
	}
	return u.String(), nil
}

// contentTypeForExt 根据扩展名推断Content-Type
func contentTypeForExt(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
