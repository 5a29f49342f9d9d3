package storage

import (
	stdlog "log"
	"os"

	"github.com/dannya123-blm/MajorIndividualProject/internal/config"
	"github.com/dannya123-blm/MajorIndividualProject/internal/logger"
)

// Storage 聚合所有存储组件。
// 各组件均为可选：初始化失败时记录警告并置nil，服务在纯本地模式下仍可工作。
type Storage struct {
	MinIO *MinIO
	Redis *Redis
	MySQL *MySQL
}

// NewStorage 按配置初始化各存储组件，单个组件失败不会中断整体启动
func NewStorage(cfg *config.Config) *Storage {
	s := &Storage{}

	if cfg.MinIO.Endpoint != "" {
		minioLogger := stdlog.New(os.Stdout, "", stdlog.LstdFlags)
		m, err := NewMinIO(&cfg.MinIO, minioLogger)
		if err != nil {
			logger.Warn().Err(err).Str("endpoint", cfg.MinIO.Endpoint).Msg("MinIO初始化失败，原始文件归档功能将不可用")
		} else {
			s.MinIO = m
			logger.Info().Str("endpoint", cfg.MinIO.Endpoint).Str("bucket", cfg.MinIO.BucketName).Msg("MinIO初始化成功")
		}
	} else {
		logger.Info().Msg("未配置MinIO，跳过原始文件归档初始化")
	}

	if cfg.Redis.Address != "" {
		r, err := NewRedisAdapter(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Str("address", cfg.Redis.Address).Msg("Redis初始化失败，重复文件检测功能将不可用")
		} else {
			s.Redis = r
			logger.Info().Str("address", cfg.Redis.Address).Msg("Redis初始化成功")
		}
	} else {
		logger.Info().Msg("未配置Redis，跳过重复文件检测初始化")
	}

	if cfg.MySQL.Host != "" {
		db, err := NewMySQL(&cfg.MySQL)
		if err != nil {
			logger.Warn().Err(err).Str("host", cfg.MySQL.Host).Msg("MySQL初始化失败，上传审计记录功能将不可用")
		} else {
			s.MySQL = db
			logger.Info().Str("host", cfg.MySQL.Host).Str("database", cfg.MySQL.Database).Msg("MySQL初始化成功")
		}
	} else {
		logger.Info().Msg("未配置MySQL，跳过上传审计记录初始化")
	}

	return s
}

// Close 关闭所有已初始化的存储组件
func (s *Storage) Close() {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭Redis连接失败")
		}
	}
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭MySQL连接失败")
		}
	}
}
