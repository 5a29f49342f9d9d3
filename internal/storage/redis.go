package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dannya123-blm/MajorIndividualProject/internal/config"
	"github.com/dannya123-blm/MajorIndividualProject/internal/constants"
)

// Redis 封装Redis客户端，提供原始文件MD5去重等能力
type Redis struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisAdapter 创建Redis适配器并校验连通性
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Redis配置不能为空")
	}

	opts := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeoutSeconds > 0 {
		opts.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}
	if cfg.ReadTimeoutSeconds > 0 {
		opts.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	if cfg.WriteTimeoutSeconds > 0 {
		opts.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("连接Redis失败 (%s): %w", cfg.Address, err)
	}

	return &Redis{client: client, cfg: cfg}, nil
}

// Ping 检查Redis连通性
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close 关闭Redis连接
func (r *Redis) Close() error {
	return r.client.Close()
}

// CheckRawFileMD5Exists 检查原始文件MD5是否已存在（用于重复上传判定）
func (r *Redis) CheckRawFileMD5Exists(ctx context.Context, md5 string) (bool, error) {
	exists, err := r.client.SIsMember(ctx, constants.RawFileMD5SetKey, md5).Result()
	if err != nil {
		return false, fmt.Errorf("检查文件MD5 %s 是否存在失败: %w", md5, err)
	}
	return exists, nil
}

// AddRawFileMD5 记录原始文件MD5，并为集合设置过期时间（仅在未设置时生效）
func (r *Redis) AddRawFileMD5(ctx context.Context, md5 string) error {
	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, constants.RawFileMD5SetKey, md5)
	pipe.ExpireNX(ctx, constants.RawFileMD5SetKey, r.GetMD5ExpireDuration())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("记录文件MD5 %s 失败: %w", md5, err)
	}
	return nil
}

// GetMD5ExpireDuration 返回MD5记录的过期时长
func (r *Redis) GetMD5ExpireDuration() time.Duration {
	days := r.cfg.MD5RecordExpireDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}
