package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// 日志配置
	Logger LoggerConfig `yaml:"logger"`

	// MinIO对象存储配置
	MinIO MinIOConfig `yaml:"minio"`

	// Redis配置（重复上传检测）
	Redis RedisConfig `yaml:"redis"`

	// MySQL配置（简历提交审计记录）
	MySQL MySQLConfig `yaml:"mysql"`

	// 岗位目录配置
	Catalog CatalogConfig `yaml:"catalog"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Address           string `yaml:"address"`              // 例如 ":8080"
	MaxUploadSizeMB   int    `yaml:"max_upload_size_mb"`   // 上传文件体积上限(MB)
	ExtractTimeoutSec int    `yaml:"extract_timeout_secs"` // 单次文本提取超时(秒)
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	UseSSL          bool   `yaml:"useSSL"`
	BucketName      string `yaml:"bucketName"` // 原始简历存储桶
	Location        string `yaml:"location"`   // 可选，存储桶区域
	// 对象生命周期管理
	OriginalFileExpireDays int `yaml:"original_file_expire_days"` // 原始文件过期天数
}

// RedisConfig Redis配置
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`
	MinIdleConns int `yaml:"min_idle_conns"`
	// 超时设置
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	// MD5记录过期时间(天)
	MD5RecordExpireDays int `yaml:"md5_record_expire_days"`
}

// MySQLConfig MySQL配置
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	// 连接池设置
	MaxIdleConns int `yaml:"max_idle_conns"`
	MaxOpenConns int `yaml:"max_open_conns"`
	// 超时设置
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds"`
	ReadTimeoutSeconds    int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds   int `yaml:"write_timeout_seconds"`
	// 日志级别(1-4)
	LogLevel int `yaml:"log_level"`
}

// CatalogConfig 岗位目录配置
type CatalogConfig struct {
	CSVPath      string `yaml:"csv_path"`      // 岗位目录CSV文件路径
	DefaultLimit int    `yaml:"default_limit"` // 匹配结果默认返回数量
}

// LoadConfig 从文件加载配置。
// configPath为空时在常见位置查找；测试环境下找不到配置文件时
// 返回默认配置而不报错。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			"../../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".cv-insight", "config.yaml"),
		}

		execPath, err := os.Executable()
		if err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths, filepath.Join(execDir, "config.yaml"))
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		if configPath == "" {
			if inTestEnv() {
				return createDefaultConfig(), nil
			}
			configPath = "config.yaml"
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		if inTestEnv() {
			return createDefaultConfig(), nil
		}
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)

	return &config, nil
}

// inTestEnv 检测当前是否运行在 go test 环境中
func inTestEnv() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			return true
		}
	}
	return false
}

// applyEnvOverrides 从环境变量覆盖敏感配置（如果存在）
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		config.MinIO.AccessKeyID = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		config.MinIO.SecretAccessKey = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		config.Redis.Password = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		config.MySQL.Password = v
	}
	if v := os.Getenv("CATALOG_CSV_PATH"); v != "" {
		config.Catalog.CSVPath = v
	}
}

// applyDefaults 填充缺省值
func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Server.MaxUploadSizeMB <= 0 {
		config.Server.MaxUploadSizeMB = 16
	}
	if config.Server.ExtractTimeoutSec <= 0 {
		config.Server.ExtractTimeoutSec = 30
	}
	if config.Catalog.DefaultLimit <= 0 {
		config.Catalog.DefaultLimit = 20
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
}

// createDefaultConfig 创建一份默认配置，用于测试环境
func createDefaultConfig() *Config {
	config := &Config{}

	config.Server.Address = ":8080"
	config.Server.MaxUploadSizeMB = 16
	config.Server.ExtractTimeoutSec = 30

	config.Logger.Level = "info"
	config.Logger.Format = "pretty"
	config.Logger.TimeFormat = "2006-01-02 15:04:05"
	config.Logger.ReportCaller = true

	// MinIO默认配置
	config.MinIO.Endpoint = "localhost:9000"
	config.MinIO.AccessKeyID = "minioadmin"
	config.MinIO.SecretAccessKey = "minioadmin123"
	config.MinIO.UseSSL = false
	config.MinIO.BucketName = "cv-originals"
	config.MinIO.OriginalFileExpireDays = 1095 // 默认3年过期

	// Redis默认配置
	config.Redis.Address = "localhost:6379"
	config.Redis.DB = 0
	config.Redis.PoolSize = 10
	config.Redis.MinIdleConns = 2
	config.Redis.DialTimeoutSeconds = 5
	config.Redis.ReadTimeoutSeconds = 3
	config.Redis.WriteTimeoutSeconds = 3
	config.Redis.MD5RecordExpireDays = 365

	// MySQL默认配置
	config.MySQL.Host = "localhost"
	config.MySQL.Port = 3306
	config.MySQL.Username = "root"
	config.MySQL.Password = "password"
	config.MySQL.Database = "cv_insight"
	config.MySQL.MaxIdleConns = 10
	config.MySQL.MaxOpenConns = 100
	config.MySQL.ConnectTimeoutSeconds = 10
	config.MySQL.ReadTimeoutSeconds = 30
	config.MySQL.WriteTimeoutSeconds = 30
	config.MySQL.LogLevel = 2

	// 岗位目录默认配置
	config.Catalog.CSVPath = "data/jobs.csv"
	config.Catalog.DefaultLimit = 20

	return config
}
