package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证完整配置文件的加载
func TestLoadConfigFromFile(t *testing.T) {
	yamlContent := `
server:
  address: ":9090"
  max_upload_size_mb: 32
  extract_timeout_secs: 60

logger:
  level: "warn"
  format: "json"

minio:
  endpoint: "minio.internal:9000"
  accessKeyID: "key"
  secretAccessKey: "secret"
  bucketName: "resumes"

catalog:
  csv_path: "/opt/data/jobs.csv"
  default_limit: 10
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644), "无法写入临时配置文件")

	config, err := LoadConfig(configPath)
	require.NoError(t, err, "加载合法配置不应返回错误")
	require.NotNil(t, config)

	assert.Equal(t, ":9090", config.Server.Address)
	assert.Equal(t, 32, config.Server.MaxUploadSizeMB)
	assert.Equal(t, 60, config.Server.ExtractTimeoutSec)
	assert.Equal(t, "warn", config.Logger.Level)
	assert.Equal(t, "minio.internal:9000", config.MinIO.Endpoint)
	assert.Equal(t, "resumes", config.MinIO.BucketName)
	assert.Equal(t, "/opt/data/jobs.csv", config.Catalog.CSVPath)
	assert.Equal(t, 10, config.Catalog.DefaultLimit)
}

// TestLoadConfigAppliesDefaults 验证缺省字段被填充默认值
func TestLoadConfigAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logger:\n  format: \"json\"\n"), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":8080", config.Server.Address, "地址应回落到默认值")
	assert.Equal(t, 16, config.Server.MaxUploadSizeMB)
	assert.Equal(t, 30, config.Server.ExtractTimeoutSec)
	assert.Equal(t, 20, config.Catalog.DefaultLimit)
	assert.Equal(t, "info", config.Logger.Level)
}

// TestLoadConfigEnvOverrides 验证环境变量覆盖敏感配置
func TestLoadConfigEnvOverrides(t *testing.T) {
	yamlContent := `
minio:
  accessKeyID: "from-file"
  secretAccessKey: "from-file"
catalog:
  csv_path: "from-file.csv"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	t.Setenv("MINIO_SECRET_KEY", "from-env")
	t.Setenv("CATALOG_CSV_PATH", "/env/jobs.csv")

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.MinIO.AccessKeyID, "未设置环境变量的字段保持文件值")
	assert.Equal(t, "from-env", config.MinIO.SecretAccessKey, "环境变量应覆盖文件值")
	assert.Equal(t, "/env/jobs.csv", config.Catalog.CSVPath)
}

// TestLoadConfigMissingFileInTest 验证测试环境下找不到配置文件时返回默认配置
func TestLoadConfigMissingFileInTest(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "no_such_config.yaml"))

	require.NoError(t, err, "测试环境下缺少配置文件不应报错")
	require.NotNil(t, config)
	assert.Equal(t, ":8080", config.Server.Address)
	assert.Equal(t, "cv-originals", config.MinIO.BucketName)
	assert.Equal(t, 20, config.Catalog.DefaultLimit)
}

// TestLoadConfigInvalidYAML 验证YAML语法错误时报错
func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [not a map"), 0644))

	config, err := LoadConfig(configPath)

	assert.Error(t, err, "非法YAML应报错")
	assert.Nil(t, config)
}
