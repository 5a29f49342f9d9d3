package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/pflag"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"

	"github.com/dannya123-blm/MajorIndividualProject/internal/api/handler"
	"github.com/dannya123-blm/MajorIndividualProject/internal/api/router"
	"github.com/dannya123-blm/MajorIndividualProject/internal/config"
	"github.com/dannya123-blm/MajorIndividualProject/internal/logger"
	"github.com/dannya123-blm/MajorIndividualProject/internal/parser"
	"github.com/dannya123-blm/MajorIndividualProject/internal/ranking"
	"github.com/dannya123-blm/MajorIndividualProject/internal/storage"
)

var (
	version     = "1.0.0"      //nolint:gochecknoglobals
	serviceName = "cv-insight" //nolint:gochecknoglobals
)

// @title CV Insight API
// @version 1.0
// @description 简历关键词提取与岗位匹配服务
// @BasePath /api/v1
func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	// 1. 加载配置文件
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载配置文件失败")
	}

	// 2. 初始化日志系统，并桥接Hertz框架日志
	logger.Init(logger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	logger.Logger = logger.Logger.With().
		Str("app", serviceName).
		Str("version", version).
		Logger()
	glog.SetLogger(hertzadapter.From(logger.Logger))

	// 3. 初始化存储组件（各组件可选，失败降级）
	storageManager := storage.NewStorage(cfg)
	defer storageManager.Close()

	// 4. 初始化文本提取器
	ctx := context.Background()
	extractor, err := parser.NewTextExtractor(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化文本提取器失败")
	}

	// 5. 加载岗位目录（加载失败仅告警，匹配接口返回503）
	var catalog *ranking.Catalog
	if cfg.Catalog.CSVPath != "" {
		catalog, err = ranking.LoadCatalogFile(cfg.Catalog.CSVPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.Catalog.CSVPath).Msg("加载岗位目录失败，岗位匹配功能将不可用")
			catalog = nil
		} else {
			logger.Info().Str("path", cfg.Catalog.CSVPath).Int("postings", len(catalog.Postings)).Msg("岗位目录加载成功")
		}
	} else {
		logger.Warn().Msg("未配置岗位目录CSV路径，岗位匹配功能将不可用")
	}

	// 6. 初始化业务处理器
	resumeHandler := handler.NewResumeHandler(cfg, storageManager, extractor, catalog)
	jobMatchHandler := handler.NewJobMatchHandler(cfg, catalog)

	// 7. 创建HTTP服务器并注册路由
	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithMaxRequestBodySize(cfg.Server.MaxUploadSizeMB*1024*1024),
	)
	router.RegisterRoutes(h, resumeHandler, jobMatchHandler)

	// 8. 启动HTTP服务器
	go func() {
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("启动HTTP服务器失败")
		}
	}()
	logger.Info().Str("address", cfg.Server.Address).Msg("HTTP服务器已启动")

	// 9. 等待终止信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("接收到终止信号，正在优雅退出...")

	// 10. 优雅关闭HTTP服务器
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("服务器关闭失败")
	}

	logger.Info().Msg("优雅退出完成")
}
