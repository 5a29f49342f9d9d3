package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/dannya123-blm/MajorIndividualProject/internal/api/handler"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler, jobMatchHandler *handler.JobMatchHandler) {
	api := h.Group("/api/v1")

	api.POST("/cv/upload", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		// 获取来源渠道
		sourceChannel := ctx.PostForm("source_channel")

		// 打开文件
		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		resp, err := resumeHandler.HandleCVUpload(
			c,
			file,
			fileHeader.Filename,
			sourceChannel,
		)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/jobs/match", jobMatchHandler.HandleJobMatch)

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
