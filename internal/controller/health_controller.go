package controller

import (
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	DB *repository.DB
}

func NewHealthController(db *repository.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 健康检查
// @Description 检查服务状态并报告各内存表记录数
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": "up",
		},
		"records": c.DB.TableSizes(),
	})
}
