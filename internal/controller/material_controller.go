package controller

import (
	"errors"

	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MaterialController struct {
	MaterialService *service.MaterialService
}

func NewMaterialController(materialService *service.MaterialService) *MaterialController {
	return &MaterialController{MaterialService: materialService}
}

// @Summary 获取推荐资料
// @Description 用户所选课程下的资料，进度升序，进度相同时作业>教材>视频
// @Tags 资料
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/materials/recommended [get]
func (c *MaterialController) GetRecommended(ctx *gin.Context) {
	util.Success(ctx, c.MaterialService.Recommended(middleware.UserID(ctx)))
}

// @Summary 更新资料进度
// @Description (userId, materialId)进度的create-or-update
// @Tags 资料
// @Accept json
// @Produce json
// @Param materialId path int true "资料ID"
// @Param body body progressRequest true "进度"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/user/materials/{materialId}/progress [patch]
func (c *MaterialController) UpdateProgress(ctx *gin.Context) {
	var req progressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid progress value")
		return
	}

	materialID := util.ParseID(ctx.Param("materialId"))
	if materialID <= 0 {
		util.BadRequest(ctx, "Invalid material id")
		return
	}

	saved, err := c.MaterialService.SaveProgress(middleware.UserID(ctx), materialID, *req.Progress)
	if err != nil {
		if errors.Is(err, util.ErrMaterialProgressNotFound) {
			util.NotFound(ctx, "Material progress not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, saved)
}
