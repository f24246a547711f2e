package controller

import (
	"errors"

	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// progressRequest 进度更新请求体，取值范围[0,100]
type progressRequest struct {
	Progress *int `json:"progress" binding:"required,gte=0,lte=100"`
}

// @Summary 获取仪表盘聚合数据
// @Description 一次返回学科进度、课程、最近学习、最近笔记、推荐资料和未读通知数
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/dashboard [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	overview, err := c.DashboardService.GetOverview(middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary 获取学科进度
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/subjects/progress [get]
func (c *DashboardController) GetSubjectProgress(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.SubjectProgress(middleware.UserID(ctx)))
}

// @Summary 获取用户课程
// @Description 返回选课记录及对应课程，按创建顺序
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/courses [get]
func (c *DashboardController) GetCourses(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.Courses(middleware.UserID(ctx)))
}

// @Summary 课程目录
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *DashboardController) ListCourses(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.AllCourses())
}

// @Summary 学科目录
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/subjects [get]
func (c *DashboardController) ListSubjects(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.AllSubjects())
}

// @Summary 更新选课进度
// @Tags 仪表盘
// @Accept json
// @Produce json
// @Param id path int true "选课记录ID"
// @Param body body progressRequest true "进度"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user/courses/{id}/progress [patch]
func (c *DashboardController) UpdateCourseProgress(ctx *gin.Context) {
	var req progressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid progress value")
		return
	}

	updated, err := c.DashboardService.UpdateCourseProgress(util.ParseID(ctx.Param("id")), *req.Progress)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx, "Enrollment not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// @Summary 更新选课成绩
// @Tags 仪表盘
// @Accept json
// @Produce json
// @Param id path int true "选课记录ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user/courses/{id}/grade [patch]
func (c *DashboardController) UpdateCourseGrade(ctx *gin.Context) {
	var req struct {
		Grade string `json:"grade" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid grade value")
		return
	}

	updated, err := c.DashboardService.UpdateCourseGrade(util.ParseID(ctx.Param("id")), req.Grade)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx, "Enrollment not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// @Summary 更新学科进度
// @Tags 仪表盘
// @Accept json
// @Produce json
// @Param id path int true "学科进度记录ID"
// @Param body body progressRequest true "进度"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user/subjects/{id}/progress [patch]
func (c *DashboardController) UpdateSubjectProgress(ctx *gin.Context) {
	var req progressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid progress value")
		return
	}

	updated, err := c.DashboardService.UpdateSubjectProgress(util.ParseID(ctx.Param("id")), *req.Progress)
	if err != nil {
		if errors.Is(err, util.ErrSubjectProgressNotFound) {
			util.NotFound(ctx, "Subject progress not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}
