package controller

import (
	"time"

	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 5

type StudyController struct {
	StudyService *service.StudyService
}

func NewStudyController(studyService *service.StudyService) *StudyController {
	return &StudyController{StudyService: studyService}
}

// @Summary 获取最近学习记录
// @Description 按开始时间倒序返回最多limit条，时长已格式化为"Xh Ym"
// @Tags 学习
// @Produce json
// @Param limit query int false "条数上限" default(5)
// @Success 200 {object} util.Response
// @Router /api/user/study-sessions/recent [get]
func (c *StudyController) GetRecentSessions(ctx *gin.Context) {
	limit := util.ParseLimit(ctx.Query("limit"), defaultRecentLimit)
	util.Success(ctx, c.StudyService.RecentSessions(middleware.UserID(ctx), limit))
}

// @Summary 获取全部学习记录
// @Tags 学习
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/study-sessions [get]
func (c *StudyController) ListSessions(ctx *gin.Context) {
	util.Success(ctx, c.StudyService.Sessions(middleware.UserID(ctx)))
}

// @Summary 记录学习
// @Description 创建一次学习记录，duration为秒数，允许为0（最短时长限制在客户端）
// @Tags 学习
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/user/study-sessions [post]
func (c *StudyController) CreateSession(ctx *gin.Context) {
	var req struct {
		UserID    int       `json:"userId" binding:"required"`
		CourseID  int       `json:"courseId" binding:"required"`
		Topic     string    `json:"topic"`
		Duration  *int      `json:"duration" binding:"required,gte=0"`
		StartTime time.Time `json:"startTime" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid session data")
		return
	}

	created := c.StudyService.Record(model.StudySession{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		Topic:     req.Topic,
		Duration:  *req.Duration,
		StartTime: req.StartTime,
	})

	util.Created(ctx, created)
}
