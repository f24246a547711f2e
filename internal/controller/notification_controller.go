package controller

import (
	"errors"

	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// @Summary 获取通知列表
// @Description 按创建时间倒序，最新的在前
// @Tags 通知
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	util.Success(ctx, c.NotificationService.List(middleware.UserID(ctx)))
}

// @Summary 获取未读通知数
// @Tags 通知
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/notifications/unread/count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	count := c.NotificationService.UnreadCount(middleware.UserID(ctx))
	util.Success(ctx, gin.H{"count": count})
}

// @Summary 标记通知已读
// @Tags 通知
// @Produce json
// @Param id path int true "通知ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user/notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	updated, err := c.NotificationService.MarkRead(util.ParseID(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrNotificationNotFound) {
			util.NotFound(ctx, "Notification not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}
