package controller

import (
	"errors"

	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary 获取当前用户
// @Description 获取演示用户的资料，响应不包含密码字段
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.UserService.Profile(middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}
