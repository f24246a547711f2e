package middleware

import (
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// CurrentUser 注入固定的演示用户ID。
// 单用户系统没有登录流程，所有 /api/user 路由都隐式作用于该用户。
func CurrentUser(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID 读取当前请求绑定的用户ID
func UserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
