package app

import (
	"studyhub_backend/internal/middleware"
	"studyhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/courses", c.dashboard.ListCourses)
		api.GET("/subjects", c.dashboard.ListSubjects)
	}

	// 所有 /api/user 路由隐式作用于固定演示用户
	user := api.Group("/user")
	user.Use(middleware.CurrentUser(a.demoUserID))
	{
		user.GET("", c.user.GetUser)
		user.GET("/dashboard", c.dashboard.GetOverview)

		user.GET("/subjects/progress", c.dashboard.GetSubjectProgress)
		user.PATCH("/subjects/:id/progress", c.dashboard.UpdateSubjectProgress)
		user.GET("/courses", c.dashboard.GetCourses)
		user.PATCH("/courses/:id/progress", c.dashboard.UpdateCourseProgress)
		user.PATCH("/courses/:id/grade", c.dashboard.UpdateCourseGrade)

		user.GET("/study-sessions", c.study.ListSessions)
		user.GET("/study-sessions/recent", c.study.GetRecentSessions)
		user.POST("/study-sessions", c.study.CreateSession)

		user.GET("/notes", c.note.ListNotes)
		user.GET("/notes/recent", c.note.GetRecentNotes)
		user.GET("/notes/:id", c.note.GetNote)
		user.POST("/notes", c.note.CreateNote)

		user.GET("/materials/recommended", c.material.GetRecommended)
		user.PATCH("/materials/:materialId/progress", c.material.UpdateProgress)

		user.GET("/notifications", c.notification.List)
		user.GET("/notifications/unread/count", c.notification.UnreadCount)
		user.PATCH("/notifications/:id/read", c.notification.MarkRead)
	}
}
