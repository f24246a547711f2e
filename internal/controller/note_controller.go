package controller

import (
	"errors"
	"time"

	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// @Summary 获取最近笔记
// @Description 按创建时间倒序返回摘要视图：标题、前100字符预览、相对时间
// @Tags 笔记
// @Produce json
// @Param limit query int false "条数上限" default(5)
// @Success 200 {object} util.Response
// @Router /api/user/notes/recent [get]
func (c *NoteController) GetRecentNotes(ctx *gin.Context) {
	limit := util.ParseLimit(ctx.Query("limit"), defaultRecentLimit)
	util.Success(ctx, c.NoteService.RecentNotes(middleware.UserID(ctx), limit))
}

// @Summary 获取全部笔记
// @Tags 笔记
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	util.Success(ctx, c.NoteService.Notes(middleware.UserID(ctx)))
}

// @Summary 获取单条笔记
// @Tags 笔记
// @Produce json
// @Param id path int true "笔记ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user/notes/{id} [get]
func (c *NoteController) GetNote(ctx *gin.Context) {
	note, err := c.NoteService.Note(util.ParseID(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx, "Note not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, note)
}

// @Summary 创建笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/user/notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	var req struct {
		UserID    int       `json:"userId" binding:"required"`
		CourseID  int       `json:"courseId" binding:"required"`
		Title     string    `json:"title" binding:"required"`
		Content   string    `json:"content" binding:"required"`
		CreatedAt time.Time `json:"createdAt"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid note data")
		return
	}

	created := c.NoteService.Create(model.Note{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: req.CreatedAt,
	})

	util.Created(ctx, created)
}
