package service

import (
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"

	"github.com/dustin/go-humanize"
)

// 预览截断长度（按字符计）
const notePreviewLimit = 100

type NoteService struct {
	NoteRepo *repository.NoteRepository
}

func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{NoteRepo: noteRepo}
}

// NoteSummary 笔记卡片视图，正文截断为预览，时间为相对描述
type NoteSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Preview string `json:"preview"`
	Date    string `json:"date"`
}

func (s *NoteService) RecentNotes(userID, limit int) []NoteSummary {
	notes := s.NoteRepo.FindRecentByUser(userID, limit)

	summaries := make([]NoteSummary, 0, len(notes))
	for _, note := range notes {
		summaries = append(summaries, NoteSummary{
			ID:      note.ID,
			Title:   note.Title,
			Preview: notePreview(note.Content),
			Date:    humanize.Time(note.CreatedAt),
		})
	}
	return summaries
}

func (s *NoteService) Notes(userID int) []model.NoteWithCourse {
	return s.NoteRepo.FindByUserWithCourse(userID)
}

func (s *NoteService) Note(id int) (model.NoteWithCourse, error) {
	return s.NoteRepo.FindByIDWithCourse(id)
}

func (s *NoteService) Create(note model.Note) model.Note {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	return s.NoteRepo.Create(note)
}

// notePreview 取前100个字符，超长时追加省略号
func notePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= notePreviewLimit {
		return content
	}
	return string(runes[:notePreviewLimit]) + "..."
}
