package service

import (
	"fmt"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
)

type StudyService struct {
	SessionRepo *repository.SessionRepository
}

func NewStudyService(sessionRepo *repository.SessionRepository) *StudyService {
	return &StudyService{SessionRepo: sessionRepo}
}

// SessionSummary 学习记录卡片视图，时长已格式化
type SessionSummary struct {
	ID       int    `json:"id"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic,omitempty"`
	Duration string `json:"duration"`
}

func (s *StudyService) RecentSessions(userID, limit int) []SessionSummary {
	sessions := s.SessionRepo.FindRecentByUser(userID, limit)

	summaries := make([]SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, SessionSummary{
			ID:       session.ID,
			Subject:  session.Course.Name,
			Topic:    session.Topic,
			Duration: formatDuration(session.Duration),
		})
	}
	return summaries
}

func (s *StudyService) Sessions(userID int) []model.SessionWithCourse {
	return s.SessionRepo.FindByUserWithCourse(userID)
}

func (s *StudyService) Record(session model.StudySession) model.StudySession {
	return s.SessionRepo.Create(session)
}

// formatDuration 秒数转"Xh Ym"，不足一小时只输出"Ym"
func formatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
