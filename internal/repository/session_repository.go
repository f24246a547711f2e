package repository

import (
	"sort"

	"studyhub_backend/internal/model"
)

type SessionRepository struct {
	DB *DB
}

func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session model.StudySession) model.StudySession {
	return r.DB.StudySessions.Insert(session)
}

func (r *SessionRepository) FindByUserWithCourse(userID int) []model.SessionWithCourse {
	sessions := r.DB.StudySessions.List(func(s model.StudySession) bool {
		return s.UserID == userID
	})
	return r.withCourse(sessions)
}

// FindRecentByUser 按startTime倒序取最多limit条，时间相同时保持插入顺序
func (r *SessionRepository) FindRecentByUser(userID, limit int) []model.SessionWithCourse {
	sessions := r.DB.StudySessions.List(func(s model.StudySession) bool {
		return s.UserID == userID
	})

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})

	if limit < len(sessions) {
		sessions = sessions[:limit]
	}
	return r.withCourse(sessions)
}

func (r *SessionRepository) withCourse(sessions []model.StudySession) []model.SessionWithCourse {
	result := make([]model.SessionWithCourse, 0, len(sessions))
	for _, s := range sessions {
		course, _ := r.DB.Courses.Get(s.CourseID)
		result = append(result, model.SessionWithCourse{StudySession: s, Course: course})
	}
	return result
}
