package repository

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/pkg/memdb"
)

// DB 进程内实体存储，聚合全部内存表。
// 每张表独立计数自增ID，进程生命周期内数据常驻，不做持久化。
type DB struct {
	Users            *memdb.Table[model.User, *model.User]
	Courses          *memdb.Table[model.Course, *model.Course]
	Enrollments      *memdb.Table[model.Enrollment, *model.Enrollment]
	StudySessions    *memdb.Table[model.StudySession, *model.StudySession]
	Notes            *memdb.Table[model.Note, *model.Note]
	StudyMaterials   *memdb.Table[model.StudyMaterial, *model.StudyMaterial]
	MaterialProgress *memdb.Table[model.MaterialProgress, *model.MaterialProgress]
	Subjects         *memdb.Table[model.Subject, *model.Subject]
	SubjectProgress  *memdb.Table[model.SubjectProgress, *model.SubjectProgress]
	Notifications    *memdb.Table[model.Notification, *model.Notification]
}

func NewDB() *DB {
	return &DB{
		Users:            memdb.NewTable[model.User, *model.User](),
		Courses:          memdb.NewTable[model.Course, *model.Course](),
		Enrollments:      memdb.NewTable[model.Enrollment, *model.Enrollment](),
		StudySessions:    memdb.NewTable[model.StudySession, *model.StudySession](),
		Notes:            memdb.NewTable[model.Note, *model.Note](),
		StudyMaterials:   memdb.NewTable[model.StudyMaterial, *model.StudyMaterial](),
		MaterialProgress: memdb.NewTable[model.MaterialProgress, *model.MaterialProgress](),
		Subjects:         memdb.NewTable[model.Subject, *model.Subject](),
		SubjectProgress:  memdb.NewTable[model.SubjectProgress, *model.SubjectProgress](),
		Notifications:    memdb.NewTable[model.Notification, *model.Notification](),
	}
}

// TableSizes 各表当前记录数，供健康检查和指标上报
func (db *DB) TableSizes() map[string]int {
	return map[string]int{
		"users":             db.Users.Len(),
		"courses":           db.Courses.Len(),
		"enrollments":       db.Enrollments.Len(),
		"study_sessions":    db.StudySessions.Len(),
		"notes":             db.Notes.Len(),
		"study_materials":   db.StudyMaterials.Len(),
		"material_progress": db.MaterialProgress.Len(),
		"subjects":          db.Subjects.Len(),
		"subject_progress":  db.SubjectProgress.Len(),
		"notifications":     db.Notifications.Len(),
	}
}
