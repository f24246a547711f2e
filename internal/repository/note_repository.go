package repository

import (
	"sort"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
)

type NoteRepository struct {
	DB *DB
}

func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note model.Note) model.Note {
	return r.DB.Notes.Insert(note)
}

func (r *NoteRepository) FindByUserWithCourse(userID int) []model.NoteWithCourse {
	notes := r.DB.Notes.List(func(n model.Note) bool {
		return n.UserID == userID
	})
	return r.withCourse(notes)
}

// FindRecentByUser 按createdAt倒序取最多limit条，时间相同时保持插入顺序
func (r *NoteRepository) FindRecentByUser(userID, limit int) []model.NoteWithCourse {
	notes := r.DB.Notes.List(func(n model.Note) bool {
		return n.UserID == userID
	})

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	if limit < len(notes) {
		notes = notes[:limit]
	}
	return r.withCourse(notes)
}

func (r *NoteRepository) FindByIDWithCourse(id int) (model.NoteWithCourse, error) {
	note, ok := r.DB.Notes.Get(id)
	if !ok {
		return model.NoteWithCourse{}, util.ErrNoteNotFound
	}
	course, _ := r.DB.Courses.Get(note.CourseID)
	return model.NoteWithCourse{Note: note, Course: course}, nil
}

func (r *NoteRepository) withCourse(notes []model.Note) []model.NoteWithCourse {
	result := make([]model.NoteWithCourse, 0, len(notes))
	for _, n := range notes {
		course, _ := r.DB.Courses.Get(n.CourseID)
		result = append(result, model.NoteWithCourse{Note: n, Course: course})
	}
	return result
}
