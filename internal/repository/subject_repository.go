package repository

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
)

type SubjectRepository struct {
	DB *DB
}

func NewSubjectRepository(db *DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject model.Subject) model.Subject {
	return r.DB.Subjects.Insert(subject)
}

func (r *SubjectRepository) FindAll() []model.Subject {
	return r.DB.Subjects.List(nil)
}

type SubjectProgressRepository struct {
	DB *DB
}

func NewSubjectProgressRepository(db *DB) *SubjectProgressRepository {
	return &SubjectProgressRepository{DB: db}
}

func (r *SubjectProgressRepository) Create(progress model.SubjectProgress) model.SubjectProgress {
	return r.DB.SubjectProgress.Insert(progress)
}

func (r *SubjectProgressRepository) FindByUserWithSubject(userID int) []model.SubjectProgressInfo {
	rows := r.DB.SubjectProgress.List(func(p model.SubjectProgress) bool {
		return p.UserID == userID
	})

	result := make([]model.SubjectProgressInfo, 0, len(rows))
	for _, p := range rows {
		subject, _ := r.DB.Subjects.Get(p.SubjectID)
		result = append(result, model.SubjectProgressInfo{SubjectProgress: p, Subject: subject})
	}
	return result
}

func (r *SubjectProgressRepository) UpdateProgress(id, progress int) (model.SubjectProgress, error) {
	updated, err := r.DB.SubjectProgress.Update(id, func(p *model.SubjectProgress) {
		p.Progress = progress
	})
	if err != nil {
		return model.SubjectProgress{}, util.ErrSubjectProgressNotFound
	}
	return updated, nil
}
