package repository

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
)

type MaterialProgressRepository struct {
	DB *DB
}

func NewMaterialProgressRepository(db *DB) *MaterialProgressRepository {
	return &MaterialProgressRepository{DB: db}
}

// FindByUserAndMaterial (userId, materialId)组合至多对应一行
func (r *MaterialProgressRepository) FindByUserAndMaterial(userID, materialID int) (model.MaterialProgress, bool) {
	return r.DB.MaterialProgress.Find(func(p model.MaterialProgress) bool {
		return p.UserID == userID && p.MaterialID == materialID
	})
}

func (r *MaterialProgressRepository) Create(progress model.MaterialProgress) model.MaterialProgress {
	return r.DB.MaterialProgress.Insert(progress)
}

func (r *MaterialProgressRepository) UpdateProgress(id, progress int) (model.MaterialProgress, error) {
	updated, err := r.DB.MaterialProgress.Update(id, func(p *model.MaterialProgress) {
		p.Progress = progress
	})
	if err != nil {
		return model.MaterialProgress{}, util.ErrMaterialProgressNotFound
	}
	return updated, nil
}
