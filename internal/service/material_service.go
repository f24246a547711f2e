package service

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
)

type MaterialService struct {
	MaterialRepo *repository.MaterialRepository
	ProgressRepo *repository.MaterialProgressRepository
}

func NewMaterialService(
	materialRepo *repository.MaterialRepository,
	progressRepo *repository.MaterialProgressRepository,
) *MaterialService {
	return &MaterialService{
		MaterialRepo: materialRepo,
		ProgressRepo: progressRepo,
	}
}

func (s *MaterialService) Recommended(userID int) []model.MaterialWithCourse {
	return s.MaterialRepo.FindRecommendedForUser(userID)
}

// SaveProgress (userId, materialId)进度的create-or-update：
// 已有记录则原地更新，否则新建一行，不会产生重复行
func (s *MaterialService) SaveProgress(userID, materialID, progress int) (model.MaterialProgress, error) {
	if existing, ok := s.ProgressRepo.FindByUserAndMaterial(userID, materialID); ok {
		return s.ProgressRepo.UpdateProgress(existing.ID, progress)
	}

	created := s.ProgressRepo.Create(model.MaterialProgress{
		UserID:     userID,
		MaterialID: materialID,
		Progress:   progress,
	})
	return created, nil
}
