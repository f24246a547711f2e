package repository

import (
	"sort"

	"studyhub_backend/internal/model"
)

// 推荐排序中的资料类型优先级，进度相同时作业优先于教材、教材优先于视频，
// 未知类型沉底
var materialTypeRank = map[model.MaterialType]int{
	model.MaterialAssignment: 1,
	model.MaterialBook:       2,
	model.MaterialVideo:      3,
}

const unknownTypeRank = 999

type MaterialRepository struct {
	DB *DB
}

func NewMaterialRepository(db *DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(material model.StudyMaterial) model.StudyMaterial {
	return r.DB.StudyMaterials.Insert(material)
}

func (r *MaterialRepository) FindByCourse(courseID int) []model.StudyMaterial {
	return r.DB.StudyMaterials.List(func(m model.StudyMaterial) bool {
		return m.CourseID == courseID
	})
}

// FindRecommendedForUser 推荐用户所选课程下的资料：
// 进度升序（越少推进的越靠前），进度相同时按类型优先级
func (r *MaterialRepository) FindRecommendedForUser(userID int) []model.MaterialWithCourse {
	enrolled := make(map[int]bool)
	for _, e := range r.DB.Enrollments.List(func(e model.Enrollment) bool { return e.UserID == userID }) {
		enrolled[e.CourseID] = true
	}

	materials := r.DB.StudyMaterials.List(func(m model.StudyMaterial) bool {
		return enrolled[m.CourseID]
	})

	sort.SliceStable(materials, func(i, j int) bool {
		if materials[i].Progress != materials[j].Progress {
			return materials[i].Progress < materials[j].Progress
		}
		return typeRank(materials[i].Type) < typeRank(materials[j].Type)
	})

	result := make([]model.MaterialWithCourse, 0, len(materials))
	for _, m := range materials {
		course, _ := r.DB.Courses.Get(m.CourseID)
		result = append(result, model.MaterialWithCourse{StudyMaterial: m, Course: course})
	}
	return result
}

func typeRank(t model.MaterialType) int {
	if rank, ok := materialTypeRank[t]; ok {
		return rank
	}
	return unknownTypeRank
}
