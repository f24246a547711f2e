package model

type MaterialType string

const (
	MaterialAssignment MaterialType = "assignment"
	MaterialBook       MaterialType = "book"
	MaterialVideo      MaterialType = "video"
)

// StudyMaterial 课程学习资料，Progress为资料本身的推进度
// swagger:model StudyMaterial
type StudyMaterial struct {
	Base
	CourseID    int          `json:"courseId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        MaterialType `json:"type"`
	Priority    string       `json:"priority"`
	Progress    int          `json:"progress"`
	IconName    string       `json:"iconName"`
}

// MaterialProgress 用户对单个资料的进度，(userId, materialId)组合唯一，
// 只支持创建或更新，不支持删除
// swagger:model MaterialProgress
type MaterialProgress struct {
	Base
	UserID     int `json:"userId"`
	MaterialID int `json:"materialId"`
	Progress   int `json:"progress"`
}
