package model

// swagger:model Course
type Course struct {
	Base
	Name        string `json:"name"`
	Code        string `json:"code"`
	Instructor  string `json:"instructor"`
	Description string `json:"description,omitempty"`
	IconName    string `json:"iconName"`
	IconColor   string `json:"iconColor"`
}

// Enrollment 用户选课记录，跟踪学习进度与成绩
// swagger:model Enrollment
type Enrollment struct {
	Base
	UserID   int    `json:"userId"`
	CourseID int    `json:"courseId"`
	Progress int    `json:"progress"`
	Grade    string `json:"grade,omitempty"`
}
