package model

// swagger:model Subject
type Subject struct {
	Base
	Name string `json:"name"`
}

// swagger:model SubjectProgress
type SubjectProgress struct {
	Base
	UserID    int `json:"userId"`
	SubjectID int `json:"subjectId"`
	Progress  int `json:"progress"`
}
