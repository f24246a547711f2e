package model

import "time"

// swagger:model Note
type Note struct {
	Base
	UserID    int       `json:"userId"`
	CourseID  int       `json:"courseId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
