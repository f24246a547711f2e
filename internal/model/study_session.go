package model

import "time"

// StudySession 一次计时学习，Duration单位为秒
// swagger:model StudySession
type StudySession struct {
	Base
	UserID    int       `json:"userId"`
	CourseID  int       `json:"courseId"`
	Topic     string    `json:"topic,omitempty"`
	Duration  int       `json:"duration"`
	StartTime time.Time `json:"startTime"`
}
