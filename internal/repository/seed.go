package repository

import (
	"math/rand"
	"time"

	"studyhub_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo 写入固定的演示数据集：1个用户、5个学科、3门课程及选课、
// 3次学习记录、2条笔记、3份资料、3条未读通知。进程启动时执行一次。
func SeedDemo(db *DB) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	user := db.Users.Insert(model.User{
		Username:  "alexj",
		Password:  string(hash),
		FullName:  "Alex Johnson",
		Email:     "alex.j@university.edu",
		AvatarURL: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
	})

	subjects := []string{"Math", "Science", "History", "English", "Computer Science"}
	for _, name := range subjects {
		db.Subjects.Insert(model.Subject{Name: name})
	}

	subjectProgress := []struct {
		subjectID int
		progress  int
	}{
		{1, 85}, // Math
		{2, 72}, // Science
		{3, 91}, // History
		{4, 64}, // English
		{5, 78}, // Computer Science
	}
	for _, sp := range subjectProgress {
		db.SubjectProgress.Insert(model.SubjectProgress{
			UserID:    user.ID,
			SubjectID: sp.subjectID,
			Progress:  sp.progress,
		})
	}

	courses := []model.Course{
		{
			Name:        "Advanced Mathematics",
			Code:        "MATH 301",
			Instructor:  "Dr. Sarah Johnson",
			Description: "Advanced topics in calculus and linear algebra",
			IconName:    "square-root-alt",
			IconColor:   "primary",
		},
		{
			Name:        "Physics II",
			Code:        "PHYS 202",
			Instructor:  "Prof. Michael Chen",
			Description: "Electricity, magnetism, and modern physics",
			IconName:    "atom",
			IconColor:   "warning",
		},
		{
			Name:        "Data Structures & Algorithms",
			Code:        "CS 315",
			Instructor:  "Dr. Robert Park",
			Description: "Advanced data structures and algorithm design",
			IconName:    "laptop-code",
			IconColor:   "secondary",
		},
	}
	for _, c := range courses {
		db.Courses.Insert(c)
	}

	enrollments := []struct {
		courseID int
		progress int
		grade    string
	}{
		{1, 75, "A-"},
		{2, 60, "B+"},
		{3, 85, "A"},
	}
	for _, e := range enrollments {
		db.Enrollments.Insert(model.Enrollment{
			UserID:   user.ID,
			CourseID: e.courseID,
			Progress: e.progress,
			Grade:    e.grade,
		})
	}

	sessions := []struct {
		courseID int
		topic    string
		duration int
	}{
		{1, "Calculus", 80 * 60},
		{2, "Mechanics", 45 * 60},
		{3, "Algorithms", 125 * 60},
	}
	for _, s := range sessions {
		db.StudySessions.Insert(model.StudySession{
			UserID:    user.ID,
			CourseID:  s.courseID,
			Topic:     s.topic,
			Duration:  s.duration,
			StartTime: randomTimeInLastWeek(),
		})
	}

	notes := []struct {
		courseID int
		title    string
		content  string
	}{
		{1, "Calculus Integration Techniques", "Remember the special cases for u-substitution and when to use integration by parts..."},
		{2, "Physics Formulas", "F=ma, E=mc², p=mv, KE=½mv², PE=mgh, ..."},
	}
	for _, n := range notes {
		db.Notes.Insert(model.Note{
			UserID:    user.ID,
			CourseID:  n.courseID,
			Title:     n.title,
			Content:   n.content,
			CreatedAt: randomTimeInLastWeek(),
		})
	}

	materials := []model.StudyMaterial{
		{
			CourseID:    1,
			Title:       "Complete Calculus Chapter 6",
			Description: "You're 80% through this chapter. Finishing it will help with upcoming assignments.",
			Type:        model.MaterialBook,
			Priority:    "High Priority",
			Progress:    80,
			IconName:    "book",
		},
		{
			CourseID:    2,
			Title:       "Physics Lab Report",
			Description: "Start your lab report early to ensure you have time for revisions.",
			Type:        model.MaterialAssignment,
			Priority:    "Due in 3 days",
			Progress:    15,
			IconName:    "tasks",
		},
		{
			CourseID:    3,
			Title:       "Watch Computer Science Lecture",
			Description: "A new lecture on Data Structures has been uploaded to help with your next assignment.",
			Type:        model.MaterialVideo,
			Priority:    "New Content",
			Progress:    0,
			IconName:    "video",
		},
	}
	for _, m := range materials {
		db.StudyMaterials.Insert(m)
	}

	notifications := []struct {
		title   string
		message string
		kind    model.NotificationType
		age     time.Duration
	}{
		{"Assignment Graded", "Your Physics Lab Report was graded: A", model.NotificationSuccess, 10 * time.Minute},
		{"Deadline Reminder", "Math Assignment due in 24 hours", model.NotificationWarning, time.Hour},
		{"New Course Material", "Biology 101: New lecture notes available", model.NotificationInfo, 24 * time.Hour},
	}
	for _, n := range notifications {
		db.Notifications.Insert(model.Notification{
			UserID:    user.ID,
			Title:     n.title,
			Message:   n.message,
			Type:      n.kind,
			Read:      false,
			CreatedAt: time.Now().Add(-n.age),
		})
	}

	return user, nil
}

func randomTimeInLastWeek() time.Time {
	offset := time.Duration(rand.Int63n(int64(7 * 24 * time.Hour)))
	return time.Now().Add(-offset)
}
