package repository

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
)

type EnrollmentRepository struct {
	DB *DB
}

func NewEnrollmentRepository(db *DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment model.Enrollment) model.Enrollment {
	return r.DB.Enrollments.Insert(enrollment)
}

func (r *EnrollmentRepository) FindByUser(userID int) []model.Enrollment {
	return r.DB.Enrollments.List(func(e model.Enrollment) bool {
		return e.UserID == userID
	})
}

// FindByUserWithCourse 按创建顺序返回选课记录及其课程。
// 关联查询假定引用完整性成立，悬空的courseId会得到零值课程。
func (r *EnrollmentRepository) FindByUserWithCourse(userID int) []model.EnrolledCourse {
	enrollments := r.FindByUser(userID)

	result := make([]model.EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, _ := r.DB.Courses.Get(e.CourseID)
		result = append(result, model.EnrolledCourse{Enrollment: e, Course: course})
	}
	return result
}

func (r *EnrollmentRepository) UpdateProgress(id, progress int) (model.Enrollment, error) {
	updated, err := r.DB.Enrollments.Update(id, func(e *model.Enrollment) {
		e.Progress = progress
	})
	if err != nil {
		return model.Enrollment{}, util.ErrEnrollmentNotFound
	}
	return updated, nil
}

func (r *EnrollmentRepository) UpdateGrade(id int, grade string) (model.Enrollment, error) {
	updated, err := r.DB.Enrollments.Update(id, func(e *model.Enrollment) {
		e.Grade = grade
	})
	if err != nil {
		return model.Enrollment{}, util.ErrEnrollmentNotFound
	}
	return updated, nil
}
