package repository

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
)

type CourseRepository struct {
	DB *DB
}

func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course model.Course) model.Course {
	return r.DB.Courses.Insert(course)
}

func (r *CourseRepository) FindByID(id int) (model.Course, error) {
	course, ok := r.DB.Courses.Get(id)
	if !ok {
		return model.Course{}, util.ErrCourseNotFound
	}
	return course, nil
}

func (r *CourseRepository) FindAll() []model.Course {
	return r.DB.Courses.List(nil)
}
