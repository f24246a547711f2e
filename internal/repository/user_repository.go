package repository

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
)

type UserRepository struct {
	DB *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user model.User) model.User {
	return r.DB.Users.Insert(user)
}

func (r *UserRepository) FindByID(id int) (model.User, error) {
	user, ok := r.DB.Users.Get(id)
	if !ok {
		return model.User{}, util.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) FindByUsername(username string) (model.User, error) {
	user, ok := r.DB.Users.Find(func(u model.User) bool {
		return u.Username == username
	})
	if !ok {
		return model.User{}, util.ErrUserNotFound
	}
	return user, nil
}
