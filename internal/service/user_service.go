package service

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// Profile 返回用户记录，密码字段由json标签隐藏，不会进入响应
func (s *UserService) Profile(userID int) (model.User, error) {
	return s.UserRepo.FindByID(userID)
}
