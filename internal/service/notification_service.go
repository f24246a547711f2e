package service

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

func (s *NotificationService) List(userID int) []model.Notification {
	return s.NotificationRepo.FindByUser(userID)
}

func (s *NotificationService) UnreadCount(userID int) int {
	return s.NotificationRepo.CountUnread(userID)
}

func (s *NotificationService) MarkRead(id int) (model.Notification, error) {
	return s.NotificationRepo.MarkRead(id)
}
