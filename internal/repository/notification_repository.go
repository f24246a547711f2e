package repository

import (
	"sort"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
)

type NotificationRepository struct {
	DB *DB
}

func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(notification model.Notification) model.Notification {
	return r.DB.Notifications.Insert(notification)
}

// FindByUser 按createdAt倒序，最新的在前
func (r *NotificationRepository) FindByUser(userID int) []model.Notification {
	notifications := r.DB.Notifications.List(func(n model.Notification) bool {
		return n.UserID == userID
	})

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications
}

func (r *NotificationRepository) CountUnread(userID int) int {
	return len(r.DB.Notifications.List(func(n model.Notification) bool {
		return n.UserID == userID && !n.Read
	}))
}

func (r *NotificationRepository) MarkRead(id int) (model.Notification, error) {
	updated, err := r.DB.Notifications.Update(id, func(n *model.Notification) {
		n.Read = true
	})
	if err != nil {
		return model.Notification{}, util.ErrNotificationNotFound
	}
	return updated, nil
}
