package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*Notification, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Limit(100)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var notifications []*Notification
	err := q.Find(&notifications).Error
	return notifications, err
}

func (r *repository) MarkRead(ctx context.Context, userID, id int64) error {
	res := r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *repository) MarkAllRead(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
