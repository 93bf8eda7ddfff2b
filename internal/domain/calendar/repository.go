package calendar

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	ListRange(ctx context.Context, from, to time.Time, projectID *int64) ([]*Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Event, error) {
	var e Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	return &e, err
}

// ListRange returns events overlapping [from, to), ordered by start.
func (r *repository) ListRange(ctx context.Context, from, to time.Time, projectID *int64) ([]*Event, error) {
	q := r.db.WithContext(ctx).
		Where("starts_at < ? AND ends_at >= ?", to, from).
		Order("starts_at ASC")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var events []*Event
	err := q.Find(&events).Error
	return events, err
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Event{}).Error
}
