package task

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id int64) (*Task, error)
	List(ctx context.Context, filter ListFilter) ([]*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id int64) error
}

// ListFilter narrows the task listing. Nil fields pass everything.
type ListFilter struct {
	ProjectID  *int64
	AssigneeID *int64
	Status     *Status
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	return &t, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Task, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.ProjectID != nil {
		q = q.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	var tasks []*Task
	err := q.Find(&tasks).Error
	return tasks, err
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Task{}).Error
}
