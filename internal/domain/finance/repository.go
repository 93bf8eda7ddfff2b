package finance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByID(ctx context.Context, id int64) (*Record, error)
	List(ctx context.Context, filter ListFilter) ([]*Record, error)
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id int64) error
}

type ListFilter struct {
	Kind      *Kind
	ClientID  *int64
	ProjectID *int64
	From      *time.Time
	To        *time.Time
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	return &rec, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Record, error) {
	q := r.db.WithContext(ctx).Order("occurred_at DESC")
	if filter.Kind != nil {
		q = q.Where("kind = ?", *filter.Kind)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.ProjectID != nil {
		q = q.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.From != nil {
		q = q.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("occurred_at < ?", *filter.To)
	}
	var records []*Record
	err := q.Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Record{}).Error
}
