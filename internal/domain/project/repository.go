package project

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context, clientID *int64, status *Status) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	return &p, err
}

func (r *repository) List(ctx context.Context, clientID *int64, status *Status) ([]*Project, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var projects []*Project
	err := q.Find(&projects).Error
	return projects, err
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Project{}).Error
}
