package team

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id int64) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	return &m, err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	return &m, err
}

func (r *repository) List(ctx context.Context) ([]*Member, error) {
	var members []*Member
	err := r.db.WithContext(ctx).Order("name ASC").Find(&members).Error
	return members, err
}

func (r *repository) Update(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Member{}).Error
}
