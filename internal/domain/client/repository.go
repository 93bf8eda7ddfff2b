package client

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id int64) (*Client, error)
	List(ctx context.Context, status *Status) ([]*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Client, error) {
	var c Client
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	return &c, err
}

func (r *repository) List(ctx context.Context, status *Status) ([]*Client, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var clients []*Client
	err := q.Find(&clients).Error
	return clients, err
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Client{}).Error
}
