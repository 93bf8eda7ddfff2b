package attachment

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Attachment) error
	Get(ctx context.Context, ownerType OwnerType, ownerID int64, id string) (*Attachment, error)
	ListGrouped(ctx context.Context) (*Grouped, error)
	ListByOwner(ctx context.Context, ownerType OwnerType, ownerID int64) ([]Attachment, error)
	Delete(ctx context.Context, ownerType OwnerType, ownerID int64, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attachment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Get(ctx context.Context, ownerType OwnerType, ownerID int64, id string) (*Attachment, error) {
	var a Attachment
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ? AND id = ?", ownerType, ownerID, id).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAttachmentNotFound
	}
	return &a, err
}

// ListGrouped loads all attachments partitioned by owner type, newest
// first within each partition.
func (r *repository) ListGrouped(ctx context.Context) (*Grouped, error) {
	var all []Attachment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&all).Error; err != nil {
		return nil, err
	}

	grouped := &Grouped{
		Clients:  []Attachment{},
		Projects: []Attachment{},
		Tasks:    []Attachment{},
	}
	for _, a := range all {
		switch a.OwnerType {
		case OwnerClient:
			grouped.Clients = append(grouped.Clients, a)
		case OwnerProject:
			grouped.Projects = append(grouped.Projects, a)
		case OwnerTask:
			grouped.Tasks = append(grouped.Tasks, a)
		}
	}
	return grouped, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerType OwnerType, ownerID int64) ([]Attachment, error) {
	var list []Attachment
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) Delete(ctx context.Context, ownerType OwnerType, ownerID int64, id string) error {
	res := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ? AND id = ?", ownerType, ownerID, id).
		Delete(&Attachment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}
