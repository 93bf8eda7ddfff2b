package client

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *CreateClientRequest) (*Client, error) {
	now := time.Now()
	c := &Client{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Notes:       req.Notes,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status *Status) ([]*Client, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateClientRequest) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.ContactName != nil {
		c.ContactName = *req.ContactName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Website != nil {
		c.Website = *req.Website
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		c.Status = status
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
