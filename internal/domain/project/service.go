package project

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"prodboard/internal/domain/client"
)

type Service struct {
	repo    Repository
	clients client.Repository
}

func NewService(repo Repository, clients client.Repository) *Service {
	return &Service{repo: repo, clients: clients}
}

func (s *Service) Create(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	if req.ClientID <= 0 {
		return nil, ErrClientRequired
	}
	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	budget := decimal.Zero
	if req.Budget != "" {
		parsed, err := decimal.NewFromString(req.Budget)
		if err != nil {
			return nil, fmt.Errorf("invalid budget: %w", err)
		}
		budget = parsed
	}

	now := time.Now()
	p := &Project{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusPlanning,
		Budget:      budget,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Project, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns projects, optionally narrowed to one client and/or status.
// The client narrowing is what drives the cascading project selector in
// the dashboard.
func (s *Service) List(ctx context.Context, clientID *int64, status *Status) ([]*Project, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, clientID, status)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateProjectRequest) (*Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		p.Status = status
	}
	if req.Budget != nil {
		budget, err := decimal.NewFromString(*req.Budget)
		if err != nil {
			return nil, fmt.Errorf("invalid budget: %w", err)
		}
		p.Budget = budget
	}
	if req.StartDate != nil {
		p.StartDate = req.StartDate
	}
	if req.DueDate != nil {
		p.DueDate = req.DueDate
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
