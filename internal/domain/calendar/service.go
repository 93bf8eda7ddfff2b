package calendar

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

func (s *Service) Create(ctx context.Context, userID int64, req *CreateEventRequest) (*Event, error) {
	kind := KindOther
	if req.Kind != "" {
		kind = Kind(req.Kind)
		if !kind.Valid() {
			return nil, ErrInvalidKind
		}
	}
	if req.EndsAt.Before(req.StartsAt) {
		return nil, ErrInvalidRange
	}

	now := time.Now()
	e := &Event{
		Title:       req.Title,
		Description: req.Description,
		Kind:        kind,
		ProjectID:   req.ProjectID,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		AllDay:      req.AllDay,
		CreatedBy:   &userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListRange(ctx context.Context, from, to time.Time, projectID *int64) ([]*Event, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	return s.repo.ListRange(ctx, from, to, projectID)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateEventRequest) (*Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Kind != nil {
		kind := Kind(*req.Kind)
		if !kind.Valid() {
			return nil, ErrInvalidKind
		}
		e.Kind = kind
	}
	if req.ProjectID != nil {
		e.ProjectID = req.ProjectID
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.StartsAt != nil {
		e.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		e.EndsAt = *req.EndsAt
	}
	if req.AllDay != nil {
		e.AllDay = *req.AllDay
	}
	if e.EndsAt.Before(e.StartsAt) {
		return nil, ErrInvalidRange
	}
	e.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
